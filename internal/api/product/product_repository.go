package product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

const listCap = 1000

var _ ProductRepository = (*MongoProductRepo)(nil)

type ProductRepository interface {
	List(ctx context.Context, filter types.ProductFilter) ([]types.Product, error)
	Get(ctx context.Context, productID string) (*types.Product, error)
	Create(ctx context.Context, product *types.Product) error

	// Update replaces every stored field of the product. Returns ErrNotFound.
	Update(ctx context.Context, product *types.Product) error
	Delete(ctx context.Context, productID string) error

	// AddImage appends one image URL and returns the updated image list.
	AddImage(ctx context.Context, productID, imageURL string) ([]string, error)

	// AddDocument appends one attachment and returns the updated attachment list.
	AddDocument(ctx context.Context, productID string, doc types.ProductDocument) ([]types.ProductDocument, error)

	// RemoveDocument detaches an attachment by its id and returns what remains.
	RemoveDocument(ctx context.Context, productID, documentID string) ([]types.ProductDocument, error)
}

// MongoProductRepo reads the categories collection as well, so that
// listings can carry the category name without a second service call.
type MongoProductRepo struct {
	logger     *slog.Logger
	products   *mongo.Collection
	categories *mongo.Collection
}

func NewMongoProductRepo(db *mongo.Database, logger *slog.Logger) *MongoProductRepo {
	return &MongoProductRepo{
		logger:     logger,
		products:   db.Collection("products"),
		categories: db.Collection("categories"),
	}
}

// attachCategoryName resolves the denormalized category name. A product
// pointing at a deleted category simply gets no name.
func (r *MongoProductRepo) attachCategoryName(ctx context.Context, product *types.Product) {
	if product.CategoryID == "" {
		return
	}
	var category types.ProductCategory
	err := r.categories.FindOne(ctx, bson.M{"id": product.CategoryID}).Decode(&category)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.WarnContext(ctx, "Failed to resolve category name",
				slog.String("categoryID", product.CategoryID), slog.Any("error", err))
		}
		return
	}
	product.CategoryName = &category.Name
}

func (r *MongoProductRepo) List(ctx context.Context, filter types.ProductFilter) ([]types.Product, error) {
	ctx, span := otel.Tracer("ProductRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "products"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	query := bson.M{}
	if filter.CategoryID != nil {
		query["category_id"] = *filter.CategoryID
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	cursor, err := r.products.Find(ctx, query, options.Find().SetLimit(listCap))
	if err != nil {
		l.ErrorContext(ctx, "Failed to query products", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error listing products: %w", err)
	}

	products := []types.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		l.ErrorContext(ctx, "Failed to decode products", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cursor decode failed")
		return nil, fmt.Errorf("database error decoding products: %w", err)
	}

	for i := range products {
		r.attachCategoryName(ctx, &products[i])
	}

	span.SetStatus(codes.Ok, "Products listed")
	return products, nil
}

func (r *MongoProductRepo) Get(ctx context.Context, productID string) (*types.Product, error) {
	ctx, span := otel.Tracer("ProductRepo").Start(ctx, "Get", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "products"),
		attribute.String("db.product.id", productID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Get"), slog.String("productID", productID))

	var product types.Product
	err := r.products.FindOne(ctx, bson.M{"id": productID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			span.SetStatus(codes.Error, "Product not found")
			return nil, fmt.Errorf("product not found: %w", types.ErrNotFound)
		}
		l.ErrorContext(ctx, "Failed to fetch product", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error fetching product: %w", err)
	}

	r.attachCategoryName(ctx, &product)

	span.SetStatus(codes.Ok, "Product fetched")
	return &product, nil
}

func (r *MongoProductRepo) Create(ctx context.Context, product *types.Product) error {
	ctx, span := otel.Tracer("ProductRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "products"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("productID", product.ID))

	if _, err := r.products.InsertOne(ctx, product); err != nil {
		l.ErrorContext(ctx, "Failed to insert product", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("database error inserting product: %w", err)
	}

	l.InfoContext(ctx, "Product created")
	span.SetStatus(codes.Ok, "Product created")
	return nil
}

func (r *MongoProductRepo) Update(ctx context.Context, product *types.Product) error {
	ctx, span := otel.Tracer("ProductRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "products"),
		attribute.String("db.product.id", product.ID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Update"), slog.String("productID", product.ID))

	set := bson.M{
		"name":              product.Name,
		"slug":              product.Slug,
		"category_id":       product.CategoryID,
		"description":       product.Description,
		"benefits":          product.Benefits,
		"key_ingredients":   product.KeyIngredients,
		"packaging_options": product.PackagingOptions,
		"featured":          product.Featured,
		"updated_at":        product.UpdatedAt,
	}

	result, err := r.products.UpdateOne(ctx, bson.M{"id": product.ID}, bson.M{"$set": set})
	if err != nil {
		l.ErrorContext(ctx, "Failed to update product", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB update failed")
		return fmt.Errorf("database error updating product: %w", err)
	}
	if result.MatchedCount == 0 {
		span.SetStatus(codes.Error, "Product not found")
		return fmt.Errorf("product not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Product updated")
	span.SetStatus(codes.Ok, "Product updated")
	return nil
}

func (r *MongoProductRepo) Delete(ctx context.Context, productID string) error {
	ctx, span := otel.Tracer("ProductRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "products"),
		attribute.String("db.product.id", productID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Delete"), slog.String("productID", productID))

	result, err := r.products.DeleteOne(ctx, bson.M{"id": productID})
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete product", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB delete failed")
		return fmt.Errorf("database error deleting product: %w", err)
	}
	if result.DeletedCount == 0 {
		l.WarnContext(ctx, "Product not found for delete")
		span.SetStatus(codes.Error, "Product not found")
		return fmt.Errorf("product not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Product deleted")
	span.SetStatus(codes.Ok, "Product deleted")
	return nil
}

func (r *MongoProductRepo) AddImage(ctx context.Context, productID, imageURL string) ([]string, error) {
	ctx, span := otel.Tracer("ProductRepo").Start(ctx, "AddImage", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "products"),
		attribute.String("db.product.id", productID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "AddImage"), slog.String("productID", productID))

	result, err := r.products.UpdateOne(ctx, bson.M{"id": productID}, bson.M{"$push": bson.M{"images": imageURL}})
	if err != nil {
		l.ErrorContext(ctx, "Failed to push image", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB update failed")
		return nil, fmt.Errorf("database error adding product image: %w", err)
	}
	if result.MatchedCount == 0 {
		span.SetStatus(codes.Error, "Product not found")
		return nil, fmt.Errorf("product not found: %w", types.ErrNotFound)
	}

	var product types.Product
	if err := r.products.FindOne(ctx, bson.M{"id": productID}).Decode(&product); err != nil {
		l.ErrorContext(ctx, "Failed to reload product images", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error reloading product: %w", err)
	}

	l.InfoContext(ctx, "Product image added")
	span.SetStatus(codes.Ok, "Product image added")
	return product.Images, nil
}

func (r *MongoProductRepo) AddDocument(ctx context.Context, productID string, doc types.ProductDocument) ([]types.ProductDocument, error) {
	ctx, span := otel.Tracer("ProductRepo").Start(ctx, "AddDocument", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "products"),
		attribute.String("db.product.id", productID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "AddDocument"), slog.String("productID", productID))

	result, err := r.products.UpdateOne(ctx, bson.M{"id": productID}, bson.M{"$push": bson.M{"documents": doc}})
	if err != nil {
		l.ErrorContext(ctx, "Failed to push document", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB update failed")
		return nil, fmt.Errorf("database error adding product document: %w", err)
	}
	if result.MatchedCount == 0 {
		span.SetStatus(codes.Error, "Product not found")
		return nil, fmt.Errorf("product not found: %w", types.ErrNotFound)
	}

	var product types.Product
	if err := r.products.FindOne(ctx, bson.M{"id": productID}).Decode(&product); err != nil {
		l.ErrorContext(ctx, "Failed to reload product documents", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error reloading product: %w", err)
	}

	l.InfoContext(ctx, "Product document added")
	span.SetStatus(codes.Ok, "Product document added")
	return product.Documents, nil
}

func (r *MongoProductRepo) RemoveDocument(ctx context.Context, productID, documentID string) ([]types.ProductDocument, error) {
	ctx, span := otel.Tracer("ProductRepo").Start(ctx, "RemoveDocument", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "products"),
		attribute.String("db.product.id", productID),
		attribute.String("db.document.id", documentID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "RemoveDocument"),
		slog.String("productID", productID), slog.String("documentID", documentID))

	result, err := r.products.UpdateOne(ctx, bson.M{"id": productID},
		bson.M{"$pull": bson.M{"documents": bson.M{"id": documentID}}})
	if err != nil {
		l.ErrorContext(ctx, "Failed to pull document", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB update failed")
		return nil, fmt.Errorf("database error removing product document: %w", err)
	}
	if result.MatchedCount == 0 {
		span.SetStatus(codes.Error, "Product not found")
		return nil, fmt.Errorf("product not found: %w", types.ErrNotFound)
	}

	var product types.Product
	if err := r.products.FindOne(ctx, bson.M{"id": productID}).Decode(&product); err != nil {
		l.ErrorContext(ctx, "Failed to reload product documents", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error reloading product: %w", err)
	}

	l.InfoContext(ctx, "Product document removed")
	span.SetStatus(codes.Ok, "Product document removed")
	return product.Documents, nil
}
