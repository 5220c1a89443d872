package product

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type ProductHandler struct {
	productService ProductService
	logger         *slog.Logger
}

func NewProductHandler(productService ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// List godoc
// @Summary      List Products
// @Router       /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "List"))

	filter := types.ProductFilter{}
	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		filter.CategoryID = &categoryID
	}
	if raw := r.URL.Query().Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid featured filter")
			return
		}
		filter.Featured = &featured
	}

	products, err := h.productService.List(ctx, filter)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list products", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, products)
}

// Get godoc
// @Summary      Get Product
// @Router       /products/{productID} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Get"))

	productID := chi.URLParam(r, "productID")
	product, err := h.productService.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Product not found")
			return
		}
		l.ErrorContext(ctx, "Failed to fetch product", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, product)
}

// Create godoc
// @Summary      Create Product
// @Router       /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Create"))

	var params types.CreateProductParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Name == "" || params.CategoryID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Name and category_id are required")
		return
	}

	product, err := h.productService.Create(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create product", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create product")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, product)
}

// Update godoc
// @Summary      Update Product
// @Router       /products/{productID} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Update"))

	productID := chi.URLParam(r, "productID")

	var params types.CreateProductParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Name == "" || params.CategoryID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Name and category_id are required")
		return
	}

	product, err := h.productService.Update(ctx, productID, params)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Product not found")
			return
		}
		l.ErrorContext(ctx, "Failed to update product", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update product")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, product)
}

// Delete godoc
// @Summary      Delete Product
// @Router       /products/{productID} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Delete"))

	productID := chi.URLParam(r, "productID")
	if err := h.productService.Delete(ctx, productID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Product not found")
			return
		}
		l.ErrorContext(ctx, "Failed to delete product", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// AddImage godoc
// @Summary      Add Product Image
// @Router       /products/{productID}/images [post]
func (h *ProductHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "AddImage"))

	productID := chi.URLParam(r, "productID")

	var params types.AddProductImageParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.ImageURL == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "image_url is required")
		return
	}

	images, err := h.productService.AddImage(ctx, productID, params.ImageURL)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Product not found")
			return
		}
		l.ErrorContext(ctx, "Failed to add product image", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to add product image")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{
		"message": "Image added successfully",
		"images":  images,
	})
}

// AddDocument godoc
// @Summary      Add Product Document
// @Router       /products/{productID}/documents [post]
func (h *ProductHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "AddDocument"))

	productID := chi.URLParam(r, "productID")

	var params types.AddProductDocumentParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Name == "" || params.URL == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "name and url are required")
		return
	}

	documents, err := h.productService.AddDocument(ctx, productID, params)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Product not found")
			return
		}
		l.ErrorContext(ctx, "Failed to add product document", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to add product document")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{
		"message":   "Document added successfully",
		"documents": documents,
	})
}

// RemoveDocument godoc
// @Summary      Remove Product Document
// @Router       /products/{productID}/documents/{documentID} [delete]
func (h *ProductHandler) RemoveDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "RemoveDocument"))

	productID := chi.URLParam(r, "productID")
	documentID := chi.URLParam(r, "documentID")

	documents, err := h.productService.RemoveDocument(ctx, productID, documentID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Product not found")
			return
		}
		l.ErrorContext(ctx, "Failed to remove product document", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to remove product document")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{
		"message":   "Document removed successfully",
		"documents": documents,
	})
}
