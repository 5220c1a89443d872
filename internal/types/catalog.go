package types

import "time"

// ProductCategory groups products on the public catalogue.
type ProductCategory struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description *string   `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// CreateCategoryParams is the admin input for a new category.
type CreateCategoryParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ProductDocument is an attachment (spec sheet, certificate) on a product.
type ProductDocument struct {
	ID         string    `json:"id" bson:"id"`
	Name       string    `json:"name" bson:"name"`
	URL        string    `json:"url" bson:"url"`
	Type       string    `json:"type" bson:"type"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploaded_at"`
}

// Product is a manufacturable cosmetic product.
// CategoryName is denormalized at read time and never stored.
type Product struct {
	ID               string            `json:"id" bson:"id"`
	Name             string            `json:"name" bson:"name"`
	Slug             string            `json:"slug" bson:"slug"`
	CategoryID       string            `json:"category_id" bson:"category_id"`
	CategoryName     *string           `json:"category_name,omitempty" bson:"-"`
	Description      string            `json:"description" bson:"description"`
	Benefits         *string           `json:"benefits,omitempty" bson:"benefits,omitempty"`
	KeyIngredients   *string           `json:"key_ingredients,omitempty" bson:"key_ingredients,omitempty"`
	PackagingOptions *string           `json:"packaging_options,omitempty" bson:"packaging_options,omitempty"`
	Images           []string          `json:"images" bson:"images"`
	Documents        []ProductDocument `json:"documents" bson:"documents"`
	Featured         bool              `json:"featured" bson:"featured"`
	CreatedAt        time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" bson:"updated_at"`
}

// CreateProductParams is the admin input for create and full-replace update.
type CreateProductParams struct {
	Name             string  `json:"name"`
	CategoryID       string  `json:"category_id"`
	Description      string  `json:"description"`
	Benefits         *string `json:"benefits,omitempty"`
	KeyIngredients   *string `json:"key_ingredients,omitempty"`
	PackagingOptions *string `json:"packaging_options,omitempty"`
	Featured         bool    `json:"featured"`
}

// AddProductImageParams appends one image URL to a product.
type AddProductImageParams struct {
	ImageURL string `json:"image_url"`
}

// AddProductDocumentParams appends one attachment to a product.
type AddProductDocumentParams struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"doc_type"`
}

// ProductFilter narrows product listings. Nil fields match everything.
type ProductFilter struct {
	CategoryID *string
	Featured   *bool
}

// Client is a brand logo shown on the "trusted by" strip.
type Client struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	LogoURL   string    `json:"logo_url" bson:"logo_url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CreateClientParams is the admin input for a new client logo.
type CreateClientParams struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// Review is a customer testimonial.
type Review struct {
	ID           string    `json:"id" bson:"id"`
	CustomerName string    `json:"customer_name" bson:"customer_name"`
	ReviewText   string    `json:"review_text" bson:"review_text"`
	Rating       int       `json:"rating" bson:"rating"`
	Position     *string   `json:"position,omitempty" bson:"position,omitempty"`
	Company      *string   `json:"company,omitempty" bson:"company,omitempty"`
	PhotoURL     *string   `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// CreateReviewParams is the admin input for create and full-replace update.
// A zero Rating is normalized to 5 by the service.
type CreateReviewParams struct {
	CustomerName string  `json:"customer_name"`
	ReviewText   string  `json:"review_text"`
	Rating       int     `json:"rating"`
	Position     *string `json:"position,omitempty"`
	Company      *string `json:"company,omitempty"`
	PhotoURL     *string `json:"photo_url,omitempty"`
}
