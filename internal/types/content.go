package types

import "time"

// Article is a blog/insights post.
type Article struct {
	ID              string    `json:"id" bson:"id"`
	Title           string    `json:"title" bson:"title"`
	Slug            string    `json:"slug" bson:"slug"`
	Content         string    `json:"content" bson:"content"`
	Excerpt         string    `json:"excerpt" bson:"excerpt"`
	CoverImage      *string   `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	Category        string    `json:"category" bson:"category"`
	MetaTitle       *string   `json:"meta_title,omitempty" bson:"meta_title,omitempty"`
	MetaDescription *string   `json:"meta_description,omitempty" bson:"meta_description,omitempty"`
	ReadTime        int       `json:"read_time" bson:"read_time"`
	Published       bool      `json:"published" bson:"published"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// CreateArticleParams is the admin input for create and full-replace update.
// A zero ReadTime is normalized to 5 by the service.
type CreateArticleParams struct {
	Title           string  `json:"title"`
	Content         string  `json:"content"`
	Excerpt         string  `json:"excerpt"`
	CoverImage      *string `json:"cover_image,omitempty"`
	Category        string  `json:"category"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	ReadTime        int     `json:"read_time"`
	Published       bool    `json:"published"`
}

// ArticleFilter narrows article listings. Nil fields match everything.
type ArticleFilter struct {
	Category  *string
	Published *bool
}

// ContactLead is a captured enquiry from the public contact form.
type ContactLead struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     *string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Company   *string   `json:"company,omitempty" bson:"company,omitempty"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CreateContactLeadParams is the public contact-form input.
type CreateContactLeadParams struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Message string  `json:"message"`
}

// PageSection is one editable block of a CMS page (hero, features,
// timeline, testimonials, ...). Content is free-form per section type.
type PageSection struct {
	ID          string         `json:"id" bson:"id"`
	PageName    string         `json:"page_name" bson:"page_name"`
	SectionName string         `json:"section_name" bson:"section_name"`
	SectionType string         `json:"section_type" bson:"section_type"`
	Content     map[string]any `json:"content" bson:"content"`
	Order       int            `json:"order" bson:"order"`
	Visible     bool           `json:"visible" bson:"visible"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

// CreatePageSectionParams is the admin input for create and full-replace update.
type CreatePageSectionParams struct {
	PageName    string         `json:"page_name"`
	SectionName string         `json:"section_name"`
	SectionType string         `json:"section_type"`
	Content     map[string]any `json:"content"`
	Order       int            `json:"order"`
	Visible     *bool          `json:"visible,omitempty"`
}
