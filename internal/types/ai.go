package types

// GenerateContentRequest asks the copywriting assistant for marketing
// text. ContentType steers the system prompt (product_description,
// article, benefits, ...).
type GenerateContentRequest struct {
	Prompt      string `json:"prompt"`
	ContentType string `json:"content_type"`
}

// GenerateImageRequest asks for a single generated product image.
type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
}
