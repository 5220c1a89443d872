package generativeAI

import (
	"context"
	"encoding/base64"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

// AIClient wraps the Gemini SDK with the two calls the admin panel
// needs. A nil AIClient means the API key was never configured.
type AIClient struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

func NewAIClient(ctx context.Context, apiKey, textModel, imageModel string) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created")
	return &AIClient{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// GenerateContent produces marketing copy. contentType steers the
// register of the system instruction.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt, contentType string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("content.type", contentType),
		attribute.String("model", ai.textModel),
	))
	defer span.End()

	systemPrompt := fmt.Sprintf(
		"You are a professional cosmetic product copywriter. Generate %s content that is elegant, premium, and compelling.",
		contentType)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}

	result, err := ai.client.Models.GenerateContent(ctx, ai.textModel, genai.Text(prompt), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	responseText := result.Text()
	span.SetAttributes(attribute.Int("response.length", len(responseText)))
	span.SetStatus(codes.Ok, "Content generated")
	return responseText, nil
}

// GenerateImage produces one image and returns it base64 encoded.
func (ai *AIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateImage", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", ai.imageModel),
	))
	defer span.End()

	result, err := ai.client.Models.GenerateImages(ctx, ai.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate image")
		return "", fmt.Errorf("failed to generate image: %w", err)
	}
	if len(result.GeneratedImages) == 0 || result.GeneratedImages[0].Image == nil {
		span.SetStatus(codes.Error, "No image returned")
		return "", fmt.Errorf("no image was generated")
	}

	encoded := base64.StdEncoding.EncodeToString(result.GeneratedImages[0].Image.ImageBytes)
	span.SetStatus(codes.Ok, "Image generated")
	return encoded, nil
}
