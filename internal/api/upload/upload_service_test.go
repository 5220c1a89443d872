package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

func setupUploadServiceTest() *UploadServiceImpl {
	return NewUploadService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEncodeFile(t *testing.T) {
	ctx := context.Background()
	service := setupUploadServiceTest()

	t.Run("pdf classified as document", func(t *testing.T) {
		result, err := service.EncodeFile(ctx, "data-sheet.pdf", []byte("%PDF-1.7 fake"))
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "data-sheet.pdf", result.Filename)
		assert.Equal(t, "document", result.Type)
		assert.Equal(t, 13, result.Size)
		assert.True(t, strings.HasPrefix(result.DataURL, "data:application/pdf;base64,"))
	})

	t.Run("png classified as image", func(t *testing.T) {
		result, err := service.EncodeFile(ctx, "swatch.png", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "image", result.Type)
		assert.True(t, strings.HasPrefix(result.DataURL, "data:image/png;base64,"))
	})

	t.Run("unknown extension falls back to octet-stream", func(t *testing.T) {
		result, err := service.EncodeFile(ctx, "formula.xyz", []byte{0x01, 0x02})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.DataURL, "data:application/octet-stream;base64,"))
		assert.Equal(t, "document", result.Type)
	})

	t.Run("uppercase extension is recognized", func(t *testing.T) {
		result, err := service.EncodeFile(ctx, "CERTIFICATE.PDF", []byte("x"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.DataURL, "data:application/pdf;base64,"))
	})

	t.Run("oversized file rejected", func(t *testing.T) {
		_, err := service.EncodeFile(ctx, "big.pdf", bytes.Repeat([]byte{0}, MaxFileSize+1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrTooLarge))
	})
}

func TestEncodeImage(t *testing.T) {
	ctx := context.Background()
	service := setupUploadServiceTest()

	t.Run("png accepted", func(t *testing.T) {
		result, err := service.EncodeImage(ctx, "hero.png", []byte("fake png bytes"))
		require.NoError(t, err)
		assert.Equal(t, "image", result.Type)
		assert.True(t, strings.HasPrefix(result.DataURL, "data:image/png;base64,"))
	})

	t.Run("jpeg and jpg share a mime type", func(t *testing.T) {
		a, err := service.EncodeImage(ctx, "a.jpg", []byte("x"))
		require.NoError(t, err)
		b, err := service.EncodeImage(ctx, "b.jpeg", []byte("x"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(a.DataURL, "data:image/jpeg;base64,"))
		assert.True(t, strings.HasPrefix(b.DataURL, "data:image/jpeg;base64,"))
	})

	t.Run("pdf rejected on the image endpoint", func(t *testing.T) {
		_, err := service.EncodeImage(ctx, "sneaky.pdf", []byte("x"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrUnsupportedMedia))
	})

	t.Run("svg rejected on the image endpoint", func(t *testing.T) {
		_, err := service.EncodeImage(ctx, "logo.svg", []byte("<svg/>"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrUnsupportedMedia))
	})

	t.Run("oversized image rejected", func(t *testing.T) {
		_, err := service.EncodeImage(ctx, "big.png", bytes.Repeat([]byte{0}, MaxImageSize+1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrTooLarge))
	})
}
