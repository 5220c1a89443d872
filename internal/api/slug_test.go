package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Skincare", "skincare"},
		{"two words", "Hair Care", "hair-care"},
		{"already lowercase", "fragrance", "fragrance"},
		{"multiple spaces become multiple hyphens", "a  b", "a--b"},
		{"empty", "", ""},
		{"mixed case sentence", "The Future of Clean Beauty", "the-future-of-clean-beauty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
