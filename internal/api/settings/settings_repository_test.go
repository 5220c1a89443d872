package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

func strPtr(s string) *string { return &s }

func TestThemeUpdateDocument(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("only supplied fields enter the set document", func(t *testing.T) {
		set := themeUpdateDocument(types.UpdateThemeParams{
			PrimaryColor: strPtr("#ec4899"),
		}, now)

		require.Len(t, set, 2)
		assert.Equal(t, "#ec4899", set["primary_color"])
		assert.Equal(t, now, set["updated_at"])
		assert.NotContains(t, set, "body_font")
		assert.NotContains(t, set, "theme_mode")
	})

	t.Run("empty params only touch updated_at", func(t *testing.T) {
		set := themeUpdateDocument(types.UpdateThemeParams{}, now)

		require.Len(t, set, 1)
		assert.Equal(t, now, set["updated_at"])
	})

	t.Run("every supplied field is set", func(t *testing.T) {
		set := themeUpdateDocument(types.UpdateThemeParams{
			PrimaryColor:    strPtr("#111111"),
			AccentColor:     strPtr("#222222"),
			BackgroundColor: strPtr("#333333"),
			TextColor:       strPtr("#444444"),
			HeadingFont:     strPtr("Lora"),
			BodyFont:        strPtr("Roboto"),
			ThemeMode:       strPtr("dark"),
		}, now)

		assert.Len(t, set, 8)
		assert.Equal(t, "dark", set["theme_mode"])
	})
}

func TestSiteUpdateDocument(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("only supplied fields enter the set document", func(t *testing.T) {
		set := siteUpdateDocument(types.UpdateSiteSettingsParams{
			SiteTagline: strPtr("Beauty, manufactured"),
		}, now)

		require.Len(t, set, 2)
		assert.Equal(t, "Beauty, manufactured", set["site_tagline"])
		assert.Equal(t, now, set["updated_at"])
		assert.NotContains(t, set, "site_name")
		assert.NotContains(t, set, "footer_text")
	})

	t.Run("empty params only touch updated_at", func(t *testing.T) {
		set := siteUpdateDocument(types.UpdateSiteSettingsParams{}, now)

		require.Len(t, set, 1)
	})
}

// The read path pre-fills the destination struct with defaults before
// decoding, so a stored document missing some fields (created by an upsert
// before any read) still comes back complete. These tests pin the
// decode-over-defaults behavior the repository relies on.
func TestDecodePartialThemeOverDefaults(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	stored, err := bson.Marshal(bson.M{"primary_color": "#ec4899"})
	require.NoError(t, err)

	theme := types.DefaultThemeSettings(now)
	require.NoError(t, bson.Unmarshal(stored, &theme))

	assert.Equal(t, "#ec4899", theme.PrimaryColor, "stored field overrides the default")
	assert.Equal(t, "Inter", theme.BodyFont, "absent fields keep their default")
	assert.Equal(t, "light", theme.ThemeMode)
	assert.Equal(t, "#0891b2", theme.AccentColor)
}

func TestDecodePartialSiteSettingsOverDefaults(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	stored, err := bson.Marshal(bson.M{"site_tagline": "Beauty, manufactured"})
	require.NoError(t, err)

	site := types.DefaultSiteSettings(now)
	require.NoError(t, bson.Unmarshal(stored, &site))

	assert.Equal(t, "Beauty, manufactured", site.SiteTagline)
	assert.Equal(t, "Ellavera Beauty", site.SiteName, "absent fields keep their default")
	assert.Equal(t, "info@ellavera.com", site.ContactEmail)
	assert.NotEmpty(t, site.FooterText)
}
