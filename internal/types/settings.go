package types

import "time"

// ThemeSettings is the singleton look-and-feel document.
type ThemeSettings struct {
	PrimaryColor    string    `json:"primary_color" bson:"primary_color"`
	AccentColor     string    `json:"accent_color" bson:"accent_color"`
	BackgroundColor string    `json:"background_color" bson:"background_color"`
	TextColor       string    `json:"text_color" bson:"text_color"`
	HeadingFont     string    `json:"heading_font" bson:"heading_font"`
	BodyFont        string    `json:"body_font" bson:"body_font"`
	ThemeMode       string    `json:"theme_mode" bson:"theme_mode"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// UpdateThemeParams carries a partial theme update. Nil means "no change".
type UpdateThemeParams struct {
	PrimaryColor    *string `json:"primary_color,omitempty"`
	AccentColor     *string `json:"accent_color,omitempty"`
	BackgroundColor *string `json:"background_color,omitempty"`
	TextColor       *string `json:"text_color,omitempty"`
	HeadingFont     *string `json:"heading_font,omitempty"`
	BodyFont        *string `json:"body_font,omitempty"`
	ThemeMode       *string `json:"theme_mode,omitempty"`
}

// DefaultThemeSettings returns the document materialized on first read.
func DefaultThemeSettings(now time.Time) ThemeSettings {
	return ThemeSettings{
		PrimaryColor:    "#06b6d4",
		AccentColor:     "#0891b2",
		BackgroundColor: "#ffffff",
		TextColor:       "#0f172a",
		HeadingFont:     "Playfair Display",
		BodyFont:        "Inter",
		ThemeMode:       "light",
		UpdatedAt:       now,
	}
}

// SiteSettings is the singleton site-wide copy/contact document.
type SiteSettings struct {
	SiteName        string    `json:"site_name" bson:"site_name"`
	SiteTagline     string    `json:"site_tagline" bson:"site_tagline"`
	LogoURL         *string   `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	LogoText        string    `json:"logo_text" bson:"logo_text"`
	FooterText      string    `json:"footer_text" bson:"footer_text"`
	ContactEmail    string    `json:"contact_email" bson:"contact_email"`
	ContactPhone    string    `json:"contact_phone" bson:"contact_phone"`
	ContactAddress  string    `json:"contact_address" bson:"contact_address"`
	WhatsappNumber  string    `json:"whatsapp_number" bson:"whatsapp_number"`
	WhatsappMessage string    `json:"whatsapp_message" bson:"whatsapp_message"`
	GoogleMapsURL   string    `json:"google_maps_url" bson:"google_maps_url"`
	FacebookURL     string    `json:"facebook_url" bson:"facebook_url"`
	InstagramURL    string    `json:"instagram_url" bson:"instagram_url"`
	TwitterURL      string    `json:"twitter_url" bson:"twitter_url"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// UpdateSiteSettingsParams carries a partial settings update. Nil means "no change".
type UpdateSiteSettingsParams struct {
	SiteName        *string `json:"site_name,omitempty"`
	SiteTagline     *string `json:"site_tagline,omitempty"`
	LogoURL         *string `json:"logo_url,omitempty"`
	LogoText        *string `json:"logo_text,omitempty"`
	FooterText      *string `json:"footer_text,omitempty"`
	ContactEmail    *string `json:"contact_email,omitempty"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	ContactAddress  *string `json:"contact_address,omitempty"`
	WhatsappNumber  *string `json:"whatsapp_number,omitempty"`
	WhatsappMessage *string `json:"whatsapp_message,omitempty"`
	GoogleMapsURL   *string `json:"google_maps_url,omitempty"`
	FacebookURL     *string `json:"facebook_url,omitempty"`
	InstagramURL    *string `json:"instagram_url,omitempty"`
}

// DefaultSiteSettings returns the document materialized on first read.
func DefaultSiteSettings(now time.Time) SiteSettings {
	return SiteSettings{
		SiteName:        "Ellavera Beauty",
		SiteTagline:     "Premium Cosmetic Manufacturing",
		LogoText:        "Ellavera Beauty",
		FooterText:      "Premium cosmetic manufacturing solutions for your brand. We create beauty products that inspire confidence.",
		ContactEmail:    "info@ellavera.com",
		ContactPhone:    "+62 123 456 7890",
		ContactAddress:  "Jakarta, Indonesia",
		WhatsappNumber:  "6281234567890",
		WhatsappMessage: "Hello Ellavera Beauty! I'm interested in your cosmetic manufacturing services.",
		GoogleMapsURL:   "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d253840.65833061103!2d106.68942995!3d-6.229386599999999!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x2e69f3e945e34b9d%3A0x5371bf0fdad786a2!2sJakarta%2C%20Indonesia!5e0!3m2!1sen!2s!4v1620000000000!5m2!1sen!2s",
		FacebookURL:     "#",
		InstagramURL:    "#",
		TwitterURL:      "#",
		UpdatedAt:       now,
	}
}
