package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

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

var _ SettingsRepository = (*MongoSettingsRepo)(nil)

// SettingsRepository manages the two singleton configuration documents.
// Get never reports "not found": a miss materializes the hardcoded default.
type SettingsRepository interface {
	GetTheme(ctx context.Context) (*types.ThemeSettings, error)

	// UpdateTheme merges the non-nil fields into the stored document via
	// upsert, stamps updated_at, and returns the resulting full document.
	UpdateTheme(ctx context.Context, params types.UpdateThemeParams) (*types.ThemeSettings, error)

	GetSiteSettings(ctx context.Context) (*types.SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, params types.UpdateSiteSettingsParams) (*types.SiteSettings, error)
}

type MongoSettingsRepo struct {
	logger *slog.Logger
	theme  *mongo.Collection
	site   *mongo.Collection
}

func NewMongoSettingsRepo(db *mongo.Database, logger *slog.Logger) *MongoSettingsRepo {
	return &MongoSettingsRepo{
		logger: logger,
		theme:  db.Collection("theme_settings"),
		site:   db.Collection("site_settings"),
	}
}

// themeUpdateDocument builds the $set document for a partial theme update.
// Only non-nil fields make it in; omitted fields are never cleared.
func themeUpdateDocument(params types.UpdateThemeParams, now time.Time) bson.M {
	set := bson.M{}
	if params.PrimaryColor != nil {
		set["primary_color"] = *params.PrimaryColor
	}
	if params.AccentColor != nil {
		set["accent_color"] = *params.AccentColor
	}
	if params.BackgroundColor != nil {
		set["background_color"] = *params.BackgroundColor
	}
	if params.TextColor != nil {
		set["text_color"] = *params.TextColor
	}
	if params.HeadingFont != nil {
		set["heading_font"] = *params.HeadingFont
	}
	if params.BodyFont != nil {
		set["body_font"] = *params.BodyFont
	}
	if params.ThemeMode != nil {
		set["theme_mode"] = *params.ThemeMode
	}
	set["updated_at"] = now
	return set
}

// siteUpdateDocument is themeUpdateDocument for the site-settings singleton.
func siteUpdateDocument(params types.UpdateSiteSettingsParams, now time.Time) bson.M {
	set := bson.M{}
	if params.SiteName != nil {
		set["site_name"] = *params.SiteName
	}
	if params.SiteTagline != nil {
		set["site_tagline"] = *params.SiteTagline
	}
	if params.LogoURL != nil {
		set["logo_url"] = *params.LogoURL
	}
	if params.LogoText != nil {
		set["logo_text"] = *params.LogoText
	}
	if params.FooterText != nil {
		set["footer_text"] = *params.FooterText
	}
	if params.ContactEmail != nil {
		set["contact_email"] = *params.ContactEmail
	}
	if params.ContactPhone != nil {
		set["contact_phone"] = *params.ContactPhone
	}
	if params.ContactAddress != nil {
		set["contact_address"] = *params.ContactAddress
	}
	if params.WhatsappNumber != nil {
		set["whatsapp_number"] = *params.WhatsappNumber
	}
	if params.WhatsappMessage != nil {
		set["whatsapp_message"] = *params.WhatsappMessage
	}
	if params.GoogleMapsURL != nil {
		set["google_maps_url"] = *params.GoogleMapsURL
	}
	if params.FacebookURL != nil {
		set["facebook_url"] = *params.FacebookURL
	}
	if params.InstagramURL != nil {
		set["instagram_url"] = *params.InstagramURL
	}
	set["updated_at"] = now
	return set
}

func (r *MongoSettingsRepo) GetTheme(ctx context.Context) (*types.ThemeSettings, error) {
	ctx, span := otel.Tracer("SettingsRepo").Start(ctx, "GetTheme", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "theme_settings"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "GetTheme"))

	// Pre-fill with defaults so fields missing from a partial document
	// (created by an upsert before the first read) keep their default value.
	theme := types.DefaultThemeSettings(time.Now().UTC())
	err := r.theme.FindOne(ctx, bson.M{}).Decode(&theme)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			l.ErrorContext(ctx, "Failed to query theme settings", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "DB find failed")
			return nil, fmt.Errorf("database error fetching theme settings: %w", err)
		}

		// First read ever: persist the defaults so subsequent reads see the
		// identical document. A concurrent miss resolves last-write-wins.
		if _, err := r.theme.InsertOne(ctx, theme); err != nil {
			l.ErrorContext(ctx, "Failed to seed default theme settings", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "DB insert failed")
			return nil, fmt.Errorf("database error seeding theme settings: %w", err)
		}
		l.InfoContext(ctx, "Seeded default theme settings")
	}

	span.SetStatus(codes.Ok, "Theme settings fetched")
	return &theme, nil
}

func (r *MongoSettingsRepo) UpdateTheme(ctx context.Context, params types.UpdateThemeParams) (*types.ThemeSettings, error) {
	ctx, span := otel.Tracer("SettingsRepo").Start(ctx, "UpdateTheme", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "theme_settings"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "UpdateTheme"))

	set := themeUpdateDocument(params, time.Now().UTC())
	span.SetAttributes(attribute.Int("update.field_count", len(set)))

	_, err := r.theme.UpdateOne(ctx, bson.M{}, bson.M{"$set": set}, options.UpdateOne().SetUpsert(true))
	if err != nil {
		l.ErrorContext(ctx, "Failed to upsert theme settings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB upsert failed")
		return nil, fmt.Errorf("database error updating theme settings: %w", err)
	}

	theme := types.DefaultThemeSettings(time.Now().UTC())
	if err := r.theme.FindOne(ctx, bson.M{}).Decode(&theme); err != nil {
		l.ErrorContext(ctx, "Failed to re-read theme settings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error re-reading theme settings: %w", err)
	}

	l.InfoContext(ctx, "Theme settings updated")
	span.SetStatus(codes.Ok, "Theme settings updated")
	return &theme, nil
}

func (r *MongoSettingsRepo) GetSiteSettings(ctx context.Context) (*types.SiteSettings, error) {
	ctx, span := otel.Tracer("SettingsRepo").Start(ctx, "GetSiteSettings", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "site_settings"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "GetSiteSettings"))

	site := types.DefaultSiteSettings(time.Now().UTC())
	err := r.site.FindOne(ctx, bson.M{}).Decode(&site)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			l.ErrorContext(ctx, "Failed to query site settings", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "DB find failed")
			return nil, fmt.Errorf("database error fetching site settings: %w", err)
		}

		if _, err := r.site.InsertOne(ctx, site); err != nil {
			l.ErrorContext(ctx, "Failed to seed default site settings", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "DB insert failed")
			return nil, fmt.Errorf("database error seeding site settings: %w", err)
		}
		l.InfoContext(ctx, "Seeded default site settings")
	}

	span.SetStatus(codes.Ok, "Site settings fetched")
	return &site, nil
}

func (r *MongoSettingsRepo) UpdateSiteSettings(ctx context.Context, params types.UpdateSiteSettingsParams) (*types.SiteSettings, error) {
	ctx, span := otel.Tracer("SettingsRepo").Start(ctx, "UpdateSiteSettings", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "site_settings"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "UpdateSiteSettings"))

	set := siteUpdateDocument(params, time.Now().UTC())
	span.SetAttributes(attribute.Int("update.field_count", len(set)))

	_, err := r.site.UpdateOne(ctx, bson.M{}, bson.M{"$set": set}, options.UpdateOne().SetUpsert(true))
	if err != nil {
		l.ErrorContext(ctx, "Failed to upsert site settings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB upsert failed")
		return nil, fmt.Errorf("database error updating site settings: %w", err)
	}

	site := types.DefaultSiteSettings(time.Now().UTC())
	if err := r.site.FindOne(ctx, bson.M{}).Decode(&site); err != nil {
		l.ErrorContext(ctx, "Failed to re-read site settings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error re-reading site settings: %w", err)
	}

	l.InfoContext(ctx, "Site settings updated")
	span.SetStatus(codes.Ok, "Site settings updated")
	return &site, nil
}
