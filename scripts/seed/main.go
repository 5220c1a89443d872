// Command seed loads a fresh database with the demo catalogue, the
// default admin account, and the CMS page content.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	database "github.com/h1zik/ELLAVERABEAUTY/app/db"
	"github.com/h1zik/ELLAVERABEAUTY/config"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	client, err := database.Init(dbConfig, logger)
	if err != nil {
		logger.Error("Failed to initialize MongoDB client", slog.Any("error", err))
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	if !database.WaitForDB(ctx, client, logger) {
		logger.Error("Database not ready, exiting.")
		os.Exit(1)
	}

	db := client.Database(dbConfig.DatabaseName)

	if err := seedAdminUser(ctx, db, logger); err != nil {
		logger.Error("Seeding admin user failed", slog.Any("error", err))
		os.Exit(1)
	}
	categoryIDs, err := seedCategories(ctx, db, logger)
	if err != nil {
		logger.Error("Seeding categories failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := seedProducts(ctx, db, logger, categoryIDs); err != nil {
		logger.Error("Seeding products failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := seedArticles(ctx, db, logger); err != nil {
		logger.Error("Seeding articles failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := seedClients(ctx, db, logger); err != nil {
		logger.Error("Seeding clients failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := seedReviews(ctx, db, logger); err != nil {
		logger.Error("Seeding reviews failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := seedPageSections(ctx, db, logger); err != nil {
		logger.Error("Seeding page sections failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := seedSettings(ctx, db, logger); err != nil {
		logger.Error("Seeding settings failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Database seeding completed")
	logger.Info("Admin login", slog.String("email", "admin@ellavera.com"), slog.String("password", "admin123"))
}

// isEmpty reports whether a collection holds no documents. Seeding
// never overwrites data an operator already has.
func isEmpty(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	count, err := db.Collection(name).CountDocuments(ctx, map[string]any{})
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedAdminUser(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	empty, err := isEmpty(ctx, db, "users")
	if err != nil {
		return err
	}
	if !empty {
		logger.Info("Users collection not empty, skipping")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := types.User{
		ID:        uuid.NewString(),
		Email:     "admin@ellavera.com",
		FullName:  "Admin User",
		Password:  string(hashed),
		IsAdmin:   true,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := db.Collection("users").InsertOne(ctx, admin); err != nil {
		return err
	}

	logger.Info("Admin user created", slog.String("email", admin.Email))
	return nil
}

func seedCategories(ctx context.Context, db *mongo.Database, logger *slog.Logger) (map[string]string, error) {
	ids := map[string]string{}
	categories := []struct {
		name, slug, description string
	}{
		{"Skincare", "skincare", "Premium skincare products"},
		{"Body Care", "body-care", "Luxurious body care solutions"},
		{"Hair Care", "hair-care", "Professional hair care products"},
		{"Fragrance", "fragrance", "Signature fragrances"},
	}

	empty, err := isEmpty(ctx, db, "categories")
	if err != nil {
		return nil, err
	}
	if !empty {
		logger.Info("Categories collection not empty, skipping")
		return ids, nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(categories))
	for _, c := range categories {
		desc := c.description
		category := types.ProductCategory{
			ID:          uuid.NewString(),
			Name:        c.name,
			Slug:        c.slug,
			Description: &desc,
			CreatedAt:   now,
		}
		ids[c.slug] = category.ID
		docs = append(docs, category)
	}
	if _, err := db.Collection("categories").InsertMany(ctx, docs); err != nil {
		return nil, err
	}

	logger.Info("Categories created", slog.Int("count", len(docs)))
	return ids, nil
}

func strPtr(s string) *string { return &s }

func seedProducts(ctx context.Context, db *mongo.Database, logger *slog.Logger, categoryIDs map[string]string) error {
	empty, err := isEmpty(ctx, db, "products")
	if err != nil {
		return err
	}
	if !empty || len(categoryIDs) == 0 {
		logger.Info("Products collection not empty or no fresh categories, skipping")
		return nil
	}

	now := time.Now().UTC()
	products := []types.Product{
		{
			ID:               uuid.NewString(),
			Name:             "Hydrating Face Serum",
			Slug:             "hydrating-face-serum",
			CategoryID:       categoryIDs["skincare"],
			Description:      "A luxurious, lightweight serum that deeply hydrates and revitalizes your skin. Formulated with premium ingredients for a radiant complexion.",
			Benefits:         strPtr("Deeply hydrates, reduces fine lines, improves skin texture, and provides a natural glow. Suitable for all skin types."),
			KeyIngredients:   strPtr("Hyaluronic Acid, Vitamin C, Niacinamide, Peptides, Natural botanical extracts"),
			PackagingOptions: strPtr("Available in 30ml, 50ml, and 100ml bottles with premium glass packaging"),
			Images:           []string{"https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=800"},
			Documents:        []types.ProductDocument{},
			Featured:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			Name:             "Nourishing Body Lotion",
			Slug:             "nourishing-body-lotion",
			CategoryID:       categoryIDs["body-care"],
			Description:      "Rich, creamy body lotion that provides long-lasting moisture and leaves your skin feeling silky smooth.",
			Benefits:         strPtr("24-hour hydration, fast-absorbing, non-greasy formula, enriched with natural oils"),
			KeyIngredients:   strPtr("Shea Butter, Coconut Oil, Vitamin E, Aloe Vera, Essential Oils"),
			PackagingOptions: strPtr("200ml pump bottle, 400ml tube, 1L refill pouch"),
			Images:           []string{"https://images.unsplash.com/photo-1556228578-0d85b1a4d571?w=800"},
			Documents:        []types.ProductDocument{},
			Featured:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			Name:             "Revitalizing Shampoo",
			Slug:             "revitalizing-shampoo",
			CategoryID:       categoryIDs["hair-care"],
			Description:      "Professional-grade shampoo that cleanses, strengthens, and adds shine to your hair.",
			Benefits:         strPtr("Gentle cleansing, strengthens hair, adds volume, suitable for daily use"),
			KeyIngredients:   strPtr("Keratin, Argan Oil, Biotin, Panthenol, Natural plant extracts"),
			PackagingOptions: strPtr("250ml, 500ml, 1L bottles with pump or flip-top cap"),
			Images:           []string{"https://images.unsplash.com/photo-1527799820374-dcf8d9d4a388?w=800"},
			Documents:        []types.ProductDocument{},
			Featured:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}

	docs := make([]any, len(products))
	for i, p := range products {
		docs[i] = p
	}
	if _, err := db.Collection("products").InsertMany(ctx, docs); err != nil {
		return err
	}

	logger.Info("Products created", slog.Int("count", len(docs)))
	return nil
}

func seedArticles(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	empty, err := isEmpty(ctx, db, "articles")
	if err != nil {
		return err
	}
	if !empty {
		logger.Info("Articles collection not empty, skipping")
		return nil
	}

	now := time.Now().UTC()
	article := types.Article{
		ID:              uuid.NewString(),
		Title:           "The Future of Clean Beauty: Trends in 2025",
		Slug:            "future-of-clean-beauty-2025",
		Content:         "The beauty industry is experiencing a transformative shift towards clean, sustainable, and transparent formulations. As consumers become more conscious of what they put on their skin, brands are responding with innovative solutions that prioritize both efficacy and environmental responsibility.\n\nKey trends shaping the industry include:\n\n1. Biotechnology in Beauty: Lab-grown ingredients that are more sustainable and effective than traditional sources.\n\n2. Waterless Formulations: Concentrated products that reduce water waste and packaging needs.\n\n3. Microbiome-Friendly Products: Formulations that support the skin's natural ecosystem.\n\n4. Zero-Waste Packaging: Refillable, recyclable, and biodegradable packaging solutions.\n\n5. Personalized Skincare: AI-powered formulations tailored to individual skin needs.\n\nAt Ellavera Beauty, we're committed to staying ahead of these trends while maintaining our high standards for quality and safety. We work closely with brands to develop products that meet the demands of modern consumers while respecting our planet.",
		Excerpt:         "Discover the key trends shaping the clean beauty industry in 2025 and how they're transforming cosmetic manufacturing.",
		CoverImage:      strPtr("https://images.unsplash.com/photo-1596755389378-c31d21fd1273?w=1200"),
		Category:        "Industry Trends",
		MetaTitle:       strPtr("Future of Clean Beauty 2025 | Ellavera Beauty"),
		MetaDescription: strPtr("Explore the latest trends in clean beauty manufacturing and sustainable cosmetics for 2025."),
		ReadTime:        5,
		Published:       true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := db.Collection("articles").InsertOne(ctx, article); err != nil {
		return err
	}

	logger.Info("Articles created", slog.Int("count", 1))
	return nil
}

func seedClients(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	empty, err := isEmpty(ctx, db, "clients")
	if err != nil {
		return err
	}
	if !empty {
		logger.Info("Clients collection not empty, skipping")
		return nil
	}

	now := time.Now().UTC()
	clients := []types.Client{
		{ID: uuid.NewString(), Name: "Luminara Beauty", LogoURL: "https://via.placeholder.com/200x80/06b6d4/ffffff?text=Luminara", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Serene Skin Co", LogoURL: "https://via.placeholder.com/200x80/0891b2/ffffff?text=Serene+Skin", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Pure Essence", LogoURL: "https://via.placeholder.com/200x80/06b6d4/ffffff?text=Pure+Essence", CreatedAt: now},
	}

	docs := make([]any, len(clients))
	for i, c := range clients {
		docs[i] = c
	}
	if _, err := db.Collection("clients").InsertMany(ctx, docs); err != nil {
		return err
	}

	logger.Info("Clients created", slog.Int("count", len(docs)))
	return nil
}

func seedReviews(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	empty, err := isEmpty(ctx, db, "reviews")
	if err != nil {
		return err
	}
	if !empty {
		logger.Info("Reviews collection not empty, skipping")
		return nil
	}

	now := time.Now().UTC()
	reviews := []types.Review{
		{
			ID:           uuid.NewString(),
			CustomerName: "Luminara Beauty",
			ReviewText:   "Ellavera Beauty transformed our product line. Their expertise in formulation and commitment to quality exceeded our expectations.",
			Rating:       5,
			Position:     strPtr("CEO"),
			Company:      strPtr("Luminara Beauty"),
			CreatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			CustomerName: "Serene Skin Co",
			ReviewText:   "Professional, reliable, and innovative. Working with Ellavera has been a game-changer for our brand.",
			Rating:       5,
			Position:     strPtr("Founder"),
			Company:      strPtr("Serene Skin Co"),
			CreatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			CustomerName: "Pure Essence",
			ReviewText:   "Their attention to detail and customer service is unmatched. Highly recommended!",
			Rating:       5,
			Position:     strPtr("Brand Manager"),
			Company:      strPtr("Pure Essence"),
			CreatedAt:    now,
		},
	}

	docs := make([]any, len(reviews))
	for i, r := range reviews {
		docs[i] = r
	}
	if _, err := db.Collection("reviews").InsertMany(ctx, docs); err != nil {
		return err
	}

	logger.Info("Reviews created", slog.Int("count", len(docs)))
	return nil
}

func seedPageSections(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	empty, err := isEmpty(ctx, db, "page_sections")
	if err != nil {
		return err
	}
	if !empty {
		logger.Info("Page sections collection not empty, skipping")
		return nil
	}

	now := time.Now().UTC()
	sections := []types.PageSection{
		{
			ID:          uuid.NewString(),
			PageName:    "home",
			SectionName: "Hero Section",
			SectionType: "hero",
			Order:       1,
			Visible:     true,
			Content: map[string]any{
				"badge_text":         "Premium Cosmetic Manufacturing",
				"title":              "Transform Your Beauty Brand with",
				"title_highlight":    "Ellavera Beauty",
				"description":        "We manufacture premium cosmetic products tailored to your brand vision. From formulation to packaging, we bring your beauty products to life.",
				"cta_primary_text":   "Explore Products",
				"cta_primary_link":   "/products",
				"cta_secondary_text": "Get a Quote",
				"cta_secondary_link": "/contact",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			PageName:    "home",
			SectionName: "Why Choose Us",
			SectionType: "features",
			Order:       2,
			Visible:     true,
			Content: map[string]any{
				"heading":    "Why Choose Ellavera Beauty",
				"subheading": "We combine expertise, quality, and innovation to create exceptional cosmetic products",
				"features": []map[string]any{
					{"title": "Certified Quality", "description": "BPOM & Halal certified manufacturing with international quality standards", "icon": "CheckCircle"},
					{"title": "Custom Formulations", "description": "Tailored formulas designed specifically for your brand and target market", "icon": "Sparkles"},
					{"title": "End-to-End Service", "description": "Complete support from formulation to packaging and distribution", "icon": "Star"},
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			PageName:    "home",
			SectionName: "Services",
			SectionType: "services",
			Order:       3,
			Visible:     true,
			Content: map[string]any{
				"heading":    "Our Cosmetic Manufacturing Services",
				"subheading": "Comprehensive solutions for all your cosmetic manufacturing needs",
				"services": []map[string]any{
					{"name": "Skincare", "description": "Premium skincare products manufactured to perfection"},
					{"name": "Body Care", "description": "Luxurious body care lines for discerning brands"},
					{"name": "Hair Care", "description": "Professional hair care products that deliver results"},
					{"name": "Fragrance", "description": "Signature scents crafted by master perfumers"},
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			PageName:    "about",
			SectionName: "Our Story",
			SectionType: "story",
			Order:       1,
			Visible:     true,
			Content: map[string]any{
				"heading":     "Our Story",
				"description": "Ellavera Beauty was founded with a single mission: to help beauty brands bring exceptional products to market. From our manufacturing facility in Jakarta, we partner with brands across the region.",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			PageName:    "contact",
			SectionName: "Contact Hero",
			SectionType: "hero",
			Order:       1,
			Visible:     true,
			Content: map[string]any{
				"heading":     "Get in Touch",
				"description": "Ready to bring your beauty brand to life? Tell us about your project and our team will reach out within one business day.",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	docs := make([]any, len(sections))
	for i, s := range sections {
		docs[i] = s
	}
	if _, err := db.Collection("page_sections").InsertMany(ctx, docs); err != nil {
		return err
	}

	logger.Info("Page sections created", slog.Int("count", len(docs)))
	return nil
}

func seedSettings(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	now := time.Now().UTC()

	empty, err := isEmpty(ctx, db, "theme_settings")
	if err != nil {
		return err
	}
	if empty {
		if _, err := db.Collection("theme_settings").InsertOne(ctx, types.DefaultThemeSettings(now)); err != nil {
			return err
		}
		logger.Info("Theme settings configured")
	} else {
		logger.Info("Theme settings already present, skipping")
	}

	empty, err = isEmpty(ctx, db, "site_settings")
	if err != nil {
		return err
	}
	if empty {
		if _, err := db.Collection("site_settings").InsertOne(ctx, types.DefaultSiteSettings(now)); err != nil {
			return err
		}
		logger.Info("Site settings configured")
	} else {
		logger.Info("Site settings already present, skipping")
	}

	return nil
}
