package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api/article"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/auth"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/category"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/client"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/contact"
	generativeAI "github.com/h1zik/ELLAVERABEAUTY/internal/api/generative_ai"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/pages"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/product"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/review"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/settings"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api/upload"
)

// Config contains every handler plus the auth middleware the router
// needs. Server-wide middleware (requestID, logger, recoverer) is
// applied before mounting this router in main.go.
type Config struct {
	AuthHandler     *auth.AuthHandler
	CategoryHandler *category.CategoryHandler
	ProductHandler  *product.ProductHandler
	ArticleHandler  *article.ArticleHandler
	ClientHandler   *client.ClientHandler
	ReviewHandler   *review.ReviewHandler
	ContactHandler  *contact.ContactHandler
	PagesHandler    *pages.PageSectionHandler
	SettingsHandler *settings.SettingsHandler
	UploadHandler   *upload.UploadHandler
	AIHandler       *generativeAI.AIHandler

	Authenticate func(http.Handler) http.Handler
	RequireAdmin func(http.Handler) http.Handler

	AllowedOrigins []string
}

// SetupRouter wires the public catalogue routes and the admin-gated
// write routes under /api.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api", func(r chi.Router) {

		// Public routes
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", cfg.AuthHandler.Register)
			r.Post("/auth/login", cfg.AuthHandler.Login)

			r.Get("/categories", cfg.CategoryHandler.List)
			r.Get("/products", cfg.ProductHandler.List)
			r.Get("/products/{productID}", cfg.ProductHandler.Get)
			r.Get("/articles", cfg.ArticleHandler.List)
			r.Get("/articles/{articleID}", cfg.ArticleHandler.Get)
			r.Get("/clients", cfg.ClientHandler.List)
			r.Get("/reviews", cfg.ReviewHandler.List)
			r.Get("/pages/{pageName}/sections", cfg.PagesHandler.ListByPage)
			r.Get("/theme", cfg.SettingsHandler.GetTheme)
			r.Get("/settings", cfg.SettingsHandler.GetSiteSettings)

			r.Post("/contact", cfg.ContactHandler.Create)
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(cfg.Authenticate)
			r.Get("/auth/me", cfg.AuthHandler.Me)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(cfg.Authenticate)
			r.Use(cfg.RequireAdmin)

			r.Post("/categories", cfg.CategoryHandler.Create)
			r.Delete("/categories/{categoryID}", cfg.CategoryHandler.Delete)

			r.Post("/products", cfg.ProductHandler.Create)
			r.Put("/products/{productID}", cfg.ProductHandler.Update)
			r.Delete("/products/{productID}", cfg.ProductHandler.Delete)
			r.Post("/products/{productID}/images", cfg.ProductHandler.AddImage)
			r.Post("/products/{productID}/documents", cfg.ProductHandler.AddDocument)
			r.Delete("/products/{productID}/documents/{documentID}", cfg.ProductHandler.RemoveDocument)

			r.Post("/articles", cfg.ArticleHandler.Create)
			r.Put("/articles/{articleID}", cfg.ArticleHandler.Update)
			r.Delete("/articles/{articleID}", cfg.ArticleHandler.Delete)

			r.Post("/clients", cfg.ClientHandler.Create)
			r.Delete("/clients/{clientID}", cfg.ClientHandler.Delete)

			r.Post("/reviews", cfg.ReviewHandler.Create)
			r.Put("/reviews/{reviewID}", cfg.ReviewHandler.Update)
			r.Delete("/reviews/{reviewID}", cfg.ReviewHandler.Delete)

			r.Get("/contact/leads", cfg.ContactHandler.List)

			r.Post("/pages/sections", cfg.PagesHandler.Create)
			r.Put("/pages/sections/{sectionID}", cfg.PagesHandler.Update)
			r.Delete("/pages/sections/{sectionID}", cfg.PagesHandler.Delete)

			r.Put("/theme", cfg.SettingsHandler.UpdateTheme)
			r.Put("/settings", cfg.SettingsHandler.UpdateSiteSettings)

			r.Post("/upload-file", cfg.UploadHandler.UploadFile)
			r.Post("/upload-image", cfg.UploadHandler.UploadImage)

			r.Post("/ai/generate-content", cfg.AIHandler.GenerateContent)
			r.Post("/ai/generate-image", cfg.AIHandler.GenerateImage)
		})
	})

	return r
}
