package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

// E2ETestSuite exercises the complete admin content-management workflow
// against a simulated API server.
type E2ETestSuite struct {
	suite.Suite
	server     *httptest.Server
	client     *http.Client
	baseURL    string
	logger     *slog.Logger
	authToken  string
	adminEmail string
	userEmail  string
	products   map[string]map[string]any
	theme      map[string]any
}

// Credentials of the admin account created by scripts/seed.
const (
	seededAdminEmail    = "admin@ellavera.com"
	seededAdminPassword = "admin123"
)

func (suite *E2ETestSuite) SetupSuite() {
	suite.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	suite.products = make(map[string]map[string]any)
	suite.theme = map[string]any{
		"primary_color": "#06b6d4",
		"theme_mode":    "light",
		"heading_font":  "Playfair Display",
		"body_font":     "Inter",
	}

	// Run against a live deployment when ELLAVERA_API_BASE_URL is set,
	// otherwise against a mock server standing in for the real API.
	if base := os.Getenv("ELLAVERA_API_BASE_URL"); base != "" {
		suite.baseURL = strings.TrimRight(base, "/")
	} else {
		suite.server = httptest.NewServer(suite.createMockAPIServer())
		suite.baseURL = suite.server.URL
	}
	suite.client = &http.Client{Timeout: 30 * time.Second}
	suite.adminEmail = seededAdminEmail
	suite.userEmail = fmt.Sprintf("e2e+%d@example.com", time.Now().Unix())
}

func (suite *E2ETestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
}

// createMockAPIServer simulates the API's routes and response shapes.
func (suite *E2ETestSuite) createMockAPIServer() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)

		if req["email"] == "" || req["password"] == "" || req["full_name"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Email, password, and full name are required"})
			return
		}

		// Fresh registrants are never admins.
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "mock-jwt-" + uuid.NewString(),
			"token_type":   "bearer",
			"user": map[string]any{
				"id":        uuid.NewString(),
				"email":     req["email"],
				"full_name": req["full_name"],
				"is_admin":  false,
			},
		})
	})

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)

		if req["email"] != seededAdminEmail || req["password"] != seededAdminPassword {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
			return
		}

		suite.authToken = "mock-jwt-" + uuid.NewString()
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": suite.authToken,
			"token_type":   "bearer",
			"user": map[string]any{
				"id":       uuid.NewString(),
				"email":    seededAdminEmail,
				"is_admin": true,
			},
		})
	})

	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list := make([]map[string]any, 0, len(suite.products))
			for _, p := range suite.products {
				list = append(list, p)
			}
			json.NewEncoder(w).Encode(list)

		case http.MethodPost:
			if !suite.isAuthenticated(r) {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			var req types.CreateProductParams
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if req.Name == "" || req.CategoryID == "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "Name and category_id are required"})
				return
			}

			product := map[string]any{
				"id":          uuid.NewString(),
				"name":        req.Name,
				"slug":        strings.ToLower(strings.ReplaceAll(req.Name, " ", "-")),
				"category_id": req.CategoryID,
				"featured":    req.Featured,
				"images":      []string{},
				"documents":   []map[string]any{},
				"created_at":  time.Now().Format(time.RFC3339),
			}
			suite.products[product["id"].(string)] = product

			json.NewEncoder(w).Encode(product)
		}
	})

	mux.HandleFunc("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !suite.isAuthenticated(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		productID := strings.TrimPrefix(r.URL.Path, "/api/products/")
		if _, ok := suite.products[productID]; !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Product not found"})
			return
		}
		delete(suite.products, productID)
		json.NewEncoder(w).Encode(map[string]string{"message": "Product deleted successfully"})
	})

	mux.HandleFunc("/api/contact", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req types.CreateContactLeadParams
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Message == "" || !strings.Contains(req.Email, "@") {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "A valid email is required"})
			return
		}

		lead := map[string]any{
			"id":         uuid.NewString(),
			"name":       req.Name,
			"email":      req.Email,
			"message":    req.Message,
			"created_at": time.Now().Format(time.RFC3339),
		}
		json.NewEncoder(w).Encode(lead)
	})

	mux.HandleFunc("/api/theme", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(suite.theme)

		case http.MethodPut:
			if !suite.isAuthenticated(r) {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			var patch map[string]any
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			for k, v := range patch {
				suite.theme[k] = v
			}
			json.NewEncoder(w).Encode(suite.theme)
		}
	})

	return mux
}

func (suite *E2ETestSuite) isAuthenticated(r *http.Request) bool {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return false
	}
	return strings.TrimPrefix(authHeader, "Bearer ") == suite.authToken
}

func (suite *E2ETestSuite) makeRequest(method, path string, body any, authenticated bool) (*http.Response, error) {
	url := suite.baseURL + path

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if authenticated && suite.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+suite.authToken)
	}

	return suite.client.Do(req)
}

// TestAdminContentWorkflow covers register, login, product create/delete
// and the theme partial update.
func (suite *E2ETestSuite) TestAdminContentWorkflow() {
	t := suite.T()

	t.Log("Step 1: health check")
	resp, err := suite.client.Get(suite.baseURL + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	t.Log("Step 2: user registration")
	registerData := map[string]any{
		"email":     suite.userEmail,
		"password":  "SecurePassword123!",
		"full_name": "E2E Tester",
	}

	resp, err = suite.makeRequest("POST", "/api/auth/register", registerData, false)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "registration should succeed")

	var registerResponse map[string]any
	err = json.NewDecoder(resp.Body).Decode(&registerResponse)
	require.NoError(t, err)
	assert.NotEmpty(t, registerResponse["access_token"])
	assert.Equal(t, "bearer", registerResponse["token_type"])
	registeredUser, ok := registerResponse["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, registeredUser["is_admin"], "fresh registrants must not be admins")

	t.Log("Step 3: login as the seeded admin")
	loginData := map[string]any{
		"email":    suite.adminEmail,
		"password": seededAdminPassword,
	}

	resp, err = suite.makeRequest("POST", "/api/auth/login", loginData, false)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "login should succeed")

	var loginResponse map[string]any
	err = json.NewDecoder(resp.Body).Decode(&loginResponse)
	require.NoError(t, err)
	require.NotEmpty(t, loginResponse["access_token"])
	suite.authToken = loginResponse["access_token"].(string)

	t.Log("Step 4: product creation")
	productData := types.CreateProductParams{
		Name:       "Hydrating Face Serum",
		CategoryID: uuid.NewString(),
		Featured:   true,
	}

	resp, err = suite.makeRequest("POST", "/api/products", productData, true)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "product creation should succeed")

	var productResponse map[string]any
	err = json.NewDecoder(resp.Body).Decode(&productResponse)
	require.NoError(t, err)
	assert.Equal(t, "hydrating-face-serum", productResponse["slug"])
	productID := productResponse["id"].(string)

	t.Log("Step 5: public product listing")
	resp, err = suite.makeRequest("GET", "/api/products", nil, false)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []map[string]any
	err = json.NewDecoder(resp.Body).Decode(&products)
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	t.Log("Step 6: theme partial update keeps untouched fields")
	resp, err = suite.makeRequest("PUT", "/api/theme", map[string]any{"primary_color": "#ec4899"}, true)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var theme map[string]any
	err = json.NewDecoder(resp.Body).Decode(&theme)
	require.NoError(t, err)
	assert.Equal(t, "#ec4899", theme["primary_color"])
	assert.Equal(t, "Inter", theme["body_font"], "untouched fields survive a partial update")

	t.Log("Step 7: product deletion")
	resp, err = suite.makeRequest("DELETE", "/api/products/"+productID, nil, true)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestPublicContactWorkflow covers the unauthenticated contact form.
func (suite *E2ETestSuite) TestPublicContactWorkflow() {
	t := suite.T()

	t.Log("Step 1: valid submission")
	leadData := types.CreateContactLeadParams{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Interested in private-label skincare.",
	}

	resp, err := suite.makeRequest("POST", "/api/contact", leadData, false)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	t.Log("Step 2: invalid email is rejected")
	badLead := map[string]any{
		"name":    "Jane Doe",
		"email":   "not-an-email",
		"message": "hello",
	}

	resp, err = suite.makeRequest("POST", "/api/contact", badLead, false)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestWriteProtection verifies write endpoints reject unauthenticated calls.
func (suite *E2ETestSuite) TestWriteProtection() {
	t := suite.T()

	token := suite.authToken
	suite.authToken = ""
	defer func() { suite.authToken = token }()

	protected := []struct {
		method string
		path   string
	}{
		{"POST", "/api/products"},
		{"PUT", "/api/theme"},
	}

	for _, ep := range protected {
		resp, err := suite.makeRequest(ep.method, ep.path, map[string]any{}, false)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"should require authentication for "+ep.method+" "+ep.path)
	}
}

func TestE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}

	suite.Run(t, new(E2ETestSuite))
}
