package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"photobook/internal/database"
	"photobook/internal/domain"
	"photobook/internal/middleware"
	"photobook/internal/modules/admin"
	"photobook/internal/modules/agreement"
	"photobook/internal/modules/auth"
	"photobook/internal/modules/post"
	"photobook/internal/modules/profile"
	jwtsvc "photobook/internal/pkg/jwt"
	"photobook/internal/pkg/upload"
	"photobook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Admin{},
		&domain.Profile{},
		&domain.Post{},
		&domain.Agreement{},
	))

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	agreementRepo := repository.NewAgreementRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	saver := upload.NewSaver(t.TempDir())

	authService := auth.NewService(userRepo, jwtService)
	authHandler := auth.NewHandler(authService, saver)

	adminService := admin.NewService(adminRepo, userRepo, profileRepo, jwtService)
	adminHandler := admin.NewHandler(adminService)

	profileService := profile.NewService(profileRepo, saver)
	profileHandler := profile.NewHandler(profileService)

	postService := post.NewService(postRepo)
	postHandler := post.NewHandler(postService, saver)

	agreementService := agreement.NewService(agreementRepo, userRepo)
	agreementHandler := agreement.NewHandler(agreementService)

	require.NoError(t, adminService.EnsureDefaultAdmin(t.Context(), adminEmail, adminPassword))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	authHandler.RegisterPublicRoutes(api)
	adminHandler.RegisterPublicRoutes(api)
	profileHandler.RegisterRoutes(api)
	postHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService, userRepo))
	{
		authHandler.RegisterProtectedRoutes(protected)
		postHandler.RegisterProtectedRoutes(protected)
		agreementHandler.RegisterRoutes(protected)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminAuth(jwtService, adminRepo))
	{
		adminHandler.RegisterRoutes(adminGroup)
	}

	return &E2ETestSuite{router: r, db: db}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// gifBytes is a minimal GIF header; enough for server-side content
// sniffing to accept the upload as image/gif.
var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")

func (s *E2ETestSuite) makeMultipartRequest(t *testing.T, method, path string, fields map[string]string, files map[string][]string, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := w.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write(gifBytes)
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	t.Helper()
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp),
		"Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	return &resp
}

// registerClient creates and logs in a client, returning its token and id.
func (s *E2ETestSuite) registerClient(t *testing.T, email string) (string, int64) {
	t.Helper()

	w := s.makeMultipartRequest(t, "POST", "/api/auth/register", map[string]string{
		"name":     "Test Client",
		"email":    email,
		"password": "secret123",
		"role":     "client",
	}, nil, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return s.login(t, email, "secret123")
}

// registerPhotographer registers a photographer (pending by default) and
// optionally approves them through the back office before logging in.
func (s *E2ETestSuite) registerPhotographer(t *testing.T, email string, approve bool) (string, int64) {
	t.Helper()

	w := s.makeMultipartRequest(t, "POST", "/api/auth/register", map[string]string{
		"name":           "Test Photographer",
		"email":          email,
		"password":       "secret123",
		"role":           "photographer",
		"location":       "Almaty",
		"bio":            "weddings and portraits",
		"pricing":        `{"hourly": 100, "packages": ["basic", "premium"]}`,
		"specialization": "wedding, portrait",
		"experience":     "5",
	}, map[string][]string{
		"portfolio": {"shot1.gif", "shot2.gif"},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	if !approve {
		return "", 0
	}

	s.approvePhotographer(t, email)
	return s.login(t, email, "secret123")
}

func (s *E2ETestSuite) approvePhotographer(t *testing.T, email string) {
	t.Helper()

	adminToken := s.adminLogin(t)

	w := s.makeRequest("GET", "/api/admin/profiles/pending", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := parseResponse(t, w)

	var profileID int64
	for _, raw := range resp.Data["profiles"].([]interface{}) {
		p := raw.(map[string]interface{})
		if p["owner_email"] == email {
			profileID = int64(p["id"].(float64))
		}
	}
	require.NotZero(t, profileID, "pending profile for %s not listed", email)

	w = s.makeRequest("POST", fmt.Sprintf("/api/admin/profiles/approve/%d", profileID), nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (s *E2ETestSuite) login(t *testing.T, email, password string) (string, int64) {
	t.Helper()

	w := s.makeRequest("POST", "/api/auth/login", map[string]interface{}{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := parseResponse(t, w)
	token := resp.Data["token"].(string)
	user := resp.Data["user"].(map[string]interface{})
	return token, int64(user["id"].(float64))
}

func (s *E2ETestSuite) adminLogin(t *testing.T) string {
	t.Helper()

	w := s.makeRequest("POST", "/api/auth/admin/login", map[string]interface{}{
		"email":    adminEmail,
		"password": adminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return parseResponse(t, w).Data["token"].(string)
}

func agreementFrom(t *testing.T, resp *TestResponse) map[string]interface{} {
	t.Helper()
	a, ok := resp.Data["agreement"].(map[string]interface{})
	require.True(t, ok, "response has no agreement payload")
	return a
}

// =============================================================================
// Flow 1: Client registration and authentication
// =============================================================================

func TestFlow1_ClientRegistrationAndAuth(t *testing.T) {
	suite := setupTestSuite(t)

	var token string

	t.Run("register client", func(t *testing.T) {
		w := suite.makeMultipartRequest(t, "POST", "/api/auth/register", map[string]string{
			"name":     "John Doe",
			"email":    "john@test.com",
			"password": "Password123",
			"role":     "client",
		}, nil, "")

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		assert.True(t, resp.Success)

		user := resp.Data["user"].(map[string]interface{})
		assert.Equal(t, "client", user["role"])
		assert.Equal(t, "approved", user["verification_status"], "clients need no approval")
	})

	t.Run("duplicate email conflict", func(t *testing.T) {
		w := suite.makeMultipartRequest(t, "POST", "/api/auth/register", map[string]string{
			"name":     "John Again",
			"email":    "john@test.com",
			"password": "Password123",
			"role":     "client",
		}, nil, "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "EMAIL_EXISTS", parseResponse(t, w).Error.Code)
	})

	t.Run("login", func(t *testing.T) {
		var id int64
		token, id = suite.login(t, "john@test.com", "Password123")
		assert.NotEmpty(t, token)
		assert.NotZero(t, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/auth/login", map[string]interface{}{
			"email":    "john@test.com",
			"password": "wrong",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /auth/me", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/auth/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		user := parseResponse(t, w).Data["user"].(map[string]interface{})
		assert.Equal(t, "john@test.com", user["email"])
	})

	t.Run("GET /auth/me without token", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/auth/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Flow 2: Photographer verification lifecycle
// =============================================================================

func TestFlow2_PhotographerVerification(t *testing.T) {
	suite := setupTestSuite(t)

	suite.registerPhotographer(t, "jane@test.com", false)

	t.Run("login blocked while pending", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/auth/login", map[string]interface{}{
			"email":    "jane@test.com",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "VERIFICATION_PENDING", parseResponse(t, w).Error.Code)
	})

	t.Run("pending queue requires admin token", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/admin/profiles/pending", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("approve unlocks login", func(t *testing.T) {
		suite.approvePhotographer(t, "jane@test.com")

		token, _ := suite.login(t, "jane@test.com", "secret123")
		assert.NotEmpty(t, token)
	})

	t.Run("approved profile is publicly listed", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/profiles", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		profiles := parseResponse(t, w).Data["profiles"].([]interface{})
		require.Len(t, profiles, 1)

		p := profiles[0].(map[string]interface{})
		assert.Equal(t, "jane@test.com", p["owner_email"])
		assert.Equal(t, "Almaty", p["location"])
		assert.Len(t, p["portfolio"].([]interface{}), 2)
	})

	t.Run("rejected photographer stays locked out", func(t *testing.T) {
		suite.registerPhotographer(t, "nope@test.com", false)

		adminToken := suite.adminLogin(t)
		w := suite.makeRequest("GET", "/api/admin/profiles/pending", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var profileID int64
		for _, raw := range parseResponse(t, w).Data["profiles"].([]interface{}) {
			p := raw.(map[string]interface{})
			if p["owner_email"] == "nope@test.com" {
				profileID = int64(p["id"].(float64))
			}
		}
		require.NotZero(t, profileID)

		w = suite.makeRequest("POST", fmt.Sprintf("/api/admin/profiles/reject/%d", profileID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("POST", "/api/auth/login", map[string]interface{}{
			"email":    "nope@test.com",
			"password": "secret123",
		}, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("approve unknown profile", func(t *testing.T) {
		adminToken := suite.adminLogin(t)
		w := suite.makeRequest("POST", "/api/admin/profiles/approve/9999", nil, adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// Flow 3: Posts
// =============================================================================

func TestFlow3_Posts(t *testing.T) {
	suite := setupTestSuite(t)

	photographerToken, photographerID := suite.registerPhotographer(t, "jane@test.com", true)
	clientToken, _ := suite.registerClient(t, "client@test.com")

	t.Run("photographer publishes a post", func(t *testing.T) {
		w := suite.makeMultipartRequest(t, "POST", "/api/posts", map[string]string{
			"title":       "Golden hour",
			"description": "shot at dusk",
		}, map[string][]string{"image": {"dusk.gif"}}, photographerToken)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		p := parseResponse(t, w).Data["post"].(map[string]interface{})
		assert.Equal(t, "Golden hour", p["title"])
		assert.NotEmpty(t, p["image_path"])
	})

	t.Run("client cannot publish", func(t *testing.T) {
		w := suite.makeMultipartRequest(t, "POST", "/api/posts", map[string]string{
			"title": "nope",
		}, map[string][]string{"image": {"x.gif"}}, clientToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing image", func(t *testing.T) {
		w := suite.makeMultipartRequest(t, "POST", "/api/posts", map[string]string{
			"title": "no file",
		}, nil, photographerToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("public listing", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/posts/%d", photographerID), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		posts := parseResponse(t, w).Data["posts"].([]interface{})
		require.Len(t, posts, 1)
	})

	t.Run("listing for unknown photographer is empty", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/posts/9999", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, parseResponse(t, w).Data["posts"])
	})
}

// =============================================================================
// Flow 4: Agreement lifecycle
// =============================================================================

func TestFlow4_AgreementLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	photographerToken, photographerID := suite.registerPhotographer(t, "jane@test.com", true)
	clientToken, _ := suite.registerClient(t, "client@test.com")
	strangerToken, _ := suite.registerClient(t, "stranger@test.com")

	var agreementID int64

	t.Run("client sends agreement", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/agreements", map[string]interface{}{
			"photographer_id": photographerID,
			"note":            "wedding on the 14th",
		}, clientToken)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		a := agreementFrom(t, parseResponse(t, w))
		assert.Equal(t, "pending", a["status"])
		agreementID = int64(a["id"].(float64))
	})

	t.Run("photographer cannot send agreements", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/agreements", map[string]interface{}{
			"photographer_id": photographerID,
		}, photographerToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("photographer sees it in the inbox", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/agreements/photographer", nil, photographerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		agreements := parseResponse(t, w).Data["agreements"].([]interface{})
		require.Len(t, agreements, 1)
		a := agreements[0].(map[string]interface{})
		assert.Equal(t, "client@test.com", a["client_email"])
		assert.Equal(t, "wedding on the 14th", a["note"])
	})

	t.Run("client cannot accept", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/accept", agreementID), map[string]interface{}{
			"contact_details": "hijack",
		}, clientToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("photographer accepts with contact details", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/accept", agreementID), map[string]interface{}{
			"contact_details": "+7 700 000 00 00",
		}, photographerToken)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		a := agreementFrom(t, parseResponse(t, w))
		assert.Equal(t, "accepted", a["status"])
		assert.Equal(t, "+7 700 000 00 00", a["contact_details"])
	})

	t.Run("second accept conflicts", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/accept", agreementID), map[string]interface{}{
			"contact_details": "again",
		}, photographerToken)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("reject after accept conflicts", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/reject", agreementID), nil, photographerToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("either party updates the contract", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/contract", agreementID), map[string]interface{}{
			"contract_done":     true,
			"contract_duration": "4 hours",
		}, clientToken)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		a := agreementFrom(t, parseResponse(t, w))
		assert.Equal(t, true, a["contract_done"])
		assert.Equal(t, "4 hours", a["contract_duration"])
	})

	t.Run("stranger cannot touch the agreement", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/payment", agreementID), map[string]interface{}{
			"payment_done": true,
		}, strangerToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("payment flag", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/payment", agreementID), map[string]interface{}{
			"payment_done": true,
		}, photographerToken)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, true, agreementFrom(t, parseResponse(t, w))["payment_done"])
	})

	t.Run("only the client reviews", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/review", agreementID), map[string]interface{}{
			"review": "self praise",
		}, photographerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/review", agreementID), map[string]interface{}{
			"review": "Fantastic shots!",
		}, clientToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Fantastic shots!", agreementFrom(t, parseResponse(t, w))["review"])
	})

	t.Run("client listing shows full state", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/agreements/client", nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		agreements := parseResponse(t, w).Data["agreements"].([]interface{})
		require.Len(t, agreements, 1)
		a := agreements[0].(map[string]interface{})
		assert.Equal(t, "accepted", a["status"])
		assert.Equal(t, "jane@test.com", a["photographer_email"])
		assert.Equal(t, "Fantastic shots!", a["review"])
	})

	t.Run("unknown agreement id", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/agreements/9999/reject", nil, photographerToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFlow5_AgreementRejection(t *testing.T) {
	suite := setupTestSuite(t)

	photographerToken, photographerID := suite.registerPhotographer(t, "jane@test.com", true)
	clientToken, _ := suite.registerClient(t, "client@test.com")

	w := suite.makeRequest("POST", "/api/agreements", map[string]interface{}{
		"photographer_id": photographerID,
		"note":            "short notice",
	}, clientToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	agreementID := int64(agreementFrom(t, parseResponse(t, w))["id"].(float64))

	t.Run("photographer rejects", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/reject", agreementID), nil, photographerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "rejected", agreementFrom(t, parseResponse(t, w))["status"])
	})

	t.Run("rejected agreements take no contract updates", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/agreements/%d/contract", agreementID), map[string]interface{}{
			"contract_done": true,
		}, clientToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejected agreements still appear in listings", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/agreements/client", nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)

		agreements := parseResponse(t, w).Data["agreements"].([]interface{})
		require.Len(t, agreements, 1)
		assert.Equal(t, "rejected", agreements[0].(map[string]interface{})["status"])
	})

	t.Run("agreement to a pending photographer is refused", func(t *testing.T) {
		suite.registerPhotographer(t, "pending@test.com", false)

		var pendingID int64
		require.NoError(t, suite.db.
			Model(&domain.User{}).
			Select("id").
			Where("email = ?", "pending@test.com").
			Scan(&pendingID).Error)

		w := suite.makeRequest("POST", "/api/agreements", map[string]interface{}{
			"photographer_id": pendingID,
		}, clientToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
