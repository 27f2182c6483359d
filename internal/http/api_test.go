package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"admin-dashboard/internal/config"
	"admin-dashboard/internal/repository/sqlite"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.Auth.BcryptCost = 4
	cfg.Auth.GeneratedPasswordLength = 12
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.RateLimit.WindowMinutes = 15
	cfg.RateLimit.MaxRequests = 1000
	cfg.Pagination.DefaultLimit = 10
	cfg.Pagination.MaxLimit = 100
	cfg.Upload.MaxFileSize = 5 << 20
	cfg.Admin.Username = "admin"
	cfg.Admin.Email = "admin@company.com"
	cfg.Admin.Password = "Admin@123"
	return cfg
}

func newTestServer(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	return newTestServerWithStorage(t, cfg, nil)
}

func newTestServerWithStorage(t *testing.T, cfg config.Config, store storage.Service) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	learningRepo := sqlite.NewLearningResourceRepository(db)
	toolRepo := sqlite.NewToolResourceRepository(db)
	internRepo := sqlite.NewInternRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	for _, initFn := range []func(context.Context) error{
		userRepo.Init, learningRepo.Init, toolRepo.Init, internRepo.Init, projectRepo.Init,
	} {
		require.NoError(t, initFn(ctx))
	}

	users := service.NewUserService(userRepo, cfg.Auth.BcryptCost, cfg.Auth.GeneratedPasswordLength)
	require.NoError(t, users.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password))

	tokens := service.NewTokenService([]byte("test-secret"), time.Hour)

	handler := NewHandler(
		cfg,
		users,
		service.NewLearningResourceService(learningRepo),
		service.NewToolResourceService(toolRepo),
		service.NewInternService(internRepo),
		service.NewProjectService(projectRepo),
		tokens,
		store,
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func registerAndLogin(t *testing.T, router *gin.Engine, username, email string) (string, string) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "Secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user := body["user"].(map[string]any)
	return token, user["id"].(string)
}

func loginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@company.com",
		"password": "Admin@123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody(t, rec)["token"].(string)
}

func TestHealth(t *testing.T) {
	router := newTestServer(t, testConfig())

	rec := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	require.NotEmpty(t, body["timestamp"])
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := newTestServer(t, testConfig())

	token, _ := registerAndLogin(t, router, "alice", "alice@example.com")

	// Duplicate registration conflicts.
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice",
		"email":    "alice2@example.com",
		"password": "Secret123",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])

	rec = doJSON(t, router, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody(t, rec)["user"].(map[string]any)
	require.Equal(t, "alice", user["username"])
}

func TestRegisterValidationErrors(t *testing.T) {
	router := newTestServer(t, testConfig())

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "al",
		"email":    "not-an-email",
		"password": "x",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, false, body["success"])
	require.NotEmpty(t, body["errors"])
}

func TestAuthenticationRequired(t *testing.T) {
	router := newTestServer(t, testConfig())

	rec := doJSON(t, router, http.MethodGet, "/api/auth/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Authorization header missing or malformed", decodeBody(t, rec)["message"])

	rec = doJSON(t, router, http.MethodGet, "/api/auth/profile", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid or expired token", decodeBody(t, rec)["message"])
}

func TestAdminGate(t *testing.T) {
	router := newTestServer(t, testConfig())

	userToken, _ := registerAndLogin(t, router, "alice", "alice@example.com")
	adminToken := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/users", userToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Admin access required", decodeBody(t, rec)["message"])

	rec = doJSON(t, router, http.MethodGet, "/api/users?page=1&limit=10", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	pagination := body["pagination"].(map[string]any)
	require.EqualValues(t, 1, pagination["currentPage"])
	require.EqualValues(t, 2, pagination["totalItems"])
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	router := newTestServer(t, testConfig())
	adminToken := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/profile", adminToken, nil)
	adminID := decodeBody(t, rec)["user"].(map[string]any)["id"].(string)

	rec = doJSON(t, router, http.MethodDelete, "/api/users/"+adminID, adminToken, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Cannot delete your own account", decodeBody(t, rec)["message"])
}

func TestUserRoleStrippedForNonAdmin(t *testing.T) {
	router := newTestServer(t, testConfig())

	token, id := registerAndLogin(t, router, "alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPut, "/api/users/"+id, token, gin.H{"role": "admin"})
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody(t, rec)["data"].(map[string]any)
	require.Equal(t, "user", user["role"])

	// Updating someone else's account is rejected outright.
	_, otherID := registerAndLogin(t, router, "bob", "bob@example.com")
	rec = doJSON(t, router, http.MethodPut, "/api/users/"+otherID, token, gin.H{"username": "hijack"})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSettingsStrictlySelf(t *testing.T) {
	router := newTestServer(t, testConfig())

	adminToken := loginAdmin(t, router)
	token, id := registerAndLogin(t, router, "alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPut, "/api/users/"+id+"/settings", token, gin.H{"theme": "dark"})
	require.Equal(t, http.StatusOK, rec.Code)

	// Even admins cannot write another account's settings.
	rec = doJSON(t, router, http.MethodPut, "/api/users/"+id+"/settings", adminToken, gin.H{"theme": "light"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Not authorized to update these settings", decodeBody(t, rec)["message"])
}

func TestLearningResourceOwnership(t *testing.T) {
	router := newTestServer(t, testConfig())

	ownerToken, _ := registerAndLogin(t, router, "owner_user", "owner@example.com")
	otherToken, _ := registerAndLogin(t, router, "other_user", "other@example.com")
	adminToken := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/learning-resources", ownerToken, gin.H{
		"title":    "Go Tutorial",
		"category": "Tutorial",
		"url":      "https://example.com/go",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	resource := decodeBody(t, rec)["data"].(map[string]any)
	id := resource["id"].(string)

	// Anonymous reads are allowed.
	rec = doJSON(t, router, http.MethodGet, "/api/learning-resources/"+id, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/learning-resources/"+id, otherToken, gin.H{"title": "Hijacked"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Not authorized to modify this resource", decodeBody(t, rec)["message"])

	rec = doJSON(t, router, http.MethodPut, "/api/learning-resources/"+id, ownerToken, gin.H{"title": "Updated by owner"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/learning-resources/"+id, adminToken, gin.H{"title": "Updated by admin"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody(t, rec)["data"].(map[string]any)
	require.Equal(t, "Updated by admin", updated["title"])
	require.NotNil(t, updated["updatedBy"])

	rec = doJSON(t, router, http.MethodDelete, "/api/learning-resources/"+id, otherToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/learning-resources/"+id, ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/learning-resources/"+id, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToolRoutesServeTools(t *testing.T) {
	router := newTestServer(t, testConfig())

	token, _ := registerAndLogin(t, router, "alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/tools", token, gin.H{
		"toolName":    "Terraform",
		"category":    "DevOps",
		"officialUrl": "https://terraform.io",
		"pricing":     "Open Source",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	tool := decodeBody(t, rec)["data"].(map[string]any)
	require.Equal(t, "Terraform", tool["toolName"])

	rec = doJSON(t, router, http.MethodGet, "/api/tools?category=DevOps", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.EqualValues(t, 1, body["pagination"].(map[string]any)["totalItems"])
}

func TestInternRoutes(t *testing.T) {
	router := newTestServer(t, testConfig())

	adminToken := loginAdmin(t, router)
	userToken, _ := registerAndLogin(t, router, "alice", "alice@example.com")

	// Intern creation is admin territory.
	payload := gin.H{
		"personalInfo": gin.H{
			"firstName": "Jane",
			"lastName":  "Doe",
			"email":     "jane@example.com",
		},
		"internshipDetails": gin.H{
			"startDate":  "2026-06-01T00:00:00Z",
			"department": "Engineering",
			"status":     "Active",
		},
	}
	rec := doJSON(t, router, http.MethodPost, "/api/interns", userToken, payload)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/interns", adminToken, payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	intern := decodeBody(t, rec)["data"].(map[string]any)
	id := intern["id"].(string)

	// Any authenticated user may append a daily comment; provenance is
	// recorded on the entry.
	rec = doJSON(t, router, http.MethodPost, "/api/interns/"+id+"/comments", userToken, gin.H{
		"comment": "Paired on the ingestion service",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	updated := decodeBody(t, rec)["data"].(map[string]any)
	comments := updated["dailyComments"].([]any)
	require.Len(t, comments, 1)
	addedBy := comments[0].(map[string]any)["addedBy"].(map[string]any)
	require.Equal(t, "alice", addedBy["userName"])

	rec = doJSON(t, router, http.MethodPut, "/api/interns/"+id, userToken, gin.H{})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProjectRoutes(t *testing.T) {
	router := newTestServer(t, testConfig())

	adminToken := loginAdmin(t, router)
	userToken, _ := registerAndLogin(t, router, "alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/projects", userToken, gin.H{"projectName": "Dashboard"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/projects", adminToken, gin.H{
		"projectName":  "Dashboard",
		"technologies": []string{"Go", "React"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	project := decodeBody(t, rec)["data"].(map[string]any)
	require.Equal(t, "Planning", project["status"])

	rec = doJSON(t, router, http.MethodGet, "/api/projects", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, decodeBody(t, rec)["pagination"].(map[string]any)["totalItems"])
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.MaxRequests = 3
	router := newTestServer(t, cfg)

	for i := 0; i < 3; i++ {
		rec := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "Too many requests from this IP, please try again later", rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUserReadRequiresSelfOrAdmin(t *testing.T) {
	router := newTestServer(t, testConfig())

	token, id := registerAndLogin(t, router, "alice", "alice@example.com")
	_, otherID := registerAndLogin(t, router, "bob", "bob@example.com")
	adminToken := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/users/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/users/"+otherID, token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Access denied", decodeBody(t, rec)["message"])

	rec = doJSON(t, router, http.MethodGet, "/api/users/"+otherID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestResetPassword(t *testing.T) {
	router := newTestServer(t, testConfig())

	userToken, id := registerAndLogin(t, router, "alice", "alice@example.com")
	adminToken := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/users/"+id+"/reset-password", userToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Without a body the server generates a password and returns it once.
	rec = doJSON(t, router, http.MethodPost, "/api/users/"+id+"/reset-password", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	generated, _ := decodeBody(t, rec)["newPassword"].(string)
	require.NotEmpty(t, generated)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": generated,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// A supplied password is applied and never echoed back.
	rec = doJSON(t, router, http.MethodPost, "/api/users/"+id+"/reset-password", adminToken, gin.H{
		"password": "Chosen123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, decodeBody(t, rec), "newPassword")

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "Chosen123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

// memoryStorage is an in-process stand-in for the S3-backed service.
type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (m *memoryStorage) UploadObject(_ context.Context, bucket, key, _ string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return fmt.Sprintf("mem://%s/%s", bucket, key), nil
}

func (m *memoryStorage) GetObjectURL(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return "", fmt.Errorf("object %q not found", key)
	}
	return fmt.Sprintf("mem://%s/%s?signed=1", bucket, key), nil
}

func (m *memoryStorage) ListObjects(_ context.Context, _ string, prefix string) ([]storage.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects := make([]storage.ObjectInfo, 0, len(m.objects))
	for key, data := range m.objects {
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, storage.ObjectInfo{Key: key, Size: int64(len(data))})
		}
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

func (m *memoryStorage) DeleteObject(_ context.Context, _ string, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func uploadMultipart(t *testing.T, router *gin.Engine, token, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadLifecycle(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Bucket = "dashboard-files"
	cfg.Storage.KeyPrefix = "uploads"
	router := newTestServerWithStorage(t, cfg, newMemoryStorage())

	userToken, _ := registerAndLogin(t, router, "alice", "alice@example.com")
	adminToken := loginAdmin(t, router)

	rec := uploadMultipart(t, router, userToken, "notes.exe", "binary")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Only images and documents are allowed", decodeBody(t, rec)["message"])

	rec = uploadMultipart(t, router, userToken, "notes.pdf", "report body")
	require.Equal(t, http.StatusCreated, rec.Code)
	stored := decodeBody(t, rec)["data"].(map[string]any)
	key := stored["key"].(string)
	require.True(t, strings.HasPrefix(key, "uploads/"))
	require.Equal(t, "notes.pdf", stored["fileName"])

	rec = doJSON(t, router, http.MethodGet, "/api/uploads/"+key, userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, decodeBody(t, rec)["data"].(map[string]any)["url"])

	// Listing and deletion are admin territory.
	rec = doJSON(t, router, http.MethodGet, "/api/uploads", userToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/uploads", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	files := decodeBody(t, rec)["data"].([]any)
	require.Len(t, files, 1)
	require.Equal(t, key, files[0].(map[string]any)["key"])

	rec = doJSON(t, router, http.MethodDelete, "/api/uploads/"+key, userToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/uploads/"+key, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/uploads", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["data"])
}

func TestUploadsUnavailableWithoutStorage(t *testing.T) {
	router := newTestServer(t, testConfig())
	adminToken := loginAdmin(t, router)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/uploads"},
		{http.MethodDelete, "/api/uploads/uploads/report.pdf"},
	} {
		rec := doJSON(t, router, tc.method, tc.path, adminToken, nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "File storage is not configured", decodeBody(t, rec)["message"])
	}
}

func TestDocsServed(t *testing.T) {
	router := newTestServer(t, testConfig())

	rec := doJSON(t, router, http.MethodGet, "/api/docs/openapi.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Equal(t, "3.0.3", doc["openapi"])

	rec = doJSON(t, router, http.MethodGet, "/api/docs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "swagger-ui")
}
