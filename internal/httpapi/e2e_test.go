package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"metaspace/internal/auth"
	"metaspace/internal/config"
	"metaspace/internal/rbac"
	"metaspace/internal/space"
	"metaspace/internal/user"
	"metaspace/internal/world"

	"github.com/gin-gonic/gin"
)

// testRouter wires the auth-relevant route families over in-memory
// repositories, mirroring the production route table.
func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, err := auth.NewManager(config.AuthConfig{Secret: "secret", TokenTTL: 24 * time.Hour})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}

	h := Handlers{
		Users:  user.NewService(user.NewMemoryRepo(), m),
		Spaces: space.NewMemoryRepo(),
		Worlds: world.NewMemoryRepo(),
	}

	r := gin.New()
	v1 := r.Group("/api/v1")

	common := v1.Group("/common")
	common.POST("/signin", h.SignIn)
	common.POST("/signup", h.SignUp)

	userGroup := v1.Group("/user")
	userGroup.Use(auth.RequireAuth(m))
	userGroup.GET("/avatars", h.ListAvatars)

	spaceGroup := v1.Group("/space")
	spaceGroup.Use(auth.RequireAuth(m))
	spaceGroup.POST("/create", space.ValidatePayload(), h.CreateSpace)
	spaceGroup.POST("/get_all_spaces", h.ListSpaces)

	worldGroup := v1.Group("/world")
	worldGroup.POST("/create", append(rbac.AdminOnly(m), h.CreateWorld)...)

	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEndToEndUserFlow(t *testing.T) {
	r := testRouter(t)

	// signup
	w := doJSON(r, http.MethodPost, "/api/v1/common/signup", `{"username":"alice","password":"pw1","role":"user"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// duplicate signup
	w = doJSON(r, http.MethodPost, "/api/v1/common/signup", `{"username":"alice","password":"pw1","role":"user"}`, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate signup: expected 409, got %d", w.Code)
	}

	// signin
	w = doJSON(r, http.MethodPost, "/api/v1/common/signin", `{"username":"alice","password":"pw1"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("signin: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var signin struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &signin); err != nil || signin.Token == "" {
		t.Fatalf("expected token in signin response, got %s", w.Body.String())
	}

	// admin-only route with a user token
	w = doJSON(r, http.MethodPost, "/api/v1/world/create", `{"name":"w"}`, signin.Token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("world create as user: expected 403, got %d", w.Code)
	}

	// user-authenticated route
	w = doJSON(r, http.MethodGet, "/api/v1/user/avatars", "", signin.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("avatars: expected 200, got %d", w.Code)
	}

	// no token
	w = doJSON(r, http.MethodGet, "/api/v1/user/avatars", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("avatars without token: expected 401, got %d", w.Code)
	}
}

func TestEndToEndSignInEnumerationResistance(t *testing.T) {
	r := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/common/signup", `{"username":"alice","password":"pw1","role":"user"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", w.Code)
	}

	unknown := doJSON(r, http.MethodPost, "/api/v1/common/signin", `{"username":"nobody","password":"pw1"}`, "")
	wrongPw := doJSON(r, http.MethodPost, "/api/v1/common/signin", `{"username":"alice","password":"wrong"}`, "")

	if unknown.Code != http.StatusUnauthorized || wrongPw.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrongPw.Code)
	}
	if unknown.Body.String() != wrongPw.Body.String() {
		t.Fatalf("rejections must be indistinguishable: %q vs %q", unknown.Body.String(), wrongPw.Body.String())
	}
}

func TestEndToEndAdminFlow(t *testing.T) {
	r := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/common/signup", `{"username":"root","password":"pw1","role":"admin"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", w.Code)
	}
	w = doJSON(r, http.MethodPost, "/api/v1/common/signin", `{"username":"root","password":"pw1"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("signin: expected 200, got %d", w.Code)
	}
	var signin struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &signin); err != nil {
		t.Fatalf("token parse: %v", err)
	}

	w = doJSON(r, http.MethodPost, "/api/v1/world/create", `{"name":"hub","is_public":true}`, signin.Token)
	if w.Code != http.StatusCreated {
		t.Fatalf("world create as admin: expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEndToEndSpaceCreateValidation(t *testing.T) {
	r := testRouter(t)

	doJSON(r, http.MethodPost, "/api/v1/common/signup", `{"username":"alice","password":"pw1","role":"user"}`, "")
	w := doJSON(r, http.MethodPost, "/api/v1/common/signin", `{"username":"alice","password":"pw1"}`, "")
	var signin struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &signin); err != nil {
		t.Fatalf("token parse: %v", err)
	}

	// out of bounds short-circuits before the handler
	w = doJSON(r, http.MethodPost, "/api/v1/space/create", `{"name":"s","width":99}`, signin.Token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("width 99: expected 400, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/api/v1/space/create", `{"name":"s","width":500,"height":500}`, signin.Token)
	if w.Code != http.StatusCreated {
		t.Fatalf("valid create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// validation runs behind authentication
	w = doJSON(r, http.MethodPost, "/api/v1/space/create", `{"name":"s","width":500}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create: expected 401, got %d", w.Code)
	}
}
