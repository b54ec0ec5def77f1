package space

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func validatedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/create", ValidatePayload(), func(c *gin.Context) {
		p, ok := PayloadFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no payload"})
			return
		}
		// The body must still be readable after validation consumed it.
		body, err := io.ReadAll(c.Request.Body)
		if err != nil || len(body) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "body not re-attached"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": p.Name, "width": p.Width})
	})
	return r
}

func postJSON(r *gin.Engine, body, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidatePayload_WidthBounds(t *testing.T) {
	r := validatedRouter(t)

	cases := []struct {
		width int
		want  int
	}{
		{99, http.StatusBadRequest},
		{100, http.StatusOK},
		{1000, http.StatusOK},
		{1001, http.StatusBadRequest},
	}
	for _, tc := range cases {
		body := fmt.Sprintf(`{"name":"s","width":%d}`, tc.width)
		if w := postJSON(r, body, "application/json"); w.Code != tc.want {
			t.Fatalf("width=%d: expected %d, got %d", tc.width, tc.want, w.Code)
		}
	}
}

func TestValidatePayload_HeightBounds(t *testing.T) {
	r := validatedRouter(t)

	cases := []struct {
		height int
		want   int
	}{
		{99, http.StatusBadRequest},
		{100, http.StatusOK},
		{1000, http.StatusOK},
		{1001, http.StatusBadRequest},
	}
	for _, tc := range cases {
		body := fmt.Sprintf(`{"name":"s","width":200,"height":%d}`, tc.height)
		if w := postJSON(r, body, "application/json"); w.Code != tc.want {
			t.Fatalf("height=%d: expected %d, got %d", tc.height, tc.want, w.Code)
		}
	}
}

func TestValidatePayload_HeightOptional(t *testing.T) {
	r := validatedRouter(t)

	if w := postJSON(r, `{"name":"s","width":200}`, "application/json"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 without height, got %d", w.Code)
	}
}

func TestValidatePayload_ContentType(t *testing.T) {
	r := validatedRouter(t)

	if w := postJSON(r, `{"name":"s","width":200}`, "text/plain"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for text/plain, got %d", w.Code)
	}
	if w := postJSON(r, `{"name":"s","width":200}`, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing content type, got %d", w.Code)
	}
	// Case-insensitive; media type parameters are tolerated.
	if w := postJSON(r, `{"name":"s","width":200}`, "Application/JSON; charset=utf-8"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for mixed-case content type, got %d", w.Code)
	}
}

func TestValidatePayload_MalformedJSON(t *testing.T) {
	r := validatedRouter(t)

	if w := postJSON(r, `{"name":`, "application/json"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed json, got %d", w.Code)
	}
}
