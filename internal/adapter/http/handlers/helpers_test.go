package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	request "rotaclick/internal/adapter/http/dto/request"
	"rotaclick/internal/adapter/http/middleware"
	"rotaclick/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	adminActor    = entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
	carrierActor  = entities.Actor{UserID: "user-c1", Role: entities.RoleCarrier, CarrierID: "car-1"}
	customerActor = entities.Actor{UserID: "cust-1", Role: entities.RoleCustomer}
)

// newTestRouter returns a gin engine that authenticates every request as
// actor. A nil actor leaves the request anonymous.
func newTestRouter(actor *entities.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	request.RegisterValidators()
	r := gin.New()
	if actor != nil {
		authenticated := *actor
		r.Use(func(c *gin.Context) {
			middleware.SetActor(c, authenticated)
			c.Next()
		})
	}
	return r
}

func serve(r http.Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func serveJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	return serve(r, method, path, reader, "application/json")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return out
}
