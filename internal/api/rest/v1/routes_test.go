//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/identity"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAuth = config.AuthSettings{
	JWTSecret: "test-secret-with-at-least-32-characters",
	Issuer:    "eprofos",
}

func newTestRouter(t *testing.T) (*gin.Engine, *mockSet) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	services, mocks := newMockServices()
	SetupRoutes(r, services, testAuth)
	return r, mocks
}

func tokenFor(t *testing.T, id string, roles ...string) string {
	t.Helper()
	token, err := SignToken(testAuth, &identity.Principal{ID: id, Name: "User " + id, Roles: roles}, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(r http.Handler, method, url string, body interface{}, token string) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&payload).Encode(body)
	}
	req := httptest.NewRequest(method, url, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes_HealthIsPublic(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSetupRoutes_Authorization(t *testing.T) {
	r, mocks := newTestRouter(t)
	mocks.prospects.On("List", mock.Anything, mock.Anything).Return([]*prospects.Prospect{}, nil)
	mocks.mentors.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mocks.audit.On("History", mock.Anything, "Prospect", "p1").Return([]*audit.HistoryEntry{}, nil)

	admin := tokenFor(t, "a1", identity.RoleAdmin)
	teacher := tokenFor(t, "t1", identity.RoleTeacher)
	student := tokenFor(t, "s1", identity.RoleStudent)

	tests := []struct {
		name   string
		method string
		url    string
		token  string
		status int
	}{
		{"no token", http.MethodGet, "/api/v1/prospects", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/v1/prospects", "not-a-jwt", http.StatusUnauthorized},
		{"student on prospects", http.MethodGet, "/api/v1/prospects", student, http.StatusForbidden},
		{"admin on prospects", http.MethodGet, "/api/v1/prospects", admin, http.StatusOK},
		{"teacher reads mentors", http.MethodGet, "/api/v1/mentors", teacher, http.StatusOK},
		{"teacher creates mentor", http.MethodPost, "/api/v1/mentors", teacher, http.StatusForbidden},
		{"student reads mentors", http.MethodGet, "/api/v1/mentors", student, http.StatusForbidden},
		{"teacher on admin audit", http.MethodGet, "/api/v1/admin/audit/entity/Prospect/p1", teacher, http.StatusForbidden},
		{"admin on audit history", http.MethodGet, "/api/v1/admin/audit/entity/Prospect/p1", admin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.url, nil, tt.token)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	r, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"POST /api/v1/prospects",
		"GET /api/v1/prospects/statistics",
		"GET /api/v1/prospects/:id/score",
		"PUT /api/v1/prospects/:id/needs-analyses/:analysisId/complete",
		"DELETE /api/v1/mentors/:id",
		"PUT /api/v1/alternance/contracts/:id/status",
		"PUT /api/v1/engagement/records",
		"GET /api/v1/engagement/at-risk",
		"GET /api/v1/admin/engagement/export/:format",
		"POST /api/v1/admin/engagement/reevaluate",
		"GET /api/v1/admin/audit/:id",
		"GET /api/v1/dashboard",
	} {
		assert.True(t, registered[route], "route %s should be registered", route)
	}
}
