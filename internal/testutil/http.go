package testutil

import (
	"net/http"
	"net/http/httptest"

	"github.com/dalemusser/pulseboard/internal/app/system/auth"
)

// DashboardUser returns the session user handler tests sign in as.
func DashboardUser() *auth.SessionUser {
	return &auth.SessionUser{Email: "admin@test.com"}
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a signed-in user
// in context, bypassing the session middleware.
func NewAuthenticatedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return auth.WithTestUser(req, DashboardUser())
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}
