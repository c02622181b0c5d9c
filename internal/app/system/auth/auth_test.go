package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSignedIn_AllowsUserInContext(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/analytics/summary", nil)
	req = WithTestUser(req, &SessionUser{Email: "admin@test.com"})
	rec := httptest.NewRecorder()

	m.RequireSignedIn(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireSignedIn_APIGets401(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/analytics/summary", nil)
	rec := httptest.NewRecorder()

	m.RequireSignedIn(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireSignedIn_BrowserRedirectsToLogin(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/analytics/summary?page=2", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()

	m.RequireSignedIn(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login?return=") {
		t.Errorf("Location = %q, want /login?return=...", loc)
	}
}

func TestSignInRoundTrip(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())

	// Sign in and capture the session cookie.
	signInReq := httptest.NewRequest("POST", "/login", nil)
	signInRec := httptest.NewRecorder()
	if err := m.SignIn(signInRec, signInReq, "admin@test.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	cookies := signInRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("SignIn set no cookies")
	}

	// Replay the cookie through the middleware chain.
	req := httptest.NewRequest("GET", "/api/analytics/summary", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	var got *SessionUser
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
		w.WriteHeader(http.StatusOK)
	})
	m.LoadSessionUser(m.RequireSignedIn(inner)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil || got.Email != "admin@test.com" {
		t.Errorf("session user = %+v, want admin@test.com", got)
	}
}

func TestSignOutClearsSession(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())

	signInReq := httptest.NewRequest("POST", "/login", nil)
	signInRec := httptest.NewRecorder()
	if err := m.SignIn(signInRec, signInReq, "admin@test.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	outReq := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range signInRec.Result().Cookies() {
		outReq.AddCookie(c)
	}
	outRec := httptest.NewRecorder()
	if err := m.SignOut(outRec, outReq); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	var cleared *http.Cookie
	for _, c := range outRec.Result().Cookies() {
		if c.Name == "test-session" {
			cleared = c
		}
	}
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Errorf("sign-out cookie = %+v, want MaxAge < 0", cleared)
	}
}
