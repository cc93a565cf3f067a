package leavemarker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func respond(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"success": success}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	_ = json.NewEncoder(w).Encode(body)
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *MemoryNavigator) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	nav := NewMemoryNavigator(RouteDashboard)
	c, err := New(Config{BaseURL: srv.URL, Navigator: nav, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatal(err)
	}
	return c, nav
}

func TestValidationErrorFlattening(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusBadRequest, false, "Validation failed", map[string]string{
			"email":    "must be valid",
			"password": "too short",
		})
	}))

	_, err := c.Auth().Login(context.Background(), "x", "y")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ErrorMessage(err, "Login failed"); got != "must be valid. too short" {
		t.Fatalf("flattened message = %q", got)
	}
}

func TestValidationErrorEmptyMapFallsBack(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusBadRequest, false, "Validation failed", map[string]string{})
	}))

	_, err := c.Auth().Login(context.Background(), "x", "y")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ErrorMessage(err, "Login failed"); got != "Validation failed" {
		t.Fatalf("message = %q", got)
	}
}

func TestDomainErrorSurfacesServerMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusConflict, false, "already on this plan", nil)
	}))

	_, err := c.Subscriptions().Create(context.Background(), SubscriptionRequest{PlanID: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ErrorMessage(err, "Operation failed"); got != "already on this plan" {
		t.Fatalf("message = %q", got)
	}
}

func TestUnsuccessfulEnvelopeOn200IsError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, false, "insufficient slots", nil)
	}))

	_, err := c.Employees().Create(context.Background(), EmployeeRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ErrorMessage(err, ""); got != "insufficient slots" {
		t.Fatalf("message = %q", got)
	}
}

func TestUnauthorizedRedirectsToLogin(t *testing.T) {
	c, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusUnauthorized, false, "Unauthorized", nil)
	}))

	_, err := c.Employees().List(context.Background())
	if err == nil {
		t.Fatal("expected error to pass through to the caller")
	}
	if nav.CurrentPath() != RouteLogin {
		t.Fatalf("expected redirect to %s, at %s", RouteLogin, nav.CurrentPath())
	}
}

func TestUnauthorizedOnPublicRouteDoesNotRedirect(t *testing.T) {
	c, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusUnauthorized, false, "Unauthorized", nil)
	}))
	nav.Navigate(RoutePricing)

	_, _ = c.Plans().ListActive(context.Background())
	if nav.CurrentPath() != RoutePricing {
		t.Fatalf("should stay on %s, at %s", RoutePricing, nav.CurrentPath())
	}
}

func TestUnauthorizedDuringLogoutDoesNotRedirect(t *testing.T) {
	c, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusUnauthorized, false, "Unauthorized", nil)
	}))
	c.beginLogout()

	_, err := c.Employees().List(context.Background())
	if err == nil {
		t.Fatal("error should still pass through")
	}
	if nav.CurrentPath() != RouteDashboard {
		t.Fatalf("no forced navigation expected, at %s", nav.CurrentPath())
	}
}

func TestAuthLostSubscriberReceivesEvent(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusUnauthorized, false, "Unauthorized", nil)
	}))

	fired := 0
	c.OnAuthLost(func() { fired++ })
	_, _ = c.Attendance().Today(context.Background())
	if fired != 1 {
		t.Fatalf("authlost fired %d times", fired)
	}
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	if _, err := New(Config{BaseURL: "://nope"}); err == nil {
		t.Fatal("expected error for malformed base URL")
	}
	if _, err := New(Config{BaseURL: "relative/path"}); err == nil {
		t.Fatal("expected error for relative base URL")
	}
}

func TestBearerModeRequiresTokenStore(t *testing.T) {
	if _, err := New(Config{Mode: CredentialsBearer}); err == nil {
		t.Fatal("expected error when bearer mode has no token store")
	}
}

func TestBearerModeAttachesAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		respond(w, http.StatusOK, true, "", []Employee{})
	}))
	t.Cleanup(srv.Close)

	store := &FileTokenStore{Path: t.TempDir() + "/credentials.json"}
	if err := store.Save("tok-123", &Identity{ID: 1}); err != nil {
		t.Fatal(err)
	}
	c, err := New(Config{BaseURL: srv.URL, Mode: CredentialsBearer, TokenStore: store, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Employees().List(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestRequestIDHeaderIsStamped(t *testing.T) {
	var gotID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		respond(w, http.StatusOK, true, "", nil)
	}))

	if err := c.Contact().Send(context.Background(), ContactRequest{Name: "a", Email: "a@b.c", Message: "hi"}); err != nil {
		t.Fatal(err)
	}
	if gotID == "" {
		t.Fatal("X-Request-ID missing")
	}
}
