package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func echoActor(t *testing.T, captured *Actor) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = CurrentActor(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestKeyAuth(t *testing.T) {
	logger := zap.NewNop()

	var actor Actor
	handler := KeyAuth("admin-secret", "editor-secret", logger)(echoActor(t, &actor))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantRole   string
	}{
		{"admin key", "Bearer admin-secret", http.StatusOK, RoleAdmin},
		{"editor key", "Bearer editor-secret", http.StatusOK, RoleEditor},
		{"wrong key", "Bearer nope", http.StatusUnauthorized, ""},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic admin-secret", http.StatusUnauthorized, ""},
		{"bare token", "admin-secret", http.StatusUnauthorized, ""},
		{"case-insensitive scheme", "bearer admin-secret", http.StatusOK, RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor = Actor{}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if actor.Role != tt.wantRole {
				t.Errorf("actor role = %q, want %q", actor.Role, tt.wantRole)
			}
		})
	}
}

func TestKeyAuth_ActorID(t *testing.T) {
	logger := zap.NewNop()

	var actor Actor
	handler := KeyAuth("admin-secret", "", logger)(echoActor(t, &actor))

	// X-Actor-Id names the person behind the shared key.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer admin-secret")
	req.Header.Set("X-Actor-Id", "dr-marsh")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if actor.ID != "dr-marsh" {
		t.Errorf("actor ID = %q, want 'dr-marsh'", actor.ID)
	}

	// Without the header the role stands in as the identity.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer admin-secret")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if actor.ID != RoleAdmin {
		t.Errorf("actor ID = %q, want %q", actor.ID, RoleAdmin)
	}
}

func TestKeyAuth_NoKeysConfigured(t *testing.T) {
	logger := zap.NewNop()

	var actor Actor
	handler := KeyAuth("", "", logger)(echoActor(t, &actor))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestKeyAuth_EmptyKeyNeverMatches(t *testing.T) {
	logger := zap.NewNop()

	var actor Actor
	handler := KeyAuth("admin-secret", "", logger)(echoActor(t, &actor))

	// An empty editor key must not match an empty bearer token.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRole(t *testing.T) {
	logger := zap.NewNop()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := RequireRole(RoleAdmin, logger)(ok)

	tests := []struct {
		name       string
		actor      Actor
		wantStatus int
	}{
		{"admin passes", Actor{ID: "admin", Role: RoleAdmin}, http.StatusOK},
		{"editor blocked", Actor{ID: "editor", Role: RoleEditor}, http.StatusForbidden},
		{"unauthenticated blocked", Actor{}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(WithActor(req.Context(), tt.actor))
			rec := httptest.NewRecorder()
			gate.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRole_AdminPassesEditorGate(t *testing.T) {
	logger := zap.NewNop()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := RequireRole(RoleEditor, logger)(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithActor(req.Context(), Actor{ID: "admin", Role: RoleAdmin}))
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (admin passes every gate)", rec.Code, http.StatusOK)
	}
}

func TestCurrentActor_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	actor := CurrentActor(req)
	if actor.ID != "" || actor.Role != "" {
		t.Errorf("CurrentActor() on bare request = %+v, want zero value", actor)
	}
}
