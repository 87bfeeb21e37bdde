package auth

import (
	"context"
	"net/http"
)

// Roles recognized by the API key middleware.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Actor identifies who performed an authenticated request. ID comes
// from the X-Actor-Id header the admin dashboard sends; Role is derived
// from which API key authenticated the request.
type Actor struct {
	ID   string
	Role string
}

type contextKey struct{}

var actorKey contextKey

// WithActor returns a context carrying the actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// CurrentActor returns the actor attached to the request by KeyAuth.
// The zero Actor means the request did not pass through KeyAuth.
func CurrentActor(r *http.Request) Actor {
	a, _ := r.Context().Value(actorKey).(Actor)
	return a
}
