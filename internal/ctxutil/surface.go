// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// Surfaces that drive the board.
const (
	SurfaceCLI   = "cli"
	SurfaceBoard = "board"
)

// SurfaceKey is the context key for the driving surface.
type SurfaceKey struct{}

// WithSurface returns a context tagged with the surface issuing board changes.
func WithSurface(ctx context.Context, surface string) context.Context {
	return context.WithValue(ctx, SurfaceKey{}, surface)
}

// SurfaceFromContext returns the surface from context, or empty string if not set.
func SurfaceFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(SurfaceKey{}).(string); ok {
		return v
	}
	return ""
}
