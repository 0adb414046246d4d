package repository

import "context"

// ImageResolver looks up a supplementary image for a chosen product.
// Implementations cache with their own TTL and return an empty string, not an
// error, on any network failure.
type ImageResolver interface {
	ResolveImage(ctx context.Context, productURL string) string
}
