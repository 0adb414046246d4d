package constants

import "time"

// Budget constants
const (
	// DefaultBudgetMax is assumed when a request carries no budget ceiling.
	DefaultBudgetMax = 50000

	// BudgetFloor is the lowest sensible tier anchor; second-hand machines below
	// this price are rarely worth recommending.
	BudgetFloor = 10000

	// ComfortableRatio and HeadroomRatio scale the clamped target price into the
	// upper two tier anchors.
	ComfortableRatio = 1.35
	HeadroomRatio    = 1.8

	// MaxRecommendations caps the result list.
	MaxRecommendations = 3
)

// Cache constants
const (
	// CatalogCacheTTL bounds catalog staleness against the backing store while
	// avoiding a re-read on every request.
	CatalogCacheTTL = 30 * time.Second

	// ImageCacheTTL covers the supplementary image lookup.
	ImageCacheTTL = 12 * time.Hour

	// ImageFetchTimeout bounds the external product-page fetch.
	ImageFetchTimeout = 5 * time.Second
)

// AI model constants
const (
	// GeminiModelName is the model used for the optional advice note.
	GeminiModelName = "gemini-2.5-flash"

	// AITemperature keeps advice wording close to the template facts.
	AITemperature = 0.3

	// AITopK Top-K sampling parameter
	AITopK = 20

	// AITopP Top-P sampling parameter
	AITopP = 0.9
)

// Server constants
const (
	// DefaultHTTPPort is used when PORT is not set.
	DefaultHTTPPort = "8080"

	// ShutdownTimeout is the graceful HTTP shutdown window.
	ShutdownTimeout = 10 * time.Second
)
