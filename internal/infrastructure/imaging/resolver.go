package imaging

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/constants"
)

type cachedImage struct {
	url       string
	timestamp time.Time
}

// OGImageResolver fetches a product page and pulls its og:image meta tag.
// Lookups are best effort: any failure yields an empty string and the
// recommendation goes out without an image. Results, including failures,
// are cached per product URL so slow merchant pages are hit at most once
// per TTL window.
type OGImageResolver struct {
	client *http.Client
	logger zerolog.Logger

	mu    sync.RWMutex
	cache map[string]cachedImage
	ttl   time.Duration
}

func NewOGImageResolver(logger zerolog.Logger) *OGImageResolver {
	return &OGImageResolver{
		client: &http.Client{Timeout: constants.ImageFetchTimeout},
		logger: logger.With().Str("component", "imaging").Logger(),
		cache:  make(map[string]cachedImage),
		ttl:    constants.ImageCacheTTL,
	}
}

func (r *OGImageResolver) ResolveImage(ctx context.Context, productURL string) string {
	if productURL == "" {
		return ""
	}

	r.mu.RLock()
	cached, ok := r.cache[productURL]
	r.mu.RUnlock()
	if ok && time.Since(cached.timestamp) <= r.ttl {
		return cached.url
	}

	img := r.fetch(ctx, productURL)

	r.mu.Lock()
	r.cache[productURL] = cachedImage{url: img, timestamp: time.Now()}
	r.mu.Unlock()
	return img
}

func (r *OGImageResolver) fetch(ctx context.Context, productURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, productURL, nil)
	if err != nil {
		return ""
	}
	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug().Err(err).Str("url", productURL).Msg("image page fetch failed")
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	img, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	img = strings.TrimSpace(img)
	if !strings.HasPrefix(img, "http") {
		return ""
	}
	return img
}
