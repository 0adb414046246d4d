package imaging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

const productPage = `<!DOCTYPE html>
<html><head>
<meta property="og:title" content="事務用ノートA">
<meta property="og:image" content="https://img.example.com/a.jpg">
</head><body>商品ページ</body></html>`

func TestResolveImage(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(productPage))
	}))
	defer srv.Close()

	r := NewOGImageResolver(zerolog.Nop())
	ctx := context.Background()

	got := r.ResolveImage(ctx, srv.URL)
	if got != "https://img.example.com/a.jpg" {
		t.Fatalf("ResolveImage() = %q", got)
	}

	// Second lookup is served from cache.
	_ = r.ResolveImage(ctx, srv.URL)
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("page fetched %d times, want 1", hits)
	}
}

func TestResolveImageFailuresYieldEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r := NewOGImageResolver(zerolog.Nop())
	ctx := context.Background()

	if got := r.ResolveImage(ctx, srv.URL); got != "" {
		t.Errorf("404 page: ResolveImage() = %q, want empty", got)
	}
	if got := r.ResolveImage(ctx, ""); got != "" {
		t.Errorf("empty URL: ResolveImage() = %q, want empty", got)
	}
	if got := r.ResolveImage(ctx, "http://127.0.0.1:1/nope"); got != "" {
		t.Errorf("unreachable host: ResolveImage() = %q, want empty", got)
	}
}

func TestResolveImageConcurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(productPage))
	}))
	defer srv.Close()

	r := NewOGImageResolver(zerolog.Nop())
	ctx := context.Background()
	urls := []string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if got := r.ResolveImage(ctx, urls[(g+i)%len(urls)]); got != "https://img.example.com/a.jpg" {
					t.Errorf("ResolveImage() = %q", got)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestResolveImageRejectsRelative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><meta property="og:image" content="/img/a.jpg"></head></html>`))
	}))
	defer srv.Close()

	r := NewOGImageResolver(zerolog.Nop())
	if got := r.ResolveImage(context.Background(), srv.URL); got != "" {
		t.Errorf("relative og:image: ResolveImage() = %q, want empty", got)
	}
}
