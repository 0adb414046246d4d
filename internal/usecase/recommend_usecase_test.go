package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

type stubCatalog struct {
	rows []entity.CatalogRow
	err  error
}

func (s *stubCatalog) ListProducts(_ context.Context) ([]entity.CatalogRow, error) {
	return s.rows, s.err
}

type stubImages struct {
	calls []string
}

func (s *stubImages) ResolveImage(_ context.Context, productURL string) string {
	s.calls = append(s.calls, productURL)
	return "https://img.example.com/ogp.png"
}

func newTestEngine(rows []entity.CatalogRow) *RecommendUseCase {
	return NewRecommendUseCase(&stubCatalog{rows: rows}, NewJapaneseSpecExtractor(), zerolog.Nop())
}

func officeCatalog() []entity.CatalogRow {
	return []entity.CatalogRow{
		{
			SKU: "A-001", Name: "事務用ノートA",
			Description: "中古ノートパソコン メモリ8GB SSD256GB i5-8250U 15.6型 Webカメラ",
			Price:       19800, Quantity: 3, URL: "https://shop.example.com/a",
		},
		{
			SKU: "B-002", Name: "事務用ノートB",
			Description: "中古ノートパソコン メモリ8GB SSD256GB i5-8265U 15.6型 Webカメラ",
			Price:       27500, Quantity: 2, URL: "https://shop.example.com/b",
		},
		{
			SKU: "C-003", Name: "事務用ノートC",
			Description: "中古ノートパソコン メモリ16GB SSD512GB i7-10510U 15.6型 Webカメラ",
			Price:       35800, Quantity: 1, URL: "https://shop.example.com/c",
		},
		{
			SKU: "D-004", Name: "旧型HDDノート",
			Description: "中古ノートパソコン メモリ4GB HDD500GB",
			Price:       19800, Quantity: 5, URL: "https://shop.example.com/d",
		},
	}
}

func TestRecommendThreeTiers(t *testing.T) {
	engine := newTestEngine(officeCatalog())

	resp, err := engine.Recommend(context.Background(), entity.RecommendationRequest{
		UseCase: "office", BudgetMax: 60000,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !resp.Success {
		t.Fatal("Success = false")
	}
	if len(resp.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(resp.Recommendations))
	}

	wantTiers := []entity.Tier{entity.TierEnough, entity.TierComfortable, entity.TierHeadroom}
	wantSKUs := []string{"A-001", "B-002", "C-003"}
	for i, rec := range resp.Recommendations {
		if rec.Tier != wantTiers[i] {
			t.Errorf("rec[%d].Tier = %q, want %q", i, rec.Tier, wantTiers[i])
		}
		if rec.SKU != wantSKUs[i] {
			t.Errorf("rec[%d].SKU = %q, want %q", i, rec.SKU, wantSKUs[i])
		}
		if rec.Reason == "" {
			t.Errorf("rec[%d].Reason is empty", i)
		}
	}

	if resp.Meta.Budget.Enough != 20000 || resp.Meta.Budget.Headroom != 36000 {
		t.Errorf("budget plan = %+v", resp.Meta.Budget)
	}
	if resp.Meta.RequestID == "" {
		t.Error("RequestID is empty")
	}
	if resp.Meta.UseCaseLabel != "事務・ブラウジング用" {
		t.Errorf("UseCaseLabel = %q", resp.Meta.UseCaseLabel)
	}
}

func TestRecommendDedupesAcrossTiers(t *testing.T) {
	engine := newTestEngine(officeCatalog()[:1])

	resp, err := engine.Recommend(context.Background(), entity.RecommendationRequest{
		UseCase: "office", BudgetMax: 60000,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(resp.Recommendations))
	}
	if resp.Recommendations[0].Tier != entity.TierEnough {
		t.Errorf("Tier = %q, want enough", resp.Recommendations[0].Tier)
	}
}

func TestRecommendRespectsCeiling(t *testing.T) {
	engine := newTestEngine(officeCatalog())

	resp, err := engine.Recommend(context.Background(), entity.RecommendationRequest{
		UseCase: "office", BudgetMax: 21000,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, rec := range resp.Recommendations {
		if rec.Price > 21000 {
			t.Errorf("%s priced %d exceeds the ceiling", rec.SKU, rec.Price)
		}
	}
}

func TestRecommendHardRequirementFiltersAll(t *testing.T) {
	// No product carries a discrete GPU, so the creator profile yields nothing.
	engine := newTestEngine(officeCatalog())

	resp, err := engine.Recommend(context.Background(), entity.RecommendationRequest{
		UseCase: "creator", BudgetMax: 60000,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !resp.Success {
		t.Error("empty result should still be a success")
	}
	if len(resp.Recommendations) != 0 {
		t.Fatalf("got %d recommendations, want 0", len(resp.Recommendations))
	}
	if resp.Meta.Note == "" {
		t.Error("empty result should carry an explanatory note")
	}
}

func TestRecommendCameraRequirement(t *testing.T) {
	rows := []entity.CatalogRow{
		{
			SKU: "NC-1", Name: "カメラなしノート",
			Description: "中古ノートパソコン メモリ16GB SSD512GB i7-10510U",
			Price:       30000, Quantity: 1,
		},
		{
			SKU: "WC-1", Name: "カメラ付きノート",
			Description: "中古ノートパソコン メモリ8GB SSD256GB i5-8250U Webカメラ内蔵",
			Price:       29800, Quantity: 1,
		},
	}
	engine := newTestEngine(rows)

	resp, err := engine.Recommend(context.Background(), entity.RecommendationRequest{
		UseCase: "zoom", BudgetMax: 50000,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, rec := range resp.Recommendations {
		if rec.SKU == "NC-1" {
			t.Error("camera-less product selected for the video-call profile")
		}
	}
	if len(resp.Recommendations) == 0 {
		t.Fatal("expected the camera-equipped product to be selected")
	}
}

func TestRecommendSkipsOutOfStockAndUnpriced(t *testing.T) {
	rows := []entity.CatalogRow{
		{SKU: "S-0", Name: "在庫なし", Description: "メモリ8GB SSD256GB", Price: 20000, Quantity: 0},
		{SKU: "P-0", Name: "価格なし", Description: "メモリ8GB SSD256GB", Price: 0, Quantity: 5},
	}
	engine := newTestEngine(rows)

	resp, err := engine.Recommend(context.Background(), entity.RecommendationRequest{
		UseCase: "office", BudgetMax: 60000,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != 0 {
		t.Fatalf("got %d recommendations, want 0", len(resp.Recommendations))
	}
}

func TestRecommendCatalogError(t *testing.T) {
	engine := NewRecommendUseCase(&stubCatalog{err: errors.New("connection refused")},
		NewJapaneseSpecExtractor(), zerolog.Nop())

	_, err := engine.Recommend(context.Background(), entity.RecommendationRequest{UseCase: "office"})
	if err == nil {
		t.Fatal("expected an error when the catalog is unavailable")
	}
	if !strings.Contains(err.Error(), "list products") {
		t.Errorf("error = %v, want list products context", err)
	}
}

func TestRecommendDefaultBudgetAndUseCase(t *testing.T) {
	engine := newTestEngine(officeCatalog())

	resp, err := engine.Recommend(context.Background(), entity.RecommendationRequest{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Meta.UseCaseLabel != "事務・ブラウジング用" {
		t.Errorf("UseCaseLabel = %q, want office fallback", resp.Meta.UseCaseLabel)
	}
	// Default ceiling is 50000, so the 35800 product is still reachable.
	if resp.Meta.Budget.Headroom != 36000 {
		t.Errorf("Headroom = %d, want 36000", resp.Meta.Budget.Headroom)
	}
}

func TestRecommendResolvesImages(t *testing.T) {
	engine := newTestEngine(officeCatalog())
	images := &stubImages{}
	engine.SetImageResolver(images)

	resp, err := engine.Recommend(context.Background(), entity.RecommendationRequest{
		UseCase: "office", BudgetMax: 60000,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(images.calls) != len(resp.Recommendations) {
		t.Errorf("resolver called %d times for %d picks", len(images.calls), len(resp.Recommendations))
	}
	for _, rec := range resp.Recommendations {
		if rec.ImageURL == "" {
			t.Errorf("%s has no image URL", rec.SKU)
		}
	}
}
