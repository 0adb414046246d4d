package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/constants"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/repository"
)

// RecommendUseCase runs the recommendation engine: catalog rows in,
// up to three tiered picks out. All computation is synchronous and pure;
// the catalog repository and the optional enrichers are the only
// collaborators that touch the outside world.
type RecommendUseCase struct {
	catalog   repository.CatalogRepository
	extractor SpecExtractor
	images    repository.ImageResolver
	ai        repository.AIRepository
	logger    zerolog.Logger
}

// NewRecommendUseCase wires the engine with its catalog source and extractor.
func NewRecommendUseCase(catalog repository.CatalogRepository, extractor SpecExtractor, logger zerolog.Logger) *RecommendUseCase {
	return &RecommendUseCase{
		catalog:   catalog,
		extractor: extractor,
		logger:    logger.With().Str("component", "recommend").Logger(),
	}
}

// SetImageResolver enables supplementary image lookup for final picks.
func (u *RecommendUseCase) SetImageResolver(r repository.ImageResolver) {
	u.images = r
}

// SetAIRepository enables the conversational advice note.
func (u *RecommendUseCase) SetAIRepository(a repository.AIRepository) {
	u.ai = a
}

// candidate pairs a row with its attributes, extracted once per request.
type candidate struct {
	row   entity.CatalogRow
	attrs entity.AttributeBundle
	feats entity.DeviceFeatureBundle
}

// Recommend evaluates the catalog against one request. An empty result list is
// a valid success; only catalog unavailability is an error.
func (u *RecommendUseCase) Recommend(ctx context.Context, req entity.RecommendationRequest) (*entity.RecommendationResponse, error) {
	if req.BudgetMax <= 0 {
		req.BudgetMax = constants.DefaultBudgetMax
	}

	useCase := entity.ParseUseCase(req.UseCase)
	profile := ProfileFor(useCase)
	prefs := entity.BuyerPreferences{
		Device:      entity.ParseDeviceType(req.Device),
		NeedsCamera: req.NeedsCamera,
		NeedsKeypad: req.NeedsKeypad,
		Screen:      entity.ParseScreenPref(req.Screen),
	}
	plan := ComputeTargetBudget(profile, req.BudgetMax, prefs.Device)

	requestID := uuid.NewString()
	logger := u.logger.With().
		Str("request_id", requestID).
		Str("use_case", useCase.String()).
		Int("budget_max", req.BudgetMax).
		Logger()

	rows, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	pool := u.buildCandidatePool(rows, req.BudgetMax)
	logger.Debug().Int("rows", len(rows)).Int("eligible", len(pool)).Msg("candidate pool built")

	recs := u.selectTiers(pool, profile, plan, prefs)
	u.enrichImages(ctx, recs)

	note := u.buildNote(ctx, profile, plan, recs)

	logger.Debug().Int("returned", len(recs)).Msg("recommendation complete")

	return &entity.RecommendationResponse{
		Success: true,
		Meta: entity.ResponseMeta{
			RequestID:    requestID,
			UseCaseLabel: profile.Label,
			Budget:       plan,
			Note:         note,
		},
		Recommendations: recs,
	}, nil
}

// buildCandidatePool filters for eligibility (in stock, priced, within the
// ceiling) and extracts attributes once per surviving row.
func (u *RecommendUseCase) buildCandidatePool(rows []entity.CatalogRow, budgetMax int) []candidate {
	pool := make([]candidate, 0, len(rows))
	for _, row := range rows {
		if row.Quantity <= 0 || row.Price <= 0 || row.Price > budgetMax {
			continue
		}
		attrs, feats := u.extractor.Extract(row.Name + "\n" + row.Description)
		pool = append(pool, candidate{row: row, attrs: attrs, feats: feats})
	}
	return pool
}

// selectTiers runs the three independent tier scans and deduplicates in tier
// order, so a product that wins several tiers keeps its earliest tier label.
func (u *RecommendUseCase) selectTiers(pool []candidate, profile entity.UseCaseProfile,
	plan entity.BudgetPlan, prefs entity.BuyerPreferences) []entity.Recommendation {

	tiers := []entity.Tier{entity.TierEnough, entity.TierComfortable, entity.TierHeadroom}

	recs := make([]entity.Recommendation, 0, constants.MaxRecommendations)
	seen := make(map[string]struct{}, constants.MaxRecommendations)

	for _, tier := range tiers {
		best := pickOne(pool, profile, plan.CenterFor(tier), plan.Headroom, prefs)
		if best == nil {
			continue
		}
		key := best.row.DedupeKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		recs = append(recs, buildRecommendation(tier, *best, profile))
	}
	return recs
}

// pickOne scans the full eligible pool for one tier. Candidates failing a hard
// requirement are excluded entirely, not merely penalized. The first maximum
// wins, which makes the tie break stable over scan order.
func pickOne(pool []candidate, profile entity.UseCaseProfile, tierCenter, headroomCenter int,
	prefs entity.BuyerPreferences) *candidate {

	if tierCenter <= 0 {
		return nil
	}

	var best *candidate
	bestScore := 0.0
	for i := range pool {
		c := &pool[i]
		if profile.Require.Camera && !c.feats.HasCamera {
			continue
		}
		if profile.Require.GPU && !c.attrs.HasDiscreteGPU {
			continue
		}
		s := score(c.row, c.attrs, c.feats, profile, tierCenter, headroomCenter, prefs)
		if best == nil || s > bestScore {
			best = c
			bestScore = s
		}
	}
	return best
}

func buildRecommendation(tier entity.Tier, c candidate, profile entity.UseCaseProfile) entity.Recommendation {
	return entity.Recommendation{
		Tier:  tier,
		Name:  c.row.Name,
		Price: c.row.Price,
		URL:   c.row.URL,
		SKU:   c.row.SKU,
		Specs: entity.RecommendationSpecs{
			MemoryGB:         c.attrs.MemoryGB,
			StorageGB:        c.attrs.StorageGB,
			HasDiscreteGPU:   c.attrs.HasDiscreteGPU,
			CPUModel:         c.attrs.CPUModel,
			DeviceType:       c.feats.DeviceType,
			HasCamera:        c.feats.HasCamera,
			HasNumericKeypad: c.feats.HasNumericKeypad,
			ScreenInches:     c.feats.ScreenInches,
		},
		Reason: buildReason(tier, c, profile),
	}
}

var tierIntro = map[entity.Tier]string{
	entity.TierEnough:      "予算を抑えつつ用途に足りる1台です",
	entity.TierComfortable: "価格と性能のバランスが良い1台です",
	entity.TierHeadroom:    "長く使える余裕のある構成です",
}

// buildReason composes the buyer-facing justification from the extracted
// attributes. Template text only, no I/O.
func buildReason(tier entity.Tier, c candidate, profile entity.UseCaseProfile) string {
	parts := []string{tierIntro[tier]}

	if c.attrs.MemoryGB != nil {
		if *c.attrs.MemoryGB >= profile.MinMemoryGB {
			parts = append(parts, fmt.Sprintf("メモリ%dGBで%sにも十分", *c.attrs.MemoryGB, profile.Label))
		} else {
			parts = append(parts, fmt.Sprintf("メモリ%dGB", *c.attrs.MemoryGB))
		}
	}
	if c.attrs.StorageGB != nil {
		parts = append(parts, fmt.Sprintf("SSD%dGB搭載", *c.attrs.StorageGB))
	}
	if c.attrs.CPUModel != nil {
		parts = append(parts, fmt.Sprintf("CPUは%s", *c.attrs.CPUModel))
	}
	if c.attrs.HasDiscreteGPU {
		parts = append(parts, "専用グラフィックカード搭載")
	}
	if c.feats.HasCamera {
		parts = append(parts, "カメラ付き")
	}
	if c.feats.HasNumericKeypad {
		parts = append(parts, "テンキー付き")
	}

	return strings.Join(parts, "、") + "。"
}

// enrichImages resolves supplementary images for the final picks only.
func (u *RecommendUseCase) enrichImages(ctx context.Context, recs []entity.Recommendation) {
	if u.images == nil {
		return
	}
	for i := range recs {
		if recs[i].URL == "" {
			continue
		}
		recs[i].ImageURL = u.images.ResolveImage(ctx, recs[i].URL)
	}
}

// buildNote produces the response note: a template sentence, optionally
// replaced by AI-polished advice. AI failure degrades to the template.
func (u *RecommendUseCase) buildNote(ctx context.Context, profile entity.UseCaseProfile,
	plan entity.BudgetPlan, recs []entity.Recommendation) string {

	var note string
	switch len(recs) {
	case 0:
		note = fmt.Sprintf("%sの条件に合う商品が見つかりませんでした。予算や条件を変えてお試しください。", profile.Label)
	default:
		note = fmt.Sprintf("%sとして、目安価格%d円を中心に%d件ご提案します。", profile.Label, plan.Target, len(recs))
	}

	if u.ai == nil || len(recs) == 0 {
		return note
	}
	advice, err := u.ai.GenerateAdvice(ctx, profile.Label, recs)
	if err != nil || strings.TrimSpace(advice) == "" {
		if err != nil {
			u.logger.Warn().Err(err).Msg("advice generation failed, using template note")
		}
		return note
	}
	return advice
}
