package repository

import (
	"context"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

// AIRepository turns a finished recommendation set into a short conversational
// note for the buyer. It is optional enrichment: the engine's templated note is
// used whenever this is absent or fails.
type AIRepository interface {
	GenerateAdvice(ctx context.Context, useCaseLabel string, recs []entity.Recommendation) (string, error)
}
