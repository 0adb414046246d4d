package usecase

import (
	"math"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/constants"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

// ComputeTargetBudget anchors the three tier searches around the use case's
// baseline price, clamped to the buyer's ceiling. A buyer with a huge budget
// shopping for basic office use is still anchored to the office baseline.
//
// enough <= comfortable <= headroom holds by construction: each successive
// clamp lower-bounds at the previous tier.
func ComputeTargetBudget(profile entity.UseCaseProfile, budgetMax int, device entity.DeviceType) entity.BudgetPlan {
	baseline := profile.BaselineFor(device)

	target := baseline
	if budgetMax < target {
		target = budgetMax
	}

	enough := clampInt(target, constants.BudgetFloor, budgetMax)
	comfortable := clampInt(scalePrice(target, constants.ComfortableRatio), enough, budgetMax)
	headroom := clampInt(scalePrice(target, constants.HeadroomRatio), comfortable, budgetMax)

	return entity.BudgetPlan{
		Target:      target,
		Enough:      enough,
		Comfortable: comfortable,
		Headroom:    headroom,
	}
}

func scalePrice(price int, ratio float64) int {
	return int(math.Round(float64(price) * ratio))
}

// clampInt applies the lower bound first, so when lo > hi the upper bound wins
// and the result never exceeds the buyer's ceiling.
func clampInt(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
