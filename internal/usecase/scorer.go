package usecase

import (
	"math"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

// Scoring calibration constants. Tuned by inspection against real catalogs;
// they set relative ranking within one tier's pool, not an absolute scale.
const (
	pricePeakBonus    = 12.0
	priceDistanceGain = 18.0
	tooCheapRatio     = 0.55
	tooCheapPenalty   = 2.0

	avoidancePenalty = 8.0

	minMemoryBonus  = 4.0
	minStorageBonus = 3.0

	headroomMemoryGB     = 16
	headroomMemoryBonus  = 3.0
	headroomStorageGB    = 512
	headroomStorageBonus = 2.0

	gpuRequiredBonus      = 10.0
	gpuRequiredPenalty    = 20.0
	cameraRequiredBonus   = 6.0
	cameraRequiredPenalty = 10.0

	deviceMatchBonus    = 4.0
	deviceMismatchPenal = 3.0

	optionalPrefPoints = 2.0

	screenMatchBonus    = 2.0
	screenMismatchPenal = 1.0
)

// score rates one candidate against one tier's center price. Pure and
// deterministic; unknown attributes contribute nothing rather than failing.
func score(row entity.CatalogRow, attrs entity.AttributeBundle, feats entity.DeviceFeatureBundle,
	profile entity.UseCaseProfile, tierCenter, headroomCenter int, prefs entity.BuyerPreferences) float64 {

	total := 0.0

	// Price proximity: a symmetric log-distance bump peaking at ratio 1,
	// reaching zero near 0.51x and 1.95x of the tier center.
	ratio := float64(row.Price) / float64(tierCenter)
	total += math.Max(0, pricePeakBonus-priceDistanceGain*math.Abs(math.Log(ratio)))
	if ratio < tooCheapRatio {
		total -= tooCheapPenalty
	}

	if profile.Avoid.SpinningDiskOnly && attrs.SpinningDiskOnly {
		total -= avoidancePenalty
	}
	if profile.Avoid.MemoryUnderGB > 0 {
		mem := 0
		if attrs.MemoryGB != nil {
			mem = *attrs.MemoryGB
		}
		if mem < profile.Avoid.MemoryUnderGB {
			total -= avoidancePenalty
		}
	}

	if attrs.MemoryGB != nil && *attrs.MemoryGB >= profile.MinMemoryGB {
		total += minMemoryBonus
	}
	if attrs.StorageGB != nil && *attrs.StorageGB >= profile.MinStorageGB {
		total += minStorageBonus
	}

	// The headroom search explicitly over-weights future-proofing.
	if tierCenter >= headroomCenter {
		if attrs.MemoryGB != nil && *attrs.MemoryGB >= headroomMemoryGB {
			total += headroomMemoryBonus
		}
		if attrs.StorageGB != nil && *attrs.StorageGB >= headroomStorageGB {
			total += headroomStorageBonus
		}
	}

	// Hard requirements also count here; the selector's hard filter is what
	// actually keeps a non-qualifying candidate from winning.
	if profile.Require.GPU {
		if attrs.HasDiscreteGPU {
			total += gpuRequiredBonus
		} else {
			total -= gpuRequiredPenalty
		}
	}
	if profile.Require.Camera {
		if feats.HasCamera {
			total += cameraRequiredBonus
		} else {
			total -= cameraRequiredPenalty
		}
	}

	if prefs.Device != entity.DeviceAny {
		switch feats.DeviceType {
		case prefs.Device:
			total += deviceMatchBonus
		case entity.DeviceAny:
			// Unknown form factor is not penalized.
		default:
			total -= deviceMismatchPenal
		}
	}

	if prefs.NeedsKeypad {
		if feats.HasNumericKeypad {
			total += optionalPrefPoints
		} else {
			total -= optionalPrefPoints
		}
	}
	if prefs.NeedsCamera {
		if feats.HasCamera {
			total += optionalPrefPoints
		} else {
			total -= optionalPrefPoints
		}
	}

	if prefs.Screen != entity.ScreenNone && feats.ScreenInches != nil {
		if screenMatches(prefs.Screen, *feats.ScreenInches) {
			total += screenMatchBonus
		} else {
			total -= screenMismatchPenal
		}
	}

	if attrs.CPUGeneration != nil {
		switch gen := *attrs.CPUGeneration; {
		case gen >= 8:
			total += 2
		case gen >= 6:
			total += 1
		default:
			total -= 1
		}
	}

	return total
}

func screenMatches(pref entity.ScreenPref, inches float64) bool {
	if pref == entity.ScreenLarge {
		return inches >= 15
	}
	return inches < 15
}
