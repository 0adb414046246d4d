package usecase

import "github.com/eruerumiru/makeshop-recotest/internal/domain/entity"

// ProfileFor returns the static rule set for a use case. The switch is
// exhaustive over the closed entity.UseCase tag; the office profile doubles as
// the fallback for the zero value.
//
// Target prices are integer yen, calibrated for the second-hand PC market.
func ProfileFor(useCase entity.UseCase) entity.UseCaseProfile {
	switch useCase {
	case entity.UseCaseZoom:
		return entity.UseCaseProfile{
			Label: "ビデオ会議用",
			TargetPrice: map[entity.DeviceType]int{
				entity.DeviceLaptop:  35000,
				entity.DeviceDesktop: 28000,
				entity.DeviceAny:     30000,
			},
			MinMemoryGB:  8,
			MinStorageGB: 256,
			Require:      entity.HardRequirements{Camera: true},
			Avoid:        entity.AvoidRules{SpinningDiskOnly: true, MemoryUnderGB: 8},
		}
	case entity.UseCaseCreator:
		return entity.UseCaseProfile{
			Label: "クリエイティブ制作用",
			TargetPrice: map[entity.DeviceType]int{
				entity.DeviceLaptop:  60000,
				entity.DeviceDesktop: 55000,
				entity.DeviceAny:     55000,
			},
			MinMemoryGB:  16,
			MinStorageGB: 512,
			Require:      entity.HardRequirements{GPU: true},
			Avoid:        entity.AvoidRules{SpinningDiskOnly: true, MemoryUnderGB: 16},
		}
	case entity.UseCaseGame:
		return entity.UseCaseProfile{
			Label: "ゲーミング用",
			TargetPrice: map[entity.DeviceType]int{
				entity.DeviceLaptop:  90000,
				entity.DeviceDesktop: 80000,
				entity.DeviceAny:     80000,
			},
			MinMemoryGB:  16,
			MinStorageGB: 512,
			Require:      entity.HardRequirements{GPU: true},
			Avoid:        entity.AvoidRules{SpinningDiskOnly: true, MemoryUnderGB: 16},
		}
	default: // entity.UseCaseOffice
		return entity.UseCaseProfile{
			Label: "事務・ブラウジング用",
			TargetPrice: map[entity.DeviceType]int{
				entity.DeviceLaptop:  25000,
				entity.DeviceDesktop: 18000,
				entity.DeviceAny:     20000,
			},
			MinMemoryGB:  8,
			MinStorageGB: 128,
			Avoid:        entity.AvoidRules{SpinningDiskOnly: true, MemoryUnderGB: 8},
		}
	}
}
