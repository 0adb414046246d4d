package entity

import "strings"

// UseCase is a closed tag over the supported buying purposes. Adding or removing a
// use case is a compile-time-checked change in the profile table.
type UseCase int

const (
	UseCaseOffice UseCase = iota
	UseCaseZoom
	UseCaseCreator
	UseCaseGame
)

// ParseUseCase maps a request identifier onto a use case.
// Unknown identifiers fall back to the office profile.
func ParseUseCase(raw string) UseCase {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zoom", "video-call", "videocall", "meeting":
		return UseCaseZoom
	case "creator", "creative":
		return UseCaseCreator
	case "game", "gaming":
		return UseCaseGame
	default:
		return UseCaseOffice
	}
}

func (u UseCase) String() string {
	switch u {
	case UseCaseZoom:
		return "zoom"
	case UseCaseCreator:
		return "creator"
	case UseCaseGame:
		return "game"
	default:
		return "office"
	}
}

// HardRequirements are features a candidate must have to be considered at all.
type HardRequirements struct {
	Camera bool
	GPU    bool
}

// AvoidRules are soft penalties the scorer applies. MemoryUnderGB of 0 disables
// the memory floor rule.
type AvoidRules struct {
	SpinningDiskOnly bool
	MemoryUnderGB    int
}

// UseCaseProfile is the static rule set for one use case. The table is read-only
// process-wide configuration; no request mutates it.
type UseCaseProfile struct {
	Label        string
	TargetPrice  map[DeviceType]int
	MinMemoryGB  int
	MinStorageGB int
	Require      HardRequirements
	Avoid        AvoidRules
}

// BaselineFor resolves the profile's baseline target price for a device
// preference, falling back to the any-device baseline.
func (p UseCaseProfile) BaselineFor(device DeviceType) int {
	if price, ok := p.TargetPrice[device]; ok && price > 0 {
		return price
	}
	return p.TargetPrice[DeviceAny]
}

// Tier labels the three target price points.
type Tier string

const (
	TierEnough      Tier = "enough"
	TierComfortable Tier = "comfortable"
	TierHeadroom    Tier = "headroom"
)

// BudgetPlan holds the three monotonically non-decreasing price anchors computed
// for one request, plus the clamped target they derive from.
type BudgetPlan struct {
	Target      int `json:"target"`
	Enough      int `json:"enough"`
	Comfortable int `json:"comfortable"`
	Headroom    int `json:"headroom"`
}

// CenterFor returns the anchor price for a tier.
func (b BudgetPlan) CenterFor(tier Tier) int {
	switch tier {
	case TierComfortable:
		return b.Comfortable
	case TierHeadroom:
		return b.Headroom
	default:
		return b.Enough
	}
}

// BuyerPreferences are the optional soft preferences of one request,
// already normalized from the raw request strings.
type BuyerPreferences struct {
	Device      DeviceType
	NeedsCamera bool
	NeedsKeypad bool
	Screen      ScreenPref
}

// RecommendationRequest is the external request shape.
type RecommendationRequest struct {
	UseCase     string `json:"useCase"`
	BudgetMax   int    `json:"budgetMax"`
	Device      string `json:"device"`
	NeedsCamera bool   `json:"needsCamera"`
	NeedsKeypad bool   `json:"needsKeypad"`
	Screen      string `json:"screen"`
}

// RecommendationSpecs is the buyer-facing subset of extracted attributes.
type RecommendationSpecs struct {
	MemoryGB         *int       `json:"memory_gb,omitempty"`
	StorageGB        *int       `json:"storage_gb,omitempty"`
	HasDiscreteGPU   bool       `json:"has_discrete_gpu"`
	CPUModel         *string    `json:"cpu_model,omitempty"`
	DeviceType       DeviceType `json:"device_type"`
	HasCamera        bool       `json:"has_camera"`
	HasNumericKeypad bool       `json:"has_numeric_keypad"`
	ScreenInches     *float64   `json:"screen_inches,omitempty"`
}

// Recommendation is one selected product with its tier role and justification.
type Recommendation struct {
	Tier     Tier                `json:"tier"`
	Name     string              `json:"name"`
	Price    int                 `json:"price"`
	URL      string              `json:"url"`
	SKU      string              `json:"sku"`
	ImageURL string              `json:"image_url,omitempty"`
	Specs    RecommendationSpecs `json:"specs"`
	Reason   string              `json:"reason"`
}

// ResponseMeta carries request-level metadata alongside the picks.
type ResponseMeta struct {
	RequestID    string     `json:"request_id"`
	UseCaseLabel string     `json:"use_case_label"`
	Budget       BudgetPlan `json:"budget"`
	Note         string     `json:"note"`
}

// RecommendationResponse is the engine output. An empty recommendation list is a
// valid, successful response.
type RecommendationResponse struct {
	Success         bool             `json:"success"`
	Meta            ResponseMeta     `json:"meta"`
	Recommendations []Recommendation `json:"recommendations"`
}
