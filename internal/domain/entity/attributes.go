package entity

import "strings"

// DeviceType is the detected form factor: laptop, desktop, or any when unknown.
type DeviceType string

const (
	DeviceAny     DeviceType = "any"
	DeviceLaptop  DeviceType = "laptop"
	DeviceDesktop DeviceType = "desktop"
)

// ParseDeviceType normalizes a buyer-supplied device preference.
// Unknown or empty values become DeviceAny.
func ParseDeviceType(raw string) DeviceType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "laptop", "note", "notebook":
		return DeviceLaptop
	case "desktop", "tower":
		return DeviceDesktop
	default:
		return DeviceAny
	}
}

// ScreenPref is the buyer's two-bucket screen size preference.
type ScreenPref string

const (
	ScreenNone    ScreenPref = ""
	ScreenCompact ScreenPref = "13-14"
	ScreenLarge   ScreenPref = "15+"
)

// ParseScreenPref parses the screen bucket identifier; anything else is no preference.
func ParseScreenPref(raw string) ScreenPref {
	switch strings.TrimSpace(raw) {
	case string(ScreenCompact):
		return ScreenCompact
	case string(ScreenLarge):
		return ScreenLarge
	default:
		return ScreenNone
	}
}

// AttributeBundle is the hardware performance profile heuristically extracted from a
// row's free text. Nil pointers mean the signal was absent, never an error.
// Values are best-effort estimates, not certified specifications.
type AttributeBundle struct {
	MemoryGB         *int    `json:"memory_gb,omitempty"`
	StorageGB        *int    `json:"storage_gb,omitempty"`
	HasDiscreteGPU   bool    `json:"has_discrete_gpu"`
	SpinningDiskOnly bool    `json:"spinning_disk_only"`
	CPUModel         *string `json:"cpu_model,omitempty"`
	CPUGeneration    *int    `json:"cpu_generation,omitempty"`
}

// DeviceFeatureBundle is the usability-facing side of extraction: form factor,
// camera, numeric keypad and screen size.
type DeviceFeatureBundle struct {
	DeviceType       DeviceType `json:"device_type"`
	HasCamera        bool       `json:"has_camera"`
	HasNumericKeypad bool       `json:"has_numeric_keypad"`
	ScreenInches     *float64   `json:"screen_inches,omitempty"`
}
