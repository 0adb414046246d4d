package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

// SpecExtractor parses free-text product name/description into structured
// attribute bundles. Implementations are total: absent signals yield nil or
// false fields, never errors. One implementation exists per catalog-text
// convention so that other locales can be added without touching the scorer.
type SpecExtractor interface {
	Extract(text string) (entity.AttributeBundle, entity.DeviceFeatureBundle)
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Memory: keyword then number+GB within a short window, or the reverse order.
	// Memory is always stated in GB in this catalog domain.
	memoryAfterRe  = regexp.MustCompile(`(?i)(?:メモリー?|memory|RAM)[^0-9]{0,12}(\d+)\s*GB`)
	memoryBeforeRe = regexp.MustCompile(`(?i)(\d+)\s*GB[^0-9]{0,6}(?:メモリー?|memory|RAM)`)

	// Storage: SSD keyword paired with number+unit; TB normalized to GB.
	storageAfterRe  = regexp.MustCompile(`(?i)SSD[^0-9]{0,12}(\d+)\s*(GB|TB)`)
	storageBeforeRe = regexp.MustCompile(`(?i)(\d+)\s*(GB|TB)[^0-9]{0,6}SSD`)

	hddTokenRe = regexp.MustCompile(`(?i)HDD`)
	ssdTokenRe = regexp.MustCompile(`(?i)SSD`)

	gpuBrandRe = regexp.MustCompile(`(?i)\b(?:GeForce|RTX|GTX|Radeon|Arc)\b`)

	cpuIntelRe = regexp.MustCompile(`(?i)\bi[3579]-(\d{4,5})[A-Z]{0,2}\b`)
	cpuRyzenRe = regexp.MustCompile(`(?i)\bRyzen\s*[3579]\s*\d{4}[A-Z]{0,2}\b`)

	// Screen size: decimal number immediately before a localized inch unit.
	// "型" alone also appears in 一体型, so the leading digits are mandatory.
	screenRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:インチ|型|inch(?:es)?)`)
)

var laptopTokens = []string{
	"ノート", "laptop", "notebook", "thinkpad", "dynabook", "lifebook",
	"let's note", "レッツノート",
}

var desktopTokens = []string{
	"デスクトップ", "desktop", "タワー", "tower", "一体型",
	"optiplex", "prodesk", "elitedesk", "thinkcentre", "esprimo",
}

var cameraTokens = []string{"カメラ", "webカメラ", "webcam", "web camera"}

var keypadTokens = []string{"テンキー", "numpad", "numeric keypad", "10キー"}

type japaneseSpecExtractor struct{}

// NewJapaneseSpecExtractor returns the extractor for Japanese-locale catalog
// text (the conventions used by second-hand PC listings on domestic EC malls).
func NewJapaneseSpecExtractor() SpecExtractor {
	return japaneseSpecExtractor{}
}

// Extract derives both bundles from a single pass over the row text.
func (japaneseSpecExtractor) Extract(text string) (entity.AttributeBundle, entity.DeviceFeatureBundle) {
	// Multi-line descriptions are flattened so windowed patterns see one line.
	flat := whitespaceRe.ReplaceAllString(text, " ")
	lower := strings.ToLower(flat)

	attrs := entity.AttributeBundle{
		MemoryGB:       extractMemoryGB(flat),
		StorageGB:      extractStorageGB(flat),
		HasDiscreteGPU: gpuBrandRe.MatchString(flat),
	}

	// An SSD mention anywhere suppresses the flag: HDD+SSD hybrids are not
	// spinning-disk-only.
	attrs.SpinningDiskOnly = hddTokenRe.MatchString(flat) && !ssdTokenRe.MatchString(flat)

	attrs.CPUModel, attrs.CPUGeneration = extractCPU(flat)

	feats := entity.DeviceFeatureBundle{
		DeviceType:       classifyDeviceType(lower),
		HasCamera:        containsAnyToken(lower, cameraTokens),
		HasNumericKeypad: containsAnyToken(lower, keypadTokens),
		ScreenInches:     extractScreenInches(flat),
	}

	return attrs, feats
}

func extractMemoryGB(text string) *int {
	match := memoryAfterRe.FindStringSubmatch(text)
	if match == nil {
		match = memoryBeforeRe.FindStringSubmatch(text)
	}
	if match == nil {
		return nil
	}
	size, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &size
}

func extractStorageGB(text string) *int {
	match := storageAfterRe.FindStringSubmatch(text)
	if match == nil {
		match = storageBeforeRe.FindStringSubmatch(text)
	}
	if match == nil {
		return nil
	}
	size, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	if strings.EqualFold(match[2], "TB") {
		size *= 1024
	}
	return &size
}

func extractCPU(text string) (*string, *int) {
	if match := cpuIntelRe.FindStringSubmatch(text); match != nil {
		model := match[0]
		gen := intelGeneration(match[1])
		return &model, gen
	}
	if model := cpuRyzenRe.FindString(text); model != "" {
		// Generation estimation is Intel-style only.
		return &model, nil
	}
	return nil, nil
}

// intelGeneration reads the generation off the model number: 4 digits means the
// first digit is the generation (i5-8250U -> 8), 5 digits the first two
// (i7-10510U -> 10).
func intelGeneration(digits string) *int {
	var genDigits string
	switch len(digits) {
	case 4:
		genDigits = digits[:1]
	case 5:
		genDigits = digits[:2]
	default:
		return nil
	}
	gen, err := strconv.Atoi(genDigits)
	if err != nil {
		return nil
	}
	return &gen
}

func classifyDeviceType(lower string) entity.DeviceType {
	isLaptop := containsAnyToken(lower, laptopTokens)
	isDesktop := containsAnyToken(lower, desktopTokens)
	switch {
	case isLaptop && !isDesktop:
		return entity.DeviceLaptop
	case isDesktop && !isLaptop:
		return entity.DeviceDesktop
	default:
		return entity.DeviceAny
	}
}

func extractScreenInches(text string) *float64 {
	match := screenRe.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	size, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}
	return &size
}

func containsAnyToken(haystack string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}
