package telegram

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

var (
	// 予算10万 / 10万円 / 60000円 / 60000yen / 予算45000. A bare number needs a
	// currency marker or a 予算 prefix, otherwise model numbers like 10510
	// would be read as budgets.
	budgetManRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*万`)
	budgetYenRe    = regexp.MustCompile(`(?i)(\d{4,7})\s*(?:円|yen)`)
	budgetPrefixRe = regexp.MustCompile(`予算\s*(\d{4,7})`)
)

var useCaseTokens = []struct {
	tokens  []string
	useCase string
}{
	{[]string{"ゲーム", "ゲーミング", "game", "gaming"}, "game"},
	{[]string{"制作", "編集", "クリエイ", "動画", "デザイン", "creator", "creative"}, "creator"},
	{[]string{"会議", "ズーム", "zoom", "ミーティング", "meeting", "ビデオ通話"}, "zoom"},
	{[]string{"事務", "オフィス", "office", "ブラウジング", "仕事"}, "office"},
}

// parseRecommendationText maps a free-text staff message onto a request.
// Anything it cannot read falls back to the engine defaults.
func parseRecommendationText(text string) entity.RecommendationRequest {
	lower := strings.ToLower(text)

	req := entity.RecommendationRequest{}
	for _, group := range useCaseTokens {
		for _, tok := range group.tokens {
			if strings.Contains(lower, tok) {
				req.UseCase = group.useCase
				break
			}
		}
		if req.UseCase != "" {
			break
		}
	}

	req.BudgetMax = parseBudget(lower)

	switch {
	case containsAny(lower, "ノート", "laptop"):
		req.Device = "laptop"
	case containsAny(lower, "デスクトップ", "desktop", "タワー"):
		req.Device = "desktop"
	}

	if containsAny(lower, "カメラ", "camera", "webcam") {
		req.NeedsCamera = true
	}
	if containsAny(lower, "テンキー", "numpad") {
		req.NeedsKeypad = true
	}
	switch {
	case containsAny(lower, "大画面", "15インチ以上", "大きい画面"):
		req.Screen = "15+"
	case containsAny(lower, "小さめ", "持ち運び", "コンパクト", "13インチ"):
		req.Screen = "13-14"
	}

	return req
}

// parseBudget reads 万-notation first, then a marked yen amount. Zero means
// the engine default applies.
func parseBudget(lower string) int {
	if m := budgetManRe.FindStringSubmatch(lower); m != nil {
		if man, err := strconv.ParseFloat(m[1], 64); err == nil && man > 0 {
			return int(man * 10000)
		}
	}
	for _, re := range []*regexp.Regexp{budgetYenRe, budgetPrefixRe} {
		if m := re.FindStringSubmatch(lower); m != nil {
			if yen, err := strconv.Atoi(m[1]); err == nil && yen >= 1000 {
				return yen
			}
		}
	}
	return 0
}

func containsAny(s string, tokens ...string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}
