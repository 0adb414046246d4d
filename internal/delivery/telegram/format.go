package telegram

import (
	"fmt"
	"strings"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

var tierLabels = map[entity.Tier]string{
	entity.TierEnough:      "💡 十分",
	entity.TierComfortable: "👍 快適",
	entity.TierHeadroom:    "🚀 余裕",
}

// formatResponse renders the engine output as one chat message.
func formatResponse(resp *entity.RecommendationResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "【%s】\n", resp.Meta.UseCaseLabel)

	if len(resp.Recommendations) == 0 {
		b.WriteString(resp.Meta.Note)
		return b.String()
	}

	for _, rec := range resp.Recommendations {
		label, ok := tierLabels[rec.Tier]
		if !ok {
			label = string(rec.Tier)
		}
		fmt.Fprintf(&b, "\n%s %s\n", label, rec.Name)
		fmt.Fprintf(&b, "　%s円\n", formatYen(rec.Price))
		if specs := formatSpecs(rec.Specs); specs != "" {
			fmt.Fprintf(&b, "　%s\n", specs)
		}
		fmt.Fprintf(&b, "　%s\n", rec.Reason)
		if rec.URL != "" {
			fmt.Fprintf(&b, "　%s\n", rec.URL)
		}
	}

	if resp.Meta.Note != "" {
		b.WriteString("\n" + resp.Meta.Note)
	}
	return b.String()
}

func formatSpecs(s entity.RecommendationSpecs) string {
	var parts []string
	if s.MemoryGB != nil {
		parts = append(parts, fmt.Sprintf("メモリ%dGB", *s.MemoryGB))
	}
	if s.StorageGB != nil {
		parts = append(parts, fmt.Sprintf("SSD%dGB", *s.StorageGB))
	}
	if s.CPUModel != nil {
		parts = append(parts, *s.CPUModel)
	}
	if s.HasDiscreteGPU {
		parts = append(parts, "GPU搭載")
	}
	return strings.Join(parts, " / ")
}

// formatYen inserts thousands separators, 128000 -> 128,000.
func formatYen(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
