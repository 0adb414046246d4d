package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/constants"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/repository"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates the advice generator. The engine works without it;
// the model only rewrites the response note as a friendly shop-clerk message.
func NewGeminiClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(constants.GeminiModelName)
	model.SetTemperature(constants.AITemperature)
	model.SetTopK(constants.AITopK)
	model.SetTopP(constants.AITopP)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(`あなたはパソコンショップの店員です。お客様に提案済みの商品リストについて、一言アドバイスを書いてください。

ルール:
- 日本語で、2〜3文以内
- 丁寧だが堅すぎない接客口調
- 商品名や価格を勝手に変えない、新しい商品を提案しない
- 絵文字は使わない
- 選び方のポイント(用途との相性、価格帯の違い)を簡潔に伝える`),
		},
	}

	return &geminiClient{client: client, model: model}, nil
}

// GenerateAdvice asks the model for a short note about the final picks.
func (g *geminiClient) GenerateAdvice(ctx context.Context, useCaseLabel string, recs []entity.Recommendation) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "用途: %s\n提案した商品:\n", useCaseLabel)
	for i, rec := range recs {
		fmt.Fprintf(&b, "%d. [%s] %s - %d円\n", i+1, rec.Tier, rec.Name, rec.Price)
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(b.String()))
	if err != nil {
		return "", fmt.Errorf("failed to generate advice: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from AI")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// Close releases the underlying API client.
func (g *geminiClient) Close() error {
	return g.client.Close()
}
