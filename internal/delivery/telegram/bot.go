package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

// Recommender is the slice of the engine the bot needs.
type Recommender interface {
	Recommend(ctx context.Context, req entity.RecommendationRequest) (*entity.RecommendationResponse, error)
}

// BotHandler answers shop-staff queries in Telegram: a free-text message like
// 「ゲーム用 予算10万 ノート」 comes back as up to three tiered picks.
type BotHandler struct {
	bot    *tgbotapi.BotAPI
	engine Recommender
	logger zerolog.Logger
}

func NewBotHandler(token string, engine Recommender, logger zerolog.Logger) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &BotHandler{
		bot:    bot,
		engine: engine,
		logger: logger.With().Str("component", "telegram").Logger(),
	}, nil
}

// Start polls for updates until ctx is cancelled.
func (h *BotHandler) Start(ctx context.Context) {
	h.logger.Info().Str("bot", h.bot.Self.UserName).Msg("telegram bot started")

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := h.bot.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			h.logger.Info().Msg("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *BotHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		h.handleCommand(msg)
		return
	}

	req := parseRecommendationText(msg.Text)
	resp, err := h.engine.Recommend(ctx, req)
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("recommendation failed")
		h.reply(msg.Chat.ID, "申し訳ありません、商品情報の取得に失敗しました。しばらくしてからもう一度お試しください。")
		return
	}
	h.reply(msg.Chat.ID, formatResponse(resp))
}

func (h *BotHandler) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		h.reply(msg.Chat.ID, helpText)
	default:
		h.reply(msg.Chat.ID, "そのコマンドには対応していません。/help をご覧ください。")
	}
}

const helpText = `用途と予算を送ると、おすすめのパソコンを最大3件ご提案します。

例:
・事務用 予算5万
・ビデオ会議 予算6万 ノート カメラ付き
・ゲーム用 予算10万
・動画編集 予算8万 デスクトップ

条件を省略した場合は事務用・予算5万円として探します。`

func (h *BotHandler) reply(chatID int64, text string) {
	out := tgbotapi.NewMessage(chatID, text)
	out.DisableWebPagePreview = true
	if _, err := h.bot.Send(out); err != nil {
		h.logger.Warn().Err(err).Int64("chat_id", chatID).Msg("send failed")
	}
}
