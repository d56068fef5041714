package telegram

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"explain-this/api/internal/simplify"
	"explain-this/api/internal/util"
)

// maxReplyRunes keeps replies under Telegram's 4096-character message limit.
const maxReplyRunes = 3900

// Sender is the part of *tgbotapi.BotAPI the router needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Router struct {
	Bot    Sender
	Disp   *simplify.Dispatcher
	Levels *Levels
	Log    *slog.Logger
}

func NewRouter(bot Sender, disp *simplify.Dispatcher, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{
		Bot:    bot,
		Disp:   disp,
		Levels: NewLevels(simplify.DefaultComplexity),
		Log:    log,
	}
}

func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil || upd.Message.Chat == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.HandleCommand(upd)
		return
	}
	if strings.TrimSpace(upd.Message.Text) == "" {
		r.send(upd.Message.Chat.ID, "Send me some text and I will explain it in simpler words.")
		return
	}
	r.explain(ctx, upd.Message.Chat.ID, upd.Message.Text)
}

func (r *Router) explain(ctx context.Context, chatID int64, text string) {
	level := string(r.Levels.Get(chatID))
	res, err := r.Disp.Analyze(ctx, simplify.AnalyzeRequest{Text: text, Complexity: &level})
	if err != nil {
		kind := simplify.KindOf(err)
		if !kind.IsClientError() {
			r.Log.Error("telegram analyze failed", "chat_id", chatID, "kind", kind, "error", err)
		}
		r.send(chatID, "⚠️ "+err.Error())
		return
	}
	r.send(chatID, util.Truncate(res.Simplified, maxReplyRunes))
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.Log.Warn("telegram send failed", "chat_id", chatID, "error", err)
	}
}
