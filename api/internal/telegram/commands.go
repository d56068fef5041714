package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"explain-this/api/internal/simplify"
)

const usage = `Send me any text (up to 5000 characters) and I will rewrite it in simpler words.

Commands:
/level — show the current level
/level 5-year-old | teenager | adult — change it
/health — check whether the AI service is available`

func (r *Router) HandleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start", "help":
		r.send(cid, usage)
	case "health":
		if r.Disp.Available() {
			r.send(cid, "✅ AI service is available")
		} else {
			r.send(cid, "⚠️ AI service not available")
		}
	case "level":
		arg := strings.ToLower(strings.TrimSpace(upd.Message.CommandArguments()))
		if arg == "" {
			r.send(cid, "Current level: "+string(r.Levels.Get(cid))+"\nAvailable: "+simplify.ComplexityNames())
			return
		}
		c := simplify.Complexity(arg)
		if !c.Valid() {
			r.send(cid, "Unknown level. Must be one of: "+simplify.ComplexityNames())
			return
		}
		r.Levels.Set(cid, c)
		r.send(cid, "Ok, explaining for: "+arg)
	default:
		r.send(cid, "Unknown command. Try /help")
	}
}
