package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strconv"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"explain-this/api/internal/config"
	"explain-this/api/internal/handle"
	"explain-this/api/internal/httpserver"
	"explain-this/api/internal/telegram"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot (webhook when WEBHOOK_URL is set, long polling otherwise)",
	RunE:  runBot,
}

func init() {
	rootCmd.AddCommand(botCmd)
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	if cfg.TelegramBotToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required for the bot")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return err
	}
	bot.Debug = false

	disp := newDispatcher(cfg, log)
	r := telegram.NewRouter(bot, disp, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The bot keeps serving the HTTP API next to the updates; ListenForWebhook registers
	// on DefaultServeMux, so the API router is mounted there as well.
	h := handle.New(disp, log)
	http.Handle("/", httpserver.NewRouter(h, log))
	srv := &http.Server{
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	if webhookURL := strings.TrimSpace(cfg.WebhookURL); webhookURL != "" {
		if err := startWebhookMode(ctx, bot, r, webhookURL, log); err != nil {
			return err
		}
	} else {
		go runPolling(ctx, bot, log, defaultPollBackoff, func(upd tgbotapi.Update) {
			r.HandleUpdate(ctx, upd)
		})
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	return shutdownServer(srv, cfg, log)
}

func shutdownServer(srv *http.Server, cfg *config.Config, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", "error", err)
		return err
	}
	log.Info("bot stopped")
	return nil
}

// ---------------- Modes -----------------

func startWebhookMode(ctx context.Context, bot *tgbotapi.BotAPI, r *telegram.Router, baseURL string, log *slog.Logger) error {
	// secret path derived from the token
	path := "/webhook/" + shortHash(bot.Token)
	public := strings.TrimRight(baseURL, "/") + path

	wh, err := tgbotapi.NewWebhook(public)
	if err != nil {
		return err
	}
	wh.DropPendingUpdates = true
	if _, err := bot.Request(wh); err != nil {
		return err
	}

	updates := bot.ListenForWebhook(path)
	go func() {
		for upd := range updates {
			r.HandleUpdate(ctx, upd)
		}
		log.Info("webhook updates channel closed")
	}()

	log.Info("webhook registered", "path", path)
	return nil
}

// ---------------- Polling loop -----------------

var reRetryAfter = regexp.MustCompile(`(?i)retry after\s+(\d+)`)

// pollBackoff turns a getUpdates failure into a wait bounded by [floor, ceil].
type pollBackoff struct {
	floor, ceil time.Duration
}

var defaultPollBackoff = pollBackoff{floor: time.Second, ceil: 15 * time.Second}

func (b pollBackoff) delay(err error) time.Duration {
	if err == nil {
		return 0
	}
	d := time.Second
	var ne net.Error
	switch msg := strings.ToLower(err.Error()); {
	case strings.Contains(msg, "too many requests"):
		d = 3 * time.Second
		if m := reRetryAfter.FindStringSubmatch(msg); len(m) == 2 {
			if n, _ := strconv.Atoi(m[1]); n > 0 {
				d = time.Duration(n) * time.Second
			}
		}
	case errors.As(err, &ne) && ne.Timeout():
		d = 2 * time.Second
	}
	return min(max(d, b.floor), b.ceil)
}

// runPolling long-polls getUpdates until ctx is done, handing each update to fn in order.
func runPolling(ctx context.Context, bot *tgbotapi.BotAPI, log *slog.Logger, backoff pollBackoff, fn func(tgbotapi.Update)) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	for ctx.Err() == nil {
		updates, err := bot.GetUpdates(u)
		if err != nil {
			d := backoff.delay(err)
			log.Warn("polling error", "error", err, "retry_in", d)
			select {
			case <-ctx.Done():
			case <-time.After(d):
			}
			continue
		}
		for _, upd := range updates {
			if upd.UpdateID >= u.Offset {
				u.Offset = upd.UpdateID + 1
			}
			fn(upd)
		}
	}
	log.Info("polling stopped", "reason", ctx.Err())
}

// ---------------- Helpers -----------------

func shortHash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])[:16]
}
