// Package bot wires the Telegram command surface to the session
// machinery and the content repository.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/n9rs9/hadithsahih/internal/config"
	"github.com/n9rs9/hadithsahih/internal/content"
	"github.com/n9rs9/hadithsahih/internal/domain"
	"github.com/n9rs9/hadithsahih/internal/session"
	"github.com/n9rs9/hadithsahih/internal/store"
)

const storeTimeout = 3 * time.Second

// Bot is the Telegram front end.
type Bot struct {
	tb   *tele.Bot
	cfg  *config.Config
	lib  *content.Repository
	reg  *session.Registry
	repo store.Repository
	rng  *rand.Rand
}

// New builds the bot and registers every handler. Updates are
// dispatched synchronously: one interaction is processed to completion
// before the next, so only the sweeper runs concurrently with handlers.
func New(cfg *config.Config, lib *content.Repository, reg *session.Registry, repo store.Repository) (*Bot, error) {
	tb, err := tele.NewBot(tele.Settings{
		Token:       cfg.Token,
		Poller:      &tele.LongPoller{Timeout: 10 * time.Second},
		Synchronous: true,
		OnError: func(err error, c tele.Context) {
			slog.Error("Handler failed", "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	b := &Bot{
		tb:   tb,
		cfg:  cfg,
		lib:  lib,
		reg:  reg,
		repo: repo,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	tb.Handle("/ping", b.handlePing)
	tb.Handle("/start", b.command(domain.CommandCommands))
	tb.Handle("/commands", b.command(domain.CommandCommands))
	tb.Handle("/info", b.command(domain.CommandInfo))
	tb.Handle("/hadith", b.command(domain.CommandHadith))
	tb.Handle("/book", b.command(domain.CommandBook))
	tb.Handle("/quiz", b.command(domain.CommandQuiz))
	tb.Handle(tele.OnCallback, b.handleCallback)

	return b, nil
}

// Start begins long polling. It blocks until Stop is called.
func (b *Bot) Start() {
	slog.Info("Bot connected", "username", b.tb.Me.Username, "id", b.tb.Me.ID)
	b.tb.Start()
}

// Stop shuts down the poller.
func (b *Bot) Stop() {
	b.tb.Stop()
}

// ExpireSession is the sweeper callback: it strips the expired
// prompt's buttons. Rendered content is left as-is.
func (b *Bot) ExpireSession(s *session.Session) {
	msg := tele.StoredMessage{
		ChatID:    s.ChatID,
		MessageID: strconv.Itoa(s.MessageID),
	}
	if _, err := b.tb.EditReplyMarkup(msg, nil); err != nil {
		slog.Warn("Failed to disable expired session message",
			"session_id", s.ID, "error", err)
	}
}

// handlePing replies directly, without the language prompt.
func (b *Bot) handlePing(c tele.Context) error {
	latency := time.Since(c.Message().Time()).Milliseconds()
	if latency < 0 {
		latency = 0
	}
	return c.Send(fmt.Sprintf(pingReply, latency, latency), tele.ModeHTML)
}

// command returns a handler that opens a language-select session for
// cmd and tracks it under the sent prompt message.
func (b *Bot) command(cmd domain.Command) tele.HandlerFunc {
	return func(c tele.Context) error {
		s := session.New(c.Sender().ID, cmd, b.cfg.LanguageTimeout)
		prompt := languagePrompt()

		msg, err := b.tb.Send(c.Chat(), prompt.text, prompt.markup, tele.ModeHTML)
		if err != nil {
			return fmt.Errorf("send language prompt: %w", err)
		}
		b.reg.Track(s, msg.Chat.ID, msg.ID)

		b.record(func(ctx context.Context) error {
			return b.repo.RecordInvocation(ctx, &domain.Invocation{
				SessionID: s.ID.String(),
				UserID:    s.Owner,
				Command:   cmd,
				CreatedAt: time.Now(),
			})
		})
		return nil
	}
}

// handleCallback is the single interaction entry point. It parses the
// `action|arg` payload, transitions the session under the registry
// lock, then replaces the message payload.
func (b *Bot) handleCallback(c tele.Context) error {
	cb := c.Callback()
	if cb == nil || cb.Message == nil || cb.Sender == nil {
		return nil
	}

	action, arg, _ := strings.Cut(strings.TrimPrefix(cb.Data, "\f"), "|")
	actor := cb.Sender.ID
	now := time.Now()

	var (
		v          view
		lang       domain.Language
		sessionID  string
		quizResult *domain.QuizResult
	)

	err := b.reg.Update(cb.Message.Chat.ID, cb.Message.ID, func(s *session.Session) error {
		lang = s.Language
		sessionID = s.ID.String()

		switch action {
		case actionLanguage:
			chosen, perr := domain.ParseLanguage(arg)
			if perr != nil {
				return perr
			}
			lang = chosen
			if rerr := s.Resolve(actor, chosen, now); rerr != nil {
				return rerr
			}
			v = b.resolveContent(s, now)

		case actionPage:
			if nerr := s.Navigate(actor, arg == "next", now); nerr != nil {
				return nerr
			}
			v = renderBookPage(s.Language, s.Pages)

		case actionQuiz:
			index, perr := strconv.Atoi(arg)
			if perr != nil {
				return fmt.Errorf("bad quiz payload %q: %w", arg, perr)
			}
			if _, aerr := s.Answer(actor, index, now); aerr != nil {
				return aerr
			}
			if s.State == session.StateDone {
				v = renderQuizFinal(s.Language, s.Quiz.Score, len(s.Quiz.Questions))
				quizResult = &domain.QuizResult{
					SessionID: sessionID,
					UserID:    s.Owner,
					Score:     s.Quiz.Score,
					Total:     len(s.Quiz.Questions),
					CreatedAt: now,
				}
			} else {
				v = renderQuizQuestion(s.Language, s.Quiz)
			}

		default:
			return session.ErrNoSession
		}
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, session.ErrNotOwner):
		return c.Respond(&tele.CallbackResponse{Text: msgs(lang).NotYourCommand})
	case errors.Is(err, session.ErrExpired),
		errors.Is(err, session.ErrTerminal),
		errors.Is(err, session.ErrNoSession):
		return c.Respond(&tele.CallbackResponse{Text: msgs(lang).Expired})
	default:
		slog.Error("Callback dispatch failed",
			"action", action, "arg", arg, "error", err)
		return c.Respond(&tele.CallbackResponse{})
	}

	opts := []interface{}{tele.ModeHTML}
	if v.markup != nil {
		opts = append(opts, v.markup)
	}
	if err := c.Edit(v.text, opts...); err != nil {
		slog.Error("Failed to edit session message",
			"session_id", sessionID, "error", err)
	}

	if action == actionLanguage {
		b.record(func(ctx context.Context) error {
			return b.repo.SetInvocationLanguage(ctx, sessionID, lang)
		})
	}
	if quizResult != nil {
		b.record(func(ctx context.Context) error {
			return b.repo.RecordQuizResult(ctx, quizResult)
		})
	}

	return c.Respond(&tele.CallbackResponse{})
}

// resolveContent renders the payload for a freshly resolved session,
// loading content for the chosen language. One-shot commands finish
// the session; book and quiz stay interactive with a new deadline.
func (b *Bot) resolveContent(s *session.Session, now time.Time) view {
	m := msgs(s.Language)

	switch s.Command {
	case domain.CommandCommands:
		s.Finish()
		return renderCommands(s.Language)

	case domain.CommandInfo:
		s.Finish()
		var users int64
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if stats, err := b.repo.Stats(ctx); err != nil {
			slog.Error("Stats lookup failed", "error", err)
		} else {
			users = stats.UsersServed
		}
		return renderInfo(s.Language, users)

	case domain.CommandHadith:
		s.Finish()
		quotes, err := b.lib.Quotations(s.Language)
		if err != nil {
			slog.Error("Hadith load failed", "error", err)
			return renderNotice(s.Language, m.HadithUnavailable)
		}
		if len(quotes) == 0 {
			return renderNotice(s.Language, m.HadithEmpty)
		}
		return renderHadith(s.Language, quotes[b.rng.Intn(len(quotes))])

	case domain.CommandBook:
		entries, err := b.lib.Books(s.Language)
		if err != nil {
			slog.Error("Book list load failed", "error", err)
			s.Finish()
			return renderNotice(s.Language, m.BookUnavailable)
		}
		if len(entries) == 0 {
			s.Finish()
			return renderNotice(s.Language, m.BookEmpty)
		}
		s.Pages = session.NewPages(entries, b.cfg.PageSize)
		s.Extend(now, b.cfg.BrowseTimeout)
		return renderBookPage(s.Language, s.Pages)

	case domain.CommandQuiz:
		pool, err := b.lib.Questions(s.Language)
		if err != nil {
			slog.Error("Quiz load failed", "error", err)
			s.Finish()
			return renderNotice(s.Language, m.QuizUnavailable)
		}
		quiz, err := session.NewQuiz(pool, b.cfg.QuizLength, b.rng)
		if err != nil {
			slog.Warn("Quiz pool too small", "error", err)
			s.Finish()
			return renderNotice(s.Language, m.QuizNotEnough)
		}
		s.Quiz = quiz
		s.Extend(now, b.cfg.QuizTimeout)
		return renderQuizQuestion(s.Language, s.Quiz)
	}

	s.Finish()
	return renderNotice(s.Language, m.Expired)
}

// record runs a usage-log write with a bounded context. Log failures
// never reach the user.
func (b *Bot) record(fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		slog.Warn("Usage log write failed", "error", err)
	}
}
