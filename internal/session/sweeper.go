package session

import (
	"context"
	"log/slog"
	"time"
)

// ExpireCallback is called for each session finalized by the sweeper,
// outside the registry lock. Implementations strip the prompt
// message's buttons; content already rendered is left as-is.
type ExpireCallback func(s *Session)

// StartSweeper runs a background goroutine that periodically finalizes
// expired sessions. Expiry is best-effort: a session is disabled no
// earlier than its deadline, on the next tick after it.
func StartSweeper(ctx context.Context, reg *Registry, interval time.Duration, onExpire ExpireCallback) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		slog.Info("Session sweeper started", "interval", interval)

		for {
			select {
			case <-ticker.C:
				sweep(reg, onExpire)
			case <-ctx.Done():
				slog.Info("Session sweeper shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

func sweep(reg *Registry, onExpire ExpireCallback) {
	due := reg.ExpireDue(time.Now())
	if len(due) == 0 {
		return
	}

	for _, s := range due {
		slog.Info("Session expired",
			"session_id", s.ID,
			"owner", s.Owner,
			"command", s.Command)
		if onExpire != nil {
			onExpire(s)
		}
	}
}
