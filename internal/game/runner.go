package game

import (
	"context"
	"log/slog"
	"time"
)

const TickInterval = time.Second

// Runner is the single owner of a session. Commands and clock ticks are
// applied one at a time from the goroutine calling Run.
type Runner struct {
	logger   *slog.Logger
	session  *Session
	publish  func(View)
	interval time.Duration

	ticker *time.Ticker
}

func NewRunner(logger *slog.Logger, session *Session, publish func(View)) *Runner {
	return &Runner{
		logger:   logger,
		session:  session,
		publish:  publish,
		interval: TickInterval,
	}
}

// tick returns the ticker channel, or nil while the clock is stopped.
func (r *Runner) tick() <-chan time.Time {
	if r.ticker == nil {
		return nil
	}
	return r.ticker.C
}

// syncTicker runs the ticker only while the session is active.
func (r *Runner) syncTicker() {
	switch active := r.session.Active(); {
	case active && r.ticker == nil:
		r.ticker = time.NewTicker(r.interval)
		r.logger.Debug("clock started")
	case !active && r.ticker != nil:
		r.stopTicker()
		r.logger.Debug("clock stopped")
	}
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
}

// Run publishes the initial state and then every state change until ctx is
// done or commands is closed. Rejected commands are logged and skipped.
func (r *Runner) Run(ctx context.Context, commands <-chan Command) error {
	defer r.stopTicker()

	r.publish(r.session.View())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			if err := cmd(r.session); err != nil {
				r.logger.Warn("command rejected", slog.Any("error", err))
				continue
			}
			r.syncTicker()
			r.publish(r.session.View())

		case <-r.tick():
			if r.session.Tick() {
				r.publish(r.session.View())
			}
		}
	}
}
