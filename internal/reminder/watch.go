package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Watcher fires the reminder digest on a cron cadence and delivers it
// through an adapter. Delivery is best-effort: a failed send is logged
// and the loop continues to the next fire time.
type Watcher struct {
	db       *gorm.DB
	adapter  Adapter
	cronExpr string
	channel  string

	// now is the injected clock. Defaults to time.Now.
	now func() time.Time
}

// WatcherOpts holds parameters for creating a Watcher.
type WatcherOpts struct {
	DB       *gorm.DB
	Adapter  Adapter
	CronExpr string // 5-field cron expression, e.g. "0 9 * * *"
	Channel  string // target channel (empty for adapter default)
	Now      func() time.Time
}

// NewWatcher creates a Watcher.
func NewWatcher(opts WatcherOpts) (*Watcher, error) {
	if opts.DB == nil {
		return nil, fmt.Errorf("reminder: watcher: db is required")
	}
	if opts.Adapter == nil {
		return nil, fmt.Errorf("reminder: watcher: adapter is required")
	}
	if !ValidCron(opts.CronExpr) {
		return nil, fmt.Errorf("reminder: watcher: invalid cron expression %q", opts.CronExpr)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Watcher{
		db:       opts.DB,
		adapter:  opts.Adapter,
		cronExpr: opts.CronExpr,
		channel:  opts.Channel,
		now:      now,
	}, nil
}

// SendOnce builds the current digest and sends it immediately.
func (w *Watcher) SendOnce(ctx context.Context) error {
	digest, err := BuildDigest(w.db, w.now())
	if err != nil {
		return err
	}
	msg := FormatDigest(digest)
	msg.ChannelID = w.channel
	if err := w.adapter.Send(ctx, msg); err != nil {
		return fmt.Errorf("reminder: send digest: %w", err)
	}
	return nil
}

// Run blocks, sending a digest at each cron fire time until the context
// is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		wait := nextCronDuration(w.cronExpr, w.now())
		if wait <= 0 {
			// Parse succeeded at construction, so a zero here means the
			// next fire is immediate. Back off a minute to avoid spinning.
			wait = time.Minute
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		if err := w.SendOnce(ctx); err != nil {
			log.Printf("reminder: digest delivery failed: %v", err)
		}
	}
}
