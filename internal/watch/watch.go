package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"skinini/internal/logging"
)

// DefaultDebounce is used when a non-positive debounce is passed to Run.
const DefaultDebounce = 200 * time.Millisecond

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Run calls onChange once per burst of changes to path, after debounce has
// passed without further events. It blocks until ctx is cancelled and only
// returns an error when the watch cannot be established.
func Run(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, onChange func(op string)) error {
	if onChange == nil {
		return errors.New("watch: nil change callback")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger = logging.NewComponentLogger(logger, "watch")

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logger.Debug("watching skin file",
		logging.String(logging.FieldPath, path),
		logging.Duration("debounce", debounce),
	)

	var timer *time.Timer
	var timerCh <-chan time.Time
	var lastOp string
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
		} else {
			timer.Stop()
			timer.Reset(debounce)
		}
		timerCh = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base || ev.Op&relevantOps == 0 {
				continue
			}
			lastOp = ev.Op.String()
			logger.Debug("skin file event", logging.String("event_op", lastOp))
			schedule()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logging.WarnWithContext(logger, "watch error", "watch_error",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "edits may be missed until the next event"),
			)
		case <-timerCh:
			timerCh = nil
			onChange(lastOp)
		}
	}
}
