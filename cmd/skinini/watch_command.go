package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"skinini/internal/logging"
	"skinini/internal/skin"
	"skinini/internal/skinfile"
	"skinini/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <skin.ini>",
		Short: "Re-resolve a skin every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			path, err := absPath(args[0])
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			r := &reloader{
				path:     path,
				logger:   logging.WithContext(logging.WithPath(runCtx, path), logger),
				out:      out,
				colorize: ctx.colorize(out),
			}
			// An unreadable file at startup is reported, not fatal; the next
			// save triggers another attempt.
			r.reload(runCtx, "initial")

			return watch.Run(runCtx, path, cfg.Debounce(), logger, func(op string) {
				r.reload(runCtx, op)
			})
		},
	}
}

type reloader struct {
	path     string
	logger   *slog.Logger
	out      io.Writer
	colorize bool
}

// reload re-reads the skin and prints one status line. A failed load keeps
// the previous result.
func (r *reloader) reload(ctx context.Context, trigger string) bool {
	ctx = logging.WithCorrelationID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, r.logger)
	started := time.Now()

	doc, err := skinfile.Load(r.path)
	if err != nil {
		logging.WarnWithContext(logger, "skin reload failed", "skin_reload_failed",
			logging.Error(err),
			logging.String("trigger", trigger),
			logging.String(logging.FieldErrorHint, loadHint(err)),
		)
		fmt.Fprintln(r.out, renderStatusLine("Reload", statusError, err.Error(), r.colorize))
		return false
	}

	resolved := skin.Resolve(doc, skin.WithLogger(logger))
	summary := keyCountSummary(resolved.Mania)
	logger.Info("skin reloaded",
		logging.String("trigger", trigger),
		logging.String("skin_name", resolved.General.Metadata.Name),
		logging.Int("mania_count", len(resolved.Mania)),
		logging.String("key_counts", summary),
		logging.Duration("elapsed", time.Since(started)),
	)

	kind := statusOK
	if len(resolved.Mania) == 0 {
		kind = statusWarn
	}
	message := fmt.Sprintf("%s, %d mania config(s) [%s]", resolved.General.Metadata.Name, len(resolved.Mania), summary)
	fmt.Fprintln(r.out, renderStatusLine("Reload", kind, message, r.colorize))
	return true
}
