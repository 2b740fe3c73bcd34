package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
)

const summaryRule = "═══════════════════════════════════════════════════════════════"

// RunStatistics counts the outcomes of a batch or embed run.
type RunStatistics struct {
	// Total is the number of entries processed, skipped ones included.
	Total int
	// Synced is the number of entries that got timed lyrics.
	Synced int
	// Plain is the number of entries that got plain lyrics only.
	Plain int
	// Skipped is the number of entries left untouched.
	Skipped int
	// Failed is the number of entries that got nothing.
	Failed int
	// Failures holds the reason of each failed entry, in processing order.
	Failures []RunFailure

	StartTime time.Time
	EndTime   time.Time
}

// RunFailure records why an entry failed.
type RunFailure struct {
	Entry  string
	Reason string
}

func newRunStatistics() *RunStatistics {
	return &RunStatistics{StartTime: time.Now()}
}

func (s *RunStatistics) recordSuccess(result *lyrics.Result) {
	s.Total++

	if result.HasTimestamps {
		s.Synced++
	} else {
		s.Plain++
	}
}

func (s *RunStatistics) recordSkipped() {
	s.Total++
	s.Skipped++
}

func (s *RunStatistics) recordFailure(entry, reason string) {
	s.Total++
	s.Failed++
	s.Failures = append(s.Failures, RunFailure{Entry: entry, Reason: reason})
}

func (s *RunStatistics) finish() {
	s.EndTime = time.Now()
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// printRunSummary prints the statistics of a finished run.
func printRunSummary(ctx context.Context, title string, stats *RunStatistics) {
	if stats.Total == 0 {
		return
	}

	wasInterrupted := ctx.Err() != nil
	if wasInterrupted {
		title += " (Interrupted)"
	}

	logger.Info(ctx, "")
	logger.Info(ctx, summaryRule)
	logger.Infof(ctx, "%*s", (len(summaryRule)/3+len(title))/2, title)
	logger.Info(ctx, summaryRule)
	logger.Infof(ctx, "Processed:        %d", stats.Total)
	logger.Infof(ctx, "Synced lyrics:    %d", stats.Synced)
	logger.Infof(ctx, "Plain lyrics:     %d", stats.Plain)

	if stats.Skipped > 0 {
		logger.Infof(ctx, "Skipped:          %d", stats.Skipped)
	}

	if stats.Failed > 0 {
		logger.Infof(ctx, "Failed:           %d", stats.Failed)
	}

	if !stats.EndTime.IsZero() {
		logger.Infof(ctx, "Duration:         %s", formatDuration(stats.EndTime.Sub(stats.StartTime)))
	}

	logger.Info(ctx, summaryRule)

	if len(stats.Failures) > 0 {
		logger.Info(ctx, "")
		logger.Errorf(ctx, "FAILURES: %d", len(stats.Failures))

		for _, f := range stats.Failures {
			logger.Errorf(ctx, "  • %s: %s", f.Entry, f.Reason)
		}
	}

	if wasInterrupted {
		logger.Info(ctx, "")
		logger.Warn(ctx, "Run interrupted by user (CTRL+C).")
	}
}

// newProgressBar returns nil when progress output is disabled or the log level hides it.
func newProgressBar(total int, description string, isEnabled bool) *progressbar.ProgressBar {
	if !isEnabled || total <= 1 || logger.Level() > zap.InfoLevel {
		return nil
	}

	return progressbar.NewOptions(
		total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func advanceProgressBar(bar *progressbar.ProgressBar) {
	if bar == nil {
		return
	}

	_ = bar.Add(1)
}

func finishProgressBar(bar *progressbar.ProgressBar) {
	if bar == nil {
		return
	}

	_ = bar.Finish()
}
