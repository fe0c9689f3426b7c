package loader

import (
	"fmt"
	"log/slog"

	"github.com/castsched/castsched/internal/config"
)

// CheckInputReading confirms that every configured instance loads end to
// end, running the same file sequence a scheduling run would perform. The
// check is fail-fast: the first unreadable or invalid file aborts the whole
// pass carrying the instance and file context. On success one confirmation
// line is logged, for use as a pre-flight gate before a long job.
func CheckInputReading(settings *config.Settings) error {
	it := NewIterator(settings)
	n := 0
	for it.Next() {
		n++
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("input pre-flight failed: %w", err)
	}
	slog.Info("all input files read ok", "instances", n, "files", 4*n)
	return nil
}
