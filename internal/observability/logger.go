package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/results-summary/internal/types"
)

// NewLogger builds the production logger, writing JSON to stderr.
// Verbose lowers the level to debug.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// LogSummary records the data summary as one structured entry.
func LogSummary(logger *zap.Logger, results []types.CategoryResult, average int) {
	scores := make(map[string]int, len(results))
	for _, r := range results {
		scores[r.Category] = r.Score
	}
	logger.Info("data summary",
		zap.Int("average", average),
		zap.Int("records", len(results)),
		zap.Any("scores", scores))
}
