package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/walletscan/internal/analyze"
)

// AnalyzeStep runs the scoring pipeline over the fetched bundle.
type AnalyzeStep struct {
	analyzer *analyze.Analyzer
	logger   *slog.Logger
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithAnalyzeLogger sets a custom logger for the analyze step.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAnalyzeStep creates an AnalyzeStep around the given analyzer.
func NewAnalyzeStep(analyzer *analyze.Analyzer, opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{
		analyzer: analyzer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do scores the fetched data and attaches the report to the scan.
// The analyzers are pure functions of the scan input; this step cannot
// fail short of a cancelled context, which the pipeline checks for.
func (s *AnalyzeStep) Do(_ context.Context, scan *Scan) error {
	scan.Input.Address = scan.Address
	scan.Input.Network = string(scan.Network)

	scan.Report = s.analyzer.Analyze(&scan.Input)

	s.logger.Debug("analysis complete",
		slog.String("address", scan.Address.Short()),
		slog.Int("score", scan.Report.ExposureScore),
		slog.String("riskLevel", scan.Report.RiskLevel))
	return nil
}
