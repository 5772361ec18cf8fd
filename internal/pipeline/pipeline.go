package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/walletscan/internal/analyze"
	"github.com/nao1215/walletscan/internal/config"
	"github.com/nao1215/walletscan/internal/model"
)

// ErrNoData is returned when every primary signal (transactions, assets,
// balance) is simultaneously empty. Callers can distinguish "nothing to
// analyze" from a transient failure with errors.Is.
var ErrNoData = errors.New("no on-chain data found for address")

// Scan carries the state of one wallet scan through the pipeline steps.
type Scan struct {
	// Address is the wallet under analysis.
	Address model.Address

	// Network is the cluster the scan runs against.
	Network config.Network

	// Input accumulates fetched provider data for the analyzers.
	Input analyze.Input

	// Report is the final result, set by the analyze step.
	Report *model.ExposureReport
}

// NewScan creates a Scan for the given address and network.
func NewScan(address model.Address, network config.Network) *Scan {
	return &Scan{Address: address, Network: network}
}

// Step is one stage of a wallet scan.
//
// Design decision: We use an interface rather than function types because
// steps carry configuration state and a Name() for logging, and the list
// of stages is expected to grow (cache warming, report post-processing).
type Step interface {
	// Do executes the step, mutating the scan in place.
	Do(ctx context.Context, scan *Scan) error

	// Name returns the step's name for logging.
	Name() string
}

// Pipeline executes steps in order, stopping at the first failure.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Pipeline. Steps are added with AddSteps.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:  make([]Step, 0, 2),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddSteps appends steps in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence. It checks for cancellation before
// each step; the steps themselves carry their own request timeouts.
func (p *Pipeline) Execute(ctx context.Context, scan *Scan) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("scan cancelled",
				slog.String("step", step.Name()),
				slog.String("address", scan.Address.Short()))
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			slog.String("step", step.Name()),
			slog.String("address", scan.Address.Short()))

		if err := step.Do(ctx, scan); err != nil {
			p.logger.Error("step failed",
				slog.String("step", step.Name()),
				slog.String("address", scan.Address.Short()),
				slog.Any("error", err))
			return err
		}
	}
	return nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
