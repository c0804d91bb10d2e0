package scenario

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
)

// Result is one timed scenario run on one engine.
type Result struct {
	Scenario string
	Engine   Engine
	Outcome  Outcome
	// Duration is the fastest of the repeated runs.
	Duration time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithEngines selects the engines to run (default: lazy then eager).
func WithEngines(engines ...Engine) Option {
	return func(r *Runner) { r.engines = append([]Engine(nil), engines...) }
}

// WithRepeat runs every scenario n times and keeps the fastest duration.
// Values below 1 are treated as 1.
func WithRepeat(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			n = 1
		}
		r.repeat = n
	}
}

// withClock replaces time.Now; tests use it for stable durations.
func withClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// Runner executes scenarios sequentially and times them.
type Runner struct {
	log     hclog.Logger
	engines []Engine
	repeat  int
	now     func() time.Time
}

// NewRunner returns a Runner logging through log (hclog.NewNullLogger when nil).
func NewRunner(log hclog.Logger, opts ...Option) *Runner {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	r := &Runner{log: log, engines: []Engine{Lazy, Eager}, repeat: 1, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the named scenarios (all of them when names is empty) on every
// configured engine. Failures do not stop the run; they are collected and
// returned together with the results that did complete.
func (r *Runner) Run(names ...string) ([]Result, error) {
	if len(names) == 0 {
		names = Names()
	}
	var errs *multierror.Error
	results := make([]Result, 0, len(names)*len(r.engines))
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		var outcomes []Outcome
		for _, eng := range r.engines {
			res, err := r.runOne(s, eng)
			if err != nil {
				r.log.Error("scenario failed", "scenario", name, "engine", eng.String(), "error", err)
				errs = multierror.Append(errs, fmt.Errorf("%s/%s: %w", name, eng, err))
				continue
			}
			r.log.Debug("scenario finished", "scenario", name, "engine", eng.String(),
				"shape", res.Outcome.Shape.String(), "probe", res.Outcome.Probe, "duration", res.Duration)
			results = append(results, res)
			outcomes = append(outcomes, res.Outcome)
		}
		if err := agree(name, outcomes); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	r.log.Info("run complete", "scenarios", len(names), "results", len(results))
	return results, errs.ErrorOrNil()
}

func (r *Runner) runOne(s Scenario, eng Engine) (Result, error) {
	var (
		best time.Duration
		out  Outcome
	)
	for i := 0; i < r.repeat; i++ {
		start := r.now()
		o, err := s.Run(eng)
		if err != nil {
			return Result{}, err
		}
		d := r.now().Sub(start)
		if i == 0 || d < best {
			best = d
		}
		out = o
	}
	return Result{Scenario: s.Name, Engine: eng, Outcome: out, Duration: best}, nil
}

// ErrDisagreement is reported when engines produce different outcomes for a scenario.
var ErrDisagreement = errors.New("scenario: engines disagree")

// agree checks that every engine produced the same shape and probe.
func agree(name string, outcomes []Outcome) error {
	for i := 1; i < len(outcomes); i++ {
		if outcomes[i].Shape != outcomes[0].Shape || outcomes[i].Probe != outcomes[0].Probe {
			return fmt.Errorf("%s: %v/%s vs %v/%s: %w", name,
				outcomes[0].Shape, outcomes[0].Probe, outcomes[i].Shape, outcomes[i].Probe, ErrDisagreement)
		}
	}
	return nil
}

// WriteReport renders results as a table: scenario, engine, shape, probe, duration.
func WriteReport(w io.Writer, results []Result) error {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			res.Scenario,
			res.Engine.String(),
			res.Outcome.Shape.String(),
			res.Outcome.Probe,
			res.Duration.String(),
		})
	}
	table := tablewriter.NewWriter(w)
	table.Header("Scenario", "Engine", "Shape", "Probe", "Duration")
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
