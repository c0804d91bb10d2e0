// Package scenario holds the named matbench workloads. Each scenario has a lazy
// and an eager implementation that must agree on shape and probe value.
package scenario

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvmat/shape"
)

// ErrUnknownScenario is returned for names that are not registered.
var ErrUnknownScenario = errors.New("scenario: unknown name")

// ErrUnknownEngine is returned by ParseEngines for an unsupported selector.
var ErrUnknownEngine = errors.New("scenario: unknown engine")

// Engine selects the evaluation strategy a scenario runs on.
type Engine int

const (
	Lazy Engine = iota
	Eager
)

func (e Engine) String() string {
	switch e {
	case Lazy:
		return "lazy"
	case Eager:
		return "eager"
	}
	return fmt.Sprintf("Engine(%d)", int(e))
}

// ParseEngines maps "lazy", "eager" or "both" to the engines to run.
func ParseEngines(s string) ([]Engine, error) {
	switch strings.ToLower(s) {
	case "lazy":
		return []Engine{Lazy}, nil
	case "eager":
		return []Engine{Eager}, nil
	case "both", "":
		return []Engine{Lazy, Eager}, nil
	}
	return nil, fmt.Errorf("%q: %w", s, ErrUnknownEngine)
}

// Outcome is what one run of a scenario produced.
type Outcome struct {
	Shape shape.Shape
	// Probe is the formatted value of a representative element.
	Probe string
	// Rendered holds the printed result matrix, or "" when only a probe was evaluated.
	Rendered string
}

// Scenario is a named workload with one implementation per engine.
type Scenario struct {
	Name        string
	Description string
	Lazy        func() (Outcome, error)
	Eager       func() (Outcome, error)
}

// Run executes the scenario on engine e.
func (s Scenario) Run(e Engine) (Outcome, error) {
	switch e {
	case Lazy:
		return s.Lazy()
	case Eager:
		return s.Eager()
	}
	return Outcome{}, fmt.Errorf("%s: %w", e, ErrUnknownEngine)
}

var registry = map[string]Scenario{}

func register(s Scenario) {
	if _, dup := registry[s.Name]; dup {
		panic("scenario: duplicate name " + s.Name)
	}
	registry[s.Name] = s
}

// Names returns every registered scenario name in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Scenario, error) {
	s, ok := registry[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%q: %w", name, ErrUnknownScenario)
	}
	return s, nil
}

// renderLimit caps the number of elements rendered into Outcome.Rendered.
const renderLimit = 64

// printer is satisfied by both engines' matrices.
type printer interface {
	shape.Shaped
	String() string
}

// outcomeOf builds an Outcome from a fully materialized result.
func outcomeOf(m printer, probe any) Outcome {
	o := Outcome{Shape: shape.Of(m), Probe: fmt.Sprint(probe)}
	if o.Shape.Len() <= renderLimit {
		o.Rendered = m.String()
	}
	return o
}
