package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// ErrUnknownDay is returned by Registry.Lookup for an unregistered day.
var ErrUnknownDay = errors.New("runner: no puzzle registered for day")

// Solver answers both parts of a puzzle from its parsed input P.
// Parse is called once; each part receives the same parsed value and must
// not rely on the other part's side effects.
type Solver[P any] interface {
	Parse(input string) (P, error)
	Part1(P) (any, error)
	Part2(P) (any, error)
}

// Runnable runs a bound Solver against raw input.
type Runnable func(input string, out io.Writer, log logrus.FieldLogger) error

// Bind erases the parsed type of s so solvers can share a Registry.
func Bind[P any](s Solver[P]) Runnable {
	return func(input string, out io.Writer, log logrus.FieldLogger) error {
		return Run(s, input, out, log)
	}
}

// Run parses input with s, solves both parts and writes one line per answer
// to out. Errors are wrapped with the stage that failed. A nil log discards
// progress messages.
func Run[P any](s Solver[P], input string, out io.Writer, log logrus.FieldLogger) error {
	if log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = quiet
	}
	start := time.Now()
	parsed, err := s.Parse(input)
	if err != nil {
		return fmt.Errorf("runner: parse: %w", err)
	}
	log.WithField("elapsed", time.Since(start)).Info("parsed input")

	parts := []func(P) (any, error){s.Part1, s.Part2}
	for i, part := range parts {
		n := i + 1
		start = time.Now()
		answer, err := part(parsed)
		if err != nil {
			return fmt.Errorf("runner: part %d: %w", n, err)
		}
		log.WithFields(logrus.Fields{
			"part":    n,
			"elapsed": time.Since(start),
		}).Debug("solved")
		if _, err := fmt.Fprintf(out, "[Part %d] %v\n", n, answer); err != nil {
			return fmt.Errorf("runner: write part %d: %w", n, err)
		}
	}
	return nil
}

// ReadInput returns the contents of path.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("runner: can't read input file %s: %w", path, err)
	}
	return string(data), nil
}

// Registry maps a puzzle day to a factory that binds its solver to a Config.
type Registry map[int]func(Config) Runnable

// Register adds day to the registry, replacing any previous entry.
func (r Registry) Register(day int, fn func(Config) Runnable) {
	r[day] = fn
}

// Lookup returns the Runnable for day bound to cfg.
func (r Registry) Lookup(day int, cfg Config) (Runnable, error) {
	fn, ok := r[day]
	if !ok {
		return nil, fmt.Errorf("%w %d (have %v)", ErrUnknownDay, day, r.Days())
	}
	return fn(cfg), nil
}

// Days returns the registered days in ascending order.
func (r Registry) Days() []int {
	days := maps.Keys(r)
	slices.Sort(days)
	return days
}

// Latest returns the highest registered day, or 0 for an empty registry.
func (r Registry) Latest() int {
	days := r.Days()
	if len(days) == 0 {
		return 0
	}
	return days[len(days)-1]
}
