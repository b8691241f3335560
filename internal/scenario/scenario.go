// Package scenario replays scripted operations against a list of ints
// and reports what each operation returned.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"deedles.dev/slist"
	"deedles.dev/slist/internal/config"
	"go.uber.org/zap"
)

//go:embed demo.yaml
var demo []byte

// ErrBadStep is returned when a step can't be applied to the list as
// it stands, such as a start position past the end of the list.
var ErrBadStep = errors.New("bad step")

// Default returns the built-in demonstration scenarios.
func Default() *config.Config {
	cfg, err := config.Parse(demo)
	if err != nil {
		panic(fmt.Errorf("embedded scenarios: %w", err))
	}
	return cfg
}

// Result is the outcome of a single step.
type Result struct {
	Op     config.Op
	Args   []int
	Output string
	List   []int
}

func (r Result) String() string {
	args := make([]string, 0, len(r.Args))
	for _, a := range r.Args {
		args = append(args, strconv.Itoa(a))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%s)", r.Op, strings.Join(args, ", "))
	if r.Output != "" {
		fmt.Fprintf(&sb, " = %s", r.Output)
	}
	fmt.Fprintf(&sb, "; list: %v", r.List)
	return sb.String()
}

// Report is the outcome of a whole scenario.
type Report struct {
	Name    string
	Initial []int
	Results []Result
}

// WriteTo writes a human-readable rendering of the report to w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "== %s\n", r.Name)
	fmt.Fprintf(&buf, "initial: %v\n", r.Initial)
	for _, res := range r.Results {
		fmt.Fprintln(&buf, res)
	}
	return buf.WriteTo(w)
}

// Runner runs scenarios. A zero value Runner discards its logs.
type Runner struct {
	Logger *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Run builds a list from the scenario's initial values and applies
// each step in order. Errors reported by the list itself are recorded
// as a step's output. Run only fails if a step is malformed.
func (r *Runner) Run(sc config.Scenario) (Report, error) {
	log := r.logger().With(zap.String("scenario", sc.Name))

	ls := slist.New(sc.Initial...)
	report := Report{
		Name:    sc.Name,
		Initial: ls.ToSlice(),
		Results: make([]Result, 0, len(sc.Steps)),
	}

	for i, step := range sc.Steps {
		res, err := apply(ls, step)
		if err != nil {
			log.Error("step failed", zap.Int("step", i), zap.String("op", string(step.Op)), zap.Error(err))
			return report, fmt.Errorf("scenario %q step %d: %w", sc.Name, i, err)
		}
		res.List = ls.ToSlice()

		log.Debug("step",
			zap.Int("step", i),
			zap.String("op", string(res.Op)),
			zap.Ints("args", res.Args),
			zap.String("output", res.Output),
			zap.Ints("list", res.List),
		)
		report.Results = append(report.Results, res)
	}

	log.Info("scenario complete", zap.Int("steps", len(report.Results)), zap.Int("len", ls.Len()))
	return report, nil
}

// RunAll runs every scenario in cfg, stopping at the first failure.
func (r *Runner) RunAll(cfg *config.Config) ([]Report, error) {
	reports := make([]Report, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		report, err := r.Run(sc)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func apply(ls *slist.List[int], step config.Step) (Result, error) {
	res := Result{Op: step.Op}
	if err := step.Validate(); err != nil {
		return res, fmt.Errorf("%w: %w", ErrBadStep, err)
	}

	value := func() int {
		v := *step.Value
		res.Args = append(res.Args, v)
		return v
	}

	switch step.Op {
	case config.OpIsEmpty:
		res.Output = strconv.FormatBool(ls.IsEmpty())

	case config.OpLen:
		res.Output = strconv.Itoa(ls.Len())

	case config.OpInsertAtFront:
		ls.InsertAtFront(value())

	case config.OpInsertAtBack:
		ls.InsertAtBack(value())

	case config.OpInsertAtBackMany:
		res.Args = append(res.Args, step.Values...)
		ls.InsertAtBackMany(step.Values...)

	case config.OpInsertAtBackRecursive:
		v := value()
		from, err := nodeAt(ls, step.From)
		if err != nil {
			return res, err
		}
		if err := ls.InsertAtBackFrom(v, from); err != nil {
			res.Output = "error: " + err.Error()
		}

	case config.OpToSequence:
		res.Output = fmt.Sprint(ls.ToSlice())

	case config.OpRemoveHead:
		v, ok := ls.RemoveHead()
		res.Output = optional(v, ok)

	case config.OpRemoveBack:
		v, ok := ls.RemoveBack()
		res.Output = optional(v, ok)

	case config.OpSecondToLast:
		v, ok := ls.SecondToLast()
		res.Output = optional(v, ok)

	case config.OpAverage:
		avg, ok := slist.Average(ls)
		res.Output = optional(avg, ok)

	case config.OpContains:
		res.Output = strconv.FormatBool(ls.Contains(value()))

	case config.OpContainsRecursive:
		v := value()
		from, err := nodeAt(ls, step.From)
		if err != nil {
			return res, err
		}
		res.Output = strconv.FormatBool(ls.ContainsFrom(v, from))

	case config.OpRecursiveMax:
		from, err := nodeAt(ls, step.From)
		if err != nil {
			return res, err
		}
		m, err := slist.MaxFrom(ls, from)
		if err != nil {
			res.Output = "error: " + err.Error()
			break
		}
		res.Output = strconv.Itoa(m)

	case config.OpRemoveVal:
		res.Output = strconv.FormatBool(ls.RemoveVal(value()))

	case config.OpPrepend:
		v := value()
		target := *step.Target
		res.Args = append(res.Args, target)
		res.Output = strconv.FormatBool(ls.Prepend(v, target))
	}

	return res, nil
}

// nodeAt returns the node at the zero-based position pos, or nil if
// pos is nil.
func nodeAt(ls *slist.List[int], pos *int) (*slist.Node[int], error) {
	if pos == nil {
		return nil, nil
	}

	n := ls.Front()
	for i := 0; i < *pos && n != nil; i++ {
		n = n.Next()
	}
	if n == nil {
		return nil, fmt.Errorf("%w: no node at position %d of %d", ErrBadStep, *pos, ls.Len())
	}
	return n, nil
}

func optional[T int | float64](v T, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}
