// Package rules sequences a turn's planning steps as prioritized
// condition/action rules compiled with expr.
package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/indigo/board"
)

// Engine runs compiled rules against a turn's environment.
// Rules fire in priority order; exclusive rules block lower-priority rules
// in the same category.
type Engine struct {
	rules []*Rule
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled}, nil
}

// Step is the result of one fired rule.
type Step struct {
	Rule     string
	Category string
	Outcome  board.Outcome
	Err      error
}

// Report lists the rules that fired in one turn, in firing order.
type Report struct {
	Steps []Step
}

// Total merges the outcomes of every step.
func (r *Report) Total() board.Outcome {
	var out board.Outcome
	for _, s := range r.Steps {
		out.Merge(s.Outcome)
	}
	return out
}

// Fired reports whether the named rule ran.
func (r *Report) Fired(name string) bool {
	for _, s := range r.Steps {
		if s.Rule == name {
			return true
		}
	}
	return false
}

// Evaluate runs every rule against env. A failing condition or action is
// logged and the remaining rules still run.
func (e *Engine) Evaluate(env RuleEnv) *Report {
	rep := &Report{}
	fired := make(map[string]bool) // category → exclusive rule already fired

	for _, r := range e.rules {
		if fired[r.Category] {
			continue
		}

		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}

		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "category", r.Category)

		out, err := r.Action(env)
		if err != nil {
			slog.Error("rule action error", "rule", r.Name, "error", err)
		}
		rep.Steps = append(rep.Steps, Step{Rule: r.Name, Category: r.Category, Outcome: out, Err: err})

		if r.Exclusive {
			fired[r.Category] = true
		}
	}
	return rep
}

// Rules returns rule names in evaluation order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
