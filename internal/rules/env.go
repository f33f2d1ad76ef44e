package rules

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

// Variables every scoring formula may reference. All of them are integers.
var Variables = []string{
	"total",    // sum of the dice just rolled
	"target",   // target number to hit
	"diff",     // distance between total and target
	"skulls",   // skull faces accumulated so far
	"count",    // size of a group of matching dice
	"longest",  // longest run of consecutive values
	"distinct", // number of distinct values
	"player",   // player total
	"house",    // house total
}

// Registry manages the CEL environment and caches compiled formulas.
type Registry struct {
	env *cel.Env

	mu       sync.Mutex
	programs map[string]cel.Program
}

// NewRegistry initializes the CEL environment with the dice game variables.
func NewRegistry() (*Registry, error) {
	opts := make([]cel.EnvOption, 0, len(Variables))
	for _, name := range Variables {
		opts = append(opts, cel.Variable(name, cel.IntType))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env, programs: make(map[string]cel.Program)}, nil
}

func (r *Registry) program(expression string) (cel.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prg, ok := r.programs[expression]; ok {
		return prg, nil
	}
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, iss.Err())
	}
	prg, err := r.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expression, err)
	}
	r.programs[expression] = prg
	return prg, nil
}

// Check compiles an expression without evaluating it.
func (r *Registry) Check(expression string) error {
	_, err := r.program(expression)
	return err
}

// Eval executes a CEL expression against the provided variables.
func (r *Registry) Eval(expression string, vars map[string]any) (any, error) {
	prg, err := r.program(expression)
	if err != nil {
		return nil, err
	}
	out, _, err := prg.Eval(vars)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", expression, err)
	}
	return out.Value(), nil
}

// EvalInt evaluates an expression that must produce an integer.
func (r *Registry) EvalInt(expression string, vars map[string]any) (int, error) {
	out, err := r.Eval(expression, vars)
	if err != nil {
		return 0, err
	}
	n, ok := out.(int64)
	if !ok {
		return 0, fmt.Errorf("formula %q returned %T, want int", expression, out)
	}
	return int(n), nil
}

// EvalBool evaluates an expression that must produce a boolean.
func (r *Registry) EvalBool(expression string, vars map[string]any) (bool, error) {
	out, err := r.Eval(expression, vars)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("formula %q returned %T, want bool", expression, out)
	}
	return b, nil
}
