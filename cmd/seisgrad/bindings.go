package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/bbsunok/seisgrad/internal/expr"
	"github.com/bbsunok/seisgrad/internal/graph"
)

var errBinding = errors.New("invalid binding")

// parseBindings turns ["x=1;2", "a=3"] into variable values.
func parseBindings(args []string) (map[string][]float64, error) {
	values := make(map[string][]float64, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || raw == "" {
			return nil, fmt.Errorf("%w %q: want name=v1;v2;...", errBinding, arg)
		}
		if _, dup := values[name]; dup {
			return nil, fmt.Errorf("%w %q: %s bound twice", errBinding, arg, name)
		}

		fields := strings.Split(raw, ";")
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", errBinding, arg, err)
			}
			vals[i] = v
		}
		values[name] = vals
	}
	return values, nil
}

// bindEnv creates a leaf per variable used by e. Only wrt requires
// gradients; every other variable is a constant.
func bindEnv(e *expr.Expr, values map[string][]float64, wrt string) (expr.Env, *graph.Node, error) {
	vars := e.Vars()
	if !lo.Contains(vars, wrt) {
		return nil, nil, fmt.Errorf("%w: %q does not use %s", errBinding, e.String(), wrt)
	}
	missing := lo.Without(vars, lo.Keys(values)...)
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: no value for %s", errBinding, strings.Join(missing, ", "))
	}
	unused := lo.Without(lo.Keys(values), vars...)
	if len(unused) > 0 {
		sort.Strings(unused)
		return nil, nil, fmt.Errorf("%w: %s not used by %q", errBinding, strings.Join(unused, ", "), e.String())
	}

	env := make(expr.Env, len(vars))
	for _, name := range vars {
		env[name] = graph.NewNamedLeaf(name, values[name], name == wrt)
	}
	return env, env[wrt], nil
}
