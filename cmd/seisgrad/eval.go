package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bbsunok/seisgrad/internal/autodiff"
	"github.com/bbsunok/seisgrad/internal/config"
	"github.com/bbsunok/seisgrad/internal/expr"
	"github.com/bbsunok/seisgrad/internal/graph"
)

// derivative is one row of eval output.
type derivative struct {
	order int
	node  *graph.Node
}

func newEvalCmd(a *app) *cobra.Command {
	var at []string

	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression and its derivatives",
		Long: `Evaluate EXPR and its derivatives up to --order with respect to --wrt.

Vector variables take ';'-separated values. Derivatives of vector results are
taken of their elementwise sum.`,
		Example: `  seisgrad eval "x*x*x + a*x" --at x=1 --at a=2 --order 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, wrt, err := a.build(args[0], at)
			if err != nil {
				return err
			}
			rows, err := a.derivatives(f, wrt)
			if err != nil {
				return err
			}
			printDerivatives(cmd.OutOrStdout(), f, wrt, rows)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&at, "at", nil, "variable binding name=v1;v2;... (repeatable)")
	config.RegisterDerivativeFlags(cmd.Flags())
	return cmd
}

// build parses src and binds it at the given point.
func (a *app) build(src string, at []string) (*graph.Node, *graph.Node, error) {
	e, err := expr.Parse(src)
	if err != nil {
		return nil, nil, err
	}
	values, err := parseBindings(at)
	if err != nil {
		return nil, nil, err
	}
	env, wrt, err := bindEnv(e, values, a.cfg.Wrt)
	if err != nil {
		return nil, nil, err
	}
	f, err := e.Build(env)
	if err != nil {
		return nil, nil, err
	}
	a.log.WithFields(logrus.Fields{
		"expr": src,
		"vars": strings.Join(e.Vars(), ","),
		"wrt":  a.cfg.Wrt,
	}).Debug("expression built")
	return f, wrt, nil
}

// derivatives differentiates f repeatedly with respect to wrt. Each order
// differentiates the previous gradient graph once.
func (a *app) derivatives(f, wrt *graph.Node) ([]derivative, error) {
	rows := make([]derivative, 0, a.cfg.Order)
	cur := f
	for order := 1; order <= a.cfg.Order; order++ {
		d, err := autodiff.Grad(cur, wrt, 1)
		if err != nil {
			return nil, err
		}
		a.log.WithFields(logrus.Fields{
			"order": order,
			"nodes": autodiff.Record(d).Len(),
		}).Debug("gradient graph built")
		rows = append(rows, derivative{order: order, node: d})
		cur = d
	}
	a.log.WithField("order", a.cfg.Order).Info("differentiation complete")
	return rows, nil
}

func printDerivatives(w io.Writer, f, wrt *graph.Node, rows []derivative) {
	fmt.Fprintf(w, "f = %s\n", formatVec(f.Value()))
	for _, r := range rows {
		fmt.Fprintf(w, "%s = %s\n", derivativeLabel(r.order, wrt.Name()), formatVec(r.node.Value()))
	}
}

func derivativeLabel(order int, wrt string) string {
	if order == 1 {
		return "df/d" + wrt
	}
	return fmt.Sprintf("d%df/d%s%d", order, wrt, order)
}

func formatVec(v []float64) string {
	if len(v) == 1 {
		return fmt.Sprintf("%g", v[0])
	}
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
