package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/bbsunok/seisgrad/internal/config"
	"github.com/bbsunok/seisgrad/internal/expr"
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/optim"
)

func newMinimizeCmd(a *app) *cobra.Command {
	var at []string

	cmd := &cobra.Command{
		Use:   "minimize EXPR",
		Short: "Minimize a scalar expression over one variable",
		Long: `Minimize EXPR over --wrt starting from its --at value. Other variables stay
fixed. The newton optimizer steps with the Hessian diagonal taken from the
second-order gradient graph.`,
		Example: `  seisgrad minimize "sum((x-d)*(x-d))" --at "x=0;0" --at "d=1;2"
  seisgrad minimize "x*x*x*x - 3*x" --at x=1 --optimizer sgd --lr 0.05`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, x0, err := a.objective(args[0], at)
			if err != nil {
				return err
			}
			opt := newOptimizer(a.cfg)
			res, err := optim.Minimize(obj, x0, opt, optim.Settings{
				MaxIter: a.cfg.MaxIter,
				Tol:     a.cfg.Tol,
				Name:    a.cfg.Wrt,
				Observe: func(it optim.Iterate) {
					a.log.WithFields(logrus.Fields{
						"iter": it.Iter,
						"f":    it.F,
						"grad": floats.Norm(it.Grad, 2),
					}).Debug("iterate")
				},
			})
			if err != nil {
				return err
			}

			entry := a.log.WithFields(logrus.Fields{
				"optimizer":  a.cfg.Optimizer,
				"iterations": res.Iter,
			})
			if res.Converged {
				entry.Info("minimization complete")
			} else {
				entry.Warn("maximum iterations reached before convergence")
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s = %s\n", a.cfg.Wrt, formatVec(res.X))
			fmt.Fprintf(w, "f = %g\n", res.F)
			fmt.Fprintf(w, "iterations = %d\n", res.Iter)
			fmt.Fprintf(w, "converged = %t\n", res.Converged)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&at, "at", nil, "variable binding name=v1;v2;... (repeatable)")
	config.RegisterMinimizeFlags(cmd.Flags())
	return cmd
}

// objective parses src and returns it as a function of the --wrt variable,
// with the starting point taken from its binding.
func (a *app) objective(src string, at []string) (optim.Objective, []float64, error) {
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

	obj := func(x *graph.Node) (*graph.Node, error) {
		return e.Build(lo.Assign(env, expr.Env{a.cfg.Wrt: x}))
	}
	return obj, wrt.Value(), nil
}

func newOptimizer(c config.Config) optim.Optimizer {
	switch c.Optimizer {
	case "sgd":
		return optim.NewSGD(optim.SGDConfig{LR: c.LR, Momentum: c.Momentum})
	case "adam":
		return optim.NewAdam(optim.AdamConfig{LR: c.LR})
	default:
		return optim.NewNewton(optim.NewtonConfig{LR: c.LR})
	}
}
