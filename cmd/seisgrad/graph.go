package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/bbsunok/seisgrad/internal/autodiff"
	"github.com/bbsunok/seisgrad/internal/config"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		at    []string
		depth int
	)

	cmd := &cobra.Command{
		Use:     "graph EXPR",
		Short:   "Dump the gradient graph of an expression",
		Example: `  seisgrad graph "x/(x*x+1)" --at x=0.5 --order 2 --depth 4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, wrt, err := a.build(args[0], at)
			if err != nil {
				return err
			}
			d, err := autodiff.Grad(f, wrt, a.cfg.Order)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "expr:  %s\n", d.Expr())
			fmt.Fprintf(w, "value: %s\n", formatVec(d.Value()))
			fmt.Fprintf(w, "nodes: %d differentiable\n", autodiff.Record(d).Len())

			dumper := spew.ConfigState{
				Indent:                  "  ",
				MaxDepth:                depth,
				DisablePointerAddresses: true,
				DisableCapacities:       true,
				DisableMethods:          true,
				SortKeys:                true,
			}
			dumper.Fdump(w, d)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&at, "at", nil, "variable binding name=v1;v2;... (repeatable)")
	cmd.Flags().IntVar(&depth, "depth", 6, "maximum nesting depth of the dump")
	config.RegisterDerivativeFlags(cmd.Flags())
	return cmd
}
