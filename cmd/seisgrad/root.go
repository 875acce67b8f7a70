package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bbsunok/seisgrad/internal/config"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// app carries state shared by subcommands once flags are resolved.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:          "seisgrad",
		Short:        "Reverse-mode automatic differentiation of vector expressions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newEvalCmd(a),
		newGraphCmd(a),
		newMinimizeCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	a.cfg = cfg
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	vec.Configure(cfg.Parallel())
	a.log.WithFields(logrus.Fields{
		"workers":   cfg.Parallel().NumWorkers,
		"min_chunk": cfg.MinChunk,
	}).Debug("vector kernels configured")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seisgrad %s\n", version)
		},
	}
}
