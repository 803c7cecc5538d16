package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	edgeFile string
	paramK   int
	paramL   int
	dim      int
	logLevel string

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:           "pebblegame",
	Short:         "Evaluate (K, L)-sparsity and generic rigidity of a graph",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&edgeFile, "file", "f", "", "edge list file, one \"u v\" pair per line (default: stdin)")
	rootCmd.PersistentFlags().IntVar(&paramK, "k", 2, "pebble-game parameter K")
	rootCmd.PersistentFlags().IntVar(&paramL, "l", 3, "pebble-game parameter L")
	rootCmd.PersistentFlags().IntVar(&dim, "dim", 2, "rigidity dimension, 1 or 2")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		isSparseCmd,
		isTightCmd,
		isRigidCmd,
		isMinRigidCmd,
		isGloballyRigidCmd,
	)
}

// Execute runs the root command and returns any error so main can
// translate it into a process exit code.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		return err
	}
	return nil
}
