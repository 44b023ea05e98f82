package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/logger"
)

var (
	configPath string
	logLevel   string
	rootCmd    = &cobra.Command{
		Use:   "cpustress",
		Short: "Gautier Iteration Test - informal operations-per-second benchmark",
		Long: `cpustress provides an informal assessment of operations per second on a
given system: how fast straight-line code executes today. Each run performs
one or more measurement cycles, logs every cycle in detail, and appends to a
master log that accumulates across runs so throughput can be compared over
time on the same machine.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Configure(logLevel)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
