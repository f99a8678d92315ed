// rollover-planner computes an optimal IRA-to-Roth conversion schedule from
// a YAML scenario file.
//
// Usage:
//
//	rollover-planner --config scenarios.yaml [--format console|csv|json] [--debug]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rpgo/rollover-planner/internal/calculation"
	"github.com/rpgo/rollover-planner/internal/config"
	"github.com/rpgo/rollover-planner/internal/output"
	"github.com/spf13/cobra"
)

var (
	configPath string
	format     string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:          "rollover-planner",
	Short:        "Plan IRA-to-Roth rollovers that minimize lifetime tax",
	Long:         "rollover-planner searches every combination of annual RMD-only and rollover decisions over the configured horizon and reports the optimal schedule per scenario.",
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(configPath)
	if err != nil {
		return err
	}

	engine := calculation.NewPlanningEngine()
	if debug {
		engine.Debug = true
		engine.SetLogger(stdLogger{})
	}

	comparison, err := engine.RunScenarios(cfg)
	if err != nil {
		return err
	}
	return output.GenerateReport(comparison, format)
}

// stdLogger adapts the standard library logger to the engine's interface.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stdLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (stdLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (stdLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

func main() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to scenario YAML file (required)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: console, csv, json")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Log search statistics")
	if err := rootCmd.MarkFlagRequired("config"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
