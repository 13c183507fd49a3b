// Package main provides the TransferBench CLI application entry point.
// TransferBench compares the transfer performance of interchangeable iRODS
// transfer tools by repeatedly timing uploads and downloads of fixed-size
// payloads.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"transferbench/internal/config"
	"transferbench/internal/irods"
	"transferbench/internal/logger"
	"transferbench/internal/output"
	"transferbench/internal/recorder"
	"transferbench/internal/suite"
	"transferbench/internal/version"
)

var (
	logLevel   string
	logFile    string
	configFile string
	reportFile string
	runs       int
	plain      bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "transferbench",
	Short: "TransferBench - iRODS transfer tool performance comparison",
	Long: `TransferBench measures how long each configured transfer tool takes to
upload and download payloads of configured sizes. Each tool performs each
action several times; the report gives the geometric mean and the
one-geometric-standard-deviation interval of the measured times.`,
	RunE: runBenchmark, // Default behavior is to run the benchmark suite
}

// runCmd represents the run command (explicit version of default behavior).
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite",
	Long:  `Run every configured comparison and print one result line per tool and action.`,
	RunE:  runBenchmark,
}

// toolsCmd represents the tools command.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the configured tools",
	Long:  `List the configured transfer tools in the order they will be measured.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		built, err := cfg.BuildTools()
		if err != nil {
			return err
		}
		printer := output.GetGlobalPrinter()
		for _, tool := range built {
			printer.Println(tool.Name())
		}
		return nil
	},
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of TransferBench.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: ./transferbench.yaml)")
	rootCmd.PersistentFlags().StringVar(&reportFile, "report", "", "Write a YAML report to this file")
	rootCmd.PersistentFlags().IntVar(&runs, "runs", 0, "Override the configured number of runs per tool and action")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable styled output")

	// Bind flags to viper
	for _, flag := range []string{"log-level", "log-file", "config", "report", "runs", "plain"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(runCmd, toolsCmd, versionCmd)
}

// runBenchmark loads the configuration, assembles the tools, fixtures, and
// recorders, and runs the full suite.
func runBenchmark(_ *cobra.Command, _ []string) error {
	if err := logger.Configure(logLevel, logFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	if plain {
		output.ConfigureGlobal(output.PlainText())
	} else {
		output.ConfigureGlobal(output.WithStyles(output.NewLipglossStyleProvider()))
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if runs > 0 {
		cfg.Runs = runs
	}
	if reportFile != "" {
		cfg.Report = reportFile
	}

	session, err := irods.NewSession(cfg.CommandTimeout())
	if err != nil {
		return err
	}

	builtTools, err := cfg.BuildTools()
	if err != nil {
		return err
	}
	factories := cfg.BuildFactories(session)

	console := recorder.NewConsole(nil)

	var rec suite.Recorder = console
	var report *recorder.Report
	if cfg.Report != "" {
		report = recorder.NewReport()
		rec = recorder.NewMulti(console, report)
	}

	suite.New(cfg.Runs, builtTools, factories).Run(rec)

	if report != nil {
		if err := report.Write(cfg.Report); err != nil {
			return err
		}
		logger.Info("report written", "file", cfg.Report, "session", report.SessionID())
	}
	return nil
}
