// Package main provides the CLI entry point for escala-go.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/coopex/escala-go/internal/config"
	"github.com/coopex/escala-go/internal/logger"
	"github.com/coopex/escala-go/pkg/escala"
	"github.com/coopex/escala-go/pkg/escala/models"
	"github.com/coopex/escala-go/pkg/escala/output"
)

// Exit codes distinguish the import failure kinds for calling scripts.
const (
	exitError         = 1
	exitMissingColumn = 2
	exitSourceRead    = 3
)

type flags struct {
	outputPath string
	pretty     bool
	format     string
	colors     bool
	configPath string
	person     string
	columns    bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

func execute(args []string, stdout io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, "Error:", err)

	var missing *escala.MissingRequiredColumnError
	var readErr *escala.SourceReadError
	switch {
	case errors.As(err, &missing):
		return exitMissingColumn
	case errors.As(err, &readErr):
		return exitSourceRead
	default:
		return exitError
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var f flags
	rootCmd := &cobra.Command{
		Use:   "escala [schedule.xlsx]",
		Short: "Import work schedule spreadsheets",
		Long: `escala-go reads the schedule sheet of an Excel workbook, locates the
date, shift, time, contract and member name columns by their header aliases,
and outputs one normalized record per named row.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f, stdout)
		},
	}

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&f.format, "format", "json", "Output format: json, csv")
	rootCmd.Flags().BoolVar(&f.colors, "colors", true, "Read name cell fill colors (overrides config)")
	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Configuration file (yaml, json or toml)")
	rootCmd.Flags().StringVar(&f.person, "person", "", "Only output records whose name contains this text")
	rootCmd.Flags().BoolVar(&f.columns, "columns", false, "Only print the resolved column map")

	return rootCmd
}

func run(cmd *cobra.Command, inputPath string, f flags, stdout io.Writer) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("colors") {
		cfg.Colors = f.colors
	}
	if f.format != "json" && f.format != "csv" {
		return fmt.Errorf("invalid format: %s (must be json or csv)", f.format)
	}

	log := logger.New("escala", cfg.Logging.Level).With("run_id", uuid.NewString())

	log.Debugw("configuration loaded", map[string]any{
		"config":  f.configPath,
		"colors":  cfg.Colors,
		"aliases": cfg.Aliases,
	})

	aliases, err := cfg.AliasTable()
	if err != nil {
		return err
	}
	opts := escala.Options{
		IncludeColors: &cfg.Colors,
		Aliases:       &aliases,
		Logger:        log.Zerolog(),
	}

	log.Debugf("importing %s", inputPath)
	schedule, err := escala.Import(inputPath, opts)
	if err != nil {
		log.Errorf("import failed: %v", err)
		return err
	}
	if len(schedule.Records) == 0 {
		log.Warnf("no schedule records in %s", schedule.BookName)
	}

	data, err := render(schedule, f)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Infof("wrote %d records to %s", len(schedule.Records), f.outputPath)
		return nil
	}
	_, err = stdout.Write(data)
	return err
}

func render(schedule *models.Schedule, f flags) ([]byte, error) {
	if f.columns {
		data, err := output.ColumnsToJSON(schedule.Columns, f.pretty)
		return appendNewline(data), err
	}

	records := schedule.Records
	if f.person != "" {
		records = schedule.ForPerson(f.person)
	}

	if f.format == "csv" {
		var buf bytes.Buffer
		err := output.ToCSV(&buf, records)
		return buf.Bytes(), err
	}

	data, err := output.RecordsToJSON(records, f.pretty)
	return appendNewline(data), err
}

func appendNewline(data []byte) []byte {
	if data == nil {
		return nil
	}
	return append(data, '\n')
}
