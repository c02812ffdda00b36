package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/timetable-go/internal/config"
	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/output"
)

// cli holds flag values for one command tree.
type cli struct {
	configPath string
	logLevel   string
	outputPath string
	pretty     bool
	allowEmpty bool
	sheets     []string
	startTime  string
	hours      int
	filter     string
	courseName string
	color      string
	format     string
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Extract class schedules from calendar-template workbooks",
		Long: `timetable-go reads calendar-template spreadsheets (.xlsx, .xls) and
extracts one entry per class day with instructors, hours and holidays.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file with defaults")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringVarP(&c.outputPath, "output", "o", "", "Output file path (default: stdout)")

	rootCmd.AddCommand(c.sheetsCmd(), c.parseCmd(), c.statsCmd(), c.endTimeCmd())
	return rootCmd
}

func (c *cli) addParseFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&c.sheets, "sheet", "s", nil, "Sheet to parse (repeatable, default: all schedule sheets)")
	cmd.Flags().StringVar(&c.startTime, "start", "", "Class start time HH:MM")
	cmd.Flags().IntVar(&c.hours, "hours", 0, "Default class hours when none are found (1-12)")
}

func (c *cli) sheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input]",
		Short: "List schedule sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := timetable.GetSheetNames(args[0])
			if err != nil {
				return err
			}
			if names == nil {
				names = []string{}
			}
			return c.writeJSON(cmd, names)
		},
	}
}

func (c *cli) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [input]",
		Short: "Parse class entries from a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runParse,
	}
	c.addParseFlags(cmd)
	cmd.Flags().BoolVar(&c.allowEmpty, "allow-empty", false, "Succeed even when no entries are found")
	cmd.Flags().StringVar(&c.filter, "filter", "", `Keep entries matching an expression, e.g. "hours >= 4 && !is_holiday"`)
	cmd.Flags().StringVar(&c.courseName, "course", "", "Wrap entries into a course document with this name")
	cmd.Flags().StringVar(&c.color, "color", timetable.DefaultColor, "Course color (#RRGGBB)")
	cmd.Flags().StringVar(&c.format, "format", "json", "Output format: json, xlsx")
	return cmd
}

func (c *cli) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [input]",
		Short: "Summarize classes, hours and instructors of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, result, err := c.parse(cmd, args[0])
			if err != nil {
				return err
			}
			if result.Empty() && !cfg.AllowEmpty {
				return timetable.ErrNoEntries
			}
			return c.writeJSON(cmd, timetable.Summarize(result.Entries))
		},
	}
	c.addParseFlags(cmd)
	return cmd
}

func (c *cli) endTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end-time [HH:MM] [hours]",
		Short: "Compute a class end time including the lunch break",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid hours %q: %w", args[1], err)
			}
			end, err := timetable.CalculateEndTime(args[0], hours)
			if err != nil {
				return err
			}
			return c.write(cmd, []byte(end))
		},
	}
}

func (c *cli) runParse(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	cfg, result, err := c.parse(cmd, inputPath)
	if err != nil {
		return err
	}
	if result.Empty() && !cfg.AllowEmpty {
		return timetable.ErrNoEntries
	}

	if c.filter != "" {
		f, err := output.NewFilter(c.filter)
		if err != nil {
			return err
		}
		if result.Entries, err = f.Apply(result.Entries); err != nil {
			return err
		}
		result.EntryCount = len(result.Entries)
	}

	switch c.format {
	case "json":
	case "xlsx":
		if c.outputPath == "" {
			return fmt.Errorf("xlsx output requires --output")
		}
		var buf bytes.Buffer
		if err := output.WriteXLSX(&buf, result.Entries); err != nil {
			return fmt.Errorf("failed to write xlsx: %w", err)
		}
		return c.write(cmd, buf.Bytes())
	default:
		return fmt.Errorf("invalid format: %s (must be json or xlsx)", c.format)
	}

	if c.courseName == "" {
		return c.writeJSON(cmd, result)
	}
	course, err := timetable.NewCourse(timetable.CourseInput{
		Name:      c.courseName,
		Color:     c.color,
		StartTime: cfg.DefaultStartTime,
		FileName:  filepath.Base(inputPath),
	}, result.Entries)
	if err != nil {
		return err
	}
	return c.writeJSON(cmd, course)
}

// parse loads config, applies flag overrides and parses the selected
// sheets, or every schedule sheet when none are selected.
func (c *cli) parse(cmd *cobra.Command, inputPath string) (*config.Config, *models.ParseResult, error) {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := cfg.Logger()

	selected := c.sheets
	if len(selected) == 0 {
		if selected, err = timetable.GetSheetNames(inputPath); err != nil {
			return nil, nil, err
		}
	}
	log.WithFields(logrus.Fields{"file": inputPath, "sheets": selected}).Info("parsing workbook")

	result, err := timetable.ParseTimetable(inputPath, selected, cfg.Options(log))
	if err != nil {
		return nil, nil, err
	}
	return cfg, result, nil
}

func (c *cli) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.DefaultStartTime = c.startTime
	}
	if flags.Changed("hours") {
		cfg.DefaultHours = c.hours
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("pretty") {
		cfg.Pretty = c.pretty
	}
	if flags.Changed("allow-empty") {
		cfg.AllowEmpty = c.allowEmpty
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c.pretty = cfg.Pretty
	return cfg, nil
}

func (c *cli) writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := output.ToJSON(v, c.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return c.write(cmd, data)
}

func (c *cli) write(cmd *cobra.Command, data []byte) error {
	if c.outputPath != "" {
		if err := os.WriteFile(c.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
