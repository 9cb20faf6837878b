package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"

	gojson "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quasarhq/tabular/pkg/config"
	"github.com/quasarhq/tabular/pkg/frame"
	"github.com/quasarhq/tabular/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	root := &cobra.Command{
		Use:   "tabular",
		Short: "Tabular - load delimited files into in-memory frames",
		Long: `Tabular loads a delimited text file into an immutable in-memory frame
and prints summary views over it: feature names, frame size, head, tail,
random samples and, in detailed mode, per-column minima and maxima.`,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Tabular v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newInspectCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// inspectReport is the plain data handed to the output formatter; the frame
// itself stays behind its read-only API.
type inspectReport struct {
	Source           string              `json:"source"`
	FeatureNames     []string            `json:"feature_names"`
	DuplicateColumns []string            `json:"duplicate_columns,omitempty"`
	Rows             int                 `json:"rows"`
	Columns          int                 `json:"columns"`
	Cells            int                 `json:"cells"`
	Head             [][]float64         `json:"head"`
	Tail             [][]float64         `json:"tail"`
	Sample           [][]float64         `json:"sample,omitempty"`
	Stats            []frame.ColumnStats `json:"stats,omitempty"`
}

func newInspectCmd() *cobra.Command {
	var (
		configFile string
		delimiter  string
		detailed   bool
		headRows   int
		tailRows   int
		sampleRows int
		seed       int64
		format     string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Load a delimited file and print summary views",
		Long: `Load a delimited file into a frame and print its summary views.

The first line of the file is the header; every following non-empty line
must carry the same number of fields. Fields that do not parse as numbers
load as zero by contract. Files ending in .gz or .zst are decompressed
transparently.

Example:
  tabular inspect weather.csv --delimiter , --detailed --sample 5 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(logger.Config{Level: logLevel, Encoding: "console"}); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg := config.NewSourceConfig()
			if configFile != "" {
				if err := config.Load(configFile, cfg); err != nil {
					return err
				}
			}
			// Explicit flags win over the config file
			if cmd.Flags().Changed("delimiter") {
				cfg.Delimiter = delimiter
			}
			if cmd.Flags().Changed("detailed") {
				cfg.Detailed = detailed
			}

			fr, err := frame.Load(args[0], cfg)
			if err != nil {
				return err
			}

			report, err := buildReport(args[0], fr, cfg, headRows, tailRows, sampleRows, seed, cmd.Flags().Changed("seed"))
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return printJSON(report)
			case "text":
				printText(report)
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "YAML source configuration file")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "field delimiter, matched exactly")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "compute per-column min/max")
	cmd.Flags().IntVar(&headRows, "head", 0, "rows to show from the top (0 = default)")
	cmd.Flags().IntVar(&tailRows, "tail", 0, "rows to show from the bottom (0 = default)")
	cmd.Flags().IntVar(&sampleRows, "sample", 0, "random rows to show (0 = default)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible sampling")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text or json)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return cmd
}

func buildReport(source string, fr *frame.Frame, cfg *config.SourceConfig, headRows, tailRows, sampleRows int, seed int64, seeded bool) (*inspectReport, error) {
	if headRows <= 0 {
		headRows = cfg.ViewRows
	}
	if tailRows <= 0 {
		tailRows = cfg.ViewRows
	}
	if sampleRows <= 0 {
		sampleRows = cfg.ViewRows
	}

	rows, cols, cells := fr.Size()
	report := &inspectReport{
		Source:           source,
		FeatureNames:     fr.FeatureNames(),
		DuplicateColumns: fr.DuplicateColumns(),
		Rows:             rows,
		Columns:          cols,
		Cells:            cells,
		Head:             fr.Head(headRows),
		Tail:             fr.Tail(tailRows),
	}

	if rows > 0 {
		var rng *rand.Rand
		if seeded {
			rng = rand.New(rand.NewSource(seed))
		}
		sample, err := fr.Sample(sampleRows, rng)
		if err != nil {
			return nil, err
		}
		report.Sample = sample
	}

	if fr.Detailed() && rows > 0 {
		stats, err := fr.Describe()
		if err != nil {
			return nil, err
		}
		report.Stats = stats
	}

	return report, nil
}

func printJSON(report *inspectReport) error {
	data, err := gojson.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printText(report *inspectReport) {
	fmt.Printf("Source: %s\n\n", report.Source)

	fmt.Println("Features:")
	fmt.Print("\t[")
	for _, name := range report.FeatureNames {
		fmt.Printf("  %q", name)
	}
	fmt.Println("  ]")
	if len(report.DuplicateColumns) > 0 {
		fmt.Printf("\tduplicate names: %v\n", report.DuplicateColumns)
	}
	fmt.Println()

	fmt.Printf("The dataset consists of:\n\t%d rows,\n\t%d columns,\n\tthat is a total of %d cells.\n\n",
		report.Rows, report.Columns, report.Cells)

	printRows("Head", report.Head)
	printRows("Tail", report.Tail)
	printRows("Random Samples", report.Sample)

	if len(report.Stats) > 0 {
		fmt.Println("Column ranges:")
		for _, s := range report.Stats {
			fmt.Printf("\t%s: min %.3f, max %.3f\n", s.Name, s.Min, s.Max)
		}
		fmt.Println()
	}
}

func printRows(title string, rows [][]float64) {
	if rows == nil {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, row := range rows {
		for _, v := range row {
			fmt.Printf("\t%6.3f", v)
		}
		fmt.Println()
	}
	fmt.Println()
}
