package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taxslab/regimeselect/internal/api"
	"github.com/taxslab/regimeselect/internal/compare"
	"github.com/taxslab/regimeselect/internal/config"
	"github.com/taxslab/regimeselect/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "regimeselect",
	Short: "Income-tax regime comparison CLI",
	Long:  "Compares income-tax liability under the old and new regimes and recommends the cheaper one",
}

// loadRegimes returns the rule sets for the invocation: the compiled-in
// FY 2025-26 rules, or the --regimes file when given.
func loadRegimes(cmd *cobra.Command) config.RegimeSet {
	regimesFile, _ := cmd.Flags().GetString("regimes")
	if regimesFile == "" {
		return config.DefaultRegimeSet()
	}
	set, err := config.LoadRegimeRules(regimesFile)
	if err != nil {
		log.Fatal(err)
	}
	return set
}

var compareCmd = &cobra.Command{
	Use:   "compare [profile-file]",
	Short: "Compare tax liability under both regimes",
	Long: `Compare tax liability for an income profile under the old and new regimes.

Examples:
  regimeselect compare profile.yaml
  regimeselect compare profile.yaml --format json --pretty
  regimeselect compare profile.yaml --regimes fy2024.yaml --format csv
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		profile, err := parser.LoadProfile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := compare.NewCompareEngine(loadRegimes(cmd))
		result := engine.Compare(profile)

		outputFormat, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(outputFormat) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			output, err := formatter.Format(&result)
			if err != nil {
				log.Fatalf("Failed to format CSV: %v", err)
			}
			fmt.Print(output)

		case "json":
			pretty, _ := cmd.Flags().GetBool("pretty")
			formatter := &compare.JSONFormatter{Pretty: pretty}
			output, err := formatter.Format(&result)
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Println(output)

		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(&result))

		default:
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate an income profile file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadProfile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Profile file %s is valid\n", args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the regime comparator as a JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = logger.Sync() }()

		engine := compare.NewCompareEngine(loadRegimes(cmd))
		server := api.NewServer(engine, logger)

		listen, _ := cmd.Flags().GetString("listen")
		if err := server.ListenAndServe(listen); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive entry form and comparison",
	Run: func(cmd *cobra.Command, args []string) {
		engine := compare.NewCompareEngine(loadRegimes(cmd))
		program := tea.NewProgram(tui.NewModel(engine), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "regimeselect %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func init() {
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("pretty", false, "Indent JSON output")
	compareCmd.Flags().String("regimes", "", "Path to a regime rules file (default: built-in FY 2025-26 rules)")

	serveCmd.Flags().String("listen", ":8080", "Listen address")
	serveCmd.Flags().String("regimes", "", "Path to a regime rules file (default: built-in FY 2025-26 rules)")

	tuiCmd.Flags().String("regimes", "", "Path to a regime rules file (default: built-in FY 2025-26 rules)")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
