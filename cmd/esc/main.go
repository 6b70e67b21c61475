package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/estatecalc/esc/internal/calculation"
	"github.com/estatecalc/esc/internal/config"
	"github.com/estatecalc/esc/internal/domain"
	"github.com/estatecalc/esc/internal/output"
	"github.com/estatecalc/esc/internal/server"
	"github.com/estatecalc/esc/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "esc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// newEngine builds an engine, optionally pinned to an as-of date so a
// worksheet can be reproduced after the fact.
func newEngine(asOf string) *calculation.Engine {
	engine := calculation.NewEngine()
	if asOf == "" {
		return engine
	}
	d := domain.ParseDate(asOf)
	if d.IsZero() {
		log.Fatalf("invalid --as-of date %q (want YYYY-MM-DD)", asOf)
	}
	engine.Now = func() time.Time { return d.Time }
	return engine
}

func render(rep *output.Report, format string) {
	formatter := output.NewFormatter(format)
	data, err := formatter.Format(rep)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(data)
}

var rootCmd = &cobra.Command{
	Use:   "esc",
	Short: "NC Elective Share Calculator",
	Long:  "Computes a surviving spouse's elective share under the North Carolina statutory scheme",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [case-file]",
	Short: "Calculate the elective share from a case file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outputFormat, _ := cmd.Flags().GetString("format")
		asOf, _ := cmd.Flags().GetString("as-of")

		parser := config.NewInputParser()
		caseFile, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(asOf)
		render(&output.Report{
			Result:   engine.Run(caseFile),
			Warnings: engine.Warnings(caseFile),
		}, outputFormat)
	},
}

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Calculate from aggregate totals without a per-asset breakdown",
	Run: func(cmd *cobra.Command, args []string) {
		outputFormat, _ := cmd.Flags().GetString("format")
		asOf, _ := cmd.Flags().GetString("as-of")

		str := func(name string) string {
			v, _ := cmd.Flags().GetString(name)
			return v
		}

		caseFile := &domain.CaseFile{
			Basics: domain.CaseBasics{
				MarriageDate: domain.ParseDate(str("marriage")),
				DeathDate:    domain.ParseDate(str("death")),
				LettersDate:  domain.ParseDate(str("letters")),
				NCDomiciled:  true,
			},
			Quick: &domain.QuickTotals{
				TotalAssets:          str("total-assets"),
				TotalClaims:          str("claims"),
				YearsAllowanceOthers: str("allowance-others"),
				PropertyPassing:      str("property-passing"),
				Taxes:                str("taxes"),
				ClaimsOnSpouse:       str("claims-on-spouse"),
			},
		}

		engine := newEngine(asOf)
		render(&output.Report{
			Result:   engine.Run(caseFile),
			Warnings: engine.Warnings(caseFile),
		}, outputFormat)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatal(err)
		}
		defer logger.Sync()

		logger.Info("starting server", zap.String("addr", addr))
		if err := server.New(logger).ListenAndServe(addr); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [case-file]",
	Short: "Interactive worksheet in the terminal",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		if err := tui.Run(path); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().String("as-of", "", "Evaluate deadlines as of this date (YYYY-MM-DD)")

	quickCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	quickCmd.Flags().String("as-of", "", "Evaluate deadlines as of this date (YYYY-MM-DD)")
	quickCmd.Flags().String("marriage", "", "Date of marriage (YYYY-MM-DD)")
	quickCmd.Flags().String("death", "", "Date of death (YYYY-MM-DD)")
	quickCmd.Flags().String("letters", "", "Date letters were issued (YYYY-MM-DD)")
	quickCmd.Flags().String("total-assets", "", "Total assets subject to the share")
	quickCmd.Flags().String("claims", "", "Enforceable claims against the estate")
	quickCmd.Flags().String("allowance-others", "", "Year's allowances paid to others")
	quickCmd.Flags().String("property-passing", "", "Property passing to the surviving spouse")
	quickCmd.Flags().String("taxes", "", "Estate taxes attributable to the spouse's property")
	quickCmd.Flags().String("claims-on-spouse", "", "Claims allocated against the spouse's property")

	serveCmd.Flags().String("addr", ":8080", "Listen address")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
