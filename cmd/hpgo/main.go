package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/planfit/hpgo/internal/calculation"
	"github.com/planfit/hpgo/internal/catalog"
	"github.com/planfit/hpgo/internal/config"
	"github.com/planfit/hpgo/internal/output"
	"github.com/planfit/hpgo/internal/server"
	"github.com/planfit/hpgo/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hpgo",
	Short: "Home purchase planning calculator CLI",
	Long:  "Planning calculator for Korean home purchases: loan limits, funding gaps, growth projections and product recommendations",
}

// newEngine builds an engine, attaching the fund and savings catalogs
// when their data files exist.
func newEngine(fundPath, savingsPath string, debugMode bool) *calculation.Engine {
	var engine *calculation.Engine
	if fundPath != "" && fileExists(fundPath) {
		funds, err := catalog.LoadFundCatalog(fundPath)
		if err != nil {
			log.Fatal(err)
		}
		engine = calculation.NewEngineWithCatalog(funds)
	} else {
		engine = calculation.NewEngine()
	}
	if savingsPath != "" && fileExists(savingsPath) {
		savings, err := catalog.LoadSavingsCatalog(savingsPath)
		if err != nil {
			log.Fatal(err)
		}
		engine.SavingsCatalog = savings
	}
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

var planCmd = &cobra.Command{
	Use:   "plan [input-file]",
	Short: "Build a funding plan from a YAML input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		fundPath, _ := cmd.Flags().GetString("funds")
		savingsPath, _ := cmd.Flags().GetString("savings")
		debugMode, _ := cmd.Flags().GetBool("debug")
		engine := newEngine(fundPath, savingsPath, debugMode)

		plan, err := engine.BuildFundingPlan(input.ToPlanRequest())
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		if err := output.NewReportGenerator().GenerateReport(plan, format); err != nil {
			log.Fatal(err)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a plan input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Input file %s is valid\n", args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the planning tool HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		logger := logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		cfg := server.NewConfig()
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(level)
		}

		engine := newEngine(cfg.FundDataPath, "", false)

		var savings *catalog.SavingsCatalog
		if fileExists(cfg.SavingsPath) {
			var err error
			savings, err = catalog.LoadSavingsCatalog(cfg.SavingsPath)
			if err != nil {
				logger.Fatalf("Failed to load savings catalog: %v", err)
			}
		}

		var prices catalog.PriceProvider
		if fileExists(cfg.MarketPath) {
			static, err := catalog.LoadStaticPrices(cfg.MarketPath)
			if err != nil {
				logger.Fatalf("Failed to load market prices: %v", err)
			}
			var cache catalog.CacheRepository
			if cfg.RedisAddr != "" {
				cache = catalog.NewRedisCache(cfg.RedisAddr)
			} else {
				cache = catalog.NewMemoryCache()
			}
			prices = catalog.NewCachedPrices(static, cache)
		}

		h := server.NewHandler(engine, savings, prices, logger)
		if err := server.Serve(cfg, h); err != nil {
			logger.Fatalf("Server stopped: %v", err)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Explore plan assumptions interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		fundPath, _ := cmd.Flags().GetString("funds")
		engine := newEngine(fundPath, "", false)

		model := tui.NewModel(engine, input.ToPlanRequest())
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "hpgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

func main() {
	planCmd.Flags().String("format", "console", "Output format (console, json)")
	planCmd.Flags().String("funds", "data/fund_data.json", "Fund catalog JSON path")
	planCmd.Flags().String("savings", "data/saving_data.csv", "Savings product CSV path")
	planCmd.Flags().Bool("debug", false, "Enable debug logging")
	tuiCmd.Flags().String("funds", "data/fund_data.json", "Fund catalog JSON path")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
