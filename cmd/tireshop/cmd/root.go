// Package cmd provides the CLI commands for the work-order engine.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tireshop/internal/config"
	"tireshop/internal/directory"
	"tireshop/internal/logging"
	"tireshop/internal/pricing"
)

var (
	cfg     *config.Config
	log     *zap.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tireshop",
	Short: "Наряд-заказ: справочник компаний и прайс шиномонтажа",
	Long: `tireshop resolves pricing and customer data for tire-shop work orders.

The company directory and the price list are plain xlsx workbooks in the
data directory (companies.xlsx, price.xlsx); both may be edited by hand
between calls.

Examples:
  tireshop company list --all
  tireshop company add "ООО Ромашка" --inn 7701234567 --plates "А123ВС77, В456ЕК77"
  tireshop price "Снятие/установка" --class truck --size R22.5 --option внутреннее
  tireshop order --class car --size R13 "Балансировка:4" "Вентиль легковой:4:хром"`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(companyCmd)
	rootCmd.AddCommand(plateCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log = logging.New(level)
}

func newStore() *directory.Store {
	return directory.NewStore(cfg.CompaniesFile, log)
}

func loadMatrix() *pricing.Matrix {
	return pricing.Load(cfg.PriceFile, log)
}

func parseClass(s string) (pricing.VehicleClass, error) {
	switch s {
	case "car", "легковой":
		return pricing.ClassCar, nil
	case "truck", "грузовой":
		return pricing.ClassTruck, nil
	}
	return "", fmt.Errorf("unknown vehicle class %q (want car or truck)", s)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tireshop version 2.3.0")
	},
}
