package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tireshop/internal/pricing"
)

var (
	priceClass  string
	priceSize   string
	priceOption string
)

var priceCmd = &cobra.Command{
	Use:   "price <услуга>",
	Short: "Resolve the unit price of a service",
	Long: `Resolve the unit price for a service, vehicle class and tire diameter.
Unpriced combinations print 0; the price list never fails a lookup.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		class, err := parseClass(priceClass)
		if err != nil {
			return err
		}
		m := loadMatrix()
		fmt.Println(pricing.UnitPrice(m, class, args[0], priceSize, priceOption))
		return nil
	},
}

var priceSizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List the tire diameters of a vehicle class",
	RunE: func(cmd *cobra.Command, args []string) error {
		class, err := parseClass(priceClass)
		if err != nil {
			return err
		}
		for _, s := range loadMatrix().Sizes(class) {
			fmt.Println(s)
		}
		return nil
	},
}

var priceServicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the order-form services and their sub-options",
	Run: func(cmd *cobra.Command, args []string) {
		for _, svc := range pricing.Services {
			if opts := pricing.Options(svc); opts != nil {
				fmt.Printf("%s (%s/%s)\n", svc, opts[0], opts[1])
				continue
			}
			fmt.Println(svc)
		}
	},
}

func init() {
	priceCmd.PersistentFlags().StringVar(&priceClass, "class", "car", "vehicle class: car or truck")
	priceCmd.Flags().StringVar(&priceSize, "size", "", "tire diameter column, e.g. R22.5")
	priceCmd.Flags().StringVar(&priceOption, "option", "", "sub-option for two-variant services")

	priceCmd.AddCommand(priceSizesCmd)
	priceCmd.AddCommand(priceServicesCmd)
}
