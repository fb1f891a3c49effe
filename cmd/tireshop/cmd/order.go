package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tireshop/internal/order"
	"tireshop/internal/pricing"
)

var (
	orderClass    string
	orderSize     string
	orderCustomer string
	orderPlate    string
	orderDriver   string
	orderDefect   string
	orderIssuedTo string
	orderMechanic string
	orderExport   string
)

var orderCmd = &cobra.Command{
	Use:   "order <услуга:кол-во[:опция]>...",
	Short: "Price an order and print its total",
	Long: `Price a set of service lines and print the per-line costs, the numeric
total and its spelled-out ruble form.

Each argument is "услуга:количество" with an optional sub-option, e.g.
  "Балансировка:4"
  "Снятие/установка:4:внутреннее"

When the customer is picked by plate (--plate without --customer), the
company is resolved through the directory's reverse index.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		class, err := parseClass(orderClass)
		if err != nil {
			return err
		}

		lines, err := parseLines(args, class)
		if err != nil {
			return err
		}

		customer := orderCustomer
		if customer == "" && orderPlate != "" {
			if owner, ok := newStore().FindByPlate(orderPlate); ok {
				customer = owner
			} else {
				customer = "Частное лицо"
			}
		}

		total := order.CalcTotal(lines)
		for _, l := range order.Selected(lines) {
			opt := ""
			if l.Option != "" {
				opt = " (" + l.Option + ")"
			}
			fmt.Printf("%s%s\t%d x %d = %d\n", l.Service, opt, l.Qty, l.UnitPrice, l.Cost())
		}
		fmt.Printf("Итого: %d\n%s\n", total.Amount, total.AmountText)

		if orderExport != "" {
			info := order.Info{
				Customer: customer,
				Plate:    orderPlate,
				Driver:   orderDriver,
				Defect:   orderDefect,
				IssuedTo: orderIssuedTo,
				Mechanic: orderMechanic,
			}
			if err := order.WriteSummary(orderExport, info, lines, total); err != nil {
				return err
			}
			log.Info("order summary written", zap.String("path", orderExport))
		}
		return nil
	},
}

// parseLines turns "услуга:кол-во[:опция]" arguments into priced lines.
func parseLines(args []string, class pricing.VehicleClass) ([]order.Line, error) {
	m := loadMatrix()

	var lines []order.Line
	for _, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("bad line %q (want услуга:кол-во[:опция])", arg)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("bad quantity in %q", arg)
		}
		service := strings.TrimSpace(parts[0])
		option := ""
		if len(parts) == 3 {
			option = strings.TrimSpace(parts[2])
		}
		lines = append(lines, order.Line{
			Service:   service,
			Option:    option,
			Qty:       qty,
			UnitPrice: pricing.UnitPrice(m, class, service, orderSize, option),
		})
	}
	return lines, nil
}

func init() {
	orderCmd.Flags().StringVar(&orderClass, "class", "car", "vehicle class: car or truck")
	orderCmd.Flags().StringVar(&orderSize, "size", "", "tire diameter column, e.g. R13")
	orderCmd.Flags().StringVar(&orderCustomer, "customer", "", "customer company name")
	orderCmd.Flags().StringVar(&orderPlate, "plate", "", "vehicle plate; resolves the company when --customer is not set")
	orderCmd.Flags().StringVar(&orderDriver, "driver", "", "driver full name")
	orderCmd.Flags().StringVar(&orderDefect, "defect", "", "defect description")
	orderCmd.Flags().StringVar(&orderIssuedTo, "issued-to", "", "worker the order is issued to")
	orderCmd.Flags().StringVar(&orderMechanic, "mechanic", "", "mechanic surname")
	orderCmd.Flags().StringVar(&orderExport, "export", "", "write an order summary xlsx to this path")
}
