package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tireshop/internal/directory"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage the company directory",
}

var listAll bool

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List companies (payable only by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := newStore().Load()

		for _, rec := range snap.Records {
			if !listAll && !rec.PayEnabled {
				continue
			}
			pay := "нет"
			if rec.PayEnabled {
				pay = "да"
			}
			fmt.Printf("%s\tИНН: %s\tоплата: %s\tномера: %s\n",
				rec.Name, rec.TaxID, pay, directory.JoinPlates(rec.Plates))
		}
		return nil
	},
}

var (
	addINN    string
	addPlates string
)

var companyAddCmd = &cobra.Command{
	Use:   "add <название>",
	Short: "Add a company to the end of the directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := newStore().AddCompany(args[0], addINN, directory.ParsePlates(addPlates))
		if err != nil {
			return err
		}
		fmt.Printf("Компания %q добавлена (в конец, оплата=да)\n", args[0])
		return nil
	},
}

var companyRemoveCmd = &cobra.Command{
	Use:   "remove <название>",
	Short: "Remove a company and all its plates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newStore().RemoveCompany(args[0]); err != nil {
			return err
		}
		fmt.Printf("Компания %q удалена\n", args[0])
		return nil
	},
}

var companyFindCmd = &cobra.Command{
	Use:   "find <госномер>",
	Short: "Find the company owning a plate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, ok := newStore().FindByPlate(args[0])
		if !ok {
			return fmt.Errorf("plate %q is not registered", args[0])
		}
		fmt.Println(owner)
		return nil
	},
}

var payCmd = &cobra.Command{
	Use:   "pay <название> <да|нет>",
	Short: "Set the payment flag of a company",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[1] {
		case "да", "on", "yes":
			enabled = true
		case "нет", "off", "no":
			enabled = false
		default:
			return fmt.Errorf("unknown payment value %q (want да or нет)", args[1])
		}

		if err := newStore().SetPayment(args[0], enabled); err != nil {
			return err
		}
		fmt.Printf("Оплата для %q: %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	companyListCmd.Flags().BoolVar(&listAll, "all", false, "include companies with payment off")
	companyAddCmd.Flags().StringVar(&addINN, "inn", "", "tax id")
	companyAddCmd.Flags().StringVar(&addPlates, "plates", "", "comma-separated plates")

	companyCmd.AddCommand(companyListCmd)
	companyCmd.AddCommand(companyAddCmd)
	companyCmd.AddCommand(companyRemoveCmd)
	companyCmd.AddCommand(companyFindCmd)
}
