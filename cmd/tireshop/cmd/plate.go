package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tireshop/internal/directory"
)

var plateCmd = &cobra.Command{
	Use:   "plate",
	Short: "Manage company plates",
}

var plateAddCmd = &cobra.Command{
	Use:   "add <компания> <госномер>...",
	Short: "Add plates to an existing company",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newStore().AddPlates(args[0], args[1:]); err != nil {
			return err
		}
		fmt.Printf("Номера добавлены к %q\n", args[0])
		return nil
	},
}

var plateRemoveCmd = &cobra.Command{
	Use:   "remove <компания> <госномер>...",
	Short: "Remove plates from a company",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		if err := store.RemovePlates(args[0], args[1:]); err != nil {
			return err
		}
		rec, _ := store.Load().Company(args[0])
		fmt.Printf("Остались номера %q: %s\n", args[0], directory.JoinPlates(rec.Plates))
		return nil
	},
}

func init() {
	plateCmd.AddCommand(plateAddCmd)
	plateCmd.AddCommand(plateRemoveCmd)
}
