package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/project"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List and manage saved stowage plans",
	RunE:  runPlansList,
}

var plansDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := project.DeletePlan(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted plan %q.\n", args[0])
		return nil
	},
}

func init() {
	plansCmd.AddCommand(plansDeleteCmd)
	rootCmd.AddCommand(plansCmd)
}

func runPlansList(cmd *cobra.Command, args []string) error {
	plans, err := project.ListPlans()
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println("No saved plans. Use optimize --save <name> to create one.")
		return nil
	}
	for _, p := range plans {
		fmt.Printf("%-30s %s\n", p.Name, p.Modified.Format("2006-01-02 15:04"))
	}
	return nil
}
