package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/wizard"
)

var (
	intShipOut     string
	intManifestOut string
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build a ship configuration and manifest with guided prompts",
	Long: `Walk through ship parameters and cargo items interactively, then
write a ship configuration and manifest that the optimize command can
consume.`,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().StringVar(&intShipOut, "ship-out", "ship.cfg", "path for the generated ship configuration")
	interactiveCmd.Flags().StringVar(&intManifestOut, "manifest-out", "cargo.txt", "path for the generated manifest")
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	res, err := wizard.Run()
	if err != nil {
		return err
	}
	if len(res.Cargo) == 0 {
		return fmt.Errorf("no cargo items entered")
	}
	if err := wizard.WriteFiles(res, intShipOut, intManifestOut); err != nil {
		return err
	}
	fmt.Printf("Wrote %s and %s (%d items).\n", intShipOut, intManifestOut, len(res.Cargo))
	fmt.Printf("Run: cargoforge optimize --ship %s --manifest %s\n", intShipOut, intManifestOut)
	return nil
}
