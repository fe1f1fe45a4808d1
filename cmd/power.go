package cmd

import (
	"fmt"

	"github.com/cesarferreira/bluepods/internal/bluetooth"
	"github.com/cesarferreira/bluepods/internal/output"

	"github.com/spf13/cobra"
)

// newPowerCmd creates the Cobra command that reads or sets the Bluetooth
// adapter power state. Without an argument it prints the current state.
func newPowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "power [on|off]",
		Short: "Show or set Bluetooth adapter power",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := bluetooth.New()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				on, err := adapter.Power(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Bluetooth power: %s\n", output.OnOff(on))
				return nil
			}

			var on bool
			switch args[0] {
			case "on":
				on = true
			case "off":
				on = false
			default:
				return fmt.Errorf("expected \"on\" or \"off\", got %q", args[0])
			}
			if err := adapter.SetPower(cmd.Context(), on); err != nil {
				return err
			}
			output.Successf(cmd.OutOrStdout(), "Bluetooth power set to %s", args[0])
			return nil
		},
	}
}
