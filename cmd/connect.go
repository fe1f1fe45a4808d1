package cmd

import (
	"fmt"

	"github.com/cesarferreira/bluepods/internal/bluetooth"
	"github.com/cesarferreira/bluepods/internal/output"

	"github.com/spf13/cobra"
)

// newConnectCmd creates the Cobra command that connects a device by
// (partial) name.
func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <name>",
		Short: "Connect to a paired device by (partial) name",
		Long: `Connect to a paired device. The name may be partial: a case-insensitive
substring match wins, otherwise fuzzy matching tolerates typos. When several
devices match, a numbered prompt asks which one to use.

Examples:
  bluepods connect "AirPods Pro"
  bluepods connect airpods
  bluepods connect arpods`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := bluetooth.New()
			if err != nil {
				return err
			}
			device, err := resolveDevice(cmd, adapter, args[0])
			if err != nil {
				return err
			}
			err = output.Spin(fmt.Sprintf("Connecting to %s...", device.Name), flagQuiet, func() error {
				return adapter.Connect(cmd.Context(), device.Address)
			})
			if err != nil {
				return err
			}
			output.Successf(cmd.OutOrStdout(), "Connected to %s", device.Name)
			return nil
		},
	}
}
