package cmd

import (
	"fmt"

	"github.com/cesarferreira/bluepods/internal/bluetooth"
	"github.com/cesarferreira/bluepods/internal/output"

	"github.com/spf13/cobra"
)

// newDisconnectCmd creates the Cobra command that disconnects a device by
// (partial) name.
func newDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <name>",
		Short: "Disconnect a paired device by (partial) name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := bluetooth.New()
			if err != nil {
				return err
			}
			device, err := resolveDevice(cmd, adapter, args[0])
			if err != nil {
				return err
			}
			err = output.Spin(fmt.Sprintf("Disconnecting %s...", device.Name), flagQuiet, func() error {
				return adapter.Disconnect(cmd.Context(), device.Address)
			})
			if err != nil {
				return err
			}
			output.Successf(cmd.OutOrStdout(), "Disconnected %s", device.Name)
			return nil
		},
	}
}
