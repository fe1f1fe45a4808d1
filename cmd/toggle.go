package cmd

import (
	"fmt"

	"github.com/cesarferreira/bluepods/internal/bluetooth"
	"github.com/cesarferreira/bluepods/internal/output"

	"github.com/spf13/cobra"
)

// newToggleCmd creates the Cobra command that flips a device's connection
// state: connected devices are disconnected, everything else is connected.
// The decision uses the connection state from the same listing the name was
// resolved against.
func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <name>",
		Short: "Connect or disconnect a device depending on its current state",
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

			if device.Connected {
				err = output.Spin(fmt.Sprintf("Disconnecting %s...", device.Name), flagQuiet, func() error {
					return adapter.Disconnect(cmd.Context(), device.Address)
				})
				if err != nil {
					return err
				}
				output.Successf(cmd.OutOrStdout(), "Disconnected %s", device.Name)
				return nil
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
