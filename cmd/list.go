package cmd

import (
	"github.com/cesarferreira/bluepods/internal/bluetooth"
	"github.com/cesarferreira/bluepods/internal/output"

	"github.com/spf13/cobra"
)

// newListCmd creates the Cobra command that lists all paired devices.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all paired Bluetooth devices",
		Long: `List all devices in the OS pairing registry with their address and
connection state, in the order the registry reports them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := bluetooth.New()
			if err != nil {
				return err
			}
			devices, err := adapter.ListDevices(cmd.Context())
			if err != nil {
				return err
			}
			output.DeviceTable(cmd.OutOrStdout(), devices)
			return nil
		},
	}
}
