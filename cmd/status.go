package cmd

import (
	"github.com/cesarferreira/bluepods/internal/bluetooth"
	"github.com/cesarferreira/bluepods/internal/output"

	"github.com/spf13/cobra"
)

// newStatusCmd creates the Cobra command that shows the aggregate Bluetooth
// status: adapter power, discoverability, the default audio output and the
// paired device list.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show Bluetooth power, discoverability and paired devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := bluetooth.New()
			if err != nil {
				return err
			}
			st, err := adapter.Status(cmd.Context())
			if err != nil {
				return err
			}
			output.RenderStatus(cmd.OutOrStdout(), st)
			return nil
		},
	}
}
