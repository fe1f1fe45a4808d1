package cmd

import (
	"fmt"

	"github.com/cesarferreira/bluepods/internal/bluetooth"
	"github.com/cesarferreira/bluepods/internal/prompt"
	"github.com/cesarferreira/bluepods/internal/resolver"

	"github.com/spf13/cobra"
)

// resolveDevice fetches the current device list and narrows it to exactly one
// device: substring match first, fuzzy fallback, interactive disambiguation
// only when more than one candidate remains. The returned device carries the
// address all subsequent actions must use.
func resolveDevice(cmd *cobra.Command, adapter *bluetooth.Adapter, query string) (bluetooth.Device, error) {
	devices, err := adapter.ListDevices(cmd.Context())
	if err != nil {
		return bluetooth.Device{}, err
	}

	matches := resolver.Resolve(query, devices)
	switch len(matches) {
	case 0:
		return bluetooth.Device{}, &bluetooth.NoMatchError{Query: query}
	case 1:
		return matches[0], nil
	}

	rl, err := prompt.New()
	if err != nil {
		return bluetooth.Device{}, fmt.Errorf("open selection prompt: %w", err)
	}
	defer rl.Close()
	return prompt.Select(rl, cmd.OutOrStdout(), matches)
}
