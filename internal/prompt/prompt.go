// Package prompt implements the interactive disambiguation step that reduces
// multiple name matches to one concrete device.
package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/cesarferreira/bluepods/internal/bluetooth"
)

// LineReader reads a single line of user input. *readline.Instance satisfies
// it; tests substitute a scripted reader.
type LineReader interface {
	Readline() (string, error)
}

// New creates the production line reader for device selection.
func New() (*readline.Instance, error) {
	return readline.New("Select device number: ")
}

// Select renders a 1-indexed numbered list of candidates in match order and
// reads one selection. Input that is not a valid index aborts with
// *bluetooth.InvalidSelectionError rather than re-prompting; so do interrupt
// and EOF. Callers short-circuit for zero or one candidates, so Select is
// only ever invoked with at least two.
func Select(rl LineReader, w io.Writer, devices []bluetooth.Device) (bluetooth.Device, error) {
	fmt.Fprintln(w, "Multiple devices found. Please choose one:")
	for i, d := range devices {
		fmt.Fprintf(w, "%d. %s\n", i+1, d.Name)
	}

	line, err := rl.Readline()
	if err == readline.ErrInterrupt || err == io.EOF {
		return bluetooth.Device{}, &bluetooth.InvalidSelectionError{Count: len(devices)}
	}
	if err != nil {
		return bluetooth.Device{}, fmt.Errorf("read selection: %w", err)
	}

	input := strings.TrimSpace(line)
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(devices) {
		return bluetooth.Device{}, &bluetooth.InvalidSelectionError{Input: input, Count: len(devices)}
	}
	return devices[n-1], nil
}
