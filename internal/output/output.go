// Package output renders devices, status views and errors as colorized
// terminal text. Pure formatting: no decision logic lives here.
package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cesarferreira/bluepods/internal/bluetooth"
)

// DisableColors turns off ANSI styling for all subsequent output.
func DisableColors() {
	text.DisableColors()
}

// OnOff renders a power-style boolean as a colored state word.
func OnOff(on bool) string {
	if on {
		return text.FgGreen.Sprint("On")
	}
	return text.FgRed.Sprint("Off")
}

func connectionState(connected bool) string {
	if connected {
		return text.FgGreen.Sprint("Connected")
	}
	return text.FgRed.Sprint("Disconnected")
}

// DeviceTable renders the device list as a rounded table, preserving the
// order the pairing registry reported.
func DeviceTable(w io.Writer, devices []bluetooth.Device) {
	if len(devices) == 0 {
		fmt.Fprintln(w, "No paired devices.")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Address", "Status", "Name"})
	for _, d := range devices {
		t.AppendRow(table.Row{d.Address, connectionState(d.Connected), d.Name})
	}
	t.Render()
}

// RenderStatus prints the aggregate status view: adapter state first, then
// the device table.
func RenderStatus(w io.Writer, st bluetooth.SystemStatus) {
	fmt.Fprintln(w, "Bluetooth")
	fmt.Fprintf(w, "  Power:         %s\n", OnOff(st.Powered))
	fmt.Fprintf(w, "  Discoverable:  %s\n", OnOff(st.Discoverable))
	audio := st.AudioOutput
	if audio == "" {
		audio = text.FgHiBlack.Sprint("unknown")
	}
	fmt.Fprintf(w, "  Audio output:  %s\n", audio)
	fmt.Fprintf(w, "  Paired:        %d device(s)\n", len(st.Devices))
	if len(st.Devices) > 0 {
		fmt.Fprintln(w)
		DeviceTable(w, st.Devices)
	}
}

// Successf prints a green success line.
func Successf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, text.FgGreen.Sprintf(format, args...))
}

// Errorf prints a red error line.
func Errorf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, text.FgRed.Sprintf(format, args...))
}
