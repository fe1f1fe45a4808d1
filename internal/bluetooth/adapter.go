package bluetooth

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cesarferreira/bluepods/pkg/logging"
)

const (
	// toolName is the external Bluetooth control executable every operation
	// delegates to.
	toolName = "blueutil"
	// audioToolName queries the default audio output device. Optional: its
	// absence only blanks the audio field of the status view.
	audioToolName = "SwitchAudioSource"
)

// runner executes an external command and returns its combined output.
// Injectable so tests can substitute canned output for the real tool.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Adapter wraps the blueutil executable. All methods are synchronous and
// block until the subprocess exits; the adapter holds no state beyond the
// resolved tool paths.
type Adapter struct {
	tool      string
	audioTool string // empty when SwitchAudioSource is not installed
	run       runner
}

// New locates the external tools and returns an adapter. Returns
// *UnavailableError when blueutil is not installed; a missing audio query
// tool is tolerated.
func New() (*Adapter, error) {
	path, err := exec.LookPath(toolName)
	if err != nil {
		return nil, &UnavailableError{Tool: toolName}
	}
	a := &Adapter{tool: path, run: execRunner}
	if audioPath, err := exec.LookPath(audioToolName); err == nil {
		a.audioTool = audioPath
	} else {
		logging.Debug("bluetooth", "%s not installed, audio output will not be reported", audioToolName)
	}
	return a, nil
}

// ListDevices returns the paired devices in the order blueutil reports them.
// Unrecognized lines are skipped; if the output is non-empty but nothing
// parses, the whole query fails with *QueryError.
func (a *Adapter) ListDevices(ctx context.Context) ([]Device, error) {
	out, err := a.query(ctx, "paired", "--paired")
	if err != nil {
		return nil, err
	}
	devices := parseDevices(out)
	if len(devices) == 0 && strings.TrimSpace(out) != "" {
		return nil, &QueryError{Query: "paired", Reason: fmt.Errorf("unrecognized output: %q", firstLine(out))}
	}
	return devices, nil
}

// Status composes the power, discoverable, audio output and device list
// queries into one aggregate. A failing sub-query surfaces as a *QueryError
// naming that query; only the optional audio query degrades silently.
func (a *Adapter) Status(ctx context.Context) (SystemStatus, error) {
	var st SystemStatus

	powered, err := a.queryBool(ctx, "power", "--power")
	if err != nil {
		return st, err
	}
	st.Powered = powered

	discoverable, err := a.queryBool(ctx, "discoverable", "--discoverable")
	if err != nil {
		return st, err
	}
	st.Discoverable = discoverable

	devices, err := a.ListDevices(ctx)
	if err != nil {
		return st, err
	}
	st.Devices = devices

	if a.audioTool != "" {
		out, err := a.run(ctx, a.audioTool, "-c")
		if err != nil {
			logging.Warn("bluetooth", "default audio output query failed: %v", err)
		} else {
			st.AudioOutput = strings.TrimSpace(string(out))
		}
	}
	return st, nil
}

// Power reports whether the Bluetooth adapter is powered on.
func (a *Adapter) Power(ctx context.Context) (bool, error) {
	return a.queryBool(ctx, "power", "--power")
}

// SetPower turns the Bluetooth adapter on or off.
func (a *Adapter) SetPower(ctx context.Context, on bool) error {
	state := "0"
	if on {
		state = "1"
	}
	out, err := a.run(ctx, a.tool, "--power", state)
	if err != nil {
		return &QueryError{Query: "power", Reason: fmt.Errorf("%s: %w", strings.TrimSpace(string(out)), err)}
	}
	return nil
}

// Connect connects the device with the given address. One attempt, no retry.
func (a *Adapter) Connect(ctx context.Context, address string) error {
	return a.action(ctx, "connect", "--connect", address)
}

// Disconnect disconnects the device with the given address.
func (a *Adapter) Disconnect(ctx context.Context, address string) error {
	return a.action(ctx, "disconnect", "--disconnect", address)
}

func (a *Adapter) action(ctx context.Context, name, flag, address string) error {
	logging.Debug("bluetooth", "running %s %s %s", a.tool, flag, address)
	out, err := a.run(ctx, a.tool, flag, address)
	if err != nil {
		return &ActionError{
			Action:   name,
			Address:  address,
			Kind:     classifyActionFailure(string(out)),
			ExitCode: exitCode(err),
			Output:   strings.TrimSpace(string(out)),
		}
	}
	return nil
}

func (a *Adapter) query(ctx context.Context, name string, args ...string) (string, error) {
	logging.Debug("bluetooth", "running %s %s", a.tool, strings.Join(args, " "))
	out, err := a.run(ctx, a.tool, args...)
	if err != nil {
		return "", &QueryError{Query: name, Reason: fmt.Errorf("%s: %w", strings.TrimSpace(string(out)), err)}
	}
	return string(out), nil
}

// queryBool runs a query whose entire output is "1" or "0".
func (a *Adapter) queryBool(ctx context.Context, name string, args ...string) (bool, error) {
	out, err := a.query(ctx, name, args...)
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(out) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, &QueryError{Query: name, Reason: fmt.Errorf("expected 0 or 1, got %q", firstLine(out))}
	}
}

// parseDevices extracts devices from blueutil --paired output. The format is
// one device per line:
//
//	address: 70-88-6b-8e-f4-a7, connected, not favourite, paired, name: "AirPods Pro", ...
//
// Lines without an address token are skipped rather than treated as fatal.
func parseDevices(out string) []Device {
	var devices []Device
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "address:") {
			continue
		}
		d, ok := parseDeviceLine(line)
		if !ok {
			logging.Debug("bluetooth", "skipping unparsable device line: %q", line)
			continue
		}
		devices = append(devices, d)
	}
	return devices
}

func parseDeviceLine(line string) (Device, bool) {
	var d Device
	first, _, _ := strings.Cut(line, ",")
	addr, ok := strings.CutPrefix(strings.TrimSpace(first), "address: ")
	if !ok || addr == "" {
		return Device{}, false
	}
	d.Address = addr
	if _, rest, ok := strings.Cut(line, `name: "`); ok {
		d.Name, _, _ = strings.Cut(rest, `"`)
	}
	// "not connected" also contains "connected", so check the negation first.
	d.Connected = strings.Contains(line, "connected") && !strings.Contains(line, "not connected")
	d.Paired = !strings.Contains(line, "not paired")
	return d, true
}

// classifyActionFailure maps blueutil's failure text to an error kind.
func classifyActionFailure(out string) ActionErrorKind {
	lower := strings.ToLower(out)
	if strings.Contains(lower, "not reachable") || strings.Contains(lower, "failed to connect") {
		return ActionDeviceNotReachable
	}
	return ActionExternalFailure
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
