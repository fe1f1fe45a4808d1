package bluetooth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairedOutput = `address: 70-88-6b-8e-f4-a7, connected, not favourite, paired, name: "AirPods Pro", recent access date: 2024-02-03T10:11:12Z
address: a4-c3-f0-11-22-33, not connected, not favourite, paired, name: "AirPods Max", recent access date: 2024-01-28T08:00:00Z
address: 38-18-4c-aa-bb-cc, not connected, favourite, paired, name: "Sony WH-1000XM4"`

// fakeAdapter returns an adapter whose runner serves canned output keyed by
// the joined argument list.
func fakeAdapter(responses map[string]string, errs map[string]error) *Adapter {
	return &Adapter{
		tool: "blueutil",
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			key := strings.Join(args, " ")
			return []byte(responses[key]), errs[key]
		},
	}
}

func TestListDevices(t *testing.T) {
	a := fakeAdapter(map[string]string{"--paired": pairedOutput}, nil)

	devices, err := a.ListDevices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 3)

	assert.Equal(t, Device{
		Name:      "AirPods Pro",
		Address:   "70-88-6b-8e-f4-a7",
		Connected: true,
		Paired:    true,
	}, devices[0])
	assert.Equal(t, "AirPods Max", devices[1].Name)
	assert.False(t, devices[1].Connected)
	assert.Equal(t, "Sony WH-1000XM4", devices[2].Name)

	// Order as reported, not re-sorted.
	assert.Equal(t, "a4-c3-f0-11-22-33", devices[1].Address)
	assert.Equal(t, "38-18-4c-aa-bb-cc", devices[2].Address)
}

func TestListDevicesSkipsUnrecognizedLines(t *testing.T) {
	out := "some banner line\n" + pairedOutput + "\n\ntrailing noise"
	a := fakeAdapter(map[string]string{"--paired": out}, nil)

	devices, err := a.ListDevices(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 3)
}

func TestListDevicesEmptyOutput(t *testing.T) {
	a := fakeAdapter(map[string]string{"--paired": ""}, nil)

	devices, err := a.ListDevices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestListDevicesUnparsableOutput(t *testing.T) {
	a := fakeAdapter(map[string]string{"--paired": "usage: blueutil [options]\n"}, nil)

	_, err := a.ListDevices(context.Background())
	var queryErr *QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "paired", queryErr.Query)
}

func TestListDevicesCommandFailure(t *testing.T) {
	a := fakeAdapter(
		map[string]string{"--paired": "blueutil: something broke"},
		map[string]error{"--paired": errors.New("exit status 1")},
	)

	_, err := a.ListDevices(context.Background())
	var queryErr *QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "paired", queryErr.Query)
	assert.Contains(t, queryErr.Error(), "something broke")
}

func TestStatus(t *testing.T) {
	a := fakeAdapter(map[string]string{
		"--paired":       pairedOutput,
		"--power":        "1\n",
		"--discoverable": "0\n",
		"-c":             "AirPods Pro\n",
	}, nil)
	a.audioTool = "SwitchAudioSource"

	st, err := a.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Powered)
	assert.False(t, st.Discoverable)
	assert.Equal(t, "AirPods Pro", st.AudioOutput)
	assert.Len(t, st.Devices, 3)
}

func TestStatusWithoutAudioTool(t *testing.T) {
	a := fakeAdapter(map[string]string{
		"--paired":       pairedOutput,
		"--power":        "1",
		"--discoverable": "1",
	}, nil)

	st, err := a.Status(context.Background())
	require.NoError(t, err)
	assert.Empty(t, st.AudioOutput)
	assert.True(t, st.Discoverable)
}

func TestStatusSurfacesFailedSubQuery(t *testing.T) {
	a := fakeAdapter(
		map[string]string{"--power": "1"},
		map[string]error{"--discoverable": errors.New("exit status 1")},
	)

	_, err := a.Status(context.Background())
	var queryErr *QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "discoverable", queryErr.Query)
}

func TestStatusToleratesAudioQueryFailure(t *testing.T) {
	a := fakeAdapter(
		map[string]string{
			"--paired":       pairedOutput,
			"--power":        "1",
			"--discoverable": "0",
		},
		map[string]error{"-c": errors.New("exit status 1")},
	)
	a.audioTool = "SwitchAudioSource"

	st, err := a.Status(context.Background())
	require.NoError(t, err)
	assert.Empty(t, st.AudioOutput)
}

func TestQueryBoolRejectsUnexpectedOutput(t *testing.T) {
	a := fakeAdapter(map[string]string{"--power": "maybe\n"}, nil)

	_, err := a.Power(context.Background())
	var queryErr *QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Contains(t, queryErr.Error(), "maybe")
}

func TestSetPower(t *testing.T) {
	var gotArgs []string
	a := &Adapter{
		tool: "blueutil",
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			gotArgs = args
			return nil, nil
		},
	}

	require.NoError(t, a.SetPower(context.Background(), true))
	assert.Equal(t, []string{"--power", "1"}, gotArgs)

	require.NoError(t, a.SetPower(context.Background(), false))
	assert.Equal(t, []string{"--power", "0"}, gotArgs)
}

func TestConnectSuccess(t *testing.T) {
	a := fakeAdapter(map[string]string{"--connect 70-88-6b-8e-f4-a7": ""}, nil)
	assert.NoError(t, a.Connect(context.Background(), "70-88-6b-8e-f4-a7"))
}

func TestConnectFailure(t *testing.T) {
	a := fakeAdapter(
		map[string]string{"--connect 70-88-6b-8e-f4-a7": "Failed to connect\n"},
		map[string]error{"--connect 70-88-6b-8e-f4-a7": errors.New("exit status 1")},
	)

	err := a.Connect(context.Background(), "70-88-6b-8e-f4-a7")
	var actionErr *ActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "connect", actionErr.Action)
	assert.Equal(t, "70-88-6b-8e-f4-a7", actionErr.Address)
	assert.Equal(t, ActionDeviceNotReachable, actionErr.Kind)
	assert.Equal(t, "Failed to connect", actionErr.Output)
}

func TestDisconnectFailure(t *testing.T) {
	a := fakeAdapter(
		map[string]string{"--disconnect aa-bb": "unexpected error"},
		map[string]error{"--disconnect aa-bb": errors.New("exit status 64")},
	)

	err := a.Disconnect(context.Background(), "aa-bb")
	var actionErr *ActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "disconnect", actionErr.Action)
	assert.Equal(t, ActionExternalFailure, actionErr.Kind)
	// Plain errors carry no subprocess exit code.
	assert.Equal(t, -1, actionErr.ExitCode)
}

func TestParseDeviceLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Device
		ok   bool
	}{
		{
			name: "connected device",
			line: `address: 70-88-6b-8e-f4-a7, connected, paired, name: "AirPods Pro"`,
			want: Device{Name: "AirPods Pro", Address: "70-88-6b-8e-f4-a7", Connected: true, Paired: true},
			ok:   true,
		},
		{
			name: "not connected device",
			line: `address: a4-c3-f0-11-22-33, not connected, paired, name: "Keyboard"`,
			want: Device{Name: "Keyboard", Address: "a4-c3-f0-11-22-33", Connected: false, Paired: true},
			ok:   true,
		},
		{
			name: "missing name",
			line: `address: a4-c3-f0-11-22-33, not connected, paired`,
			want: Device{Address: "a4-c3-f0-11-22-33", Paired: true},
			ok:   true,
		},
		{
			name: "no address prefix",
			line: `name: "Orphan"`,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDeviceLine(tt.line)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClassifyActionFailure(t *testing.T) {
	assert.Equal(t, ActionDeviceNotReachable, classifyActionFailure("Device is not reachable"))
	assert.Equal(t, ActionDeviceNotReachable, classifyActionFailure("Failed to connect"))
	assert.Equal(t, ActionExternalFailure, classifyActionFailure("invalid address"))
	assert.Equal(t, ActionExternalFailure, classifyActionFailure(""))
}

func TestQueryErrorWrapsReason(t *testing.T) {
	reason := errors.New("boom")
	err := &QueryError{Query: "power", Reason: reason}
	assert.ErrorIs(t, err, reason)
	assert.ErrorIs(t, fmt.Errorf("status: %w", err), reason)
}
