package bluetooth

// Device is a single entry from the OS pairing registry, as reported by
// blueutil. Devices are re-fetched on every invocation and never cached.
type Device struct {
	// Name is the device name as reported by the pairing registry.
	// Name matching uses this field only.
	Name string
	// Address is the device's Bluetooth address. Once a device has been
	// resolved, all control commands address it by this field so a second
	// name lookup can never race with external state changes.
	Address string
	// Connected reports whether the device is currently connected.
	Connected bool
	// Paired reports whether the device is bonded with the host.
	Paired bool
}

// SystemStatus aggregates the adapter-level state for the status view.
// It is assembled on demand and never stored.
type SystemStatus struct {
	// Powered reports whether the Bluetooth adapter is powered on.
	Powered bool
	// Discoverable reports whether the host is discoverable.
	Discoverable bool
	// AudioOutput is the name of the default audio output device.
	// Empty when no audio query tool is installed.
	AudioOutput string
	// Devices is the full paired device list, in registry order.
	Devices []Device
}
