package dmx

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ResetUSBDevice performs a USB-level reset of the widget behind a device
// node. FTDI widgets occasionally wedge in a state only a re-enumeration
// clears.
//
// Requires the usbreset utility (usbutils package) and permissions to poke
// the USB device, typically root.
func ResetUSBDevice(devicePath string) error {
	bus, dev, err := usbBusDevice(devicePath)
	if err != nil {
		return err
	}

	if !IsUSBResetAvailable() {
		return ErrUSBResetMissing
	}

	// usbreset expects zero-padded 3-digit bus and device numbers.
	usbPath := fmt.Sprintf("%03s/%03s", bus, dev)

	cmd := exec.Command("usbreset", usbPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("usbreset failed: %w (output: %s)", err, string(output))
	}

	// Give the device time to re-enumerate before the caller reopens it.
	time.Sleep(2 * time.Second)

	return nil
}

// IsUSBResetAvailable checks if usbreset utility is available in PATH
func IsUSBResetAvailable() bool {
	_, err := exec.LookPath("usbreset")
	return err == nil
}

// usbBusDevice resolves the USB bus and device numbers for a tty device
// node by walking up its sysfs device chain until it finds the USB device
// directory (the one carrying busnum/devnum).
func usbBusDevice(devicePath string) (bus, dev string, err error) {
	name := filepath.Base(devicePath)

	sysPath, err := filepath.EvalSymlinks(filepath.Join("/sys/class/tty", name, "device"))
	if err != nil {
		return "", "", ErrUSBInfoMissing
	}

	for range [6]int{} {
		busnum, berr := os.ReadFile(filepath.Join(sysPath, "busnum"))
		devnum, derr := os.ReadFile(filepath.Join(sysPath, "devnum"))
		if berr == nil && derr == nil {
			return strings.TrimSpace(string(busnum)), strings.TrimSpace(string(devnum)), nil
		}
		sysPath = filepath.Dir(sysPath)
	}

	return "", "", ErrUSBInfoMissing
}
