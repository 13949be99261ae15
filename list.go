package dmx

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// Patterns for device nodes that can host a DMX widget. FTDI-based Enttec
// widgets enumerate as ttyUSB on Linux and as tty.usbserial on Darwin;
// CDC/ACM clones show up as ttyACM.
var devicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ttyUSB\d+$`),
	regexp.MustCompile(`^ttyACM\d+$`),
	regexp.MustCompile(`^tty\.usbserial-.+$`),
	regexp.MustCompile(`^cu\.usbserial-.+$`),
}

// ListDevices returns the device node paths that look like attached USB DMX
// widgets, sorted for consistent ordering.
func ListDevices() ([]string, error) {
	const devDir = "/dev"

	entries, err := os.ReadDir(devDir)
	if err != nil {
		return nil, err
	}

	var devices []string
	for _, entry := range entries {
		name := entry.Name()

		if !matchesDevicePattern(name) {
			continue
		}

		fullPath := filepath.Join(devDir, name)
		if isCharacterDevice(fullPath) {
			devices = append(devices, fullPath)
		}
	}

	sort.Strings(devices)
	return devices, nil
}

func matchesDevicePattern(name string) bool {
	for _, pattern := range devicePatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	mode := info.Mode()
	return mode&os.ModeCharDevice != 0
}
