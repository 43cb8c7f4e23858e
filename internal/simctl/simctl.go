package simctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// Device states as printed by `simctl list devices`.
const (
	StateBooted       = "Booted"
	StateShutdown     = "Shutdown"
	StateShuttingDown = "Shutting Down"
)

// ErrNoBootedDevice is returned when no simulator is in the Booted state.
var ErrNoBootedDevice = errors.New("no booted simulator found")

// Device is a single simulator entry from `simctl list devices`.
type Device struct {
	Name  string
	UDID  string
	State string
}

// Booted reports whether the device is currently running.
func (d Device) Booted() bool {
	return d.State == StateBooted
}

// Source provides simulator listing and media import.
// CLI implements this interface. Tests can provide mock implementations.
type Source interface {
	ListDevices(ctx context.Context) ([]Device, error)
	AddMedia(ctx context.Context, udid string, path string) error
}

// CLI wraps the `xcrun simctl` command-line tool.
type CLI struct {
	// Timeout bounds each simctl invocation. Zero means DefaultTimeout.
	Timeout time.Duration
}

var _ Source = (*CLI)(nil)

// DefaultTimeout is the default per-invocation timeout for CLI calls.
const DefaultTimeout = 10 * time.Second

// deviceLine matches one device entry in the `simctl list devices` text
// output, e.g.
//
//	    iPhone 15 Pro (0FE63058-5178-4B55-A7A4-A53D6B06E9A8) (Booted)
//
// Group 1 is the device name (which may itself contain parentheses),
// group 2 the UDID, group 3 the state. Section headers like "-- iOS 17.5 --"
// carry no UDID and never match.
var deviceLine = regexp.MustCompile(`^\s+(.+) \(([0-9A-Fa-f]{8}[0-9A-Fa-f-]+)\) \(([A-Za-z][A-Za-z ]*)\)`)

func (c *CLI) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// simctlCmd builds an `xcrun simctl` command.
func (c *CLI) simctlCmd(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, "xcrun", append([]string{"simctl"}, args...)...)
}

// ListDevices returns all simulators known to simctl, in output order.
func (c *CLI) ListDevices(ctx context.Context) ([]Device, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	cmd := c.simctlCmd(ctx, "list", "devices")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return nil, fmt.Errorf("simctl list devices: %s", errMsg)
	}

	return parseDeviceList(stdout.String()), nil
}

// parseDeviceList extracts device entries from the list output.
// Unrecognized lines (headers, unavailable-runtime notes) are skipped.
func parseDeviceList(output string) []Device {
	var devices []Device
	for _, line := range strings.Split(output, "\n") {
		m := deviceLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		devices = append(devices, Device{
			Name:  strings.TrimSpace(m[1]),
			UDID:  m[2],
			State: m[3],
		})
	}
	return devices
}

// BootedDevice returns the first booted device from the list, or
// ErrNoBootedDevice if none is running.
func BootedDevice(devices []Device) (Device, error) {
	for _, d := range devices {
		if d.Booted() {
			return d, nil
		}
	}
	return Device{}, ErrNoBootedDevice
}

// AddMedia imports a local media file into the device's photo library
// via `simctl addmedia`.
func (c *CLI) AddMedia(ctx context.Context, udid string, path string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	cmd := c.simctlCmd(ctx, "addmedia", udid, path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return fmt.Errorf("simctl addmedia: %s", errMsg)
	}
	return nil
}

// CheckXcrun verifies that xcrun is installed and accessible.
func CheckXcrun() error {
	_, err := exec.LookPath("xcrun")
	if err != nil {
		return fmt.Errorf("xcrun not found in PATH. Install the Xcode command line tools (xcode-select --install)")
	}
	return nil
}
