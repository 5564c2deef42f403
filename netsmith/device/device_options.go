package device

import (
	"github.com/netsmith-ops/netsmith/logger"
	"github.com/netsmith-ops/netsmith/netsmith/transport"
)

type DeviceOption func(*Device)

// WithUser returns a DeviceOption that sets the CLI user.
func WithUser(user string) DeviceOption {
	return func(d *Device) {
		d.credentials.User = user
	}
}

// WithPassword returns a DeviceOption that sets the CLI password.
func WithPassword(password string) DeviceOption {
	return func(d *Device) {
		d.credentials.Password = password
	}
}

// WithKeyPassphrase returns a DeviceOption that sets the passphrase for
// decrypting SSH private keys.
func WithKeyPassphrase(passphrase string) DeviceOption {
	return func(d *Device) {
		d.credentials.KeyPassphrase = passphrase
	}
}

// WithDialer returns a DeviceOption that replaces the SSH dialer, used
// by tests to avoid real connections.
func WithDialer(dialer transport.SSHDialer) DeviceOption {
	return func(d *Device) {
		d.dialer = dialer
	}
}

// WithCommandRate returns a DeviceOption that caps the CLI command rate
// in commands per second.
func WithCommandRate(perSecond float64) DeviceOption {
	return func(d *Device) {
		d.commandRate = perSecond
	}
}

// WithLogger returns a DeviceOption that sets the device logger.
func WithLogger(log logger.Logger) DeviceOption {
	return func(d *Device) {
		d.log = log
	}
}
