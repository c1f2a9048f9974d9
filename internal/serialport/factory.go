// Package serialport provides a small abstraction over a serial port so that
// device drivers can be exercised against scripted ports in tests and bound
// to real hardware in binaries.
package serialport

import (
	"go.bug.st/serial"
)

// RealSerialPortFactory opens serial ports through go.bug.st/serial.
type RealSerialPortFactory struct{}

// Open opens the serial port at the given path using the provided options.
func (RealSerialPortFactory) Open(path string, opts PortOptions) (SerialPorter, error) {
	mode, err := opts.SerialMode()
	if err != nil {
		return nil, err
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, err
	}

	return port, nil
}
