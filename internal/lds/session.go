package lds

import (
	"errors"
	"fmt"
	"io"

	"github.com/banshee-data/lds01/internal/serialport"
)

// ErrDriverClosed is returned by Read once the session has been closed.
var ErrDriverClosed = errors.New("lds: driver is closed")

// Session owns one LDS01 sensor attached to a serial port. The frame
// buffer, port handle, and closed flag have a single logical owner: a
// Session is not safe for concurrent use and callers must serialise Read
// and Close. Read blocks only while requesting bytes from the port; read
// deadlines, if needed, belong to the transport
// (serialport.TimeoutSerialPorter).
type Session struct {
	port       serialport.SerialPorter
	portPath   string
	baudRate   int
	motorSpeed uint16
	rpms       uint16
	closed     bool
	buff       [FrameSize]byte
}

// Open acquires the serial port at path with the given baud rate and
// starts the sensor spinning. The caller must Close the session to stop
// the motor; Close is idempotent, so `defer session.Close()` is the usual
// pattern.
func Open(path string, baudRate int) (*Session, error) {
	return OpenWithFactory(serialport.RealSerialPortFactory{}, path, baudRate)
}

// OpenWithFactory is Open with an injected serial port factory.
func OpenWithFactory(factory serialport.SerialPortFactory, path string, baudRate int) (*Session, error) {
	port, err := factory.Open(path, serialport.PortOptions{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", path, err)
	}

	s := &Session{
		port:     port,
		portPath: path,
		baudRate: baudRate,
	}

	if _, err := s.port.Write([]byte{startByte}); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to start lidar: %w", err)
	}

	return s, nil
}

// Read blocks until one complete frame has been received and returns the
// decoded scan. Exactly one frame is consumed per call, leaving the
// stream positioned at the next potential frame. Any transport error
// aborts the frame; no partial scan is returned.
func (s *Session) Read() (*LaserReading, error) {
	if s.closed {
		return nil, ErrDriverClosed
	}

	if err := syncFrameStart(s.port, s.buff[:]); err != nil {
		return nil, fmt.Errorf("failed to sync frame start: %w", err)
	}

	if _, err := io.ReadFull(s.port, s.buff[2:]); err != nil {
		return nil, fmt.Errorf("failed to fill frame buffer: %w", err)
	}

	scan := NewLaserReading()
	if decodeFrame(s.buff[:], scan) > 0 {
		s.rpms = scan.RPMs
	}

	return scan, nil
}

// Close stops the sensor and releases the port. It is idempotent and
// always succeeds; transport errors during shutdown are discarded since
// the device is being torn down regardless.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.port.Write([]byte{stopByte})
	s.port.Close()

	return nil
}

// RPMs returns the rotation speed from the last successfully decoded
// frame.
func (s *Session) RPMs() uint16 {
	return s.rpms
}

// Port returns the serial port path the session was opened with.
func (s *Session) Port() string {
	return s.portPath
}

// BaudRate returns the configured baud rate.
func (s *Session) BaudRate() int {
	return s.baudRate
}

// Speed returns the motor speed setpoint. Nothing configures it today, so
// it always reads 0.
func (s *Session) Speed() uint16 {
	return s.motorSpeed
}
