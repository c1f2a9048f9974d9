// Package lds decodes the byte stream of a Robotis LDS01 rotary lidar into
// 360-degree range/intensity scans.
//
// The sensor streams one 2520-byte frame per rotation: 60 sub-packets of 42
// bytes, each covering six consecutive degrees. A Session owns the serial
// port and a persistent frame buffer, locates the frame start marker in the
// stream, and decodes one frame per Read call.
package lds

// LDS01 wire format.
const (
	FrameSize         = 2520 // PacketsPerFrame * PacketSize
	PacketSize        = 42   // sync byte, packet id, 2 rpm bytes, 6 reading groups
	PacketsPerFrame   = 60
	ReadingsPerPacket = 6
	ReadingStride     = 6 // bytes per reading group: 4 payload + 2 reserved
	ReadingOffset     = 4 // offset of the first reading group within a packet

	SyncByte     = 0xFA // first byte of every sub-packet
	PacketIDBase = 0xA0 // packet id is PacketIDBase + packet index (0..59)
)

// Control bytes written to the sensor, no response expected.
const (
	startByte = 'b' // 0x62, spins up the motor and starts streaming
	stopByte  = 'e' // 0x65, stops the motor
)

// Defaults for opening the sensor. The LDS01 ships fixed at 230400 baud.
const (
	DefaultPort     = "/dev/ttyUSB0"
	DefaultBaudRate = 230400
)
