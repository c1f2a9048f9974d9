package lds

// decodeFrame extracts every valid sub-packet of a fully populated frame
// buffer into scan and reports how many sub-packets passed header
// validation. A sub-packet whose header fails validation leaves its six
// degree slots zeroed; payload bytes behind a valid header are taken
// as-is, there is no checksum.
func decodeFrame(buf []byte, scan *LaserReading) int {
	valid := 0

	for p := 0; p < PacketsPerFrame; p++ {
		off := p * PacketSize
		if buf[off] != SyncByte || int(buf[off+1]) != PacketIDBase+p {
			continue
		}
		valid++

		// Rotation speed arrives in tenths of an rpm, low byte first.
		scan.RPMs = (uint16(buf[off+3])<<8 | uint16(buf[off+2])) / 10

		for g := 0; g < ReadingsPerPacket; g++ {
			j := off + ReadingOffset + g*ReadingStride

			intensity := uint16(buf[j+1])<<8 | uint16(buf[j])
			rng := uint16(buf[j+3])<<8 | uint16(buf[j+2])

			// The sensor reports degrees in reverse of packet order.
			index := 359 - (ReadingsPerPacket*p + g)
			scan.Ranges[index] = rng
			scan.Intensities[index] = intensity
		}
	}

	return valid
}
