package lds

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildTestFrame returns a fully valid 2520-byte frame. Every packet
// carries rpmRaw in its speed field, and reading group g of packet p
// encodes intensity 1000+index and range 2000+index, where index = 6*p+g
// is the absolute degree index in packet order.
func buildTestFrame(rpmRaw uint16) []byte {
	buf := make([]byte, FrameSize)
	for p := 0; p < PacketsPerFrame; p++ {
		off := p * PacketSize
		buf[off] = SyncByte
		buf[off+1] = byte(PacketIDBase + p)
		buf[off+2] = byte(rpmRaw)
		buf[off+3] = byte(rpmRaw >> 8)

		for g := 0; g < ReadingsPerPacket; g++ {
			j := off + ReadingOffset + g*ReadingStride
			index := ReadingsPerPacket*p + g
			intensity := uint16(1000 + index)
			rng := uint16(2000 + index)
			buf[j] = byte(intensity)
			buf[j+1] = byte(intensity >> 8)
			buf[j+2] = byte(rng)
			buf[j+3] = byte(rng >> 8)
		}
	}
	return buf
}

// expectedTestScan returns the LaserReading that buildTestFrame should
// decode to. The sensor writes packet-order index i at degree 359-i.
func expectedTestScan(rpms uint16) *LaserReading {
	scan := NewLaserReading()
	scan.RPMs = rpms
	for index := 0; index < 360; index++ {
		scan.Intensities[359-index] = uint16(1000 + index)
		scan.Ranges[359-index] = uint16(2000 + index)
	}
	return scan
}

func TestDecodeFrameRoundTrip(t *testing.T) {
	frame := buildTestFrame(3000) // 300.0 rpm raw

	scan := NewLaserReading()
	valid := decodeFrame(frame, scan)

	if valid != PacketsPerFrame {
		t.Errorf("valid packets = %d, want %d", valid, PacketsPerFrame)
	}
	if diff := cmp.Diff(expectedTestScan(300), scan); diff != "" {
		t.Errorf("decoded scan mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFrameSkipsCorruptPacket(t *testing.T) {
	const corrupt = 5

	frame := buildTestFrame(3000)
	frame[corrupt*PacketSize+1] = 0x00 // break packet 5's id byte

	scan := NewLaserReading()
	valid := decodeFrame(frame, scan)

	if valid != PacketsPerFrame-1 {
		t.Errorf("valid packets = %d, want %d", valid, PacketsPerFrame-1)
	}

	want := expectedTestScan(300)
	for g := 0; g < ReadingsPerPacket; g++ {
		index := ReadingsPerPacket*corrupt + g
		want.Ranges[359-index] = 0
		want.Intensities[359-index] = 0
	}
	if diff := cmp.Diff(want, scan); diff != "" {
		t.Errorf("decoded scan mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFrameSkipsBadSyncByte(t *testing.T) {
	frame := buildTestFrame(3000)
	frame[7*PacketSize] = 0x00 // break packet 7's sync byte

	scan := NewLaserReading()
	if valid := decodeFrame(frame, scan); valid != PacketsPerFrame-1 {
		t.Errorf("valid packets = %d, want %d", valid, PacketsPerFrame-1)
	}
	if scan.Ranges[359-ReadingsPerPacket*7] != 0 {
		t.Error("readings from a packet with a bad sync byte should stay zero")
	}
}

func TestDecodeFrameRPMFormula(t *testing.T) {
	// rpm bytes low=0x64 (100), high=0x00 decode to 100/10 = 10 rpm.
	frame := buildTestFrame(0x0064)

	scan := NewLaserReading()
	decodeFrame(frame, scan)

	if scan.RPMs != 10 {
		t.Errorf("RPMs = %d, want 10", scan.RPMs)
	}
}

func TestDecodeFrameAllInvalid(t *testing.T) {
	frame := make([]byte, FrameSize) // all zero, no valid headers

	scan := NewLaserReading()
	if valid := decodeFrame(frame, scan); valid != 0 {
		t.Errorf("valid packets = %d, want 0", valid)
	}
	if diff := cmp.Diff(NewLaserReading(), scan); diff != "" {
		t.Errorf("scan should stay zeroed (-want +got):\n%s", diff)
	}
}
