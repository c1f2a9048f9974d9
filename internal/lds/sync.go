package lds

import "io"

// syncFrameStart consumes bytes from r one at a time until it sees the
// frame start sequence 0xFA 0xA0, leaving those two bytes in buf[0] and
// buf[1]. A candidate 0xFA whose follower is not 0xA0 restarts the search
// at the next byte; the rejected follower itself is never re-tested as a
// new sync byte.
func syncFrameStart(r io.Reader, buf []byte) error {
	for {
		if _, err := io.ReadFull(r, buf[0:1]); err != nil {
			return err
		}
		if buf[0] != SyncByte {
			continue
		}
		if _, err := io.ReadFull(r, buf[1:2]); err != nil {
			return err
		}
		if buf[1] == PacketIDBase {
			return nil
		}
	}
}
