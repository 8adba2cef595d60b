package strategy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a match seed from the system entropy source.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read seed entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
