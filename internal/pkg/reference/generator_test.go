package reference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingReference_Format(t *testing.T) {
	g := NewGenerator()

	ref, err := g.BookingReference()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "RNJ-"))
	// RNJ-XXXXXX-C
	assert.Len(t, ref, len(BookingPrefix)+1+6+2)
	assert.True(t, Valid(ref), "generated reference must carry a valid checksum")
}

func TestReceiptNumber_Format(t *testing.T) {
	g := NewGenerator()

	rct, err := g.ReceiptNumber()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(rct, "RCT-"))
	assert.Len(t, rct, len(ReceiptPrefix)+1+8+2)
	assert.True(t, Valid(rct))
}

func TestTokens_AreDistinct(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref, err := g.BookingReference()
		assert.NoError(t, err)
		assert.False(t, seen[ref], "reference %s generated twice", ref)
		seen[ref] = true
	}
}

func TestTokens_UseSafeCharset(t *testing.T) {
	g := NewGenerator()

	for i := 0; i < 100; i++ {
		ref, err := g.BookingReference()
		assert.NoError(t, err)
		body := strings.Split(ref, "-")[1]
		for _, ch := range body {
			assert.Contains(t, charset, string(ch))
		}
	}
}

func TestValid_RejectsTampering(t *testing.T) {
	g := NewGenerator()

	ref, err := g.BookingReference()
	assert.NoError(t, err)

	// Flip one body character to something else in the charset
	b := []byte(ref)
	idx := len(BookingPrefix) + 1
	orig := b[idx]
	for _, candidate := range []byte(charset) {
		if candidate != orig {
			b[idx] = candidate
			break
		}
	}
	assert.False(t, Valid(string(b)))
}

func TestValid_RejectsMalformed(t *testing.T) {
	assert.False(t, Valid(""))
	assert.False(t, Valid("RNJ"))
	assert.False(t, Valid("RNJABCDEF"))
	assert.False(t, Valid("no-dashes-here-at-all"))
}
