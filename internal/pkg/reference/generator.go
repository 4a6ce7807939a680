// Package reference generates customer-facing booking identifiers.
//
// References must be unique across all bookings ever created and hard to
// guess, but they are generated without consulting the ledger: uniqueness is
// enforced by database constraints and the caller retries with fresh values
// on a collision.
package reference

import (
	"crypto/rand"
	"fmt"
)

// charset deliberately omits glyphs that are easy to misread over the phone
// (0/O, 1/I/L).
const charset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	// BookingPrefix prefixes booking references, e.g. RNJ-K7M2PQ-X
	BookingPrefix = "RNJ"
	// ReceiptPrefix prefixes receipt numbers, e.g. RCT-W8HJ3QZM-F
	ReceiptPrefix = "RCT"

	bookingRandLen = 6
	receiptRandLen = 8
)

// Generator produces booking references and receipt numbers
type Generator struct{}

// NewGenerator returns a new reference generator
func NewGenerator() *Generator {
	return &Generator{}
}

// BookingReference generates a booking reference token
func (g *Generator) BookingReference() (string, error) {
	return g.token(BookingPrefix, bookingRandLen)
}

// ReceiptNumber generates a receipt number token
func (g *Generator) ReceiptNumber() (string, error) {
	return g.token(ReceiptPrefix, receiptRandLen)
}

// token builds prefix + random body + checksum character. The checksum lets
// support staff reject mistyped references without a database lookup.
func (g *Generator) token(prefix string, n int) (string, error) {
	body, err := randomChars(n)
	if err != nil {
		return "", fmt.Errorf("failed to generate reference body: %w", err)
	}
	return prefix + "-" + body + "-" + string(checksumChar(body)), nil
}

// randomChars returns n characters drawn uniformly from the charset using
// crypto/rand.
func randomChars(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = charset[int(b)%len(charset)]
	}
	return string(out), nil
}

// checksumChar computes a single checksum character over the token body
func checksumChar(body string) byte {
	sum := 0
	for i, ch := range []byte(body) {
		sum += (i + 1) * int(ch)
	}
	return charset[sum%len(charset)]
}

// Valid reports whether a token's checksum matches its body. The prefix is
// not verified here; callers know which kind of token they hold.
func Valid(token string) bool {
	if len(token) < 4 {
		return false
	}
	// prefix-BODY-C
	var prefix, body string
	var check byte
	n := len(token)
	if token[n-2] != '-' {
		return false
	}
	check = token[n-1]
	rest := token[:n-2]
	for i := 0; i < len(rest); i++ {
		if rest[i] == '-' {
			prefix = rest[:i]
			body = rest[i+1:]
			break
		}
	}
	if prefix == "" || body == "" {
		return false
	}
	return checksumChar(body) == check
}
