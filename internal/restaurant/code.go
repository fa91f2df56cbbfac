package restaurant

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

const (
	CodePrefix   = "MH-"
	CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// NewConfirmationCode returns "MH-" followed by six symbols drawn uniformly
// from CodeAlphabet. The alphabet has 32 symbols, so masking a random byte
// with 31 keeps the distribution uniform.
func NewConfirmationCode() (string, error) {
	return newCode(rand.Reader)
}

func newCode(r io.Reader) (string, error) {
	buf := make([]byte, codeLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	out := make([]byte, 0, len(CodePrefix)+codeLength)
	out = append(out, CodePrefix...)
	for _, b := range buf {
		out = append(out, CodeAlphabet[b&31])
	}
	return string(out), nil
}

// IsConfirmationCode reports whether s has the confirmation code shape.
func IsConfirmationCode(s string) bool {
	rest, ok := strings.CutPrefix(s, CodePrefix)
	if !ok || len(rest) != codeLength {
		return false
	}
	for _, r := range rest {
		if !strings.ContainsRune(CodeAlphabet, r) {
			return false
		}
	}
	return true
}
