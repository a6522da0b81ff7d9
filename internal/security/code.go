package security

import (
	"crypto/rand"
	"fmt"
)

const codeDigits = 6

// NewVerificationCode returns a 6-digit numeric code. Each digit is drawn
// independently and uniformly from 0-9, so leading zeros are possible and
// every value from 000000 to 999999 is reachable.
func NewVerificationCode() (string, error) {
	buf := make([]byte, codeDigits)
	out := make([]byte, codeDigits)
	for i := 0; i < codeDigits; {
		if _, err := rand.Read(buf[i : i+1]); err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		// 250 is the largest multiple of 10 below 256; rejecting the
		// tail keeps each digit uniform.
		if buf[i] >= 250 {
			continue
		}
		out[i] = '0' + buf[i]%10
		i++
	}
	return string(out), nil
}
