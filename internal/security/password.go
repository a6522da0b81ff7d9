package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const passwordKeyring = "1234567890qwertyuiopasdfghjklzxcvbnmQWERTYUIOPASDFGHJKLZXCVBNM"

// GeneratePassword returns a random password of the given length drawn from
// the fixed keyring of digits and letters. Used by the admin tooling when
// provisioning accounts.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive")
	}
	ring := big.NewInt(int64(len(passwordKeyring)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, ring)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		out[i] = passwordKeyring[n.Int64()]
	}
	return string(out), nil
}
