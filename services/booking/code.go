package booking

import (
	"crypto/rand"
	"fmt"
)

const (
	confirmationPrefix  = "CONF-"
	confirmationCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	confirmationLength  = 9
)

// GenerateConfirmationCode returns a code of the form CONF-XXXXXXXXX with
// nine uppercase alphanumeric characters. Uniqueness is not checked against
// the store; the collision probability is treated as negligible.
func GenerateConfirmationCode() string {
	buf := make([]byte, confirmationLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(fmt.Sprintf("booking: confirmation code entropy unavailable: %v", err))
	}
	for i, b := range buf {
		buf[i] = confirmationCharset[int(b)%len(confirmationCharset)]
	}
	return confirmationPrefix + string(buf)
}
