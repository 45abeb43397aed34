package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var confirmationPattern = regexp.MustCompile(`^CONF-[A-Z0-9]{9}$`)

func TestGenerateConfirmationCode_Format(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := GenerateConfirmationCode()
		assert.Regexp(t, confirmationPattern, code)
	}
}

func TestGenerateConfirmationCode_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateConfirmationCode()] = true
	}
	assert.Greater(t, len(seen), 1)
}
