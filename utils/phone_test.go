package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneFormatsE164(t *testing.T) {
	assert.Equal(t, "+16502530000", NormalizePhone("650-253-0000"))
	assert.Equal(t, "+16502530000", NormalizePhone("+1 650 253 0000"))
}

func TestNormalizePhoneKeepsUnparseableInput(t *testing.T) {
	// A mangled transcription still goes onto the contact record verbatim.
	assert.Equal(t, "six five oh", NormalizePhone("six five oh"))
	assert.Equal(t, "", NormalizePhone(""))
}
