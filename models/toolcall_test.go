package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolCallEnvelopeParamAliases(t *testing.T) {
	env := ToolCallEnvelope{Parameters: map[string]string{
		"requestedDate":     "tomorrow",
		"requested_time":    "2 PM",
		"requestedTimezone": "America/Chicago",
		"phone_number":      "  650 253 0000 ",
	}}

	assert.Equal(t, "tomorrow", env.Date())
	assert.Equal(t, "2 PM", env.Time())
	assert.Equal(t, "America/Chicago", env.Timezone())
	assert.Equal(t, "650 253 0000", env.Param("phone", "phoneNumber", "phone_number"))
}

func TestToolCallEnvelopeShortNamesWin(t *testing.T) {
	env := ToolCallEnvelope{Parameters: map[string]string{
		"date":          "today",
		"requestedDate": "tomorrow",
	}}
	assert.Equal(t, "today", env.Date())
}

func TestToolCallEnvelopeEmptyValuesSkipped(t *testing.T) {
	env := ToolCallEnvelope{Parameters: map[string]string{
		"date":          "   ",
		"requestedDate": "friday",
	}}
	assert.Equal(t, "friday", env.Date())

	empty := ToolCallEnvelope{}
	assert.Equal(t, "", empty.Date())
}
