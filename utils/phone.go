package utils

import (
	"github.com/nyaruka/phonenumbers"

	"voxcal/config"
)

// NormalizePhone formats a speech-derived phone string as E.164 so the
// Contact Directory stores one canonical form per caller. Unparseable input
// is returned as-is; a mangled number on the contact record beats losing
// the booking.
func NormalizePhone(raw string) string {
	if raw == "" {
		return raw
	}
	region := config.AppConfig.DefaultPhoneRegion
	if region == "" {
		region = "US"
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
