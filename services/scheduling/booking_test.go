package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxcal/models"
)

func validBooking() models.BookingRequest {
	return models.BookingRequest{
		Date:     "2026-08-27",
		Time:     "2 PM",
		Timezone: "America/New_York",
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "+16502530000",
	}
}

func TestBookAppointmentMissingDateTimeReprompts(t *testing.T) {
	s := newTestService(&fakeCalendar{}, &fakeContacts{})

	req := validBooking()
	req.Time = ""
	res := s.BookAppointment(context.Background(), req)
	assert.False(t, res.Success)
	assert.Equal(t, msgNeedDateTime, res.Message)

	req = validBooking()
	req.Date = ""
	res = s.BookAppointment(context.Background(), req)
	assert.False(t, res.Success)
	assert.Equal(t, msgNeedDateTime, res.Message)
}

func TestBookAppointmentMissingContactInfoReprompts(t *testing.T) {
	s := newTestService(&fakeCalendar{}, &fakeContacts{})

	for _, clear := range []func(*models.BookingRequest){
		func(r *models.BookingRequest) { r.FullName = "" },
		func(r *models.BookingRequest) { r.Email = "" },
		func(r *models.BookingRequest) { r.Phone = "" },
	} {
		req := validBooking()
		clear(&req)
		res := s.BookAppointment(context.Background(), req)
		assert.False(t, res.Success)
		assert.Equal(t, msgNeedContact, res.Message)
	}
}

func TestBookAppointmentSuccess(t *testing.T) {
	tz := mustLoadNY(t)
	cal := &fakeCalendar{}
	con := &fakeContacts{}
	s := newTestService(cal, con)

	res := s.BookAppointment(context.Background(), validBooking())
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "appt-1", res.AppointmentID)

	start := time.Date(2026, time.August, 27, 14, 0, 0, 0, tz)
	assert.Equal(t, start.Format(time.RFC3339), res.StartTime)

	require.Len(t, cal.created, 1)
	appt := cal.created[0]
	assert.Equal(t, models.StatusConfirmed, appt.Status)
	assert.Equal(t, start.UnixMilli(), appt.StartTimeMs)
	assert.Equal(t, int64(30*60*1000), appt.EndTimeMs-appt.StartTimeMs)
	assert.Contains(t, appt.Notes, "America/New_York")

	// Contact was created with the split name and normalized phone.
	require.Len(t, con.created, 1)
	assert.Equal(t, "Ada", con.created[0].FirstName)
	assert.Equal(t, "Lovelace", con.created[0].LastName)

	// Derived fields were written back onto the contact.
	require.Contains(t, con.fieldUpdates, "contact-1")
	assert.Equal(t, "booked", con.fieldUpdates["contact-1"]["meeting_status"])
}

func TestBookAppointmentReusesExistingContact(t *testing.T) {
	cal := &fakeCalendar{}
	con := &fakeContacts{byEmail: map[string]*models.Contact{
		"ada@example.com": {ID: "existing-7", Email: "ada@example.com"},
	}}
	s := newTestService(cal, con)

	res := s.BookAppointment(context.Background(), validBooking())
	require.True(t, res.Success)
	assert.Empty(t, con.created)
	require.Len(t, cal.created, 1)
	assert.Equal(t, "existing-7", cal.created[0].ContactID)
}

func TestBookAppointmentSingleWordNameDuplicatesLastName(t *testing.T) {
	cal := &fakeCalendar{}
	con := &fakeContacts{}
	s := newTestService(cal, con)

	req := validBooking()
	req.FullName = "Cher"
	res := s.BookAppointment(context.Background(), req)
	require.True(t, res.Success)
	require.Len(t, con.created, 1)
	assert.Equal(t, "Cher", con.created[0].FirstName)
	assert.Equal(t, "Cher", con.created[0].LastName)
}

func TestBookAppointmentLostRace(t *testing.T) {
	tz := mustLoadNY(t)
	start := time.Date(2026, time.August, 27, 14, 0, 0, 0, tz)

	// The slot was free at check time; a concurrent booking landed before
	// the commit's fresh re-read.
	cal := &fakeCalendar{}
	cal.onList = func() {
		cal.busy = []models.BusySlot{{StartTime: start, EndTime: start.Add(30 * time.Minute)}}
	}
	s := newTestService(cal, &fakeContacts{})

	res := s.BookAppointment(context.Background(), validBooking())
	assert.False(t, res.Success)
	assert.Equal(t, msgSlotTaken, res.Message)
	assert.Empty(t, cal.created, "a lost race must not create an appointment")
}

func TestBookAppointmentCreateFailureApologizes(t *testing.T) {
	cal := &fakeCalendar{createErr: errors.New("upstream 500")}
	s := newTestService(cal, &fakeContacts{})

	res := s.BookAppointment(context.Background(), validBooking())
	assert.False(t, res.Success)
	assert.Equal(t, msgBookingError, res.Message)
	assert.Empty(t, res.AppointmentID)
}

func TestBookAppointmentContactFieldFailureDoesNotFailBooking(t *testing.T) {
	cal := &fakeCalendar{}
	con := &fakeContacts{fieldsErr: errors.New("fields endpoint down")}
	s := newTestService(cal, con)

	res := s.BookAppointment(context.Background(), validBooking())
	assert.True(t, res.Success, "custom-field writeback is a non-critical side effect")
}

func TestBookAppointmentProceedsWhenReValidationReadFails(t *testing.T) {
	// Reads fail open even inside the booking transaction; the directory is
	// the system of record and rejects nothing here.
	cal := &fakeCalendar{listErr: errors.New("upstream 502")}
	s := newTestService(cal, &fakeContacts{})

	res := s.BookAppointment(context.Background(), validBooking())
	assert.True(t, res.Success)
}
