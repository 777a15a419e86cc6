package scheduling

import (
	"context"
	"time"

	"voxcal/models"
)

// fakeCalendar is an in-memory Calendar Directory for tests.
type fakeCalendar struct {
	busy    []models.BusySlot
	listErr error
	onList  func()

	created   []models.AppointmentRequest
	createErr error

	statusUpdates map[string]string
	statusErr     error
}

func (f *fakeCalendar) ListEvents(ctx context.Context, calendarID string, startMs, endMs int64) ([]models.BusySlot, error) {
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.BusySlot
	for _, b := range f.busy {
		ms := b.StartTime.UnixMilli()
		if ms >= startMs && ms < endMs {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeCalendar) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &models.Appointment{
		ID:         "appt-1",
		CalendarID: req.CalendarID,
		ContactID:  req.ContactID,
		StartTime:  time.UnixMilli(req.StartTimeMs),
		EndTime:    time.UnixMilli(req.EndTimeMs),
		Title:      req.Title,
		Notes:      req.Notes,
		Status:     req.Status,
	}, nil
}

func (f *fakeCalendar) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[string]string)
	}
	f.statusUpdates[appointmentID] = status
	return nil
}

func (f *fakeCalendar) Ping(ctx context.Context) error { return nil }

// fakeContacts is an in-memory Contact Directory for tests.
type fakeContacts struct {
	byEmail map[string]*models.Contact
	findErr error

	created   []models.ContactRequest
	createErr error

	fieldUpdates map[string]map[string]string
	fieldsErr    error
}

func (f *fakeContacts) FindContactByEmail(ctx context.Context, email string) (*models.Contact, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byEmail[email], nil
}

func (f *fakeContacts) CreateContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &models.Contact{
		ID:        "contact-1",
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}, nil
}

func (f *fakeContacts) UpdateContactFields(ctx context.Context, contactID string, fields map[string]string) error {
	if f.fieldsErr != nil {
		return f.fieldsErr
	}
	if f.fieldUpdates == nil {
		f.fieldUpdates = make(map[string]map[string]string)
	}
	f.fieldUpdates[contactID] = fields
	return nil
}

func (f *fakeContacts) Ping(ctx context.Context) error { return nil }

// newTestService wires a scheduling service against the fakes with a pinned
// clock: Wednesday, August 26 2026, 10:00 in New York.
func newTestService(cal *fakeCalendar, con *fakeContacts) *DefaultSchedulingService {
	tz, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
	return &DefaultSchedulingService{
		Calendar:     cal,
		Contacts:     con,
		CalendarID:   "cal-test",
		BusinessTZ:   tz,
		OpenHour:     9,
		CloseHour:    17,
		SlotDuration: 30 * time.Minute,
		Tolerance:    60 * time.Second,
		Now: func() time.Time {
			return time.Date(2026, time.August, 26, 10, 0, 0, 0, tz)
		},
	}
}
