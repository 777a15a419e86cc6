package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"voxcal/config"
	"voxcal/models"
)

// HTTPDirectory talks to the Calendar Directory's REST API.
type HTTPDirectory struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHTTPDirectory builds a Calendar Directory client from AppConfig.
func NewHTTPDirectory() *HTTPDirectory {
	return &HTTPDirectory{
		BaseURL: config.AppConfig.CalendarAPIBaseURL,
		APIKey:  config.AppConfig.CalendarAPIKey,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type eventDTO struct {
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`
}

type listEventsResponse struct {
	Events []eventDTO `json:"events"`
}

type appointmentDTO struct {
	ID         string `json:"id"`
	CalendarID string `json:"calendarId"`
	ContactID  string `json:"contactId"`
	StartTime  int64  `json:"startTime"`
	EndTime    int64  `json:"endTime"`
	Title      string `json:"title"`
	Notes      string `json:"notes"`
	Status     string `json:"status"`
}

func (d *HTTPDirectory) ListEvents(ctx context.Context, calendarID string, startMs, endMs int64) ([]models.BusySlot, error) {
	url := fmt.Sprintf("%s/calendars/%s/events?startTime=%d&endTime=%d", d.BaseURL, calendarID, startMs, endMs)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var out listEventsResponse
	if err := d.do(req, &out); err != nil {
		return nil, err
	}
	slots := make([]models.BusySlot, 0, len(out.Events))
	for _, ev := range out.Events {
		slots = append(slots, models.BusySlot{
			StartTime: time.UnixMilli(ev.StartTime),
			EndTime:   time.UnixMilli(ev.EndTime),
		})
	}
	return slots, nil
}

func (d *HTTPDirectory) CreateAppointment(ctx context.Context, appt models.AppointmentRequest) (*models.Appointment, error) {
	body, err := json.Marshal(appt)
	if err != nil {
		return nil, err
	}
	url := d.BaseURL + "/appointments"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var out appointmentDTO
	if err := d.do(req, &out); err != nil {
		return nil, err
	}
	return &models.Appointment{
		ID:         out.ID,
		CalendarID: out.CalendarID,
		ContactID:  out.ContactID,
		StartTime:  time.UnixMilli(out.StartTime),
		EndTime:    time.UnixMilli(out.EndTime),
		Title:      out.Title,
		Notes:      out.Notes,
		Status:     out.Status,
	}, nil
}

func (d *HTTPDirectory) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/appointments/%s/status", d.BaseURL, appointmentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	return d.do(req, nil)
}

func (d *HTTPDirectory) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.BaseURL+"/health", nil)
	if err != nil {
		return err
	}
	return d.do(req, nil)
}

func (d *HTTPDirectory) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+d.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("calendar directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("calendar directory returned %d: %s", resp.StatusCode, string(b))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding calendar directory response failed: %w", err)
	}
	return nil
}
