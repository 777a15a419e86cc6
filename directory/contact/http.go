package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"voxcal/config"
	"voxcal/models"
)

// HTTPDirectory talks to the Contact Directory's REST API.
type HTTPDirectory struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHTTPDirectory builds a Contact Directory client from AppConfig.
func NewHTTPDirectory() *HTTPDirectory {
	return &HTTPDirectory{
		BaseURL: config.AppConfig.ContactAPIBaseURL,
		APIKey:  config.AppConfig.ContactAPIKey,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type lookupResponse struct {
	Contacts []models.Contact `json:"contacts"`
}

func (d *HTTPDirectory) FindContactByEmail(ctx context.Context, email string) (*models.Contact, error) {
	u := fmt.Sprintf("%s/contacts/lookup?email=%s", d.BaseURL, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var out lookupResponse
	if err := d.do(req, &out); err != nil {
		return nil, err
	}
	if len(out.Contacts) == 0 {
		return nil, nil
	}
	return &out.Contacts[0], nil
}

func (d *HTTPDirectory) CreateContact(ctx context.Context, cr models.ContactRequest) (*models.Contact, error) {
	body, err := json.Marshal(cr)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.BaseURL+"/contacts", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var out models.Contact
	if err := d.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *HTTPDirectory) UpdateContactFields(ctx context.Context, contactID string, fields map[string]string) error {
	body, err := json.Marshal(map[string]any{"customFields": fields})
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s/contacts/%s/fields", d.BaseURL, contactID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
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
		return fmt.Errorf("contact directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("contact directory returned %d: %s", resp.StatusCode, string(b))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding contact directory response failed: %w", err)
	}
	return nil
}
