// Package client provides typed access to the admin API for Go tooling
// and the list-view controller. Responses are normalized on decode so
// callers never see half-formed documents.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"meetspace-admin/dto"
)

// APIError carries the HTTP status and the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client

	Users         *UserService
	Events        *EventService
	Payments      *PaymentService
	Applications  *ApplicationService
	Subscriptions *SubscriptionService
	Plans         *PlanService
	Admins        *AdminService
	Auth          *AuthService
}

func New(baseURL string) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
	c.Users = &UserService{c}
	c.Events = &EventService{c}
	c.Payments = &PaymentService{c}
	c.Applications = &ApplicationService{c}
	c.Subscriptions = &SubscriptionService{c}
	c.Plans = &PlanService{c}
	c.Admins = &AdminService{c}
	c.Auth = &AuthService{c}
	return c
}

// envelope matches the server's response wrapper.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
	Pagination *dto.Pagination `json:"pagination"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) (*dto.Pagination, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &APIError{Status: 0, Message: "the server could not be reached"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "the response could not be read"}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, &APIError{Status: resp.StatusCode, Message: "the response could not be decoded"}
	}

	if resp.StatusCode >= 400 {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &APIError{Status: resp.StatusCode, Message: "the response could not be decoded"}
		}
	}
	return env.Pagination, nil
}

// ListParams are the query parameters common to every list endpoint.
type ListParams struct {
	Search string
	Page   int
	Limit  int
	Extra  url.Values
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Page > 0 {
		q.Set("page", fmt.Sprint(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", fmt.Sprint(p.Limit))
	}
	for key, vals := range p.Extra {
		for _, v := range vals {
			q.Add(key, v)
		}
	}
	return q
}
