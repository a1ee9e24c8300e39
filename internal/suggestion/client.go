// Package suggestion talks to the external generative scheduling service.
// Its proposals are untrusted bulk input: the caller re-validates every
// (day, type) pair against the scheduling rules before anything is stored.
package suggestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"escala-backend/internal/model"
)

// EmployeeInfo is what the generator learns about each employee.
type EmployeeInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ProposedShift is one (day, type) cell of a proposed month.
type ProposedShift struct {
	Day  int    `json:"day"`
	Type string `json:"type"`
}

// EmployeeProposal is the generator's full month for one employee. The
// service may identify employees by id or by name; id wins when both are
// present.
type EmployeeProposal struct {
	EmployeeID   uint            `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Shifts       []ProposedShift `json:"shifts"`
}

type generateRequest struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	Employees []EmployeeInfo `json:"employees"`
}

type generateResponse struct {
	Schedules []EmployeeProposal `json:"schedules"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GenerateSchedule asks the service to propose a month. Any transport,
// status or decode failure comes back as a plain error and nothing else —
// the store is only ever touched by the caller, after validation.
func (c *Client) GenerateSchedule(employees []model.Employee, year, month int) ([]EmployeeProposal, error) {
	req := generateRequest{Year: year, Month: month}
	for _, e := range employees {
		req.Employees = append(req.Employees, EmployeeInfo{ID: e.ID, Name: e.Name, Role: e.Role})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.baseURL+"/v1/schedules/generate", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("malformed suggestion response: %w", err)
	}

	return out.Schedules, nil
}
