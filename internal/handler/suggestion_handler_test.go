package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"escala-backend/internal/model"
	"escala-backend/internal/schedule"
	"escala-backend/internal/suggestion"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TestDefaultSlots(t *testing.T) {
	for _, billable := range []schedule.ShiftType{schedule.TypeT1, schedule.TypeQ1, schedule.TypePlan} {
		slots := defaultSlots(billable)
		if len(slots) != 2 || slots[0] != schedule.SlotMorning || slots[1] != schedule.SlotAfternoon {
			t.Errorf("defaultSlots(%s) = %v", billable, slots)
		}
	}
	if slots := defaultSlots(schedule.TypeFinal); len(slots) != 3 {
		t.Errorf("FINAL should carry all three slots, got %v", slots)
	}
	if slots := defaultSlots(schedule.TypeOff); len(slots) != 0 {
		t.Errorf("OFF should carry no slots, got %v", slots)
	}
}

type fakeEmployeeRepo struct {
	employees []model.Employee
}

func (r *fakeEmployeeRepo) GetAll(search string) ([]model.Employee, error) { return r.employees, nil }
func (r *fakeEmployeeRepo) GetActive() ([]model.Employee, error)          { return r.employees, nil }
func (r *fakeEmployeeRepo) FindByID(id uint) (*model.Employee, error) {
	for i := range r.employees {
		if r.employees[i].ID == id {
			return &r.employees[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeEmployeeRepo) Create(employee *model.Employee) error { return nil }
func (r *fakeEmployeeRepo) Update(employee *model.Employee) error { return nil }
func (r *fakeEmployeeRepo) Deactivate(id uint) error              { return nil }
func (r *fakeEmployeeRepo) Count() (int64, error)                 { return int64(len(r.employees)), nil }

type fakeShiftRepo struct {
	replaceCalls int
	replaced     map[uint][]model.Shift
}

func (r *fakeShiftRepo) GetByEmployeeAndDate(employeeID uint, date string) (*model.Shift, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeShiftRepo) GetByEmployee(employeeID uint) ([]model.Shift, error) { return nil, nil }
func (r *fakeShiftRepo) GetByEmployeeAndMonth(employeeID uint, year, month int) ([]model.Shift, error) {
	return nil, nil
}
func (r *fakeShiftRepo) GetByMonth(year, month int) ([]model.Shift, error) { return nil, nil }
func (r *fakeShiftRepo) GetByYear(year int) ([]model.Shift, error)         { return nil, nil }
func (r *fakeShiftRepo) UpsertDays(employeeID uint, days []model.Shift) error {
	return nil
}
func (r *fakeShiftRepo) ReplaceMonth(year, month int, byEmployee map[uint][]model.Shift) error {
	r.replaceCalls++
	r.replaced = byEmployee
	return nil
}
func (r *fakeShiftRepo) CancelSlot(employeeID uint, date, slot string) error { return nil }
func (r *fakeShiftRepo) DeleteByEmployee(employeeID uint) error              { return nil }

// suggestionTestApp wires the handler against a stub generator and fakes.
func suggestionTestApp(generatorURL string) (*fiber.App, *fakeShiftRepo) {
	employees := []model.Employee{
		{Model: gorm.Model{ID: 1}, Name: "Clara Mendes", Role: "Professora", IsActive: true},
		{Model: gorm.Model{ID: 2}, Name: "Jorge Lima", Role: "Técnico", IsActive: true},
	}
	shiftRepo := &fakeShiftRepo{}
	hdl := NewSuggestionHandler(
		suggestion.NewClient(generatorURL, 2*time.Second),
		&fakeEmployeeRepo{employees: employees},
		shiftRepo,
	)

	app := fiber.New()
	app.Post("/apply", hdl.Apply)
	return app, shiftRepo
}

func applySuggestion(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	body, _ := json.Marshal(fiber.Map{"year": 2025, "month": 3})
	req := httptest.NewRequest("POST", "/apply", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestSuggestionApplyValidatesUntrustedProposal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(fiber.Map{
			"schedules": []fiber.Map{
				{
					"employee_id": 1,
					"shifts": []fiber.Map{
						{"day": 3, "type": "T1"},
						{"day": 4, "type": "PLAN"},
						{"day": 3, "type": "Q1"},  // duplicate day: rejected
						{"day": 0, "type": "T1"},  // out of range
						{"day": 40, "type": "T1"}, // out of range
						{"day": 5, "type": "X9"},  // unknown type
					},
				},
				{
					"employee_name": "Jorge Lima", // matched by name
					"shifts":        []fiber.Map{{"day": 6, "type": "OFF"}},
				},
				{
					"employee_id": 99, // unknown employee: whole block rejected
					"shifts":      []fiber.Map{{"day": 7, "type": "T1"}},
				},
			},
		})
	}))
	defer server.Close()

	app, shiftRepo := suggestionTestApp(server.URL)
	resp := applySuggestion(t, app)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Accepted int `json:"accepted"`
		Rejected int `json:"rejected"`
	}
	json.NewDecoder(resp.Body).Decode(&out)
	if out.Accepted != 3 || out.Rejected != 5 {
		t.Errorf("accepted/rejected = %d/%d, want 3/5", out.Accepted, out.Rejected)
	}

	if shiftRepo.replaceCalls != 1 {
		t.Fatalf("ReplaceMonth calls = %d, want 1", shiftRepo.replaceCalls)
	}
	claraRows := shiftRepo.replaced[1]
	if len(claraRows) != 2 {
		t.Fatalf("rows for employee 1 = %d, want 2", len(claraRows))
	}
	if claraRows[0].Date != "2025-03-03" || claraRows[0].Type != "T1" {
		t.Errorf("first row = %s %s", claraRows[0].Date, claraRows[0].Type)
	}
	if len(claraRows[0].Slots) != 2 {
		t.Errorf("billable row should get the default two slots, got %d", len(claraRows[0].Slots))
	}
	if rows := shiftRepo.replaced[2]; len(rows) != 1 || len(rows[0].Slots) != 0 {
		t.Errorf("OFF row for employee 2 wrong: %+v", rows)
	}
	if _, ok := shiftRepo.replaced[99]; ok {
		t.Errorf("unknown employee must not be written")
	}
}

func TestSuggestionApplyGeneratorFailureWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	app, shiftRepo := suggestionTestApp(server.URL)
	resp := applySuggestion(t, app)

	if resp.StatusCode != fiber.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
	if shiftRepo.replaceCalls != 0 {
		t.Errorf("store touched after generator failure")
	}
}

func TestSuggestionApplyMalformedResponseWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	app, shiftRepo := suggestionTestApp(server.URL)
	resp := applySuggestion(t, app)

	if resp.StatusCode != fiber.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
	if shiftRepo.replaceCalls != 0 {
		t.Errorf("store touched after malformed response")
	}
}

func TestSuggestionApplyAllRejectedWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(fiber.Map{
			"schedules": []fiber.Map{
				{"employee_id": 1, "shifts": []fiber.Map{{"day": 99, "type": "T1"}}},
			},
		})
	}))
	defer server.Close()

	app, shiftRepo := suggestionTestApp(server.URL)
	resp := applySuggestion(t, app)

	if resp.StatusCode != fiber.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
	if shiftRepo.replaceCalls != 0 {
		t.Errorf("store touched although every row was rejected")
	}
}
