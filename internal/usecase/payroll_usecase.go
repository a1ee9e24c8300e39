package usecase

import (
	"time"

	"escala-backend/internal/model"
	"escala-backend/internal/repository"
	"escala-backend/internal/schedule"
)

// PayrollUsecase loads a consistent snapshot of the store and runs the pure
// scheduling rules over it. Every surface that shows hours or money — the
// calendar totals, the reports tab, the dashboard — goes through here, so
// the aggregation rule exists exactly once.
type PayrollUsecase struct {
	employeeRepo  repository.EmployeeRepository
	shiftRepo     repository.ShiftRepository
	deductionRepo repository.DeductionRepository
	holidayRepo   repository.HolidayRepository
}

func NewPayrollUsecase(
	employeeRepo repository.EmployeeRepository,
	shiftRepo repository.ShiftRepository,
	deductionRepo repository.DeductionRepository,
	holidayRepo repository.HolidayRepository,
) *PayrollUsecase {
	return &PayrollUsecase{
		employeeRepo:  employeeRepo,
		shiftRepo:     shiftRepo,
		deductionRepo: deductionRepo,
		holidayRepo:   holidayRepo,
	}
}

// Calendar builds the working-day classifier: the fixed national list plus
// whatever extra dates the admins registered.
func (u *PayrollUsecase) Calendar() (schedule.Calendar, error) {
	cal := schedule.NewCalendar()

	holidays, err := u.holidayRepo.GetAll()
	if err != nil {
		return cal, err
	}
	if len(holidays) == 0 {
		return cal, nil
	}

	extra := make(map[string]string, len(holidays))
	for _, h := range holidays {
		extra[h.MonthDay] = h.Label
	}
	return cal.WithExtraHolidays(extra), nil
}

// DeductionTable loads the stored deduction rows into the core's table.
// Missing buckets deduct nothing.
func (u *PayrollUsecase) DeductionTable() (schedule.DeductionTable, error) {
	rows, err := u.deductionRepo.GetAll()
	if err != nil {
		return nil, err
	}
	table := make(schedule.DeductionTable, len(rows))
	for _, d := range rows {
		table[schedule.Bucket(d.Bucket)] = schedule.Deductions{
			IR:     d.IR,
			INSS:   d.INSS,
			Unimed: d.Unimed,
		}
	}
	return table, nil
}

// Snapshot loads the active employees and their schedules for the period.
func (u *PayrollUsecase) Snapshot(period schedule.Period) ([]schedule.EmployeeRef, map[uint]schedule.EmployeeSchedule, error) {
	employees, err := u.employeeRepo.GetActive()
	if err != nil {
		return nil, nil, err
	}

	var shifts []model.Shift
	if period.Month == 0 {
		shifts, err = u.shiftRepo.GetByYear(period.Year)
	} else {
		shifts, err = u.shiftRepo.GetByMonth(period.Year, int(period.Month))
	}
	if err != nil {
		return nil, nil, err
	}

	refs := make([]schedule.EmployeeRef, 0, len(employees))
	for _, e := range employees {
		refs = append(refs, schedule.EmployeeRef{ID: e.ID, Name: e.Name})
	}

	schedules := make(map[uint]schedule.EmployeeSchedule)
	for _, s := range shifts {
		sched, ok := schedules[s.EmployeeID]
		if !ok {
			sched = make(schedule.EmployeeSchedule)
			schedules[s.EmployeeID] = sched
		}
		sched[s.Date] = ShiftRowToDay(s)
	}

	return refs, schedules, nil
}

// Report aggregates one period through the shared rule.
func (u *PayrollUsecase) Report(period schedule.Period) (schedule.Report, error) {
	cal, err := u.Calendar()
	if err != nil {
		return schedule.Report{}, err
	}
	deductions, err := u.DeductionTable()
	if err != nil {
		return schedule.Report{}, err
	}
	employees, schedules, err := u.Snapshot(period)
	if err != nil {
		return schedule.Report{}, err
	}
	return schedule.Aggregate(cal, employees, schedules, period, deductions), nil
}

// MonthlyReport is the common month-scoped entry point.
func (u *PayrollUsecase) MonthlyReport(year int, month time.Month) (schedule.Report, error) {
	return u.Report(schedule.MonthPeriod(year, month))
}

// EmployeeMonth aggregates a single employee's month — the calendar view's
// per-employee totals — with the same function as everything else.
func (u *PayrollUsecase) EmployeeMonth(employeeID uint, year int, month time.Month) (schedule.EmployeeSchedule, schedule.Report, error) {
	cal, err := u.Calendar()
	if err != nil {
		return nil, schedule.Report{}, err
	}
	deductions, err := u.DeductionTable()
	if err != nil {
		return nil, schedule.Report{}, err
	}
	employee, err := u.employeeRepo.FindByID(employeeID)
	if err != nil {
		return nil, schedule.Report{}, err
	}

	shifts, err := u.shiftRepo.GetByEmployeeAndMonth(employeeID, year, int(month))
	if err != nil {
		return nil, schedule.Report{}, err
	}
	sched := make(schedule.EmployeeSchedule, len(shifts))
	for _, s := range shifts {
		sched[s.Date] = ShiftRowToDay(s)
	}

	report := schedule.Aggregate(cal,
		[]schedule.EmployeeRef{{ID: employee.ID, Name: employee.Name}},
		map[uint]schedule.EmployeeSchedule{employee.ID: sched},
		schedule.MonthPeriod(year, month), deductions)
	return sched, report, nil
}

// Idleness runs the audit over the period.
func (u *PayrollUsecase) Idleness(period schedule.Period, th schedule.AuditThresholds) ([]schedule.IdleRow, error) {
	cal, err := u.Calendar()
	if err != nil {
		return nil, err
	}
	employees, schedules, err := u.Snapshot(period)
	if err != nil {
		return nil, err
	}
	return schedule.AuditIdleness(cal, employees, schedules, period, th), nil
}

// ShiftRowToDay converts a stored shift row into the core's day type.
func ShiftRowToDay(s model.Shift) schedule.DayShift {
	day := schedule.DayShift{
		Type:       schedule.ShiftType(s.Type),
		CourseName: s.CourseName,
	}
	if len(s.Slots) > 0 {
		day.Slots = make(map[schedule.Slot]schedule.SlotDetail, len(s.Slots))
		for _, a := range s.Slots {
			day.Slots[schedule.Slot(a.Slot)] = schedule.SlotDetail{
				CourseName:  a.CourseName,
				StartDate:   a.StartDate,
				EndDate:     a.EndDate,
				IsCancelled: a.IsCancelled,
			}
		}
	}
	return day
}

// DayToShiftRow converts a core day back into a storable row.
func DayToShiftRow(employeeID uint, date string, day schedule.DayShift) model.Shift {
	row := model.Shift{
		EmployeeID: employeeID,
		Date:       date,
		Type:       string(day.Type),
		CourseName: day.CourseName,
	}
	for _, slot := range schedule.AllSlots() {
		detail, ok := day.Slots[slot]
		if !ok {
			continue
		}
		row.Slots = append(row.Slots, model.SlotAssignment{
			Slot:        string(slot),
			CourseName:  detail.CourseName,
			StartDate:   detail.StartDate,
			EndDate:     detail.EndDate,
			IsCancelled: detail.IsCancelled,
		})
	}
	return row
}
