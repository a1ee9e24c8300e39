package schedule

import "sort"

// AuditThresholds are the idle-fraction cutoffs for the classification
// bands. They are presentation policy, so tests and callers may override
// them.
type AuditThresholds struct {
	High      float64
	Attention float64
}

// DefaultThresholds flags idle fractions above 60% as high idleness and
// above 30% as needing attention.
var DefaultThresholds = AuditThresholds{High: 0.60, Attention: 0.30}

type IdleBand string

const (
	BandHigh      IdleBand = "high idleness"
	BandAttention IdleBand = "attention"
	BandEfficient IdleBand = "efficient"
)

// IdleRow is one employee's utilization for the period.
type IdleRow struct {
	EmployeeID    uint     `json:"employee_id"`
	Name          string   `json:"name"`
	CapacityHours int      `json:"capacity_hours"`
	WorkedHours   int      `json:"worked_hours"`
	IdleHours     int      `json:"idle_hours"`
	IdleFraction  float64  `json:"idle_fraction"`
	Band          IdleBand `json:"band"`
}

// AuditIdleness compares worked hours against theoretical capacity
// (3 slots x 4h on every working day, regardless of contract). Worked hours
// follow the same billable-slot rule as Aggregate, excluding cancelled
// assignments. Rows come back sorted by idle hours, highest first.
func AuditIdleness(cal Calendar, employees []EmployeeRef, schedules map[uint]EmployeeSchedule, period Period, th AuditThresholds) []IdleRow {
	rows := make([]IdleRow, 0, len(employees))
	start, end := period.Range()

	for _, emp := range employees {
		row := IdleRow{EmployeeID: emp.ID, Name: emp.Name}
		sched := schedules[emp.ID]

		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			if cal.IsNonWorkingDay(d) {
				continue
			}
			row.CapacityHours += DailyCapacityHours

			day, ok := sched[d.Format(DateLayout)]
			if !ok || !day.Type.Billable() {
				continue
			}
			for _, detail := range day.Slots {
				if !detail.IsCancelled {
					row.WorkedHours += SlotHours
				}
			}
		}

		if idle := row.CapacityHours - row.WorkedHours; idle > 0 {
			row.IdleHours = idle
		}
		if row.CapacityHours > 0 {
			row.IdleFraction = float64(row.IdleHours) / float64(row.CapacityHours)
		}

		switch {
		case row.IdleFraction > th.High:
			row.Band = BandHigh
		case row.IdleFraction > th.Attention:
			row.Band = BandAttention
		default:
			row.Band = BandEfficient
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].IdleHours > rows[j].IdleHours
	})
	return rows
}
