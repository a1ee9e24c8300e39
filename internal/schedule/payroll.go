package schedule

// Deductions are the fixed monthly discounts for one bucket.
type Deductions struct {
	IR     float64 `json:"ir"`
	INSS   float64 `json:"inss"`
	Unimed float64 `json:"unimed"`
}

// Total is the sum subtracted from the bucket's gross pay.
func (d Deductions) Total() float64 {
	return d.IR + d.INSS + d.Unimed
}

// DeductionTable maps buckets to their deductions. Missing buckets deduct
// nothing.
type DeductionTable map[Bucket]Deductions

// BucketSummary is the paid outcome of one bucket for one employee.
type BucketSummary struct {
	Hours int     `json:"hours"`
	Gross float64 `json:"gross"`
	Net   float64 `json:"net"` // may be negative when deductions exceed gross
}

// EmployeeSummary is one employee's aggregated period.
type EmployeeSummary struct {
	EmployeeID uint   `json:"employee_id"`
	Name       string `json:"name"`

	Buckets    map[Bucket]BucketSummary `json:"buckets"`
	TotalHours int                      `json:"total_hours"`
	Gross      float64                  `json:"gross"`
	Net        float64                  `json:"net"`

	// DaysOff counts working days with no billable assignment.
	DaysOff int `json:"days_off"`

	// Lost tracks cancelled slot assignments: hours that would have been
	// paid, and their value at the fixed rate.
	LostHours int     `json:"lost_hours"`
	LostValue float64 `json:"lost_value"`
}

// Totals is the aggregate across all employees.
type Totals struct {
	Hours40H   int     `json:"hours_40h"`
	Hours20H   int     `json:"hours_20h"`
	TotalHours int     `json:"total_hours"`
	Gross      float64 `json:"gross"`
	Net        float64 `json:"net"`
	DaysOff    int     `json:"days_off"`
	LostHours  int     `json:"lost_hours"`
	LostValue  float64 `json:"lost_value"`
}

// Report is the full aggregation output for one period.
type Report struct {
	PerEmployee []EmployeeSummary `json:"per_employee"`
	Totals      Totals            `json:"totals"`
}

// Aggregate walks every working day of the period for every employee and
// applies the paid-hours rule:
//
//   - weekends and holidays contribute nothing and never count as days off;
//   - a working day with no shift, a non-billable type (FINAL, OFF), or a
//     billable type with no active slots counts as one day off;
//   - each active, non-cancelled slot under a billable type contributes
//     SlotHours to its bucket (morning/afternoon -> 40H, night -> 20H);
//   - cancelled slots are excluded from pay but tallied per employee as
//     lost potential;
//   - per bucket, gross = hours x HourlyRate and net = gross minus that
//     bucket's deductions, with no floor at zero.
//
// Aggregate is a pure function of its inputs: calling it twice on the same
// snapshot yields identical reports.
func Aggregate(cal Calendar, employees []EmployeeRef, schedules map[uint]EmployeeSchedule, period Period, deductions DeductionTable) Report {
	report := Report{PerEmployee: make([]EmployeeSummary, 0, len(employees))}
	start, end := period.Range()

	for _, emp := range employees {
		sum := EmployeeSummary{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Buckets: map[Bucket]BucketSummary{
				Bucket40H: {},
				Bucket20H: {},
			},
		}
		sched := schedules[emp.ID]

		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			if cal.IsNonWorkingDay(d) {
				continue
			}

			day, ok := sched[d.Format(DateLayout)]
			if !ok || !day.Type.Billable() || len(day.Slots) == 0 {
				sum.DaysOff++
				continue
			}

			for _, slot := range AllSlots() {
				detail, active := day.Slots[slot]
				if !active {
					continue
				}
				if detail.IsCancelled {
					sum.LostHours += SlotHours
					continue
				}
				b := slot.Bucket()
				bs := sum.Buckets[b]
				bs.Hours += SlotHours
				sum.Buckets[b] = bs
			}
		}

		for b, bs := range sum.Buckets {
			bs.Gross = float64(bs.Hours) * HourlyRate
			bs.Net = bs.Gross - deductions[b].Total()
			sum.Buckets[b] = bs

			sum.TotalHours += bs.Hours
			sum.Gross += bs.Gross
			sum.Net += bs.Net
		}
		sum.LostValue = float64(sum.LostHours) * HourlyRate

		report.Totals.Hours40H += sum.Buckets[Bucket40H].Hours
		report.Totals.Hours20H += sum.Buckets[Bucket20H].Hours
		report.Totals.TotalHours += sum.TotalHours
		report.Totals.Gross += sum.Gross
		report.Totals.Net += sum.Net
		report.Totals.DaysOff += sum.DaysOff
		report.Totals.LostHours += sum.LostHours
		report.Totals.LostValue += sum.LostValue

		report.PerEmployee = append(report.PerEmployee, sum)
	}

	return report
}
