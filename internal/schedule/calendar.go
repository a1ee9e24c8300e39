package schedule

import "time"

// fixedHolidays are the national and municipal holidays observed every year,
// keyed MM-DD. Moving holidays (Carnaval, Corpus Christi) are not supported.
var fixedHolidays = map[string]string{
	"01-01": "Confraternização Universal",
	"04-21": "Tiradentes",
	"05-01": "Dia do Trabalho",
	"06-24": "São João",
	"09-07": "Independência do Brasil",
	"10-12": "Nossa Senhora Aparecida",
	"10-28": "Dia do Servidor Público",
	"11-02": "Finados",
	"11-15": "Proclamação da República",
	"11-20": "Consciência Negra",
	"12-25": "Natal",
}

// Calendar classifies dates as working or non-working. The fixed holiday
// list is built in; extra admin-managed dates can be layered on top.
type Calendar struct {
	extra map[string]string // MM-DD -> label
}

func NewCalendar() Calendar {
	return Calendar{}
}

// WithExtraHolidays returns a calendar that also treats the given MM-DD
// dates as holidays. The fixed list itself is never mutated.
func (c Calendar) WithExtraHolidays(monthDays map[string]string) Calendar {
	merged := make(map[string]string, len(monthDays))
	for md, label := range c.extra {
		merged[md] = label
	}
	for md, label := range monthDays {
		merged[md] = label
	}
	return Calendar{extra: merged}
}

// IsNonWorkingDay reports whether d is a weekend or holiday. Pure and total
// over any calendar date; the MM-DD match carries no year dependency.
func (c Calendar) IsNonWorkingDay(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	_, ok := c.HolidayName(d)
	return ok
}

// HolidayName returns the holiday label for d, if any.
func (c Calendar) HolidayName(d time.Time) (string, bool) {
	md := d.Format("01-02")
	if label, ok := fixedHolidays[md]; ok {
		return label, true
	}
	label, ok := c.extra[md]
	return label, ok
}
