package query

import "time"

const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
)

type Trips struct {
	From string `validate:"required"`
	To   string `validate:"required"`
	Date string `validate:"isodate"`
	Time string `validate:"clock"`

	PagingCursor string
}

func (t Trips) Validate() error {
	return validate(t)
}

// FillDefaults returns a copy with an empty Date set to today's UTC date and an empty Time
// set to the local wall clock truncated to the minute. Given values are never touched.
func (t Trips) FillDefaults(now time.Time) Trips {
	if t.Date == "" {
		t.Date = now.UTC().Format(DateFormat)
	}

	if t.Time == "" {
		t.Time = now.Local().Format(ClockFormat)
	}

	return t
}

// TripsPage asks for the whole data.trips object, pagination cursor included.
type TripsPage struct {
	Trips
}
