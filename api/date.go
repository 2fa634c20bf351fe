package api

import (
	"encoding/json"
	"fmt"
	"time"
)

const DateFormat = "2006-01-02"

// Date is a date-only value that travels as a "YYYY-MM-DD" JSON string.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(DateFormat))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := time.Parse(DateFormat, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format %s", s, DateFormat)
	}

	d.Time = parsed

	return nil
}

func (d Date) String() string {
	return d.Time.Format(DateFormat)
}
