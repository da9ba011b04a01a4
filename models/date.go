package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02"}

// Date is a timestamp sent by a client. Besides RFC 3339 it accepts a
// calendar date such as "2017-10-08", taken as midnight UTC.
type Date struct {
	time.Time
}

// UnmarshalJSON parses the first layout of dateLayouts that fits
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as a date, want RFC 3339 or YYYY-MM-DD", s)
}
