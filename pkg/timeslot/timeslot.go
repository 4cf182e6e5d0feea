// Package timeslot resolves the canonical request time for WMTS tile requests.
//
// The upstream ocean model publishes fields on a 6-hour cadence, so every
// request time must be snapped down to the nearest 00/06/12/18 UTC boundary.
// Offsets are interpreted against the New Zealand local clock because the
// tool's users reason in local time ("tomorrow morning"), while the service
// itself speaks UTC.
package timeslot

import (
	"time"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/errors"
)

// ZoneName is the IANA timezone used for offset interpretation and display.
const ZoneName = "Pacific/Auckland"

// slotHours is the publication cadence of the upstream model.
const slotHours = 6

// utcLayout matches the TIME parameter format the WMTS service expects,
// including the fixed ".000Z" millisecond suffix.
const utcLayout = "2006-01-02T15:04:05.000Z"

// displayLayout renders the local time with the zone abbreviation
// (NZST or NZDT depending on daylight saving).
const displayLayout = "2006-01-02 15:04 MST"

// Window is a resolved request time: the same instant expressed both as the
// snapped UTC request timestamp and as the local wall-clock time for display.
type Window struct {
	UTC   time.Time // snapped to a 6-hour boundary, zero minutes/seconds/nanos
	Local time.Time // the identical instant in Pacific/Auckland
}

// UTCParam returns the TIME query parameter value for the WMTS request.
func (w Window) UTCParam() string {
	return w.UTC.Format(utcLayout)
}

// Display returns the human-readable local time string shown in the title
// banner, e.g. "2026-01-15 09:00 NZDT".
func (w Window) Display() string {
	return w.Local.Format(displayLayout)
}

// Zone loads the Pacific/Auckland location.
func Zone() (*time.Location, error) {
	loc, err := time.LoadLocation(ZoneName)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "loading timezone %s", ZoneName)
	}
	return loc, nil
}

// Resolve computes the request window for "now" plus the given offsets.
// Offsets may be negative; no bound checking is applied.
func Resolve(daysOffset, hoursOffset int) (Window, error) {
	loc, err := Zone()
	if err != nil {
		return Window{}, err
	}
	return ResolveAt(time.Now().In(loc), daysOffset, hoursOffset), nil
}

// ResolveAt computes the request window relative to an explicit local "now".
// The offsets are applied in local time first; the result is then converted
// to UTC and floored to the nearest lower 6-hour boundary. Both returned
// representations denote that single floored instant.
func ResolveAt(nowLocal time.Time, daysOffset, hoursOffset int) Window {
	target := nowLocal.AddDate(0, 0, daysOffset).Add(time.Duration(hoursOffset) * time.Hour)

	utc := target.UTC()
	floored := time.Date(
		utc.Year(), utc.Month(), utc.Day(),
		(utc.Hour()/slotHours)*slotHours, 0, 0, 0,
		time.UTC,
	)

	return Window{
		UTC:   floored,
		Local: floored.In(nowLocal.Location()),
	}
}
