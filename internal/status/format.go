// Package status answers the keystrokes typed while a job is waiting and
// renders the remaining time.
package status

import (
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// FormatRemaining renders d as "<n>d <n>h <n>m <n>s". Days, hours and
// minutes are omitted when zero; seconds are always present. d is floored to
// whole seconds and negative values render as "0s".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)

	days := d / day
	d -= days * day
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second

	var parts []string
	for _, u := range []struct {
		n    time.Duration
		unit string
	}{
		{days, "d"},
		{hours, "h"},
		{minutes, "m"},
	} {
		if u.n != 0 {
			parts = append(parts, strconv.FormatInt(int64(u.n), 10)+u.unit)
		}
	}
	parts = append(parts, strconv.FormatInt(int64(seconds), 10)+"s")
	return strings.Join(parts, " ")
}
