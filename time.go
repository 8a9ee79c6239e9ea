// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package havoctl

import (
	"strconv"
	"strings"
	"time"
)

// ParseTime resolves the loose time arguments accepted by window-based
// probes (xray, incidents). Accepted forms:
//
//   - "now": the current time in UTC
//   - a Unix timestamp in seconds, integral or fractional ("1692531200")
//   - a relative window such as "3 minutes" or "1 hour", subtracted from
//     offset (or from now when offset is the zero time)
//
// Supported units are seconds, minutes, hours and days, singular or plural.
func ParseTime(ts string, offset time.Time) (time.Time, error) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, Failf("empty time value")
	}

	if ts == "now" {
		return time.Now().UTC(), nil
	}

	if epoch, err := strconv.ParseFloat(ts, 64); err == nil {
		sec := int64(epoch)
		nsec := int64((epoch - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nsec).UTC(), nil
	}

	quantity, unit, found := strings.Cut(ts, " ")
	if !found {
		return time.Time{}, Failf("invalid time value %q", ts)
	}
	amount, err := strconv.ParseFloat(quantity, 64)
	if err != nil {
		return time.Time{}, Failf("invalid time quantity %q", quantity)
	}

	var scale time.Duration
	switch strings.TrimSpace(unit) {
	case "second", "seconds":
		scale = time.Second
	case "minute", "minutes":
		scale = time.Minute
	case "hour", "hours":
		scale = time.Hour
	case "day", "days":
		scale = 24 * time.Hour
	default:
		return time.Time{}, Failf("unknown time unit %q", unit)
	}

	if offset.IsZero() {
		offset = time.Now().UTC()
	}
	return offset.Add(-time.Duration(amount * float64(scale))), nil
}
