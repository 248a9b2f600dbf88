package jdate

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone is the zone used when a Formatter is built without one.
const DefaultTimezone = "Asia/Tehran"

// tehranStandardOffset is Iran Standard Time, +03:30.
const tehranStandardOffset = 3*60*60 + 30*60

// LoadLocation resolves an IANA zone name. An empty name resolves
// DefaultTimezone. If the zone database has no entry for DefaultTimezone the
// fixed +03:30 offset stands in for it; any other unknown name is an error.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}
	if name == DefaultTimezone {
		return time.FixedZone("+0330", tehranStandardOffset), nil
	}
	return nil, fmt.Errorf("jdate: load timezone %q: %w", name, err)
}
