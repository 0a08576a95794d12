// Package timezone resolves the local time zone of a coordinate so prompts
// can describe the date and season as experienced on the ground.
package timezone

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// IST is India Standard Time, used when a coordinate has no resolvable zone
var IST = time.FixedZone("IST", 5*60*60+30*60)

// ErrNoZone is returned for coordinates outside every zone polygon
var ErrNoZone = errors.New("no timezone found")

// Finder maps coordinates to IANA zones. The underlying tzf data is large
// and immutable, so a single Finder is shared by the whole process.
type Finder struct {
	finder    tzf.F
	locations sync.Map // zone name -> *time.Location
}

var (
	shared     *Finder
	sharedOnce sync.Once
	sharedErr  error
)

// Shared returns the process-wide Finder, loading zone data on first use
func Shared() (*Finder, error) {
	sharedOnce.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			sharedErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		shared = &Finder{finder: finder}
	})
	return shared, sharedErr
}

// ZoneName returns the IANA name for the coordinates, e.g. "Asia/Kolkata"
func (f *Finder) ZoneName(latitude, longitude float64) (string, error) {
	name := f.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("%w at %.4f, %.4f", ErrNoZone, latitude, longitude)
	}
	return name, nil
}

// Location returns the zone for the coordinates, or IST when it cannot be
// determined or loaded
func (f *Finder) Location(latitude, longitude float64) *time.Location {
	name, err := f.ZoneName(latitude, longitude)
	if err != nil {
		return IST
	}
	if cached, ok := f.locations.Load(name); ok {
		return cached.(*time.Location)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return IST
	}
	f.locations.Store(name, loc)
	return loc
}
