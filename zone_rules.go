package hijrah

import (
	"sync"
	"time"
)

// TransitionKind classifies how a local date-time maps onto a zone's offsets.
type TransitionKind int

const (
	// Normal means exactly one offset is valid.
	Normal TransitionKind = iota
	// Gap means no offset is valid: the local time was skipped by a forward
	// transition.
	Gap
	// Overlap means two offsets are valid: the local time was repeated by a
	// backward transition.
	Overlap
)

func (k TransitionKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Gap:
		return "gap"
	case Overlap:
		return "overlap"
	}
	return "unknown"
}

// Transition describes the offsets that apply to a local date-time. For
// Normal, Before and After are the same offset. For Gap, the gap length is
// After-Before. For Overlap, Before is the earlier offset (the one in effect
// before the transition).
type Transition struct {
	Kind   TransitionKind
	Before Offset
	After  Offset
}

// GapLength returns the length of a gap, zero otherwise.
func (t Transition) GapLength() time.Duration {
	if t.Kind != Gap {
		return 0
	}
	return (t.After - t.Before).Duration()
}

// ZoneRules resolves offsets for time-zone identities. Implementations must
// be safe for concurrent use.
type ZoneRules interface {
	// LoadZone returns the zone with the given identifier.
	LoadZone(id string) (*time.Location, error)
	// OffsetAt returns the offset in effect in zone at instant t.
	OffsetAt(zone *time.Location, t time.Time) Offset
	// Transition classifies a local date-time, given as seconds since
	// 1970-01-01T00:00:00 local time, in zone.
	Transition(zone *time.Location, localSeconds int64) Transition
}

// LocationRules implements ZoneRules with the time package's zone database.
// Zones returned by LoadZone are cached so that repeated loads of the same
// identifier return the same *time.Location. The zero value is ready to use.
type LocationRules struct {
	mu    sync.RWMutex
	zones map[string]*time.Location
}

// NewLocationRules creates a LocationRules with an empty zone cache.
func NewLocationRules() *LocationRules {
	return &LocationRules{zones: make(map[string]*time.Location)}
}

var systemRules = NewLocationRules()

// SystemZoneRules returns the shared LocationRules instance.
func SystemZoneRules() *LocationRules { return systemRules }

// LoadZone returns the named zone. Besides IANA names, "UTC", "Local" and
// fixed offsets such as "+03:00" are accepted.
func (r *LocationRules) LoadZone(id string) (*time.Location, error) {
	r.mu.RLock()
	loc, ok := r.zones[id]
	r.mu.RUnlock()
	if ok {
		return loc, nil
	}

	if o, err := ParseOffset(id); err == nil {
		loc = o.Location()
	} else if loc, err = time.LoadLocation(id); err != nil {
		return nil, fmtArgError("unknown zone %q: %v", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.zones[id]; ok {
		return cached, nil
	}
	if r.zones == nil {
		r.zones = make(map[string]*time.Location)
	}
	r.zones[id] = loc
	return loc, nil
}

func (r *LocationRules) OffsetAt(zone *time.Location, t time.Time) Offset {
	return OffsetFromTime(t.In(zone))
}

// Transition inspects the offsets in effect a day either side of the local
// time and checks which of them reproduce it.
func (r *LocationRules) Transition(zone *time.Location, localSeconds int64) Transition {
	early := r.OffsetAt(zone, time.Unix(localSeconds-secondsPerDay, 0))
	late := r.OffsetAt(zone, time.Unix(localSeconds+secondsPerDay, 0))
	valid := func(o Offset) bool {
		return r.OffsetAt(zone, time.Unix(localSeconds-int64(o), 0)) == o
	}
	earlyOK, lateOK := valid(early), valid(late)
	switch {
	case early == late && earlyOK:
		return Transition{Kind: Normal, Before: early, After: early}
	case earlyOK && lateOK:
		return Transition{Kind: Overlap, Before: early, After: late}
	case earlyOK:
		return Transition{Kind: Normal, Before: early, After: early}
	case lateOK:
		return Transition{Kind: Normal, Before: late, After: late}
	case early != late:
		return Transition{Kind: Gap, Before: early, After: late}
	}
	// More than one transition within a day; fall back to the offset at
	// the instant the local time would have under the early offset.
	o := r.OffsetAt(zone, time.Unix(localSeconds-int64(early), 0))
	return Transition{Kind: Normal, Before: o, After: o}
}
