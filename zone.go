// Completion: 100% - Memory zone allocator complete
// Models static partitioning of storage into named, capacity-bounded zones.
// Bindings are charged against a zone when declared; zones are never shrunk
// or freed during a compilation run.
package main

import (
	"errors"
	"fmt"
)

const (
	// MaxMemoryZones is the zone-count ceiling, global zone included.
	MaxMemoryZones = 10

	// GlobalZoneCapacity is the capacity of the implicit "global" zone.
	GlobalZoneCapacity = 1024 * 1024 // 1MB

	// DefaultZoneCapacity is used when a zone declaration names no size.
	DefaultZoneCapacity = 64 * 1024 // 64KB
)

var (
	ErrDuplicateZone = errors.New("zone already exists")
	ErrTooManyZones  = errors.New("too many memory zones")
	ErrZoneExhausted = errors.New("zone exhausted")
	ErrUnknownZone   = errors.New("unknown zone")
)

// Zone is one named memory partition. Used never exceeds Capacity.
type Zone struct {
	Name        string
	Capacity    int
	Used        int
	AutoCleanup bool // Placeholder flag; no teardown happens mid-run
}

// Free returns the remaining capacity in bytes
func (z *Zone) Free() int {
	return z.Capacity - z.Used
}

// ZoneAllocator tracks the ordered zone table for one compilation unit.
// Zone id 0 is always the 1MB "global" zone.
type ZoneAllocator struct {
	zones   []*Zone
	current int // Most recently declared zone, the default charge target
}

func NewZoneAllocator() *ZoneAllocator {
	return &ZoneAllocator{
		zones: []*Zone{{
			Name:     "global",
			Capacity: GlobalZoneCapacity,
		}},
	}
}

// CreateZone declares a new zone and makes it current. The offending
// declaration is dropped wholly on failure: no partial zone is recorded.
func (za *ZoneAllocator) CreateZone(name string, capacity int, autoCleanup bool) (int, error) {
	if _, ok := za.Find(name); ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateZone, name)
	}
	if len(za.zones) >= MaxMemoryZones {
		return 0, fmt.Errorf("%w: limit is %d", ErrTooManyZones, MaxMemoryZones)
	}
	if capacity <= 0 {
		capacity = DefaultZoneCapacity
	}
	za.zones = append(za.zones, &Zone{
		Name:        name,
		Capacity:    capacity,
		AutoCleanup: autoCleanup,
	})
	id := len(za.zones) - 1
	za.current = id
	return id, nil
}

// Reserve charges bytes against a zone. Reserving exactly the remaining
// capacity succeeds; one byte more fails, and the zone is left untouched.
func (za *ZoneAllocator) Reserve(id, bytes int) error {
	if id < 0 || id >= len(za.zones) {
		return fmt.Errorf("%w: id %d", ErrUnknownZone, id)
	}
	z := za.zones[id]
	if z.Used+bytes > z.Capacity {
		return fmt.Errorf("%w: %q needs %d bytes, %d free", ErrZoneExhausted, z.Name, bytes, z.Free())
	}
	z.Used += bytes
	return nil
}

// Current returns the id of the most recently declared zone
func (za *ZoneAllocator) Current() int {
	return za.current
}

// Find looks up a zone id by name
func (za *ZoneAllocator) Find(name string) (int, bool) {
	for i, z := range za.zones {
		if z.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Zone returns the zone with the given id, or nil
func (za *ZoneAllocator) Zone(id int) *Zone {
	if id < 0 || id >= len(za.zones) {
		return nil
	}
	return za.zones[id]
}

// Len returns the number of zones, global included
func (za *ZoneAllocator) Len() int {
	return len(za.zones)
}

// Zones returns the zone table in declaration order
func (za *ZoneAllocator) Zones() []*Zone {
	return za.zones
}
