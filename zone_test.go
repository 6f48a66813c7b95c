package main

import (
	"errors"
	"fmt"
	"testing"
)

// TestGlobalZoneAlwaysExists tests that a fresh allocator has the 1MB
// global zone as id 0
func TestGlobalZoneAlwaysExists(t *testing.T) {
	za := NewZoneAllocator()
	if za.Len() != 1 {
		t.Fatalf("Expected exactly one zone, got %d", za.Len())
	}
	z := za.Zone(0)
	if z.Name != "global" {
		t.Errorf("Expected zone 0 to be global, got %q", z.Name)
	}
	if z.Capacity < 1024*1024 {
		t.Errorf("Expected global capacity >= 1MB, got %d", z.Capacity)
	}
	if za.Current() != 0 {
		t.Errorf("Expected current zone 0 before any declaration, got %d", za.Current())
	}
}

// TestCreateZone tests zone creation and the current-zone default
func TestCreateZone(t *testing.T) {
	za := NewZoneAllocator()
	id, err := za.CreateZone("fast", 64*1024, true)
	if err != nil {
		t.Fatalf("CreateZone failed: %v", err)
	}
	if id != 1 {
		t.Errorf("Expected id 1, got %d", id)
	}
	if za.Current() != id {
		t.Errorf("Expected current zone to follow the declaration, got %d", za.Current())
	}
	if got, ok := za.Find("fast"); !ok || got != id {
		t.Errorf("Find(fast) = %d, %v", got, ok)
	}
}

// TestDuplicateZone tests that reusing a zone name fails and leaves the
// table unchanged
func TestDuplicateZone(t *testing.T) {
	za := NewZoneAllocator()
	if _, err := za.CreateZone("fast", 1024, false); err != nil {
		t.Fatalf("First CreateZone failed: %v", err)
	}
	_, err := za.CreateZone("fast", 2048, false)
	if !errors.Is(err, ErrDuplicateZone) {
		t.Fatalf("Expected ErrDuplicateZone, got %v", err)
	}
	if za.Len() != 2 {
		t.Errorf("Zone table mutated by rejected declaration: %d zones", za.Len())
	}
	if _, err := za.CreateZone("global", 1024, false); !errors.Is(err, ErrDuplicateZone) {
		t.Errorf("Expected global to be a reserved name, got %v", err)
	}
}

// TestTooManyZones tests the zone-count ceiling
func TestTooManyZones(t *testing.T) {
	za := NewZoneAllocator()
	for i := 1; i < MaxMemoryZones; i++ {
		if _, err := za.CreateZone(fmt.Sprintf("zone%d", i), 1024, false); err != nil {
			t.Fatalf("CreateZone %d failed: %v", i, err)
		}
	}
	_, err := za.CreateZone("overflow", 1024, false)
	if !errors.Is(err, ErrTooManyZones) {
		t.Fatalf("Expected ErrTooManyZones, got %v", err)
	}
	if za.Len() != MaxMemoryZones {
		t.Errorf("Expected %d zones, got %d", MaxMemoryZones, za.Len())
	}
}

// TestZoneExhaustionIsExact tests that reserving exactly the remaining
// capacity succeeds and one more byte fails
func TestZoneExhaustionIsExact(t *testing.T) {
	za := NewZoneAllocator()
	id, err := za.CreateZone("tiny", 100, false)
	if err != nil {
		t.Fatalf("CreateZone failed: %v", err)
	}

	if err := za.Reserve(id, 60); err != nil {
		t.Fatalf("Reserve(60) failed: %v", err)
	}
	// Exactly capacity - used
	if err := za.Reserve(id, 40); err != nil {
		t.Fatalf("Reserve of exact remainder failed: %v", err)
	}
	// One byte more
	err = za.Reserve(id, 1)
	if !errors.Is(err, ErrZoneExhausted) {
		t.Fatalf("Expected ErrZoneExhausted, got %v", err)
	}
	if za.Zone(id).Used != 100 {
		t.Errorf("Rejected reserve mutated the zone: used = %d", za.Zone(id).Used)
	}
}

// TestReserveUnknownZone tests reserving against a bad id
func TestReserveUnknownZone(t *testing.T) {
	za := NewZoneAllocator()
	if err := za.Reserve(5, 8); !errors.Is(err, ErrUnknownZone) {
		t.Errorf("Expected ErrUnknownZone, got %v", err)
	}
	if err := za.Reserve(-1, 8); !errors.Is(err, ErrUnknownZone) {
		t.Errorf("Expected ErrUnknownZone for negative id, got %v", err)
	}
}
