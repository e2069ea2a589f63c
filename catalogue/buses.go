package catalogue

import (
	"errors"
	"sort"
)

var (
	// ErrEmptyRoute is returned when a bus is declared without stops.
	ErrEmptyRoute = errors.New("route has no stops")
	// ErrRouteNotClosed is returned for a roundtrip route whose first and last stops differ.
	ErrRouteNotClosed = errors.New("roundtrip route must end at its first stop")
	// ErrDuplicateBus is returned when a bus name is declared twice.
	ErrDuplicateBus = errors.New("bus already declared")
)

// busStore owns every bus record. Buses are immutable once stored.
type busStore struct {
	buses  []Bus
	byName map[string]BusID
}

func newBusStore() *busStore {
	return &busStore{byName: map[string]BusID{}}
}

func (b *busStore) insert(name string, stops []StopID, roundtrip bool) BusID {
	id := BusID(len(b.buses))
	b.buses = append(b.buses, Bus{ID: id, Name: name, Stops: stops, IsRoundtrip: roundtrip})
	b.byName[name] = id
	return id
}

func (b *busStore) lookup(name string) (BusID, bool) {
	id, ok := b.byName[name]
	return id, ok
}

func (b *busStore) get(id BusID) *Bus { return &b.buses[id] }

func (b *busStore) len() int { return len(b.buses) }

func (b *busStore) names() []string {
	out := make([]string, 0, len(b.buses))
	for _, bus := range b.buses {
		out = append(out, bus.Name)
	}
	sort.Strings(out)
	return out
}
