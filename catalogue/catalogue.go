package catalogue

import (
	"fmt"
	"slices"
)

// Catalogue stores stops, buses and road distances and answers route queries.
type Catalogue struct {
	stops     *stopStore
	buses     *busStore
	distances *distanceTable
	index     *stopIndex
}

// New creates an empty catalogue.
func New() *Catalogue {
	return &Catalogue{
		stops:     newStopStore(),
		buses:     newBusStore(),
		distances: newDistanceTable(),
		index:     newStopIndex(),
	}
}

// AddStop declares a stop or updates the coordinates of an existing one,
// including a placeholder created by an earlier bus.
func (c *Catalogue) AddStop(name string, coords Coordinates) {
	c.stops.upsert(name, coords)
}

// AddBus declares a bus over the named stops, in order. Unknown stop names
// become placeholders. A roundtrip route must end at its first stop.
// Nothing is stored when an error is returned.
func (c *Catalogue) AddBus(name string, stopNames []string, isRoundtrip bool) error {
	if len(stopNames) == 0 {
		return fmt.Errorf("bus %q: %w", name, ErrEmptyRoute)
	}
	if _, ok := c.buses.lookup(name); ok {
		return fmt.Errorf("bus %q: %w", name, ErrDuplicateBus)
	}
	if isRoundtrip && stopNames[0] != stopNames[len(stopNames)-1] {
		return fmt.Errorf("bus %q: %w", name, ErrRouteNotClosed)
	}
	stops := make([]StopID, len(stopNames))
	for i, sn := range stopNames {
		stops[i] = c.stops.getOrCreate(sn)
	}
	c.buses.insert(name, stops, isRoundtrip)
	c.index.add(name, stops)
	return nil
}

// SetDistance records the road distance from one stop to another, overwriting
// any earlier value for the same direction.
func (c *Catalogue) SetDistance(from, to string, meters float64) {
	c.distances.set(c.stops.getOrCreate(from), c.stops.getOrCreate(to), meters)
}

// GetDistance returns the road distance from one stop to another. If only the
// reverse direction was recorded it is used instead. 0 means either no
// distance was recorded or the recorded distance is 0.
func (c *Catalogue) GetDistance(from, to string) float64 {
	f, ok := c.stops.lookup(from)
	if !ok {
		return 0
	}
	t, ok := c.stops.lookup(to)
	if !ok {
		return 0
	}
	m, _ := c.distances.lookup(f, t)
	return m
}

// FindStop returns the stop with the given name.
func (c *Catalogue) FindStop(name string) (Stop, bool) {
	id, ok := c.stops.lookup(name)
	if !ok {
		return Stop{}, false
	}
	return *c.stops.get(id), true
}

// HasStop reports whether a stop with the given name exists, declared or not.
func (c *Catalogue) HasStop(name string) bool {
	_, ok := c.stops.lookup(name)
	return ok
}

// FindBus returns the bus with the given name. The returned stop slice is a copy.
func (c *Catalogue) FindBus(name string) (Bus, bool) {
	id, ok := c.buses.lookup(name)
	if !ok {
		return Bus{}, false
	}
	bus := *c.buses.get(id)
	bus.Stops = slices.Clone(bus.Stops)
	return bus, true
}

// GetBusInfo computes route statistics for a bus.
func (c *Catalogue) GetBusInfo(name string) (BusInfo, bool) {
	id, ok := c.buses.lookup(name)
	if !ok {
		return BusInfo{}, false
	}
	bus := c.buses.get(id)

	n := len(bus.Stops)
	info := BusInfo{StopsCount: n}
	if !bus.IsRoundtrip {
		info.StopsCount = 2*n - 1
	}

	unique := make(map[StopID]struct{}, n)
	for _, s := range bus.Stops {
		unique[s] = struct{}{}
	}
	info.UniqueStopsCount = len(unique)

	for i := 1; i < n; i++ {
		info.RouteLength += c.legLength(bus.Stops[i-1], bus.Stops[i])
		info.GeoLength += c.geoLength(bus.Stops[i-1], bus.Stops[i])
	}
	if !bus.IsRoundtrip {
		for i := n - 1; i > 0; i-- {
			info.RouteLength += c.legLength(bus.Stops[i], bus.Stops[i-1])
			info.GeoLength += c.geoLength(bus.Stops[i], bus.Stops[i-1])
		}
	}
	if info.GeoLength > 0 {
		info.Curvature = info.RouteLength / info.GeoLength
	}
	return info, true
}

// legLength is the road distance between consecutive stops, or the
// great-circle distance when none was recorded in either direction.
func (c *Catalogue) legLength(from, to StopID) float64 {
	if m, ok := c.distances.lookup(from, to); ok {
		return m
	}
	return c.geoLength(from, to)
}

func (c *Catalogue) geoLength(from, to StopID) float64 {
	return GreatCircleDistance(c.stops.get(from).Coordinates, c.stops.get(to).Coordinates)
}

// GetBusesForStop returns the names of the buses serving a stop in
// lexicographic order. The slice is empty, not nil, for a stop no bus visits;
// ok is false only when the stop is unknown.
func (c *Catalogue) GetBusesForStop(name string) ([]string, bool) {
	id, ok := c.stops.lookup(name)
	if !ok {
		return nil, false
	}
	return c.index.sorted(id), true
}

// Stops returns every stop name, sorted.
func (c *Catalogue) Stops() []string { return c.stops.names() }

// Buses returns every bus name, sorted.
func (c *Catalogue) Buses() []string { return c.buses.names() }

// StopCount returns the number of stops, placeholders included.
func (c *Catalogue) StopCount() int { return c.stops.len() }

// BusCount returns the number of buses.
func (c *Catalogue) BusCount() int { return c.buses.len() }

// DistanceCount returns the number of directed road distances recorded.
func (c *Catalogue) DistanceCount() int { return c.distances.len() }
