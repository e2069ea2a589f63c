package catalogue

// stopPair is a directed key: from -> to.
type stopPair struct {
	from, to StopID
}

// distanceTable holds surveyed road distances in meters.
type distanceTable struct {
	meters map[stopPair]float64
}

func newDistanceTable() *distanceTable {
	return &distanceTable{meters: map[stopPair]float64{}}
}

func (d *distanceTable) set(from, to StopID, meters float64) {
	d.meters[stopPair{from, to}] = meters
}

// lookup returns the directed distance, falling back to the reverse pair.
// ok is false when neither direction was recorded.
func (d *distanceTable) lookup(from, to StopID) (float64, bool) {
	if m, ok := d.meters[stopPair{from, to}]; ok {
		return m, true
	}
	if m, ok := d.meters[stopPair{to, from}]; ok {
		return m, true
	}
	return 0, false
}

func (d *distanceTable) len() int { return len(d.meters) }
