package catalogue

import "sort"

// stopIndex maps each stop to the names of the buses that visit it.
type stopIndex struct {
	buses map[StopID]map[string]struct{}
}

func newStopIndex() *stopIndex {
	return &stopIndex{buses: map[StopID]map[string]struct{}{}}
}

// add records every stop of a route; repeated stops collapse into one entry.
func (x *stopIndex) add(busName string, stops []StopID) {
	for _, id := range stops {
		set, ok := x.buses[id]
		if !ok {
			set = map[string]struct{}{}
			x.buses[id] = set
		}
		set[busName] = struct{}{}
	}
}

// sorted returns the bus names for a stop in lexicographic order, never nil.
func (x *stopIndex) sorted(id StopID) []string {
	set := x.buses[id]
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
