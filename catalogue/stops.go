package catalogue

import "sort"

// stopStore owns every stop record. Slots are never removed or reordered.
type stopStore struct {
	stops  []Stop
	byName map[string]StopID
}

func newStopStore() *stopStore {
	return &stopStore{byName: map[string]StopID{}}
}

// upsert declares a stop, updating the coordinates of an existing one.
func (s *stopStore) upsert(name string, coords Coordinates) StopID {
	if id, ok := s.byName[name]; ok {
		s.stops[id].Coordinates = coords
		s.stops[id].Declared = true
		return id
	}
	return s.insert(name, coords, true)
}

// getOrCreate resolves name, creating an undeclared placeholder at (0,0) if needed.
func (s *stopStore) getOrCreate(name string) StopID {
	if id, ok := s.byName[name]; ok {
		return id
	}
	return s.insert(name, Coordinates{}, false)
}

func (s *stopStore) insert(name string, coords Coordinates, declared bool) StopID {
	id := StopID(len(s.stops))
	s.stops = append(s.stops, Stop{ID: id, Name: name, Coordinates: coords, Declared: declared})
	s.byName[name] = id
	return id
}

func (s *stopStore) lookup(name string) (StopID, bool) {
	id, ok := s.byName[name]
	return id, ok
}

func (s *stopStore) get(id StopID) *Stop { return &s.stops[id] }

func (s *stopStore) len() int { return len(s.stops) }

func (s *stopStore) names() []string {
	out := make([]string, 0, len(s.stops))
	for _, st := range s.stops {
		out = append(out, st.Name)
	}
	sort.Strings(out)
	return out
}
