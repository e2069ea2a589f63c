package input

import (
	"math"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

// ParseCommand splits "Verb ID: description" into its parts.
func ParseCommand(line string) (Command, error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return Command{}, &ParseError{Input: line, Msg: "missing ':'"}
	}
	head := strings.TrimSpace(line[:colon])
	verb, id, ok := strings.Cut(head, " ")
	if !ok {
		return Command{}, &ParseError{Input: line, Msg: "missing command name"}
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Command{}, &ParseError{Input: line, Msg: "empty command name"}
	}
	if verb != VerbStop && verb != VerbBus {
		return Command{}, &ParseError{Input: line, Msg: "unknown command " + verb}
	}
	return Command{
		Verb:        verb,
		ID:          id,
		Description: strings.TrimSpace(line[colon+1:]),
	}, nil
}

// ParseStop parses "LAT, LNG[, Dm to OTHER]...".
func ParseStop(desc string) (catalogue.Coordinates, []Distance, error) {
	parts := strings.Split(desc, ",")
	if len(parts) < 2 {
		return catalogue.Coordinates{}, nil, &ParseError{Input: desc, Msg: "expected latitude and longitude"}
	}
	lat, err := parseFinite(parts[0])
	if err != nil {
		return catalogue.Coordinates{}, nil, &ParseError{Input: parts[0], Msg: "bad latitude"}
	}
	lng, err := parseFinite(parts[1])
	if err != nil {
		return catalogue.Coordinates{}, nil, &ParseError{Input: parts[1], Msg: "bad longitude"}
	}

	var dists []Distance
	for _, p := range parts[2:] {
		d, err := ParseDistance(p)
		if err != nil {
			return catalogue.Coordinates{}, nil, err
		}
		dists = append(dists, d)
	}
	return catalogue.Coordinates{Lat: lat, Lng: lng}, dists, nil
}

// ParseDistance parses "3900m to Marushkino".
func ParseDistance(s string) (Distance, error) {
	s = strings.TrimSpace(s)
	num, to, ok := strings.Cut(s, "m to ")
	if !ok {
		return Distance{}, &ParseError{Input: s, Msg: "expected 'Dm to STOP'"}
	}
	m, err := parseFinite(num)
	if err != nil || m < 0 {
		return Distance{}, &ParseError{Input: s, Msg: "bad distance"}
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return Distance{}, &ParseError{Input: s, Msg: "missing target stop"}
	}
	return Distance{To: to, Meters: m}, nil
}

// parseFinite parses a float and rejects NaN and infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Input: s, Msg: "not a finite number"}
	}
	return v, nil
}

// ParseRoute parses a '>'-separated roundtrip or " - "-separated linear route.
// A bare '-' never separates a linear route, so "Nizhne-Kurinskaya" is one stop.
func ParseRoute(desc string) ([]string, bool, error) {
	sep, roundtrip := " - ", false
	if strings.Contains(desc, ">") {
		sep, roundtrip = ">", true
		if strings.Contains(desc, " > ") {
			sep = " > "
		}
	}
	parts := strings.Split(desc, sep)
	stops := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, false, &ParseError{Input: desc, Msg: "empty stop name in route"}
		}
		stops = append(stops, p)
	}
	return stops, roundtrip, nil
}
