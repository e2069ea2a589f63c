package input

import "fmt"

const (
	// VerbStop declares a stop and its road distances.
	VerbStop = "Stop"
	// VerbBus declares a bus route.
	VerbBus = "Bus"
)

// Command is one parsed base request.
type Command struct {
	Verb        string
	ID          string
	Description string
}

// Distance is a road distance declared on a Stop line.
type Distance struct {
	To     string
	Meters float64
}

// ParseError describes a line or fragment that could not be parsed.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: %q", e.Msg, e.Input) }
