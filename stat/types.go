package stat

import (
	"fmt"
	"strings"
)

// Request kinds.
const (
	KindBus  = "Bus"
	KindStop = "Stop"
)

// Request is one parsed statistics request.
type Request struct {
	Kind string
	Name string
}

// Response is the answer to one request. Exactly one of Bus or Buses is
// meaningful, depending on Kind.
type Response struct {
	Kind  string       `json:"request_type"`
	Name  string       `json:"name"`
	Found bool         `json:"found"`
	Bus   *BusResponse `json:"bus,omitempty"`
	Buses []string     `json:"buses,omitempty"`
}

// BusResponse carries route statistics.
type BusResponse struct {
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
	RouteLength     float64 `json:"route_length"`
	Curvature       float64 `json:"curvature"`
}

// RequestError is returned for lines that are not a known request.
type RequestError struct{ Msg string }

func (e *RequestError) Error() string { return e.Msg }

// ParseRequest parses "Bus NAME" or "Stop NAME". The name may contain spaces.
func ParseRequest(line string) (Request, error) {
	line = strings.TrimSpace(line)
	kind, name, ok := strings.Cut(line, " ")
	if !ok {
		return Request{}, &RequestError{Msg: fmt.Sprintf("malformed request %q", line)}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Request{}, &RequestError{Msg: fmt.Sprintf("malformed request %q", line)}
	}
	if kind != KindBus && kind != KindStop {
		return Request{}, &RequestError{Msg: "unknown request type " + kind}
	}
	return Request{Kind: kind, Name: name}, nil
}
