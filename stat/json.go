package stat

import (
	"encoding/json"
	"fmt"
)

type jsonFormatter struct{}

// stopJSON keeps the bus list present, even when empty, for a known stop.
type stopJSON struct {
	Kind  string   `json:"request_type"`
	Name  string   `json:"name"`
	Found bool     `json:"found"`
	Buses []string `json:"buses"`
}

// Format serializes a response to a single JSON object.
// Non-finite numbers cannot be encoded and yield an error.
func (jsonFormatter) Format(res Response) ([]byte, error) {
	var v any = res
	if res.Kind == KindStop && res.Found {
		buses := res.Buses
		if buses == nil {
			buses = []string{}
		}
		v = stopJSON{Kind: res.Kind, Name: res.Name, Found: true, Buses: buses}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s %q: %w", res.Kind, res.Name, err)
	}
	return b, nil
}
