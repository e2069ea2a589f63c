package stat

import "github.com/theoremus-urban-solutions/transport-catalogue/catalogue"

// Catalogue is the read-only query surface a request needs.
type Catalogue interface {
	GetBusInfo(name string) (catalogue.BusInfo, bool)
	GetBusesForStop(name string) ([]string, bool)
}

// Answer runs a request against the catalogue.
func Answer(c Catalogue, req Request) Response {
	res := Response{Kind: req.Kind, Name: req.Name}
	switch req.Kind {
	case KindBus:
		info, ok := c.GetBusInfo(req.Name)
		if !ok {
			return res
		}
		res.Found = true
		res.Bus = &BusResponse{
			StopCount:       info.StopsCount,
			UniqueStopCount: info.UniqueStopsCount,
			RouteLength:     info.RouteLength,
			Curvature:       info.Curvature,
		}
	case KindStop:
		buses, ok := c.GetBusesForStop(req.Name)
		if !ok {
			return res
		}
		res.Found = true
		res.Buses = buses
	}
	return res
}
