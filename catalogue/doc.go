/*
Package catalogue provides the in-memory transit catalogue: stops, buses,
directed road distances and the queries built on top of them.

The catalogue is data-source agnostic. It does not parse text or talk to the
network; callers feed it structured requests and read structured answers.

# Basic Usage

	cat := catalogue.New()
	cat.AddStop("Tolstopaltsevo", catalogue.Coordinates{Lat: 55.611087, Lng: 37.20829})
	cat.AddStop("Marushkino", catalogue.Coordinates{Lat: 55.595884, Lng: 37.209755})
	cat.SetDistance("Tolstopaltsevo", "Marushkino", 3900)

	if err := cat.AddBus("256", []string{"Tolstopaltsevo", "Marushkino", "Tolstopaltsevo"}, true); err != nil {
	    log.Printf("bus rejected: %v", err)
	}

	info, ok := cat.GetBusInfo("256")
	buses, ok := cat.GetBusesForStop("Marushkino")

# Storage

Stops and buses live in append-only arenas. StopID and BusID are indices into
those arenas and stay valid for the lifetime of the catalogue; every cross
reference (a bus's stop sequence, a road distance key, the stop-to-buses index)
is expressed with IDs.

A bus may name stops that were never declared. Such stops are created as
placeholders at (0,0) with Declared == false; a later AddStop fills in the
coordinates without changing the stop's identity.

# Roundtrip Routes

A roundtrip bus lists its closing stop explicitly, so the first and last stop
of its sequence are the same. AddBus rejects roundtrip routes that do not close.
A linear bus is driven out and back: the return leg is implied.

# Distances

Road distances are directed. GetDistance falls back to the reverse direction
when only one was declared, and returns 0 when neither was. Route length uses
road distances where recorded and great-circle distance otherwise.

# Concurrency

A Catalogue is not safe for concurrent mutation. Load it from one goroutine,
then share it read-only.
*/
package catalogue
