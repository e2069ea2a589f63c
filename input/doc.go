// Package input parses line-oriented base requests and applies them to a
// catalogue.
//
// Two commands are understood:
//
//	Stop NAME: LAT, LNG[, Dm to OTHER]...
//	Bus NAME: A > B > C > A      (roundtrip)
//	Bus NAME: A - B - C          (linear, driven out and back)
//
// Linear routes are split on " - " only: a hyphen without surrounding spaces
// is part of a stop name. Roundtrip routes are split on '>', spaced or not.
//
// Commands are buffered and applied in a fixed order: stops, road distances,
// then buses, so a request may refer to a stop declared further down.
package input
