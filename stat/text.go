package stat

import (
	"strconv"
	"strings"
)

// routeLengthDigits is the number of significant digits printed for route length.
const routeLengthDigits = 6

type textFormatter struct{}

// Format renders a response as a single line without a trailing newline.
func (textFormatter) Format(res Response) ([]byte, error) {
	var b strings.Builder
	b.WriteString(res.Kind)
	b.WriteByte(' ')
	b.WriteString(res.Name)
	b.WriteString(": ")
	if !res.Found {
		b.WriteString("not found")
		return []byte(b.String()), nil
	}
	switch res.Kind {
	case KindBus:
		b.WriteString(strconv.Itoa(res.Bus.StopCount))
		b.WriteString(" stops on route, ")
		b.WriteString(strconv.Itoa(res.Bus.UniqueStopCount))
		b.WriteString(" unique stops, ")
		b.WriteString(FormatLength(res.Bus.RouteLength))
		b.WriteString(" route length")
	case KindStop:
		if len(res.Buses) == 0 {
			b.WriteString("no buses")
			break
		}
		b.WriteString("buses")
		for _, bus := range res.Buses {
			b.WriteByte(' ')
			b.WriteString(bus)
		}
	}
	return []byte(b.String()), nil
}

// FormatLength renders meters with six significant digits.
func FormatLength(m float64) string {
	return strconv.FormatFloat(m, 'g', routeLengthDigits, 64)
}
