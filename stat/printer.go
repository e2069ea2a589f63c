package stat

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formatter renders one response as a single line.
type Formatter interface {
	Format(res Response) ([]byte, error)
}

// NewFormatter returns the formatter for a format name; unknown names fall back to text.
func NewFormatter(format string) Formatter {
	if strings.EqualFold(format, FormatJSON) {
		return jsonFormatter{}
	}
	return textFormatter{}
}

// Printer answers requests and writes one formatted line per request.
type Printer struct {
	cat    Catalogue
	format Formatter
	out    *bufio.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(c Catalogue, f Formatter, w io.Writer) *Printer {
	return &Printer{cat: c, format: f, out: bufio.NewWriter(w)}
}

// ParseAndPrint handles one raw request line. Malformed requests are logged
// and produce no output.
func (p *Printer) ParseAndPrint(line string) error {
	req, err := ParseRequest(line)
	if err != nil {
		log.Printf("stat: dropping request: %v", err)
		return nil
	}
	return p.Print(req)
}

// Print answers one request. A response that cannot be formatted is
// reported and nothing is written for it.
func (p *Printer) Print(req Request) error {
	b, err := p.format.Format(Answer(p.cat, req))
	if err != nil {
		return err
	}
	if _, err := p.out.Write(b); err != nil {
		return err
	}
	return p.out.WriteByte('\n')
}

// PrintCounted reads n request lines from sc and answers each.
func (p *Printer) PrintCounted(sc *bufio.Scanner, n int) error {
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return fmt.Errorf("stat requests: expected %d lines, got %d", n, i)
		}
		if err := p.ParseAndPrint(sc.Text()); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered output.
func (p *Printer) Flush() error { return p.out.Flush() }
