package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

// Reader buffers base requests until they are applied.
type Reader struct {
	commands []Command
}

// NewReader creates an empty reader.
func NewReader() *Reader { return &Reader{} }

// ParseLine buffers one request. Malformed lines are dropped and reported.
func (r *Reader) ParseLine(line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return err
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// Commands returns the buffered requests in input order.
func (r *Reader) Commands() []Command { return r.commands }

// ReadAll buffers every non-empty line of src. Malformed lines are logged and skipped.
func (r *Reader) ReadAll(src io.Reader) error {
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := r.ParseLine(line); err != nil {
			log.Printf("input: dropping line: %v", err)
		}
	}
	return sc.Err()
}

// ReadCounted reads a request count followed by that many lines, the layout
// used on standard input.
func (r *Reader) ReadCounted(sc *bufio.Scanner) error {
	n, err := ReadCount(sc)
	if err != nil {
		return fmt.Errorf("base requests: %w", err)
	}
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return fmt.Errorf("base requests: expected %d lines, got %d", n, i)
		}
		if err := r.ParseLine(sc.Text()); err != nil {
			log.Printf("input: dropping line: %v", err)
		}
	}
	return nil
}

// ReadCount reads a line holding a single non-negative integer.
func ReadCount(sc *bufio.Scanner) (int, error) {
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, &ParseError{Input: s, Msg: "bad request count"}
		}
		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, io.ErrUnexpectedEOF
}

// ApplyCommands loads the buffered requests into c: stops, then distances,
// then buses. Requests that fail are skipped; their errors are joined.
func (r *Reader) ApplyCommands(c *catalogue.Catalogue) error {
	var errs []error
	var dists []struct {
		from string
		Distance
	}

	for _, cmd := range r.commands {
		if cmd.Verb != VerbStop {
			continue
		}
		coords, ds, err := ParseStop(cmd.Description)
		if err != nil {
			errs = append(errs, fmt.Errorf("stop %q: %w", cmd.ID, err))
			continue
		}
		c.AddStop(cmd.ID, coords)
		for _, d := range ds {
			dists = append(dists, struct {
				from string
				Distance
			}{cmd.ID, d})
		}
	}

	for _, d := range dists {
		c.SetDistance(d.from, d.To, d.Meters)
	}

	for _, cmd := range r.commands {
		if cmd.Verb != VerbBus {
			continue
		}
		stops, roundtrip, err := ParseRoute(cmd.Description)
		if err != nil {
			errs = append(errs, fmt.Errorf("bus %q: %w", cmd.ID, err))
			continue
		}
		if err := c.AddBus(cmd.ID, stops, roundtrip); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
