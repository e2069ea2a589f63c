package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/input"
	"github.com/theoremus-urban-solutions/transport-catalogue/server"
	"github.com/theoremus-urban-solutions/transport-catalogue/stat"
)

// runOneshot reads a base-request count and lines, then a stat-request count
// and lines, and writes one answer per stat request.
func runOneshot(in io.Reader, out io.Writer, format string) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	reader := input.NewReader()
	if err := reader.ReadCounted(sc); err != nil {
		return err
	}
	cat := catalogue.New()
	logRejects(reader.ApplyCommands(cat))

	n, err := input.ReadCount(sc)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat requests: %w", err)
	}
	p := stat.NewPrinter(cat, stat.NewFormatter(format), out)
	if err := p.PrintCounted(sc, n); err != nil {
		_ = p.Flush()
		return err
	}
	return p.Flush()
}

// runServe loads the base-requests file and serves queries until signalled.
func runServe(cfg config.AppConfig) error {
	if cfg.Input.BaseRequestsPath == "" {
		return errors.New("no base requests file configured")
	}
	cat, err := loadFile(cfg.Input.BaseRequestsPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d stops, %d buses, %d road distances from %s",
		cat.StopCount(), cat.BusCount(), cat.DistanceCount(), cfg.Input.BaseRequestsPath)

	srv := server.New(cat, cfg.Server)
	srv.Start()
	srv.HandleGracefulShutdown()
	return nil
}

func loadFile(path string) (*catalogue.Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	reader := input.NewReader()
	if err := reader.ReadAll(f); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cat := catalogue.New()
	logRejects(reader.ApplyCommands(cat))
	return cat, nil
}

func logRejects(err error) {
	if err == nil {
		return
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			log.Printf("rejected: %v", e)
		}
		return
	}
	log.Printf("rejected: %v", err)
}
