package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/travelroute/core"
	"github.com/katalvlaran/travelroute/destination"
)

// ErrMalformedLine indicates a line that is not "<a> <b> <integer>".
var ErrMalformedLine = errors.New("loader: malformed line")

// inputName labels errors from the reader-based parsers.
const inputName = "input"

// Dataset is everything a planning run needs.
type Dataset struct {
	Graph        *core.Graph
	Destinations *destination.Table // sealed
}

// ParseDestinations reads destination lines from r into t.
func ParseDestinations(r io.Reader, t *destination.Table) error {
	return parseDestinations(context.Background(), r, inputName, t)
}

// ParseEdges reads leg lines from r into g.
func ParseEdges(r io.Reader, g *core.Graph) error {
	return parseEdges(context.Background(), r, inputName, g)
}

// LoadDestinations reads the destination file at path and seals the table.
func LoadDestinations(path string) (*destination.Table, error) {
	return loadDestinations(context.Background(), path)
}

// LoadGraph reads the leg file at path.
func LoadGraph(path string) (*core.Graph, error) {
	return loadGraph(context.Background(), path)
}

// Load reads both files concurrently. The first failure cancels the other
// reader and is returned.
func Load(ctx context.Context, destPath, graphPath string) (*Dataset, error) {
	var ds Dataset
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		t, err := loadDestinations(ctx, destPath)
		ds.Destinations = t
		return err
	})
	eg.Go(func() error {
		g, err := loadGraph(ctx, graphPath)
		ds.Graph = g
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &ds, nil
}

func loadDestinations(ctx context.Context, path string) (*destination.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open destinations: %w", err)
	}
	defer f.Close()

	t := destination.NewTable()
	if err = parseDestinations(ctx, f, path, t); err != nil {
		return nil, err
	}
	t.Seal()

	return t, nil
}

func loadGraph(ctx context.Context, path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open graph: %w", err)
	}
	defer f.Close()

	g := core.NewGraph()
	if err = parseEdges(ctx, f, path, g); err != nil {
		return nil, err
	}

	return g, nil
}

func parseDestinations(ctx context.Context, r io.Reader, name string, t *destination.Table) error {
	return scanTriples(ctx, r, name, func(id, rawName string, price int64) error {
		return t.Add(id, rawName, price)
	})
}

func parseEdges(ctx context.Context, r io.Reader, name string, g *core.Graph) error {
	return scanTriples(ctx, r, name, func(from, to string, cost int64) error {
		return g.AddEdge(from, to, cost)
	})
}

// scanTriples calls fn for every "<a> <b> <integer>" line of r.
func scanTriples(ctx context.Context, r io.Reader, name string, fn func(a, b string, n int64) error) error {
	sc := bufio.NewScanner(r)
	var (
		line   int
		fields []string
		n      int64
		err    error
	)
	for sc.Scan() {
		line++
		if err = ctx.Err(); err != nil {
			return err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields = strings.Fields(text)
		if len(fields) != 3 {
			return fmt.Errorf("%w: %s:%d: want 3 fields, got %d", ErrMalformedLine, name, line, len(fields))
		}
		if n, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
			return fmt.Errorf("%w: %s:%d: %q is not an integer", ErrMalformedLine, name, line, fields[2])
		}
		if err = fn(fields[0], fields[1], n); err != nil {
			return fmt.Errorf("loader: %s:%d: %w", name, line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return fmt.Errorf("loader: read %s: %w", name, err)
	}

	return nil
}
