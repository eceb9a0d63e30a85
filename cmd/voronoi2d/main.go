// Command voronoi2d is a thin test-harness CLI around the builder
// package: it reads sites in the Boost-compatible plaintext format and
// reports the resulting diagram's cell, vertex, and edge counts, or the
// full DCEL as JSON with -json. It exists for exercising the core sweep
// from the command line, the way the teacher repo's own
// cmd/genlinesegments does for its line-segment generator; it is not
// part of the core algorithm.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/mikenye/voronoi2d/builder"
	"github.com/mikenye/voronoi2d/point"
)

func main() {
	cmd := &cli.Command{
		Name:      "voronoi2d",
		Usage:     "Builds a Voronoi diagram from points and segments in the Boost-compatible text format",
		UsageText: "voronoi2d [--input <file>] [--json]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path to a Boost-compatible input file; reads stdin if omitted",
				Aliases:  []string{"i"},
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "json",
				Usage:    "Print the full DCEL as JSON instead of summary counts",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	r := io.Reader(os.Stdin)
	if path := cmd.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("voronoi2d: %w", err)
		}
		defer f.Close()
		r = f
	}

	pts, segs, err := readBoostFormat(r)
	if err != nil {
		return fmt.Errorf("voronoi2d: %w", err)
	}

	b := builder.New[int64]().WithVertices(pts...)
	if len(segs) > 0 {
		b = b.WithSegments(segs...)
	}
	d, err := b.Build()
	if err != nil {
		return fmt.Errorf("voronoi2d: %w", err)
	}

	if cmd.Bool("json") {
		out, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("voronoi2d: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("cells=%d vertices=%d edges=%d\n", len(d.Cells), len(d.Vertices), len(d.Edges))
	return nil
}

// readBoostFormat parses the test-only plaintext format spec names: a
// point count, that many "x y" lines, a segment count, then that many
// "x0 y0 x1 y1" lines. Per the original reader this is based on, the
// fields are whitespace-delimited integers; line breaks are not
// significant, so this scans words rather than lines.
func readBoostFormat(r io.Reader) ([]point.Point[int64], []point.Line[int64], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	nextInt := func() (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.ParseInt(sc.Text(), 10, 64)
	}

	nPoints, err := nextInt()
	if err != nil {
		return nil, nil, fmt.Errorf("reading point count: %w", err)
	}

	points := make([]point.Point[int64], 0, nPoints)
	for i := int64(0); i < nPoints; i++ {
		x, err := nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("reading point %d: %w", i, err)
		}
		y, err := nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("reading point %d: %w", i, err)
		}
		points = append(points, point.New(x, y))
	}

	nSegs, err := nextInt()
	if err != nil {
		return nil, nil, fmt.Errorf("reading segment count: %w", err)
	}

	segs := make([]point.Line[int64], 0, nSegs)
	for i := int64(0); i < nSegs; i++ {
		x0, err := nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("reading segment %d: %w", i, err)
		}
		y0, err := nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("reading segment %d: %w", i, err)
		}
		x1, err := nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("reading segment %d: %w", i, err)
		}
		y1, err := nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("reading segment %d: %w", i, err)
		}
		segs = append(segs, point.NewLine(point.New(x0, y0), point.New(x1, y1)))
	}

	return points, segs, nil
}
