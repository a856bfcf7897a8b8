package sand

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sandfall/internal/core"
)

const (
	pathSeparator = "->"
	// maxLineBytes bounds a single path line.
	maxLineBytes = 1 << 20
)

var (
	errMissingComma  = errors.New("waypoint is missing ','")
	errDiagonal      = errors.New("segment is not axis-aligned")
	errEmptyWaypoint = errors.New("empty waypoint")
)

// Path is a polyline of rock waypoints. Consecutive waypoints share a row or
// a column.
type Path []core.Pt

// Scan is the parsed form of a rock scan: one path per input line.
type Scan struct {
	Paths []Path
}

// Points returns every waypoint of the scan in input order.
func (s Scan) Points() []core.Pt {
	var pts []core.Pt
	for _, p := range s.Paths {
		pts = append(pts, p...)
	}
	return pts
}

// ParseError reports a malformed line of a rock scan.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseScan reads rock paths of the form "x,y -> x,y -> ...". Blank lines are
// skipped. The first malformed line aborts parsing.
func ParseScan(r io.Reader) (Scan, error) {
	var scan Scan
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		path, err := parsePath(text)
		if err != nil {
			return Scan{}, &ParseError{Line: line, Text: text, Err: err}
		}
		scan.Paths = append(scan.Paths, path)
	}
	if err := s.Err(); err != nil {
		return Scan{}, fmt.Errorf("read scan: %w", err)
	}
	return scan, nil
}

func parsePath(text string) (Path, error) {
	fields := strings.Split(text, pathSeparator)
	path := make(Path, 0, len(fields))
	for _, f := range fields {
		pt, err := parseWaypoint(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		if n := len(path); n > 0 {
			prev := path[n-1]
			if prev.X != pt.X && prev.Y != pt.Y {
				return nil, fmt.Errorf("%v -> %v: %w", prev, pt, errDiagonal)
			}
		}
		path = append(path, pt)
	}
	return path, nil
}

func parseWaypoint(s string) (core.Pt, error) {
	if s == "" {
		return core.Pt{}, errEmptyWaypoint
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Pt{}, fmt.Errorf("%q: %w", s, errMissingComma)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Pt{}, fmt.Errorf("x coordinate: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Pt{}, fmt.Errorf("y coordinate: %w", err)
	}
	return core.Pt{X: x, Y: y}, nil
}
