package sand

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sandfall/internal/core"
)

func TestParseScanSample(t *testing.T) {
	scan, err := ParseScan(strings.NewReader(sampleScan))
	require.NoError(t, err)
	require.Equal(t, []Path{
		{{X: 498, Y: 4}, {X: 498, Y: 6}, {X: 496, Y: 6}},
		{{X: 503, Y: 4}, {X: 502, Y: 4}, {X: 502, Y: 9}, {X: 494, Y: 9}},
	}, scan.Paths)
	require.Len(t, scan.Points(), 7)
}

func TestParseScanSkipsBlankLines(t *testing.T) {
	scan, err := ParseScan(strings.NewReader("\n  1,2 ->1,5  \n\n\r\n"))
	require.NoError(t, err)
	require.Equal(t, []Path{{{X: 1, Y: 2}, {X: 1, Y: 5}}}, scan.Paths)
}

func TestParseScanErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		is    error
	}{
		{"missing comma", "498,4 -> 498", 1, errMissingComma},
		{"diagonal", "1,1 -> 1,3\n1,3 -> 4,6", 2, errDiagonal},
		{"empty waypoint", "1,1 -> ", 1, errEmptyWaypoint},
		{"non-numeric", "a,4 -> 5,4", 1, strconv.ErrSyntax},
		{"missing y", "3, -> 3,4", 1, strconv.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan, err := ParseScan(strings.NewReader(tt.input))
			require.Error(t, err)
			require.Empty(t, scan.Paths)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "error %v is not a *ParseError", err)
			require.Equal(t, tt.line, perr.Line)
			require.ErrorIs(t, err, tt.is)
		})
	}
}

func TestParseScanLongLine(t *testing.T) {
	line := strings.Repeat("1,1 -> 1,2 -> ", 6000) + "1,1\n"
	require.Greater(t, len(line), 64*1024)
	scan, err := ParseScan(strings.NewReader(line))
	require.NoError(t, err)
	require.Len(t, scan.Paths, 1)
	require.Len(t, scan.Paths[0], 12001)
	require.Equal(t, core.Pt{X: 1, Y: 1}, scan.Paths[0][12000])
}
