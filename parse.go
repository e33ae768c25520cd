package linkage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParsePoints reads one "x,y,z" triple per line. Surrounding whitespace is
// trimmed and blank lines are skipped. Errors wrap ErrMalformedPoint and name
// the 1-based line number.
func ParsePoints(r io.Reader) ([]Point, error) {
	var points []Point
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		p, err := parsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedPoint, line, err)
		}
		points = append(points, p)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("linkage: reading points: %w", err)
	}
	return points, nil
}

// ReadPointsFile opens path and parses it with ParsePoints.
func ReadPointsFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("linkage: %w", err)
	}
	defer f.Close()
	return ParsePoints(f)
}

func parsePoint(text string) (Point, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("want 3 fields, got %d in %q", len(fields), text)
	}
	var coords [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("field %d of %q: %w", i+1, text, err)
		}
		coords[i] = v
	}
	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
