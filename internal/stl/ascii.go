package stl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/krepa098/stl2thumbnail/internal/geometry"
)

// asciiScanner streams facets from an ASCII STL source. Keywords are
// matched case-insensitively and lines may carry arbitrary leading and
// trailing whitespace.
type asciiScanner struct {
	scanner *bufio.Scanner
	line    int
	started bool // "solid" line consumed
	done    bool
	err     error
}

func newAsciiScanner(r io.Reader) *asciiScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &asciiScanner{scanner: sc}
}

// nextLine returns the fields of the next non-empty line.
func (s *asciiScanner) nextLine() ([]string, error) {
	for s.scanner.Scan() {
		s.line++
		fields := strings.Fields(s.scanner.Text())
		if len(fields) == 0 {
			continue
		}
		return fields, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (s *asciiScanner) next() (geometry.Triangle, error) {
	if s.err != nil {
		return geometry.Triangle{}, s.err
	}
	if s.done {
		return geometry.Triangle{}, io.EOF
	}

	t, err := s.scan()
	if err != nil {
		if err == io.EOF {
			s.done = true
		} else {
			s.err = err
		}
		return geometry.Triangle{}, err
	}
	return t, nil
}

func (s *asciiScanner) scan() (geometry.Triangle, error) {
	if !s.started {
		fields, err := s.nextLine()
		if err != nil {
			if err == io.EOF {
				return geometry.Triangle{}, ErrInvalidHeader
			}
			return geometry.Triangle{}, err
		}
		if !strings.EqualFold(fields[0], "solid") {
			return geometry.Triangle{}, ErrInvalidHeader
		}
		s.started = true
	}

	fields, err := s.nextLine()
	if err != nil {
		return geometry.Triangle{}, err
	}

	// "endsolid" terminates the solid; anything after it is ignored
	if strings.EqualFold(fields[0], "endsolid") {
		return geometry.Triangle{}, io.EOF
	}

	var t geometry.Triangle
	t.Normal, err = s.expectVector(fields, "facet", "normal")
	if err != nil {
		return geometry.Triangle{}, err
	}

	if err := s.expectKeywords("outer", "loop"); err != nil {
		return geometry.Triangle{}, err
	}

	for i := 0; i < 3; i++ {
		fields, err := s.nextLine()
		if err != nil {
			return geometry.Triangle{}, s.unexpectedEnd(err)
		}
		t.Vertices[i], err = s.expectVector(fields, "vertex")
		if err != nil {
			return geometry.Triangle{}, err
		}
	}

	if err := s.expectKeywords("endloop"); err != nil {
		return geometry.Triangle{}, err
	}
	if err := s.expectKeywords("endfacet"); err != nil {
		return geometry.Triangle{}, err
	}

	return t, nil
}

// expectVector validates the leading keywords of fields and parses the
// three trailing coordinates.
func (s *asciiScanner) expectVector(fields []string, keywords ...string) (geometry.Vec3, error) {
	if len(fields) != len(keywords)+3 {
		return geometry.Vec3{}, s.syntaxError("expected '%s <x> <y> <z>'", strings.Join(keywords, " "))
	}
	for i, kw := range keywords {
		if !strings.EqualFold(fields[i], kw) {
			return geometry.Vec3{}, s.syntaxError("expected keyword %q, got %q", kw, fields[i])
		}
	}

	var coords [3]float32
	for i, f := range fields[len(keywords):] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return geometry.Vec3{}, s.syntaxError("bad coordinate %q", f)
		}
		coords[i] = float32(v)
	}
	return geometry.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func (s *asciiScanner) expectKeywords(keywords ...string) error {
	fields, err := s.nextLine()
	if err != nil {
		return s.unexpectedEnd(err)
	}
	for i, kw := range keywords {
		if i >= len(fields) || !strings.EqualFold(fields[i], kw) {
			return s.syntaxError("expected %q", strings.Join(keywords, " "))
		}
	}
	return nil
}

func (s *asciiScanner) unexpectedEnd(err error) error {
	if err == io.EOF {
		return s.syntaxError("unexpected end of facet")
	}
	return err
}

func (s *asciiScanner) syntaxError(format string, args ...any) error {
	return &SyntaxError{Line: s.line, Msg: fmt.Sprintf(format, args...)}
}
