// Package input parses the plain-text inputs of the advent command.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Khighness/advent/ranges"
	"github.com/Khighness/advent/rat"
)

// @Author KHighness
// @Update 2026-10-19

// ErrMalformed is wrapped by every parse error.
var ErrMalformed = errors.New("input: malformed")

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, fmt.Sprintf(format, args...))
}

// lines calls fn for every non-blank line of r, trimmed, with its 1-based
// line number.
func lines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Ints reads whitespace separated integers.
func Ints(r io.Reader) ([]int64, error) {
	var out []int64
	err := lines(r, func(n int, line string) error {
		for _, f := range strings.Fields(line) {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return malformed(n, "%q is not an integer", f)
			}
			out = append(out, v)
		}
		return nil
	})
	return out, err
}

// Ranges reads one closed range per line, written "a-b" or "a..b".
// Negative bounds need the ".." form.
func Ranges(r io.Reader) ([]ranges.Range[int64], error) {
	var out []ranges.Range[int64]
	err := lines(r, func(n int, line string) error {
		lo, hi, ok := strings.Cut(line, "..")
		if !ok {
			lo, hi, ok = strings.Cut(line, "-")
		}
		if !ok {
			return malformed(n, "%q is not a range", line)
		}
		a, errA := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
		b, errB := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
		if errA != nil || errB != nil {
			return malformed(n, "%q is not a range", line)
		}
		if a > b {
			return malformed(n, "range %q ends before it starts", line)
		}
		out = append(out, ranges.New(a, b))
		return nil
	})
	return out, err
}

// Edge joins two elements.
type Edge struct {
	From, To int
}

// Edges reads an element count on the first line, then one "a b" pair per
// line with 0-based indices below the count.
func Edges(r io.Reader) (int, []Edge, error) {
	size := -1
	var edges []Edge
	err := lines(r, func(n int, line string) error {
		fields := strings.Fields(line)
		if size < 0 {
			if len(fields) != 1 {
				return malformed(n, "expected the element count")
			}
			v, err := strconv.Atoi(fields[0])
			if err != nil || v < 0 {
				return malformed(n, "%q is not a count", fields[0])
			}
			size = v
			return nil
		}
		if len(fields) != 2 {
			return malformed(n, "expected two indices, got %d fields", len(fields))
		}
		var e [2]int
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v >= size {
				return malformed(n, "index %q outside [0, %d)", f, size)
			}
			e[i] = v
		}
		edges = append(edges, Edge{From: e[0], To: e[1]})
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	if size < 0 {
		return 0, nil, fmt.Errorf("%w: missing element count", ErrMalformed)
	}
	return size, edges, nil
}

// System reads one equation per line: the coefficients, "=", then the
// right-hand side. Values are integers or fractions such as "-3/4".
func System(r io.Reader) ([][]rat.Rat, []rat.Rat, error) {
	var (
		lefts  [][]rat.Rat
		rights []rat.Rat
	)
	err := lines(r, func(n int, line string) error {
		lhs, rhs, ok := strings.Cut(line, "=")
		if !ok {
			return malformed(n, "missing '='")
		}
		var row []rat.Rat
		for _, f := range strings.Fields(lhs) {
			v, err := rat.Parse(f)
			if err != nil {
				return malformed(n, "coefficient %q: %v", f, err)
			}
			row = append(row, v)
		}
		if len(row) == 0 {
			return malformed(n, "no coefficients")
		}
		v, err := rat.Parse(rhs)
		if err != nil {
			return malformed(n, "right-hand side %q: %v", strings.TrimSpace(rhs), err)
		}
		lefts = append(lefts, row)
		rights = append(rights, v)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return lefts, rights, nil
}
