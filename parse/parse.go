// SPDX-License-Identifier: MIT

package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/xorsolve/toggle"
)

// ErrSyntax reports a malformed instance line.
var ErrSyntax = errors.New("parse: syntax error")

const (
	glyphOff = '.'
	glyphOn  = '#'
	fence    = "```"
)

var (
	rePattern = regexp.MustCompile(`\[([.#]+)\]`)
	reGroup   = regexp.MustCompile(`\(([^)]*)\)`)
	reAux     = regexp.MustCompile(`\{([^}]*)\}`)
)

// Parse reads every instance from r, one per line.
func Parse(r io.Reader) ([]toggle.Instance, error) {
	var out []toggle.Instance

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		inst, ok, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if ok {
			out = append(out, inst)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}
	return out, nil
}

// ParseLine parses a single line. ok is false for lines that carry no
// instance (blank, fence, or no [...] pattern).
func ParseLine(s string) (inst toggle.Instance, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, fence) {
		return toggle.Instance{}, false, nil
	}
	pm := rePattern.FindStringSubmatch(s)
	if pm == nil {
		return toggle.Instance{}, false, nil
	}

	target := make([]bool, len(pm[1]))
	for i := 0; i < len(pm[1]); i++ {
		target[i] = pm[1][i] == glyphOn
	}

	groups := reGroup.FindAllStringSubmatch(s, -1)
	ops := make([][]int, 0, len(groups))
	for _, g := range groups {
		idx, err := ints(g[1])
		if err != nil {
			return toggle.Instance{}, false, fmt.Errorf("operation %d: %w", len(ops), err)
		}
		ops = append(ops, idx)
	}

	var aux []int64
	if am := reAux.FindStringSubmatch(s); am != nil {
		vals, err := int64s(am[1])
		if err != nil {
			return toggle.Instance{}, false, fmt.Errorf("aux: %w", err)
		}
		aux = vals
	}

	return toggle.Instance{Target: target, Operations: ops, Aux: aux}, true, nil
}

// ints parses a comma-separated list of non-negative integers; an empty
// (or all-space) list yields an empty, non-nil slice.
func ints(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	out := []int{}
	if s == "" {
		return out, nil
	}
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%q is not a bit position: %w", f, ErrSyntax)
		}
		out = append(out, v)
	}
	return out, nil
}

func int64s(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	out := []int64{}
	if s == "" {
		return out, nil
	}
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", f, ErrSyntax)
		}
		out = append(out, v)
	}
	return out, nil
}

// Format renders inst in the line format accepted by ParseLine.
func Format(inst toggle.Instance) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, on := range inst.Target {
		if on {
			sb.WriteByte(glyphOn)
		} else {
			sb.WriteByte(glyphOff)
		}
	}
	sb.WriteByte(']')

	for _, op := range inst.Operations {
		sb.WriteString(" (")
		for k, i := range op {
			if k > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(i))
		}
		sb.WriteByte(')')
	}

	if inst.Aux != nil {
		sb.WriteString(" {")
		for k, v := range inst.Aux {
			if k > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(v, 10))
		}
		sb.WriteByte('}')
	}
	return sb.String()
}
