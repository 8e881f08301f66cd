// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff computes unified diffs of file contents,
// in the format printed by 'diff -u'.
package diff

import (
	"bytes"
	"fmt"
)

// Diff returns a unified diff of old and new, or nil if they are identical.
// The diff carries a "diff oldName newName" header line followed by
// ---/+++ lines, so that multiple diffs can be concatenated.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	if bytes.Equal(old, new) {
		return nil, nil
	}

	x := lines(old)
	y := lines(new)
	ops := diffOps(x, y)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "diff %s %s\n--- %s\n+++ %s\n", oldName, newName, oldName, newName)
	for _, h := range hunks(ops) {
		fmt.Fprintf(&buf, "@@ -%s +%s @@\n", span(h.oldStart, h.oldN), span(h.newStart, h.newN))
		for _, op := range h.ops {
			switch op.kind {
			case opEq:
				buf.WriteString(" " + x[op.old])
			case opDel:
				buf.WriteString("-" + x[op.old])
			case opIns:
				buf.WriteString("+" + y[op.new])
			}
		}
	}
	return buf.Bytes(), nil
}

// lines splits data into lines, each ending in \n.
// A missing final newline is made explicit so the diff stays line-based.
func lines(data []byte) []string {
	var out []string
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			out = append(out, string(data)+"\n\\ No newline at end of file\n")
			break
		}
		out = append(out, string(data[:i+1]))
		data = data[i+1:]
	}
	return out
}

type opKind int

const (
	opEq opKind = iota
	opDel
	opIns
)

type op struct {
	kind opKind
	old  int // index into old lines, for opEq and opDel
	new  int // index into new lines, for opEq and opIns
}

// diffOps computes an edit script turning x into y,
// using a longest-common-subsequence table.
func diffOps(x, y []string) []op {
	nx, ny := len(x), len(y)
	lcs := make([][]int, nx+1)
	for i := range lcs {
		lcs[i] = make([]int, ny+1)
	}
	for i := nx - 1; i >= 0; i-- {
		for j := ny - 1; j >= 0; j-- {
			if x[i] == y[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var ops []op
	i, j := 0, 0
	for i < nx && j < ny {
		switch {
		case x[i] == y[j]:
			ops = append(ops, op{opEq, i, j})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, op{opDel, i, -1})
			i++
		default:
			ops = append(ops, op{opIns, -1, j})
			j++
		}
	}
	for ; i < nx; i++ {
		ops = append(ops, op{opDel, i, -1})
	}
	for ; j < ny; j++ {
		ops = append(ops, op{opIns, -1, j})
	}
	return ops
}

type hunk struct {
	oldStart, oldN int // 1-based line number and count
	newStart, newN int
	ops            []op
}

const context = 3

// hunks groups the edit script into unified-diff hunks
// with up to three lines of context around each change.
func hunks(ops []op) []hunk {
	var out []hunk
	i := 0
	for i < len(ops) {
		if ops[i].kind == opEq {
			i++
			continue
		}
		// Found a change; back up for leading context.
		start := i
		for start > 0 && ops[start-1].kind == opEq && i-start < context {
			start--
		}
		// Extend through subsequent changes separated by
		// at most 2*context equal lines.
		end := i + 1
		for j := i + 1; j < len(ops); j++ {
			if ops[j].kind != opEq {
				end = j + 1
			} else if j-end >= 2*context {
				break
			}
		}
		stop := end
		for stop < len(ops) && ops[stop].kind == opEq && stop-end < context {
			stop++
		}

		h := hunk{ops: ops[start:stop]}
		h.oldStart = lineAt(h.ops, func(op op) int { return op.old })
		h.newStart = lineAt(h.ops, func(op op) int { return op.new })
		for _, op := range h.ops {
			switch op.kind {
			case opEq:
				h.oldN++
				h.newN++
			case opDel:
				h.oldN++
			case opIns:
				h.newN++
			}
		}
		out = append(out, h)
		i = stop
	}
	return out
}

// lineAt returns the 1-based line number where a hunk starts on one side,
// given an accessor for that side's line index.
func lineAt(ops []op, index func(op) int) int {
	for _, op := range ops {
		if i := index(op); i >= 0 {
			return i + 1
		}
	}
	return 1
}

// span formats a line range in diff -u notation.
func span(start, n int) string {
	if n == 1 {
		return fmt.Sprintf("%d", start)
	}
	if n == 0 {
		// Empty ranges are reported on the preceding line.
		return fmt.Sprintf("%d,0", start-1)
	}
	return fmt.Sprintf("%d,%d", start, n)
}
