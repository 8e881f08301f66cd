// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"fmt"
	"go/token"
	"sort"
	"strings"
)

// An Error is an error at a particular source position.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

// ErrorList is a set of Errors. It is also an error itself.
// The zero value is an empty list, ready to use.
type ErrorList struct {
	errs []*Error
	set  map[string]bool
}

// Addf adds an error at pos, suppressing duplicates.
func (l *ErrorList) Addf(pos token.Position, format string, args ...interface{}) {
	e := &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
	key := e.Error()
	if l.set[key] {
		return
	}
	if l.set == nil {
		l.set = make(map[string]bool)
	}
	l.set[key] = true
	l.errs = append(l.errs, e)
}

// Err returns the list if it contains any errors, or nil.
func (l *ErrorList) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}

func (l *ErrorList) Error() string {
	errs := make([]*Error, len(l.errs))
	copy(errs, l.errs)
	sort.Slice(errs, func(i, j int) bool {
		ei, ej := errs[i], errs[j]
		if ei.Pos.Filename != ej.Pos.Filename {
			return ei.Pos.Filename < ej.Pos.Filename
		}
		if ei.Pos.Line != ej.Pos.Line {
			return ei.Pos.Line < ej.Pos.Line
		}
		return ei.Pos.Column < ej.Pos.Column
	})
	var b strings.Builder
	for i, e := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
