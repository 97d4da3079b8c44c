// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package perrors defines the diagnostic error type collected during
// lexing and parsing, and the ordered list that accumulates them.
package perrors

import (
	"fmt"

	"github.com/tomlforge/toml/internal/token"
)

// Error is a single diagnostic: a message anchored at a source position.
type Error struct {
	Pos token.Position
	Msg string
}

// Error implements the error interface. It matches the public façade's
// required "line L, column C: <message>" rendering.
func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos.String(), e.Msg)
}

// New creates an Error at pos with the given formatted message.
func New(pos token.Position, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// List is an ordered collection of diagnostics, in the order they were
// first observed. Parsing never stops at the first error; one statement
// may contribute several entries (from the lexer and the parser alike),
// and after a malformed statement the parser recovers at the next newline.
type List []*Error

// Add appends a new diagnostic to the list.
func (l *List) Add(pos token.Position, format string, args ...interface{}) {
	*l = append(*l, New(pos, format, args...))
}

// AddError appends an already-built diagnostic.
func (l *List) AddError(e *Error) {
	*l = append(*l, e)
}

// Err returns the list as an error, or nil if it is empty. The returned
// error's message is the first diagnostic, optionally noting how many
// more follow.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Error implements the error interface for the whole list.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
	}
}
