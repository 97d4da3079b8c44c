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

// Package token holds the position and token-kind types shared by the
// lexer and parser. Unlike a general-purpose file set, a Position here is
// only ever relative to the single document being parsed: TOML has no
// notion of imports or multi-file compilation units.
package token

import "fmt"

// Position is an immutable, 1-indexed (line, column) pair identifying a
// point in the source text.
type Position struct {
	Line   int // line number, starting at 1
	Column int // column number (in runes), starting at 1
}

// IsValid reports whether the position carries real line/column
// information.
func (p Position) IsValid() bool { return p.Line > 0 }

// String renders the position as "line L, column C", matching the
// diagnostic format required by the public façade.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Compare returns -1, 0, or 1 depending on whether p sorts before, at, or
// after q, ordering first by line then by column.
func (p Position) Compare(q Position) int {
	switch {
	case p.Line != q.Line:
		if p.Line < q.Line {
			return -1
		}
		return 1
	case p.Column != q.Column:
		if p.Column < q.Column {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// NoPos is the zero Position; it never occurs for a real token.
var NoPos = Position{}
