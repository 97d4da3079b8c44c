// Package parser implements the TOML recursive-descent parser from
// spec.md §4.2: it drives the lexer (internal/lexer) token by token,
// following the grammar's productions directly — one method per
// production, mirroring the layout of cue/parser's parser.go — and
// feeds the tree builder (value.SetValue/DefineTable/DefineArrayTable)
// as it goes. It never builds an intermediate AST: TOML's grammar is
// shallow enough that building the document tree as a side effect of
// parsing, exactly as cue/parser's caller builds its AST as a side
// effect of calling parseExpr/parseStmt, is the natural rendering.
package parser

import (
	"github.com/tomlforge/toml/internal/lexer"
	"github.com/tomlforge/toml/internal/perrors"
	"github.com/tomlforge/toml/internal/token"
	"github.com/tomlforge/toml/value"
	"github.com/tomlforge/toml/version"
)

// Parse parses src as a complete TOML document under the given version
// and returns the resulting root table together with every diagnostic
// collected. Parsing never stops at the first error: a malformed
// statement is discarded and the parser resumes at the next line.
func Parse(src string, ver version.Version) (*value.Table, perrors.List) {
	var errs perrors.List
	lx := lexer.New(src, ver, &errs)
	p := &parser{lex: lx, ver: ver, errs: &errs, root: value.NewTable(value.StateExplicitHeader)}
	p.scope = p.root
	p.run()
	return p.root, errs
}

type parser struct {
	lex   *lexer.Lexer
	ver   version.Version
	errs  *perrors.List
	root  *value.Table
	scope *value.Table // table that a bare (non-dotted-path-only) assignment or dotted walk starts from
}

func (p *parser) errorf(pos token.Position, format string, args ...interface{}) {
	p.errs.Add(pos, format, args...)
}

// errorfTok reports a "got an unexpected token" diagnostic, unless tok is
// ILLEGAL: the lexer already reported that character the moment it
// scanned it, so describing it again here would duplicate the
// diagnostic for the same position.
func (p *parser) errorfTok(tok lexer.Token, format string, args ...interface{}) {
	if tok.Kind == token.ILLEGAL {
		return
	}
	p.errorf(tok.Pos, format, args...)
}

// run implements the top-level `document := (line newline?)*` loop.
func (p *parser) run() {
	for {
		tok := p.lex.ScanKey()
		switch {
		case tok.Kind == token.EOF:
			return
		case tok.Kind == token.NEWLINE:
			continue
		case tok.Kind == token.LDBRACK:
			p.parseArrayHeader(tok)
		case tok.Kind == token.LBRACK:
			p.parseTableHeader(tok)
		case isKeySegment(tok.Kind):
			p.parseAssignment(tok)
		default:
			p.errorfTok(tok, "Unexpected %s, expected a key, a table header, or end-of-input", describe(tok))
			p.recoverLine()
		}
	}
}

func isKeySegment(k token.Token) bool {
	return k == token.BARE || k == token.BASIC || k == token.LITERAL
}

// describe renders a token the way spec.md §4.2's "Unexpected <what>"
// diagnostics require.
func describe(tok lexer.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end-of-input"
	case token.NEWLINE:
		return "a newline"
	case token.ILLEGAL:
		return tok.Lit
	default:
		if tok.Kind.IsOperator() {
			return "'" + tok.Kind.String() + "'"
		}
		return "'" + tok.Lit + "'"
	}
}

// recoverLine implements spec.md §4.2's statement-level recovery:
// advance to the next newline (or end-of-input) and resume there.
func (p *parser) recoverLine() {
	for {
		tok := p.lex.ScanKey()
		if tok.Kind == token.NEWLINE || tok.Kind == token.EOF {
			return
		}
	}
}

// expectLineEnd consumes and validates the token that must follow a
// completed statement: a newline or end-of-input.
func (p *parser) expectLineEnd() bool {
	tok := p.lex.ScanKey()
	if tok.Kind == token.NEWLINE || tok.Kind == token.EOF {
		return true
	}
	p.errorfTok(tok, "Unexpected %s, expected a newline or end-of-input", describe(tok))
	p.recoverLine()
	return false
}

// parseKeyTail implements `key := key-segment ('.' key-segment)*`,
// given the first segment already scanned by the caller. It returns the
// full path and the token that ended the key (whatever follows the last
// segment) — the caller decides whether that token is valid for its own
// production (`=`, `]`, `]]`, `}`), so a single key parser serves
// assignments, both header forms, and inline-table entries alike.
func (p *parser) parseKeyTail(first lexer.Token) (path []string, term lexer.Token) {
	path = []string{first.Lit}
	for {
		next := p.lex.ScanKey()
		if next.Kind != token.PERIOD {
			return path, next
		}
		dotPos := next.Pos
		seg := p.lex.ScanKey()
		if !p.ver.SupportsDottedKeys() {
			p.errorf(dotPos, "Dotted keys are not supported")
		}
		if !isKeySegment(seg.Kind) {
			p.errorfTok(seg, "Unexpected %s, expected a key segment", describe(seg))
			return path, seg
		}
		path = append(path, seg.Lit)
	}
}

func (p *parser) parseTableHeader(lbrack lexer.Token) {
	first := p.lex.ScanKey()
	if first.Kind == token.RBRACK {
		p.errorf(lbrack.Pos, "Empty table key")
		p.recoverLine()
		return
	}
	if !isKeySegment(first.Kind) {
		p.errorfTok(first, "Unexpected %s, expected a key segment", describe(first))
		p.recoverLine()
		return
	}
	path, term := p.parseKeyTail(first)
	if term.Kind != token.RBRACK {
		p.errorfTok(term, "Unexpected %s, expected ]", describe(term))
		p.recoverLine()
		return
	}
	if !p.expectLineEnd() {
		return
	}
	scope, err := value.DefineTable(p.root, path, lbrack.Pos)
	if err != nil {
		p.errorf(lbrack.Pos, "%s", err.Error())
		return
	}
	p.scope = scope
}

func (p *parser) parseArrayHeader(ldbrack lexer.Token) {
	first := p.lex.ScanKey()
	if first.Kind == token.RDBRACK {
		p.errorf(ldbrack.Pos, "Empty table key")
		p.recoverLine()
		return
	}
	if !isKeySegment(first.Kind) {
		p.errorfTok(first, "Unexpected %s, expected a key segment", describe(first))
		p.recoverLine()
		return
	}
	path, term := p.parseKeyTail(first)
	if term.Kind != token.RDBRACK {
		p.errorfTok(term, "Unexpected %s, expected ]]", describe(term))
		p.recoverLine()
		return
	}
	if !p.expectLineEnd() {
		return
	}
	scope, err := value.DefineArrayTable(p.root, path, ldbrack.Pos)
	if err != nil {
		p.errorf(ldbrack.Pos, "%s", err.Error())
		return
	}
	p.scope = scope
}

func (p *parser) parseAssignment(first lexer.Token) {
	path, term := p.parseKeyTail(first)
	if term.Kind != token.ASSIGN {
		p.errorfTok(term, "Unexpected %s, expected =", describe(term))
		p.recoverLine()
		return
	}
	tok := p.lex.ScanValue()
	val, ok := p.valueFromToken(tok)
	if !ok {
		if tok.Kind != token.NEWLINE && tok.Kind != token.EOF {
			p.recoverLine()
		}
		return
	}
	if !p.expectLineEnd() {
		return
	}
	if err := value.SetValue(p.scope, path, val, first.Pos); err != nil {
		p.errorf(first.Pos, "%s", err.Error())
	}
}

// parseValue implements `value := string | int | float | bool |
// datetime | array | inline-table`.
func (p *parser) parseValue() (value.Value, bool) {
	return p.valueFromToken(p.lex.ScanValue())
}

func (p *parser) valueFromToken(tok lexer.Token) (value.Value, bool) {
	switch tok.Kind {
	case token.BASIC, token.LITERAL:
		return value.String(tok.Value.(string)), true
	case token.INT:
		return value.Integer(tok.Value.(int64)), true
	case token.FLOAT:
		return value.Float(tok.Value.(float64)), true
	case token.BOOL:
		return value.Boolean(tok.Value.(bool)), true
	case token.DATETIME:
		switch v := tok.Value.(type) {
		case value.OffsetDateTime:
			return v, true
		case value.LocalDateTime:
			return v, true
		case value.LocalDate:
			return v, true
		case value.LocalTime:
			return v, true
		}
		return value.LocalDate{}, false
	case token.LBRACK:
		return p.parseArray()
	case token.LBRACE:
		return p.parseInlineTable()
	default:
		p.errorfTok(tok, "Unexpected %s, expected a value", describe(tok))
		return nil, false
	}
}

// parseArray implements `array := '[' (value (',' value)* ','?)? ']'`,
// the opening `[` already consumed. Consecutive elements must be
// separated by a comma; newlines may appear anywhere between tokens, and
// a trailing comma before `]` is accepted.
func (p *parser) parseArray() (value.Value, bool) {
	arr := value.NewLiteralArray()
	haveFirst := false
	var firstKind value.Kind

	tok := p.nextArrayToken()
	for tok.Kind != token.RBRACK {
		if tok.Kind == token.EOF {
			p.errorf(tok.Pos, "Unexpected end-of-input, expected a value or ]")
			return arr, false
		}
		val, ok := p.valueFromToken(tok)
		if !ok {
			p.recoverArray()
			return arr, false
		}
		if !haveFirst {
			firstKind, haveFirst = val.Kind(), true
		} else if !p.ver.SupportsHeterogeneousArrays() && val.Kind() != firstKind {
			p.errorf(tok.Pos, "Cannot add a %s to an array containing %ss", val.Kind(), firstKind)
		}
		arr.Append(val)

		sep := p.nextArrayToken()
		if sep.Kind == token.RBRACK {
			break
		}
		if sep.Kind != token.COMMA {
			p.errorfTok(sep, "Unexpected %s, expected , or ]", describe(sep))
			return arr, false
		}
		tok = p.nextArrayToken()
	}
	return arr, true
}

// nextArrayToken reads the next value-position token, transparently
// skipping newlines (array elements may span lines freely).
func (p *parser) nextArrayToken() lexer.Token {
	for {
		tok := p.lex.ScanValue()
		if tok.Kind != token.NEWLINE {
			return tok
		}
	}
}

// recoverArray advances past a malformed array element to its closing
// bracket, so a single bad element does not cost the rest of the
// document.
func (p *parser) recoverArray() {
	depth := 0
	for {
		tok := p.lex.ScanValue()
		switch tok.Kind {
		case token.EOF:
			return
		case token.LBRACK:
			depth++
		case token.RBRACK:
			if depth == 0 {
				return
			}
			depth--
		}
	}
}

// parseInlineTable implements `inline-table := '{' (key '=' value (','
// key '=' value)*)? '}'`, the opening `{` already consumed. The table
// is sealed (StateInlineLiteral) the moment it is built.
func (p *parser) parseInlineTable() (value.Value, bool) {
	tbl := value.NewTable(value.StateInlineLiteral)

	first := p.lex.ScanKey()
	if first.Kind == token.RBRACE {
		return tbl, true
	}
	for {
		if !isKeySegment(first.Kind) {
			p.errorfTok(first, "Unexpected %s, expected a key segment or }", describe(first))
			return tbl, false
		}
		path, term := p.parseKeyTail(first)
		if term.Kind != token.ASSIGN {
			p.errorfTok(term, "Unexpected %s, expected =", describe(term))
			return tbl, false
		}
		val, ok := p.parseValue()
		if !ok {
			return tbl, false
		}
		if err := value.SetValue(tbl, path, val, first.Pos); err != nil {
			p.errorf(first.Pos, "%s", err.Error())
		}

		sep := p.lex.ScanKey()
		if sep.Kind == token.RBRACE {
			break
		}
		if sep.Kind != token.COMMA {
			p.errorfTok(sep, "Unexpected %s, expected , or }", describe(sep))
			return tbl, false
		}
		first = p.lex.ScanKey()
	}
	return tbl, true
}
