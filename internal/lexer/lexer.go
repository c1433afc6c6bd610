// Package lexer implements the lexical analyzer for declaration statements.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/orizon-lang/declcheck/internal/errors"
	"github.com/orizon-lang/declcheck/internal/position"
	"github.com/orizon-lang/declcheck/internal/types"
)

// Lexer represents the lexical analyzer
type Lexer struct {
	input        string
	filename     string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	lineStart    int  // offset of the first byte of the current line
}

// New creates a new lexer instance
func New(input string) *Lexer {
	return NewWithFilename(input, "")
}

// NewWithFilename creates a new lexer instance with filename for error reporting
func NewWithFilename(input, filename string) *Lexer {
	l := &Lexer{
		input:    input,
		filename: filename,
		line:     1,
	}
	l.readChar()
	return l
}

// Tokenize scans source and returns every token in encounter order.
// Unrecognized spans are returned as TokenUnknown; Tokenize never fails.
func Tokenize(source string) []Token {
	return TokenizeFile("", source)
}

// TokenizeFile is Tokenize with a filename recorded in every span.
func TokenizeFile(filename, source string) []Token {
	l := NewWithFilename(source, filename)
	tokens := make([]Token, 0, len(source)/3)
	for {
		tok, ok := l.NextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// IsValidLexically reports whether no token is of type TokenUnknown.
func IsValidLexically(tokens []Token) bool {
	_, found := FirstUnknown(tokens)
	return !found
}

// FirstUnknown returns the first TokenUnknown in tokens.
func FirstUnknown(tokens []Token) (Token, bool) {
	for _, tok := range tokens {
		if tok.Type == TokenUnknown {
			return tok, true
		}
	}
	return Token{}, false
}

// Validate returns an UNKNOWN_TOKEN error for the first unrecognized token.
func Validate(tokens []Token) error {
	if tok, found := FirstUnknown(tokens); found {
		return errors.UnknownToken(tok.Literal, tok.Span)
	}
	return nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' && l.position < len(l.input) {
		l.line++
		l.lineStart = l.readPosition
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// atEOF reports whether the whole input has been consumed. A NUL byte in
// the input is not EOF.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// skipWhitespace skips whitespace characters including newlines
func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && isWhitespace(l.ch) {
		l.readChar()
	}
}

// readIdentifier reads [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) readIdentifier() string {
	start := l.position
	for !l.atEOF() && (isLetter(l.ch) || isDigit(l.ch) || l.ch == '_') {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads the maximal run of characters a number could be confused
// with, so that forms like 1.2.3 or 12ab end up in a single token.
func (l *Lexer) readNumber() string {
	start := l.position
	for !l.atEOF() && (isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '.') {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readQuoted reads a quote-delimited span on a single line. It returns the
// text between the quotes and whether the closing quote was found.
func (l *Lexer) readQuoted(quote byte) (string, bool) {
	l.readChar() // opening quote
	start := l.position
	for !l.atEOF() && l.ch != '\n' && l.ch != '\r' {
		if l.ch == quote {
			inner := l.input[start:l.position]
			l.readChar()
			return inner, true
		}
		l.readChar()
	}
	return l.input[start:l.position], false
}

// readRune consumes one UTF-8 encoded rune.
func (l *Lexer) readRune() {
	_, size := utf8.DecodeRuneInString(l.input[l.position:])
	for i := 0; i < size; i++ {
		l.readChar()
	}
}

// NextToken scans the input and returns the next token. The boolean is
// false once the input is exhausted.
func (l *Lexer) NextToken() (Token, bool) {
	l.skipWhitespace()
	if l.atEOF() {
		return Token{}, false
	}

	startPos := l.getCurrentPosition()

	switch {
	case l.ch == '=':
		l.readChar()
		return l.newToken(TokenAssign, types.LiteralNone, startPos), true
	case l.ch == ',':
		l.readChar()
		return l.newToken(TokenComma, types.LiteralNone, startPos), true
	case l.ch == ';':
		l.readChar()
		return l.newToken(TokenTerminator, types.LiteralNone, startPos), true
	case l.ch == '"':
		if _, ok := l.readQuoted('"'); ok {
			return l.newToken(TokenLiteral, types.LiteralString, startPos), true
		}
		return l.newToken(TokenUnknown, types.LiteralNone, startPos), true
	case l.ch == '\'':
		inner, ok := l.readQuoted('\'')
		if ok && utf8.RuneCountInString(inner) == 1 {
			return l.newToken(TokenLiteral, types.LiteralChar, startPos), true
		}
		return l.newToken(TokenUnknown, types.LiteralNone, startPos), true
	case isLetter(l.ch) || l.ch == '_':
		tt, kind := lookupIdent(l.readIdentifier())
		return l.newToken(tt, kind, startPos), true
	case isDigit(l.ch):
		tt, kind := classifyNumber(l.readNumber())
		return l.newToken(tt, kind, startPos), true
	default:
		l.readRune()
		return l.newToken(TokenUnknown, types.LiteralNone, startPos), true
	}
}

// newToken creates a token spanning from startPos to the current position
func (l *Lexer) newToken(tokenType TokenType, kind types.LiteralKind, startPos position.Position) Token {
	endPos := l.getCurrentPosition()
	return Token{
		Type:        tokenType,
		Literal:     l.input[startPos.Offset:endPos.Offset],
		LiteralKind: kind,
		Span:        position.Span{Start: startPos, End: endPos},
	}
}

// getCurrentPosition returns current position in source
func (l *Lexer) getCurrentPosition() position.Position {
	return position.Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.position - l.lineStart + 1,
		Offset:   l.position,
	}
}

// lookupIdent checks if an identifier-shaped word is a type keyword or a
// boolean literal. Type keywords win over identifiers.
func lookupIdent(word string) (TokenType, types.LiteralKind) {
	if _, ok := types.LookupPrimitive(word); ok {
		return TokenTypeKeyword, types.LiteralNone
	}
	if types.IsBooleanWord(word) {
		return TokenLiteral, types.LiteralBoolean
	}
	return TokenIdentifier, types.LiteralNone
}

// classifyNumber accepts digit runs and digit runs with exactly one
// interior decimal point.
func classifyNumber(s string) (TokenType, types.LiteralKind) {
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	switch {
	case !hasDot && isDigits(intPart):
		return TokenLiteral, types.LiteralInteger
	case hasDot && isDigits(intPart) && isDigits(fracPart):
		return TokenLiteral, types.LiteralFloat
	default:
		return TokenUnknown, types.LiteralNone
	}
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isLetter checks if character is ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if character is ASCII digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
