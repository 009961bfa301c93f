package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Lexer tokenizes game records.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
	cfg     *config.Config
}

// Character classification table
var chTab [256]TokenType

func init() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}
	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd
	chTab['.'] = Dot
	chTab[';'] = Semicolon
	chTab['*'] = Star
	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
	chTab['_'] = Alpha
}

// NewLexer creates a new lexer for the given reader. A nil cfg is silent.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// skipWhile advances past characters of the given class.
func (l *Lexer) skipWhile(class TokenType) {
	for l.pos < len(l.line) && chTab[l.currentChar()] == class {
		l.advance()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			if token.Line == 0 {
				token.Line = l.lineNum
			}
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		// A line starting with '%' is an escape line and is ignored.
		if strings.HasPrefix(l.line, "%") {
			l.pos = len(l.line)
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	start := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		l.skipWhile(Whitespace)
		return &Token{Type: NoToken}

	case TagStart:
		return l.gatherTag()

	case TagEnd:
		return &Token{Type: NoToken}

	case DoubleQuote:
		return l.gatherString()

	case CommentStart:
		return l.gatherComment()

	case CommentEnd:
		l.cfg.Logf(1, "Unmatched comment end on line %d.", l.lineNum)
		return &Token{Type: NoToken}

	case Semicolon:
		text := strings.TrimSpace(l.line[l.pos:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, Text: text}

	case Dot:
		l.skipWhile(Dot)
		return &Token{Type: NoToken}

	case Star:
		return &Token{Type: TerminatingResult, Text: Unknown}

	case Alpha:
		return l.gatherMove(start)

	case Digit:
		return l.gatherNumeric(start)

	default:
		l.cfg.Logf(1, "Unknown character %q on line %d.", ch, l.lineNum)
		l.skipWhile(ErrorToken)
		return &Token{Type: NoToken}
	}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() *Token {
	l.skipWhile(Whitespace)
	start := l.pos
	for l.pos < len(l.line) {
		if c := chTab[l.currentChar()]; c != Alpha && c != Digit {
			break
		}
		l.advance()
	}
	if l.pos == start {
		l.cfg.Logf(1, "Missing tag name on line %d.", l.lineNum)
		return &Token{Type: NoToken}
	}
	return &Token{Type: TagToken, Text: l.line[start:l.pos]}
}

// gatherString gathers a quoted string.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return &Token{Type: StringToken, Text: sb.String()}
		default:
			sb.WriteByte(ch)
		}
	}

	l.cfg.Logf(1, "Missing closing quote on line %d.", l.lineNum)
	return &Token{Type: StringToken, Text: strings.TrimRight(sb.String(), "\r\n")}
}

// gatherComment gathers a comment block, which may span lines.
func (l *Lexer) gatherComment() *Token {
	var sb strings.Builder
	line := l.lineNum

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()
			if ch == '}' {
				return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String()), Line: line}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			break
		}
	}

	l.cfg.Logf(1, "Missing end of comment started on line %d.", line)
	return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String()), Line: line}
}

// gatherMove gathers a square pair such as "e2e4".
func (l *Lexer) gatherMove(start int) *Token {
	for l.pos < len(l.line) {
		if c := chTab[l.currentChar()]; c != Alpha && c != Digit {
			break
		}
		l.advance()
	}
	text := l.line[start:l.pos]
	if !moveSeemsValid(text) {
		l.cfg.Logf(1, "Unknown move text %s on line %d.", text, l.lineNum)
	}
	return &Token{Type: MoveToken, Text: text}
}

// gatherNumeric handles move numbers and results.
func (l *Lexer) gatherNumeric(start int) *Token {
	for l.pos < len(l.line) {
		ch := l.currentChar()
		if chTab[ch] != Digit && ch != '-' && ch != '/' {
			break
		}
		l.advance()
	}
	text := l.line[start:l.pos]

	switch text {
	case WhiteWins, BlackWins, Draw:
		return &Token{Type: TerminatingResult, Text: text}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		l.cfg.Logf(1, "Unknown number %s on line %d.", text, l.lineNum)
		return &Token{Type: NoToken}
	}
	return &Token{Type: MoveNumber, Text: text, MoveNum: n}
}

// moveSeemsValid does a basic check that text names two squares.
func moveSeemsValid(text string) bool {
	if len(text) != 4 {
		return false
	}
	for i := 0; i < 4; i += 2 {
		if text[i] < 'a' || text[i] > 'h' || text[i+1] < '1' || text[i+1] > '8' {
			return false
		}
	}
	return true
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
