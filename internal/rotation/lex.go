package rotation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemIdent  //spell id or condition field
	itemNumber //float literal
	itemIf     //keyword if
	itemAnd    //&&
	itemOp     //> >= < <= == !=
)

type item struct {
	typ itemType
	val string
}

func (i item) String() string {
	switch i.typ {
	case itemEOF:
		return "EOF"
	case itemError:
		return i.val
	}
	return i.val
}

type lexer struct {
	input string
	pos   int
	start int
	width int
	items []item
}

const eof = -1

func lex(input string) []item {
	l := &lexer{input: input}
	l.run()
	return l.items
}

func (l *lexer) run() {
	for {
		r := l.next()
		switch {
		case r == eof:
			l.emit(itemEOF)
			return
		case unicode.IsSpace(r):
			l.ignore()
		case r == '&':
			if l.next() != '&' {
				l.errorf("expected && at pos %v", l.start)
				return
			}
			l.emit(itemAnd)
		case strings.ContainsRune("><=!", r):
			if l.peek() == '=' {
				l.next()
			}
			l.emit(itemOp)
		case r == '-' || r == '.' || unicode.IsDigit(r):
			l.lexNumber()
		case unicode.IsLetter(r) || r == '_':
			l.lexIdent()
		default:
			l.errorf("unexpected character %q at pos %v", r, l.start)
			return
		}
	}
}

func (l *lexer) lexNumber() {
	for {
		r := l.peek()
		if !unicode.IsDigit(r) && r != '.' {
			break
		}
		l.next()
	}
	l.emit(itemNumber)
}

func (l *lexer) lexIdent() {
	for {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.next()
	}
	if l.input[l.start:l.pos] == "if" {
		l.emit(itemIf)
		return
	}
	l.emit(itemIdent)
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) emit(t itemType) {
	l.items = append(l.items, item{t, l.input[l.start:l.pos]})
	l.start = l.pos
}

func (l *lexer) errorf(format string, args ...interface{}) {
	l.items = append(l.items, item{itemError, fmt.Sprintf(format, args...)})
}
