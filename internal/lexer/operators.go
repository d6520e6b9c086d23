package lexer

import "github.com/radixlang/radix/internal/token"

// lexOperator performs the greedy longest-match scan over punctuators,
// mirroring the per-rune switch in funvibe-funxy/internal/lexer.NextToken
// (peekChar-driven two/three-char lookahead) but data-driven by rune
// rather than one giant switch, since this language's postfix sugar set
// (optional/nonnull chain, index, call) is wider than the teacher's.
func (l *Lexer) lexOperator() (token.Type, string) {
	ch := l.ch
	l.readChar()

	two := func(next rune, tt token.Type, lexeme string) (token.Type, string, bool) {
		if l.ch == next {
			l.readChar()
			return tt, lexeme, true
		}
		return 0, "", false
	}

	switch ch {
	case '=':
		if l.ch == '=' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return token.EQ, "==="
			}
			return token.EQ, "=="
		}
		if tt, s, ok := two('>', token.ARROW, "=>"); ok {
			return tt, s
		}
		return token.ASSIGN, "="
	case '+':
		if tt, s, ok := two('=', token.PLUS_ASSIGN, "+="); ok {
			return tt, s
		}
		return token.PLUS, "+"
	case '-':
		if tt, s, ok := two('>', token.ARROW, "->"); ok {
			return tt, s
		}
		if tt, s, ok := two('=', token.MINUS_ASSIGN, "-="); ok {
			return tt, s
		}
		return token.MINUS, "-"
	case '*':
		if l.ch == '*' {
			l.readChar()
			if tt, s, ok := two('=', token.POWER_ASSIGN, "**="); ok {
				return tt, s
			}
			return token.POWER, "**"
		}
		if tt, s, ok := two('=', token.ASTERISK_ASSIGN, "*="); ok {
			return tt, s
		}
		return token.ASTERISK, "*"
	case '/':
		if tt, s, ok := two('=', token.SLASH_ASSIGN, "/="); ok {
			return tt, s
		}
		return token.SLASH, "/"
	case '%':
		if tt, s, ok := two('=', token.PERCENT_ASSIGN, "%="); ok {
			return tt, s
		}
		return token.PERCENT, "%"
	case '!':
		if l.ch == '=' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return token.NOT_EQ, "!=="
			}
			return token.NOT_EQ, "!="
		}
		if tt, s, ok := two('.', token.NONNULL_CHAIN, "!."); ok {
			return tt, s
		}
		if tt, s, ok := two('[', token.NONNULL_INDEX, "!["); ok {
			return tt, s
		}
		if tt, s, ok := two('(', token.NONNULL_CALL, "!("); ok {
			return tt, s
		}
		return token.BANG, "!"
	case '<':
		if tt, s, ok := two('=', token.LTE, "<="); ok {
			return tt, s
		}
		if tt, s, ok := two('<', token.LSHIFT, "<<"); ok {
			return tt, s
		}
		if tt, s, ok := two('-', token.L_ARROW, "<-"); ok {
			return tt, s
		}
		return token.LT, "<"
	case '>':
		if tt, s, ok := two('=', token.GTE, ">="); ok {
			return tt, s
		}
		if tt, s, ok := two('>', token.RSHIFT, ">>"); ok {
			return tt, s
		}
		return token.GT, ">"
	case '&':
		if tt, s, ok := two('&', token.AND, "&&"); ok {
			return tt, s
		}
		return token.AMPERSAND, "&"
	case '|':
		if tt, s, ok := two('|', token.OR, "||"); ok {
			return tt, s
		}
		return token.PIPE, "|"
	case '^':
		return token.CARET, "^"
	case '~':
		return token.TILDE, "~"
	case '?':
		if tt, s, ok := two('?', token.NULL_COALESCE, "??"); ok {
			return tt, s
		}
		if tt, s, ok := two('.', token.OPTIONAL_CHAIN, "?."); ok {
			return tt, s
		}
		if tt, s, ok := two('[', token.OPTIONAL_INDEX, "?["); ok {
			return tt, s
		}
		if tt, s, ok := two('(', token.OPTIONAL_CALL, "?("); ok {
			return tt, s
		}
		return token.QUESTION, "?"
	case '.':
		if l.ch == '.' {
			l.readChar()
			if l.ch == '.' {
				l.readChar()
				return token.ELLIPSIS, "..."
			}
			return token.DOT_DOT, ".."
		}
		return token.DOT, "."
	case ',':
		return token.COMMA, ","
	case ':':
		return token.COLON, ":"
	case '(':
		return token.LPAREN, "("
	case ')':
		return token.RPAREN, ")"
	case '{':
		return token.LBRACE, "{"
	case '}':
		return token.RBRACE, "}"
	case '[':
		return token.LBRACKET, "["
	case ']':
		return token.RBRACKET, "]"
	default:
		return token.ILLEGAL, string(ch)
	}
}
