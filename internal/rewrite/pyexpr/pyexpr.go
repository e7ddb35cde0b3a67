// Package pyexpr classifies a single line of Python as a standalone
// expression without executing anything. It is a syntactic approximation
// of compiling in "eval" mode: a tokenizer plus a handful of structural
// rules. When in doubt it says no, and the caller leaves the snippet
// unchanged.
package pyexpr

import "strings"

type tokKind int

const (
	tokName tokKind = iota
	tokNumber
	tokString
	tokOp
)

type token struct {
	kind tokKind
	text string
}

// Keywords that can never appear in an expression.
var stmtKeywords = map[string]bool{
	"assert": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true,
	"except": true, "finally": true, "from": true, "global": true,
	"import": true, "nonlocal": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true,
	"yield": true,
}

// Keywords that operate on expressions rather than naming a value.
var exprKeywords = map[string]bool{
	"and": true, "else": true, "for": true, "if": true, "in": true,
	"is": true, "lambda": true, "not": true, "or": true,
}

func isLiteralName(s string) bool {
	return s == "None" || s == "True" || s == "False"
}

// Valid reports whether src plausibly parses as a pure Python expression.
func Valid(src string) bool {
	toks, ok := lex(src)
	if !ok || len(toks) == 0 {
		return false
	}

	var stack []byte
	sawLambda := false
	prevOperand := false // previous token ended an operand

	for i, t := range toks {
		switch t.kind {
		case tokName:
			if stmtKeywords[t.text] {
				return false
			}
			// Comprehensions put "for" inside brackets; a bare one
			// starts a statement.
			if t.text == "for" && len(stack) == 0 {
				return false
			}
			if t.text == "lambda" {
				sawLambda = true
			}
			if exprKeywords[t.text] {
				prevOperand = false
				continue
			}
			if prevOperand {
				return false // two bare operands in a row, e.g. "hello world"
			}
			prevOperand = true
		case tokNumber:
			if prevOperand {
				return false
			}
			prevOperand = true
		case tokString:
			// Adjacent string literals concatenate implicitly.
			if prevOperand && toks[i-1].kind != tokString {
				return false
			}
			prevOperand = true
		case tokOp:
			switch t.text {
			case "(", "[", "{":
				stack = append(stack, t.text[0])
				prevOperand = false
			case ")", "]", "}":
				if len(stack) == 0 || !bracketMatch(stack[len(stack)-1], t.text[0]) {
					return false
				}
				stack = stack[:len(stack)-1]
				prevOperand = true
			case ":":
				// Legal in slices and dict literals (inside brackets)
				// and after lambda parameters.
				if len(stack) == 0 && !sawLambda {
					return false
				}
				prevOperand = false
			case "=", ";":
				return false
			default:
				prevOperand = false
			}
		}
	}

	if len(stack) != 0 {
		return false
	}

	first := toks[0]
	if first.kind == tokOp {
		switch first.text {
		case "-", "+", "~", "(", "[", "{":
		default:
			return false
		}
	}

	last := toks[len(toks)-1]
	if last.kind == tokOp {
		// A trailing comma makes a tuple; anything else dangles.
		switch last.text {
		case ")", "]", "}", ",":
		default:
			return false
		}
	}
	if last.kind == tokName && exprKeywords[last.text] {
		return false
	}
	return true
}

func bracketMatch(open, close byte) bool {
	switch open {
	case '(':
		return close == ')'
	case '[':
		return close == ']'
	case '{':
		return close == '}'
	}
	return false
}

// lex splits src into tokens. It returns ok=false on anything it cannot
// tokenize, such as an unterminated string or a stray character.
func lex(src string) ([]token, bool) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '#':
			// Trailing comment; the expression ends here.
			return toks, true
		case isNameStart(c):
			j := i + 1
			for j < len(src) && isNameChar(src[j]) {
				j++
			}
			word := src[i:j]
			// String prefixes like r"", b'', f"" attach to the literal.
			if j < len(src) && (src[j] == '\'' || src[j] == '"') && isStringPrefix(word) {
				end, ok := scanString(src, j)
				if !ok {
					return nil, false
				}
				toks = append(toks, token{tokString, src[i:end]})
				i = end
				continue
			}
			toks = append(toks, token{tokName, word})
			i = j
		case c >= '0' && c <= '9' || c == '.' && i+1 < len(src) && src[i+1] >= '0' && src[i+1] <= '9':
			i = scanNumber(src, i, &toks)
		case c == '\'' || c == '"':
			end, ok := scanString(src, i)
			if !ok {
				return nil, false
			}
			toks = append(toks, token{tokString, src[i:end]})
			i = end
		default:
			op, ok := scanOp(src, i)
			if !ok {
				return nil, false
			}
			toks = append(toks, token{tokOp, op})
			i += len(op)
		}
	}
	return toks, true
}

func isNameStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9'
}

func isStringPrefix(word string) bool {
	if len(word) > 2 {
		return false
	}
	for _, r := range strings.ToLower(word) {
		if r != 'r' && r != 'b' && r != 'f' && r != 'u' {
			return false
		}
	}
	return true
}

// scanNumber is lenient: it consumes digit-ish runs, leaving precise
// validation to the interpreter at execution time.
func scanNumber(src string, i int, toks *[]token) int {
	j := i
	for j < len(src) {
		c := src[j]
		if isNameChar(c) || c == '.' {
			j++
			continue
		}
		// Exponent sign, as in 1e-5.
		if j > i && (c == '+' || c == '-') && (src[j-1] == 'e' || src[j-1] == 'E') {
			j++
			continue
		}
		break
	}
	*toks = append(*toks, token{tokNumber, src[i:j]})
	return j
}

// scanString returns the index just past the closing quote.
func scanString(src string, i int) (int, bool) {
	quote := src[i]
	triple := strings.HasPrefix(src[i:], strings.Repeat(string(quote), 3))
	closer := string(quote)
	j := i + 1
	if triple {
		closer = strings.Repeat(string(quote), 3)
		j = i + 3
	}
	for j < len(src) {
		if src[j] == '\\' {
			j += 2
			continue
		}
		if strings.HasPrefix(src[j:], closer) {
			return j + len(closer), true
		}
		j++
	}
	return 0, false
}

var multiOps = []string{
	"**", "//", "<<", ">>", "<=", ">=", "==", "!=", "->", ":=", "...",
}

func scanOp(src string, i int) (string, bool) {
	for _, op := range multiOps {
		if strings.HasPrefix(src[i:], op) {
			return op, true
		}
	}
	switch src[i] {
	case '+', '-', '*', '/', '%', '@', '&', '|', '^', '~', '<', '>',
		'(', ')', '[', ']', '{', '}', ',', ':', '.', '=', ';':
		return src[i : i+1], true
	}
	return "", false
}
