package terminal

import (
	"strconv"
	"strings"
)

// TokenKind discriminates decoded input.
type TokenKind int

const (
	TokenKey TokenKind = iota
	TokenMouse
)

// Mouse buttons as reported by SGR mouse mode
const (
	MouseLeft   = 0
	MouseMiddle = 1
	MouseRight  = 2
	MouseNone   = 3
)

// CtrlC is the code reported for Ctrl+C, which raw mode delivers as a byte
// instead of a signal.
const CtrlC = "CtrlC"

// Token is one key press or mouse report read from the terminal.
type Token struct {
	Kind TokenKind
	// Code is a DOM-style key code ("ArrowUp", "Digit1", "KeyQ", "F12")
	Code  string
	Mouse MouseReport
}

// MouseReport is a decoded SGR mouse event. X and Y are 1-based cells.
type MouseReport struct {
	Button  int
	X, Y    int
	Press   bool
	Motion  bool
	Release bool
}

// csiTildeKeys maps "ESC [ n ~" parameters to key codes
var csiTildeKeys = map[string]string{
	"15": "F5",
	"17": "F6",
	"18": "F7",
	"19": "F8",
	"20": "F9",
	"21": "F10",
	"23": "F11",
	"24": "F12",
}

// arrowKeys maps the final byte of CSI and SS3 cursor sequences
var arrowKeys = map[byte]string{
	'A': "ArrowUp",
	'B': "ArrowDown",
	'C': "ArrowRight",
	'D': "ArrowLeft",
}

// Decode splits raw terminal input into tokens. An escape sequence cut off at
// the end of buf is returned in rest so it can be completed by the next read.
// This includes an ESC that ends buf: the caller decides whether it is the
// Escape key or the start of a sequence still in flight (see IsLoneEscape).
func Decode(buf []byte) (tokens []Token, rest []byte) {
	for i := 0; i < len(buf); {
		b := buf[i]
		if b != 0x1b {
			if code := byteCode(b); code != "" {
				tokens = append(tokens, Token{Kind: TokenKey, Code: code})
			}
			i++
			continue
		}

		if i+1 == len(buf) {
			return tokens, buf[i:]
		}

		switch buf[i+1] {
		case 'O':
			// SS3: ESC O <final>
			if i+2 >= len(buf) {
				return tokens, buf[i:]
			}
			if code, ok := arrowKeys[buf[i+2]]; ok {
				tokens = append(tokens, Token{Kind: TokenKey, Code: code})
			}
			i += 3
		case '[':
			end := csiEnd(buf, i+2)
			if end < 0 {
				return tokens, buf[i:]
			}
			if tok, ok := decodeCSI(buf[i+2 : end+1]); ok {
				tokens = append(tokens, tok)
			}
			i = end + 1
		default:
			// ESC followed by an ordinary byte: Escape, then that byte
			tokens = append(tokens, Token{Kind: TokenKey, Code: "Escape"})
			i++
		}
	}
	return tokens, nil
}

// IsLoneEscape reports whether rest left over by Decode is a single ESC
func IsLoneEscape(rest []byte) bool {
	return len(rest) == 1 && rest[0] == 0x1b
}

// EscapeToken is the key token for a lone ESC that was not followed by more
// input.
func EscapeToken() Token {
	return Token{Kind: TokenKey, Code: "Escape"}
}

// csiEnd returns the index of the final byte of a CSI sequence whose
// parameters start at from, or -1 if the sequence is incomplete.
func csiEnd(buf []byte, from int) int {
	for j := from; j < len(buf); j++ {
		if buf[j] >= 0x40 && buf[j] <= 0x7e {
			return j
		}
	}
	return -1
}

// decodeCSI decodes the parameter and final bytes of a CSI sequence
func decodeCSI(seq []byte) (Token, bool) {
	final := seq[len(seq)-1]
	params := string(seq[:len(seq)-1])

	if strings.HasPrefix(params, "<") && (final == 'M' || final == 'm') {
		return decodeSGRMouse(params[1:], final == 'M')
	}
	if final == '~' {
		code, ok := csiTildeKeys[params]
		return Token{Kind: TokenKey, Code: code}, ok
	}
	if code, ok := arrowKeys[final]; ok {
		return Token{Kind: TokenKey, Code: code}, true
	}
	return Token{}, false
}

// decodeSGRMouse parses "b;x;y" from an SGR mouse report
func decodeSGRMouse(params string, pressed bool) (Token, bool) {
	parts := strings.Split(params, ";")
	if len(parts) != 3 {
		return Token{}, false
	}
	var n [3]int
	for k, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Token{}, false
		}
		n[k] = v
	}

	const (
		motionBit = 32
		wheelBit  = 64
	)
	if n[0]&wheelBit != 0 {
		return Token{}, false
	}
	report := MouseReport{
		Button: n[0] & 3,
		X:      n[1],
		Y:      n[2],
		Motion: n[0]&motionBit != 0,
	}
	if !report.Motion {
		report.Press = pressed
		report.Release = !pressed
	}
	return Token{Kind: TokenMouse, Mouse: report}, true
}

// byteCode maps a single input byte to a key code
func byteCode(b byte) string {
	switch {
	case b >= '0' && b <= '9':
		return "Digit" + string(b)
	case b >= 'a' && b <= 'z':
		return "Key" + string(b-'a'+'A')
	case b >= 'A' && b <= 'Z':
		return "Key" + string(b)
	case b == 0x03:
		return CtrlC
	case b == '\r' || b == '\n':
		return "Enter"
	case b == ' ':
		return "Space"
	default:
		return ""
	}
}
