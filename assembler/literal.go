package assembler

import (
	"strconv"
)

// NumberLiteralRange narrows the acceptable range of a number literal
// to the context it was parsed in.
type NumberLiteralRange int

const (
	RangeNone NumberLiteralRange = iota
	RangeByte
	RangeAddress
)

const (
	charMin  = -128
	ucharMax = 255
)

// checkNumberRange range-checks a number literal's lex-time value
// against the context it is used in.
func checkNumberRange(value int64, r NumberLiteralRange, line int) (int64, *Error) {
	switch r {
	case RangeByte:
		if value < charMin || value > ucharMax {
			return 0, newError(ErrNumberLiteralOutOfRange, line, "value %d out of byte range", value)
		}
	case RangeAddress:
		if value < 0 || value >= AddressSpaceSize {
			return 0, newError(ErrNumberLiteralOutOfRange, line, "value %d out of address range", value)
		}
	}
	return value, nil
}

// evalNumberLiteral extracts the value of a NumberLiteral token,
// enforcing r.
func evalNumberLiteral(tok Token, r NumberLiteralRange) (int64, *Error) {
	return checkNumberRange(tok.Number, r, tok.Line)
}

// evalCharLiteral combines a character literal's base value and
// optional offset into a final byte, range-checked against
// [CHAR_MIN, UCHAR_MAX].
func evalCharLiteral(tok Token) (byte, *Error) {
	total := tok.Number
	if tok.HasOffset {
		total += tok.Offset
	}
	if total < charMin || total > ucharMax {
		return 0, newError(ErrCharacterLiteralOutOfRange, tok.Line, "character literal value %d out of range", total)
	}
	return byte(total), nil
}

// evalByteLiteral accepts a NumberLiteral, CharacterLiteral, or
// single-character StringLiteral token and returns its byte value plus
// the DataType it should be recorded as — used by .FILL's value
// argument and by immediate-value resolution.
func evalByteLiteral(tok Token) (byte, DataType, *Error) {
	switch tok.Kind {
	case TokNumberLiteral:
		v, err := evalNumberLiteral(tok, RangeByte)
		if err != nil {
			return 0, DataTypeNone, err
		}
		return byte(v), DataTypeInt, nil
	case TokCharacterLiteral:
		v, err := evalCharLiteral(tok)
		if err != nil {
			return 0, DataTypeNone, err
		}
		return v, DataTypeChar, nil
	case TokStringLiteral:
		if len(tok.Text) != 1 {
			return 0, DataTypeNone, newError(ErrFillValueStringNotAChar, tok.Line, "string literal must be exactly one character")
		}
		return tok.Text[0], DataTypeChar, nil
	default:
		return 0, DataTypeNone, newError(ErrInvalidDirectiveArgument, tok.Line, "expected a number, character, or single-character string literal")
	}
}

// splitLabelRef splits an identifier lexeme of the form "name", "name+N"
// or "name-N" into its base name and signed offset. The offset is
// range-unbounded at parse time (only the evaluated address is checked,
// by the resolver), so it is parsed with strconv rather than the
// lex-time number scanner.
func splitLabelRef(text string, line int) (name string, offset int64, err *Error) {
	for i := 1; i < len(text); i++ {
		if text[i] == '+' || text[i] == '-' {
			name = text[:i]
			n, perr := strconv.ParseInt(text[i:], 0, 64)
			if perr != nil {
				return "", 0, newError(ErrInvalidNumberLiteral, line, "invalid label offset in %q", text)
			}
			return name, n, nil
		}
	}
	return text, 0, nil
}

