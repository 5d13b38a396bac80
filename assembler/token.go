package assembler

// TokenKind discriminates the lexemes the tokenizer can produce.
type TokenKind int

const (
	TokIdentifier TokenKind = iota
	TokDirective
	TokNumberLiteral
	TokStringLiteral
	TokCharacterLiteral
	TokImmediateRef
	TokLabelDefinition
	TokEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokIdentifier:
		return "Identifier"
	case TokDirective:
		return "Directive"
	case TokNumberLiteral:
		return "NumberLiteral"
	case TokStringLiteral:
		return "StringLiteral"
	case TokCharacterLiteral:
		return "CharacterLiteral"
	case TokImmediateRef:
		return "ImmediateRef"
	case TokLabelDefinition:
		return "LabelDefinition"
	case TokEOF:
		return "EndOfFile"
	default:
		return "Unknown"
	}
}

// Token is a single lexeme, tagged with the line it started on.
//
// Field use varies by Kind:
//   - Identifier / Directive / LabelDefinition: Text holds the name. Text
//     may contain a trailing "+N"/"-N" suffix when scanned as an
//     instruction/.LSB/.MSB operand (see label_ref in the grammar) — the
//     parser splits it, it is not pre-split here.
//   - NumberLiteral: Number holds the accumulated, lex-time range-checked
//     value (against [SHRT_MIN, USHRT_MAX]); Text holds the raw source
//     text for error messages.
//   - StringLiteral: Text holds the escape-decoded byte content (no
//     quotes); ZeroTerminate records whether a trailing 0 must be emitted.
//   - CharacterLiteral: Number holds the decoded, sign-applied base value;
//     HasOffset/Offset hold an optional trailing ±N (itself lex-time
//     range-checked as an ordinary number literal).
//   - ImmediateRef: Inner holds the nested NumberLiteral or
//     CharacterLiteral token; Text holds the original "#..." source span.
type Token struct {
	Line          int
	Kind          TokenKind
	Text          string
	Number        int64
	HasOffset     bool
	Offset        int64
	ZeroTerminate bool
	Inner         *Token
}
