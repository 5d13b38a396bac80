package assembler

// AddressSpaceSize is the size in bytes of the W16 address space (13-bit
// addresses: 0x0000..0x1FFF).
const AddressSpaceSize = 8192

// IOInterfaceAddress is the single memory-mapped I/O byte. The symbol
// table always reports it as a char, regardless of how it was written.
const IOInterfaceAddress = 0x1FFF

// MaxNameLen is the maximum number of significant characters in an
// identifier or directive name, not counting the terminator.
const MaxNameLen = 31

// Opcode identifies one of the eight W16 instructions.
type Opcode int

const (
	OpLD Opcode = iota
	OpNOT
	OpADD
	OpAND
	OpST
	OpJMP
	OpJMN
	OpJMZ
	opInvalid
)

var mnemonicTable = map[string]Opcode{
	"LD":  OpLD,
	"NOT": OpNOT,
	"ADD": OpADD,
	"AND": OpAND,
	"ST":  OpST,
	"JMP": OpJMP,
	"JMN": OpJMN,
	"JMZ": OpJMZ,
}

// lookupMnemonic resolves a case-insensitive mnemonic to its opcode.
// The second return is false if the name is not an instruction.
func lookupMnemonic(name string) (Opcode, bool) {
	op, ok := mnemonicTable[upperASCII(name)]
	return op, ok
}

// allowsImmediate reports whether an opcode accepts a `#literal` operand.
// Only the four ALU/load opcodes do; ST/JMP/JMN/JMZ do not.
func (op Opcode) allowsImmediate() bool {
	return op < OpST
}

func (op Opcode) String() string {
	for name, o := range mnemonicTable {
		if o == op {
			return name
		}
	}
	return "INVALID"
}

// Directive identifies one of the placement/declaration directives.
type Directive int

const (
	DirOrg Directive = iota
	DirAlign
	DirFill
	DirLsb
	DirMsb
	DirImmediates
	dirInvalid
)

var directiveTable = map[string]Directive{
	"ORG":        DirOrg,
	"ALIGN":      DirAlign,
	"FILL":       DirFill,
	"LSB":        DirLsb,
	"MSB":        DirMsb,
	"IMMEDIATES": DirImmediates,
}

// lookupDirective resolves a case-insensitive directive name (without the
// leading dot) to its Directive constant.
func lookupDirective(name string) (Directive, bool) {
	dir, ok := directiveTable[upperASCII(name)]
	return dir, ok
}

// DataType classifies a byte of the assembled image for the symbol table.
type DataType int

const (
	DataTypeNone DataType = iota
	DataTypeInstruction
	DataTypeChar
	DataTypeInt
)

func (t DataType) String() string {
	switch t {
	case DataTypeInstruction:
		return "instruction"
	case DataTypeChar:
		return "char"
	case DataTypeInt:
		return "int"
	default:
		return "none"
	}
}

// upperASCII folds only a..z, leaving every other byte untouched — the
// same narrow fold the teacher's lexer uses for register/mnemonic names.
func upperASCII(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 0x20
		}
		b[i] = c
	}
	return string(b)
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
