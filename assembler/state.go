package assembler

// state is the single mutable aggregate threaded through pass 1. It is
// never shared across goroutines and never re-entered; one Assemble
// call owns exactly one state for its whole lifetime, the same
// single-owner discipline the teacher's Parser struct uses for its
// SymbolTable.
type state struct {
	m [AddressSpaceSize]byte
	w [AddressSpaceSize]bool
	t [AddressSpaceSize]DataType

	cursor int

	labelDefs     []LabelDefinition
	labelUses     []LabelUse
	immediateUses []ImmediateValueUse

	// labelDefsFromIndex marks where the current statement's label
	// definitions begin in labelDefs, so a placement directive can
	// rebase exactly that slice and nothing collected by an earlier
	// statement.
	labelDefsFromIndex int

	// immediateLabelByValue deduplicates #value operands: the first
	// time a decoded byte value is seen, a synthetic label is minted
	// for it; later immediates with the same value reuse that label.
	immediateLabelByValue map[byte]string
}

func newState() *state {
	return &state{}
}

// beginStatement records the rebase watermark for a new statement.
func (s *state) beginStatement() {
	s.labelDefsFromIndex = len(s.labelDefs)
}

// rebaseStatementLabels rewrites every label collected in the current
// statement to the cursor's current value — used after .ORG/.ALIGN
// moves the cursor.
func (s *state) rebaseStatementLabels() {
	for i := s.labelDefsFromIndex; i < len(s.labelDefs); i++ {
		s.labelDefs[i].Address = s.cursor
	}
}

// reserveByte checks that addr is writable (in range, not yet
// written) without mutating state.
func (s *state) reserveByte(addr int, line int) *Error {
	if addr < 0 || addr >= AddressSpaceSize {
		return newError(ErrDeclaringValueOutOfMemoryRange, line, "address 0x%04X is out of memory range", addr)
	}
	if s.w[addr] {
		return newError(ErrMemoryValueOverridden, line, "memory at address 0x%04X was already written", addr)
	}
	return nil
}

// writeByte reserves and writes a single byte of the given DataType.
func (s *state) writeByte(addr int, value byte, dtype DataType, line int) *Error {
	if err := s.reserveByte(addr, line); err != nil {
		return err
	}
	s.m[addr] = value
	s.t[addr] = dtype
	s.w[addr] = true
	return nil
}

// writeInstruction reserves both bytes of a two-byte opcode slot and
// writes them. Per the data model, only the low byte is classified as
// Instruction; the high byte's DataType stays None even though its
// presence bit is set — the pair is recovered as a unit via
// T[addr]==Instruction, not via T[addr+1].
func (s *state) writeInstruction(addr int, low, high byte, line int) *Error {
	if err := s.reserveByte(addr, line); err != nil {
		return err
	}
	if err := s.reserveByte(addr+1, line); err != nil {
		return err
	}
	s.m[addr] = low
	s.t[addr] = DataTypeInstruction
	s.w[addr] = true
	s.m[addr+1] = high
	s.t[addr+1] = DataTypeNone
	s.w[addr+1] = true
	return nil
}
