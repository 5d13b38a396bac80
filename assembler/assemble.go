package assembler

// Assemble runs the full two-pass pipeline over source, returning the
// assembled image or the first fatal *Error encountered. It never
// partially mutates a result visible to the caller: on error the
// returned result is nil.
func Assemble(source []byte) (*AssemblerResult, error) {
	st := newState()
	lx := NewLexer(source)
	p := newParser(lx, st)

	if err := p.parseProgram(); err != nil {
		return nil, err
	}
	if err := resolveImmediates(st); err != nil {
		return nil, err
	}
	if err := resolveLabels(st); err != nil {
		return nil, err
	}
	return buildResult(st), nil
}
