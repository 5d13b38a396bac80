package assembler

// AssemblerResult is the complete output of a successful Assemble
// call: the assembled image, its per-byte classification, and the
// label visible at each address (empty string if none).
type AssemblerResult struct {
	ProgramMemory      [AddressSpaceSize]byte
	DataType           [AddressSpaceSize]DataType
	LabelNameByAddress [AddressSpaceSize]string
}

func buildResult(st *state) *AssemblerResult {
	res := &AssemblerResult{
		ProgramMemory: st.m,
		DataType:      st.t,
	}
	buildSymbolTable(st, res)
	return res
}
