package assembler

// resolveImmediates drains the queue of ImmediateValueUses, minting
// deduplicated backing storage for each distinct decoded byte value
// and turning every use into a pair of ordinary LabelUses against the
// synthetic label. Run at each .IMMEDIATES directive and once more at
// end of file; the second run is a no-op when every immediate was
// already resolved explicitly.
func resolveImmediates(st *state) *Error {
	if st.immediateLabelByValue == nil {
		st.immediateLabelByValue = make(map[byte]string)
	}
	pending := st.immediateUses
	st.immediateUses = nil

	for _, use := range pending {
		v, t, err := evalByteLiteral(use.Literal)
		if err != nil {
			return err
		}
		name, ok := st.immediateLabelByValue[v]
		if !ok {
			name = use.Text
			addr := st.cursor
			if addr >= AddressSpaceSize {
				return newError(ErrImmediateValueDeclarationOutOfMemoryRange, use.Line,
					"no room left to store immediate value %q", use.Text)
			}
			if werr := st.writeByte(addr, v, t, use.Line); werr != nil {
				return werr
			}
			st.cursor++
			st.labelDefs = append(st.labelDefs, LabelDefinition{Name: name, Address: addr, Line: use.Line})
			st.immediateLabelByValue[v] = name
		}
		st.labelUses = append(st.labelUses,
			LabelUse{Name: name, Offset: 0, ByteIndex: 0, PatchAddress: use.PatchAddress, Line: use.Line},
			LabelUse{Name: name, Offset: 0, ByteIndex: 1, PatchAddress: use.PatchAddress + 1, Line: use.Line},
		)
	}
	return nil
}

// resolveLabels patches every queued LabelUse into M by OR-ing in the
// relevant byte of the bound address. Must run after resolveImmediates
// so synthetic label definitions are already present.
func resolveLabels(st *state) *Error {
	defByName := make(map[string]LabelDefinition, len(st.labelDefs))
	for _, d := range st.labelDefs {
		defByName[d.Name] = d
	}

	for _, use := range st.labelUses {
		def, ok := defByName[use.Name]
		if !ok {
			return newError(ErrUndefinedLabel, use.Line, "undefined label %q", use.Name)
		}
		evaluated := int64(def.Address) + use.Offset
		if evaluated < 0 || evaluated >= AddressSpaceSize {
			return newError(ErrReferenceToInvalidAddress, use.Line,
				"reference to %q offset by %d resolves to out-of-range address %d", use.Name, use.Offset, evaluated)
		}
		shift := uint(use.ByteIndex) * 8
		st.m[use.PatchAddress] |= byte((evaluated >> shift) & 0xFF)
	}
	return nil
}

// buildSymbolTable populates labelNameByAddress. When several labels
// share an address, the last one defined in source order wins: plain
// forward overwrite already gives that result, since each later
// definition simply replaces the earlier entry.
func buildSymbolTable(st *state, res *AssemblerResult) {
	for _, d := range st.labelDefs {
		res.LabelNameByAddress[d.Address] = d.Name
	}
}
