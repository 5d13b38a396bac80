package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveImmediatesDeduplicatesByValue exercises the resolver's
// internal state directly (white-box), since the queueing types it
// operates on are unexported.
func TestResolveImmediatesDeduplicatesByValue(t *testing.T) {
	st := newState()
	st.cursor = 4
	st.immediateUses = []ImmediateValueUse{
		{Literal: Token{Kind: TokNumberLiteral, Number: 5}, Text: "#5", PatchAddress: 0, Line: 1},
		{Literal: Token{Kind: TokNumberLiteral, Number: 5}, Text: "#5", PatchAddress: 2, Line: 2},
	}

	err := resolveImmediates(st)
	require.Nil(t, err)

	assert.Equal(t, byte(5), st.m[4])
	assert.Equal(t, DataTypeInt, st.t[4])
	assert.Equal(t, 5, st.cursor, "only one byte of backing storage should have been consumed")
	require.Len(t, st.labelDefs, 1)
	assert.Equal(t, "#5", st.labelDefs[0].Name)
	assert.Equal(t, 4, st.labelDefs[0].Address)

	require.Len(t, st.labelUses, 4)
	for _, use := range st.labelUses {
		assert.Equal(t, "#5", use.Name)
	}
}

func TestResolveImmediatesOutOfMemoryRange(t *testing.T) {
	st := newState()
	st.cursor = AddressSpaceSize
	st.immediateUses = []ImmediateValueUse{
		{Literal: Token{Kind: TokNumberLiteral, Number: 1}, Text: "#1", PatchAddress: 0, Line: 1},
	}

	err := resolveImmediates(st)
	require.NotNil(t, err)
	assert.Equal(t, ErrImmediateValueDeclarationOutOfMemoryRange, err.Kind)
}

func TestResolveLabelsPatchesByOring(t *testing.T) {
	st := newState()
	st.m[0] = 0xA0 // high bits already set by the opcode word
	st.labelDefs = []LabelDefinition{{Name: "target", Address: 0x1234, Line: 1}}
	st.labelUses = []LabelUse{
		{Name: "target", Offset: 0, ByteIndex: 0, PatchAddress: 1, Line: 1},
		{Name: "target", Offset: 0, ByteIndex: 1, PatchAddress: 0, Line: 1},
	}

	err := resolveLabels(st)
	require.Nil(t, err)
	assert.Equal(t, byte(0x34), st.m[1])
	assert.Equal(t, byte(0xA0|0x12), st.m[0])
}

func TestResolveLabelsUndefinedLabel(t *testing.T) {
	st := newState()
	st.labelUses = []LabelUse{{Name: "missing", PatchAddress: 0, Line: 1}}

	err := resolveLabels(st)
	require.NotNil(t, err)
	assert.Equal(t, ErrUndefinedLabel, err.Kind)
}

func TestResolveLabelsOffsetOutOfRange(t *testing.T) {
	st := newState()
	st.labelDefs = []LabelDefinition{{Name: "near_top", Address: AddressSpaceSize - 1, Line: 1}}
	st.labelUses = []LabelUse{{Name: "near_top", Offset: 2, PatchAddress: 0, Line: 1}}

	err := resolveLabels(st)
	require.NotNil(t, err)
	assert.Equal(t, ErrReferenceToInvalidAddress, err.Kind)
}

func TestBuildSymbolTableLastDefinitionWins(t *testing.T) {
	st := newState()
	st.labelDefs = []LabelDefinition{
		{Name: "first", Address: 10, Line: 1},
		{Name: "second", Address: 10, Line: 2},
	}
	res := &AssemblerResult{}
	buildSymbolTable(st, res)
	assert.Equal(t, "second", res.LabelNameByAddress[10])
}
