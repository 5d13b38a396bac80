// Package image is the "external collaborator" that turns an
// assembler.AssemblerResult into the two on-disk artifacts the CLI
// produces: the flat binary image and the symbol-table CSV.
package image

import (
	"errors"
	"os"

	"github.com/lookbusy1344/w16asm/assembler"
	"github.com/lookbusy1344/w16asm/symtab"
)

// ErrProgramEmpty is returned when the assembled program has no
// addressed bytes at all (the ResultProgramEmpty condition of the
// error taxonomy).
var ErrProgramEmpty = errors.New("assembled program is empty")

// ProgramSize computes 1 + the highest addressed byte, with one extra
// byte when that byte is the low byte of an instruction's two-byte
// slot — the high byte's DataType is always None, so it would
// otherwise be invisible to this formula.
func ProgramSize(result *assembler.AssemblerResult) int {
	maxAddr := -1
	for i := 0; i < assembler.AddressSpaceSize; i++ {
		if result.DataType[i] != assembler.DataTypeNone {
			maxAddr = i
		}
	}
	if maxAddr < 0 {
		return 0
	}
	size := maxAddr + 1
	if result.DataType[maxAddr] == assembler.DataTypeInstruction {
		size++
	}
	return size
}

// Bytes returns the binary image's bytes, or ErrProgramEmpty if
// nothing was ever addressed.
func Bytes(result *assembler.AssemblerResult) ([]byte, error) {
	size := ProgramSize(result)
	if size == 0 {
		return nil, ErrProgramEmpty
	}
	return result.ProgramMemory[:size], nil
}

// WriteBinary writes the assembled image to path.
func WriteBinary(path string, result *assembler.AssemblerResult) error {
	data, err := Bytes(result)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteSymbols writes the symbol-table CSV to path.
func WriteSymbols(path string, result *assembler.AssemblerResult) error {
	rows := symtab.Build(result)
	return os.WriteFile(path, []byte(symtab.Render(rows)), 0o644)
}
