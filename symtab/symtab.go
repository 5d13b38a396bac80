// Package symtab renders an assembler.AssemblerResult's label/data-type
// information as the symbol-table CSV described by the CLI surface.
package symtab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lookbusy1344/w16asm/assembler"
)

// Row is one addressed byte of the symbol table.
type Row struct {
	Address int
	Kind    string
	Label   string
}

// Build collects a row for every address where the byte was classified
// by the assembler or carries a label, in ascending address order.
func Build(result *assembler.AssemblerResult) []Row {
	var rows []Row
	for addr := 0; addr < assembler.AddressSpaceSize; addr++ {
		dtype := result.DataType[addr]
		label := result.LabelNameByAddress[addr]
		if dtype == assembler.DataTypeNone && label == "" {
			continue
		}
		rows = append(rows, Row{
			Address: addr,
			Kind:    kindName(addr, dtype),
			Label:   label,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Address < rows[j].Address })
	return rows
}

// kindName applies the memory-mapped I/O special case: address
// IOInterfaceAddress is always reported as "char" regardless of how it
// was classified.
func kindName(addr int, dtype assembler.DataType) string {
	if addr == assembler.IOInterfaceAddress {
		return "char"
	}
	return dtype.String()
}

// Render formats rows as "0xHHHH,<kind>,<label-or-empty>" lines.
func Render(rows []Row) string {
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "0x%04X,%s,%s\n", r.Address, r.Kind, r.Label)
	}
	return b.String()
}
