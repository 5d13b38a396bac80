package symtab_test

import (
	"strings"
	"testing"

	"github.com/lookbusy1344/w16asm/assembler"
	"github.com/lookbusy1344/w16asm/symtab"
)

func TestBuildSkipsUnaddressedBytes(t *testing.T) {
	res, err := assembler.Assemble([]byte("start: LD data\nJMP start\ndata: 0x2A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := symtab.Build(res)
	// Address 1 and 3 are the high bytes of the two instructions: W is
	// true but DataType is None and they carry no label, so Build skips
	// them, leaving three rows.
	if len(rows) != 3 {
		t.Fatalf("expected 3 addressed rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Address != 0 || rows[0].Label != "start" || rows[0].Kind != "instruction" {
		t.Errorf("row 0: %+v", rows[0])
	}
	if rows[len(rows)-1].Address != 4 || rows[len(rows)-1].Label != "data" {
		t.Errorf("last row: %+v", rows[len(rows)-1])
	}
}

func TestBuildForcesIOAddressToChar(t *testing.T) {
	res, err := assembler.Assemble([]byte(".ORG 0x1FFF\n0x01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := symtab.Build(res)
	if len(rows) != 1 || rows[0].Address != 0x1FFF || rows[0].Kind != "char" {
		t.Fatalf("expected a single forced-char row at 0x1FFF, got %+v", rows)
	}
}

func TestRenderFormat(t *testing.T) {
	rows := []symtab.Row{
		{Address: 0, Kind: "instruction", Label: "start"},
		{Address: 4, Kind: "int", Label: "data"},
	}
	out := symtab.Render(rows)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "0x0000,instruction,start" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "0x0004,int,data" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderEmptyLabelColumn(t *testing.T) {
	rows := []symtab.Row{{Address: 7, Kind: "char", Label: ""}}
	out := symtab.Render(rows)
	if out != "0x0007,char,\n" {
		t.Errorf("got %q", out)
	}
}
