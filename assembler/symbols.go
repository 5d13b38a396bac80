package assembler

// LabelDefinition names an address. It is created at the statement-head
// position, then possibly rebased if the statement turns out to be a
// placement directive (.ORG/.ALIGN).
type LabelDefinition struct {
	Name    string
	Address int
	Line    int
}

// LabelUse is a deferred patch site: byte `ByteIndex` of the address
// bound to Name (plus Offset) is OR-ed into M[PatchAddress] once the
// resolver runs.
type LabelUse struct {
	Name         string
	Offset       int64
	ByteIndex    int
	PatchAddress int
	Line         int
}

// ImmediateValueUse records a `#value` operand. PatchAddress is always
// an instruction's two-byte slot; the resolver turns this into two
// LabelUses once it has synthesized (or found) backing storage for the
// literal's decoded value. Text is the original "#..." source span,
// used verbatim as the synthetic label's name the first time a given
// value is seen.
type ImmediateValueUse struct {
	Literal      Token
	Text         string
	PatchAddress int
	Line         int
}
