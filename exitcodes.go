package main

import "github.com/lookbusy1344/w16asm/assembler"

// Exit codes map 1-to-1 to the error taxonomy's phase groupings. The
// I/O collaborator errors (file read/write, empty program, bad
// arguments) each get their own code; core-pipeline errors are bucketed
// by the phase that raised them.
const (
	exitOK = 0

	exitCouldNotReadAsmFile      = 1
	exitCouldNotWriteBinFile     = 2
	exitCouldNotWriteSymbolsFile = 3
	exitResultProgramEmpty       = 4
	exitProgramArgumentsInvalid = 5

	exitLexicalError    = 10
	exitStructuralError = 11
	exitSemanticError   = 12
	exitPlacementError  = 13
)

// exitCodeForError buckets an *assembler.Error by the phase that
// raised it, using the ordering of the ErrorKind block boundaries in
// assembler/errors.go.
func exitCodeForError(err *assembler.Error) int {
	switch {
	case err.Kind < assembler.ErrLabelNameNotUnique:
		return exitLexicalError
	case err.Kind < assembler.ErrInvalidInstruction:
		return exitStructuralError
	case err.Kind < assembler.ErrOriginOutOfMemoryRange:
		return exitSemanticError
	default:
		return exitPlacementError
	}
}
