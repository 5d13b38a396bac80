package assembler

// parser drives statement-by-statement consumption of the token
// stream, mutating the shared state. It holds at most one token of
// pushback, the minimum lookahead the grammar needs since label
// definitions are already a distinct token kind (the tokenizer folds
// the trailing ':' in, unlike the teacher's separate Identifier+Colon
// lookahead).
type parser struct {
	lx       *Lexer
	st       *state
	buffered *Token
}

func newParser(lx *Lexer, st *state) *parser {
	return &parser{lx: lx, st: st}
}

func (p *parser) next() (Token, *Error) {
	if p.buffered != nil {
		t := *p.buffered
		p.buffered = nil
		return t, nil
	}
	return p.lx.Next()
}

// parseProgram consumes statements until EOF.
func (p *parser) parseProgram() *Error {
	for {
		done, err := p.parseStatement()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (p *parser) parseStatement() (bool, *Error) {
	p.st.beginStatement()
	for {
		tok, err := p.next()
		if err != nil {
			return false, err
		}
		if tok.Kind == TokLabelDefinition {
			if err := p.defineLabel(tok); err != nil {
				return false, err
			}
			continue
		}
		return p.parseStatementHead(tok)
	}
}

func (p *parser) defineLabel(tok Token) *Error {
	for _, existing := range p.st.labelDefs {
		if existing.Name == tok.Text {
			return newError(ErrLabelNameNotUnique, tok.Line, "label %q is already defined", tok.Text)
		}
	}
	p.st.labelDefs = append(p.st.labelDefs, LabelDefinition{
		Name:    tok.Text,
		Address: p.st.cursor,
		Line:    tok.Line,
	})
	return nil
}

func (p *parser) parseStatementHead(tok Token) (bool, *Error) {
	switch tok.Kind {
	case TokEOF:
		if len(p.st.labelDefs) > p.st.labelDefsFromIndex {
			return false, newError(ErrUnexpectedLabelAtEndOfFile, tok.Line, "label definition has no following statement")
		}
		return true, nil
	case TokIdentifier:
		op, ok := lookupMnemonic(tok.Text)
		if !ok {
			return false, newError(ErrInvalidInstruction, tok.Line, "%q is not a recognized instruction", tok.Text)
		}
		return false, p.parseInstruction(op, tok.Line)
	case TokDirective:
		dir, ok := lookupDirective(tok.Text)
		if !ok {
			return false, newError(ErrInvalidDirective, tok.Line, "%q is not a recognized directive", tok.Text)
		}
		return false, p.parseDirective(dir, tok.Line)
	case TokStringLiteral:
		return false, p.declareString(tok)
	case TokNumberLiteral:
		return false, p.declareNumber(tok)
	case TokCharacterLiteral:
		return false, p.declareCharacter(tok)
	default:
		return false, newError(ErrInvalidToken, tok.Line, "unexpected token at start of statement")
	}
}

func (p *parser) emitInstructionWord(addr int, word uint16, line int) *Error {
	if err := p.st.writeInstruction(addr, byte(word&0xFF), byte(word>>8), line); err != nil {
		return err
	}
	p.st.cursor = addr + 2
	return nil
}

func (p *parser) parseInstruction(op Opcode, line int) *Error {
	addr := p.st.cursor
	word := uint16(op) << 13

	operand, err := p.next()
	if err != nil {
		return err
	}

	switch operand.Kind {
	case TokNumberLiteral:
		v, e := evalNumberLiteral(operand, RangeAddress)
		if e != nil {
			return e
		}
		word |= uint16(v)
		return p.emitInstructionWord(addr, word, line)
	case TokIdentifier:
		name, offset, e := splitLabelRef(operand.Text, operand.Line)
		if e != nil {
			return e
		}
		p.st.labelUses = append(p.st.labelUses,
			LabelUse{Name: name, Offset: offset, ByteIndex: 0, PatchAddress: addr, Line: operand.Line},
			LabelUse{Name: name, Offset: offset, ByteIndex: 1, PatchAddress: addr + 1, Line: operand.Line},
		)
		return p.emitInstructionWord(addr, word, line)
	case TokImmediateRef:
		if !op.allowsImmediate() {
			return newError(ErrInvalidInstructionArgument, operand.Line, "%s does not accept an immediate operand", op)
		}
		p.st.immediateUses = append(p.st.immediateUses, ImmediateValueUse{
			Literal:      *operand.Inner,
			Text:         operand.Text,
			PatchAddress: addr,
			Line:         operand.Line,
		})
		return p.emitInstructionWord(addr, word, line)
	default:
		if operand.Kind == TokEOF {
			return newError(ErrUnexpectedEndOfFile, operand.Line, "instruction has no operand")
		}
		return newError(ErrInvalidInstructionArgument, operand.Line, "invalid instruction operand")
	}
}

func (p *parser) parseDirective(dir Directive, line int) *Error {
	switch dir {
	case DirOrg:
		return p.parseOrg(line)
	case DirAlign:
		return p.parseAlign(line)
	case DirFill:
		return p.parseFill(line)
	case DirLsb:
		return p.parseLabelByteRef(0, line)
	case DirMsb:
		return p.parseLabelByteRef(1, line)
	case DirImmediates:
		return resolveImmediates(p.st)
	default:
		return newError(ErrInvalidDirective, line, "unhandled directive")
	}
}

func (p *parser) parseOrg(line int) *Error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != TokNumberLiteral {
		if tok.Kind == TokEOF {
			return newError(ErrUnexpectedEndOfFile, tok.Line, ".ORG requires a number literal argument")
		}
		return newError(ErrInvalidDirectiveArgument, tok.Line, ".ORG requires a number literal argument")
	}
	n := tok.Number
	if n < 0 || n >= AddressSpaceSize {
		return newError(ErrOriginOutOfMemoryRange, tok.Line, ".ORG address %d is out of memory range", n)
	}
	p.st.cursor = int(n)
	p.st.rebaseStatementLabels()
	return nil
}

func (p *parser) parseAlign(line int) *Error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != TokNumberLiteral {
		if tok.Kind == TokEOF {
			return newError(ErrUnexpectedEndOfFile, tok.Line, ".ALIGN requires a number literal argument")
		}
		return newError(ErrInvalidDirectiveArgument, tok.Line, ".ALIGN requires a number literal argument")
	}
	k := tok.Number
	if k < 1 || k > 12 {
		return newError(ErrInvalidAlignParameter, tok.Line, ".ALIGN parameter %d out of range [1,12]", k)
	}
	mask := (int64(1) << uint(k)) - 1
	cur := int64(p.st.cursor)
	if cur&mask != 0 {
		cur = (cur &^ mask) + mask + 1
	}
	if cur >= AddressSpaceSize {
		return newError(ErrOriginOutOfMemoryRange, tok.Line, ".ALIGN result %d is out of memory range", cur)
	}
	p.st.cursor = int(cur)
	p.st.rebaseStatementLabels()
	return nil
}

func (p *parser) parseFill(line int) *Error {
	valTok, err := p.next()
	if err != nil {
		return err
	}
	if valTok.Kind != TokNumberLiteral && valTok.Kind != TokCharacterLiteral && valTok.Kind != TokStringLiteral {
		if valTok.Kind == TokEOF {
			return newError(ErrUnexpectedEndOfFile, valTok.Line, ".FILL requires a value argument")
		}
		return newError(ErrInvalidDirectiveArgument, valTok.Line, ".FILL value must be a number, character, or string literal")
	}
	if !p.lx.consumeComma() {
		return newError(ErrMissingComma, valTok.Line, ".FILL value must be followed immediately by ','")
	}
	countTok, err := p.next()
	if err != nil {
		return err
	}
	if countTok.Kind != TokNumberLiteral {
		if countTok.Kind == TokEOF {
			return newError(ErrUnexpectedEndOfFile, countTok.Line, ".FILL requires a count argument")
		}
		return newError(ErrInvalidDirectiveArgument, countTok.Line, ".FILL count must be a number literal")
	}
	count := countTok.Number
	if count <= 0 {
		return newError(ErrFillCountNotPositive, countTok.Line, ".FILL count must be positive")
	}
	value, dtype, e := evalByteLiteral(valTok)
	if e != nil {
		return e
	}
	for i := int64(0); i < count; i++ {
		if err := p.st.writeByte(p.st.cursor, value, dtype, line); err != nil {
			return err
		}
		p.st.cursor++
	}
	return nil
}

func (p *parser) parseLabelByteRef(byteIndex int, line int) *Error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != TokIdentifier {
		if tok.Kind == TokEOF {
			return newError(ErrUnexpectedEndOfFile, tok.Line, ".LSB/.MSB requires a label reference")
		}
		return newError(ErrInvalidDirectiveArgument, tok.Line, ".LSB/.MSB requires a label reference")
	}
	name, offset, e := splitLabelRef(tok.Text, tok.Line)
	if e != nil {
		return e
	}
	addr := p.st.cursor
	if err := p.st.writeByte(addr, 0, DataTypeInt, line); err != nil {
		return err
	}
	p.st.labelUses = append(p.st.labelUses, LabelUse{
		Name: name, Offset: offset, ByteIndex: byteIndex, PatchAddress: addr, Line: tok.Line,
	})
	p.st.cursor++
	return nil
}

func (p *parser) declareString(tok Token) *Error {
	for i := 0; i < len(tok.Text); i++ {
		if err := p.st.writeByte(p.st.cursor, tok.Text[i], DataTypeChar, tok.Line); err != nil {
			return err
		}
		p.st.cursor++
	}
	if tok.ZeroTerminate {
		if err := p.st.writeByte(p.st.cursor, 0, DataTypeChar, tok.Line); err != nil {
			return err
		}
		p.st.cursor++
	}
	return nil
}

func (p *parser) declareNumber(tok Token) *Error {
	v, e := evalNumberLiteral(tok, RangeByte)
	if e != nil {
		return e
	}
	if err := p.st.writeByte(p.st.cursor, byte(v), DataTypeInt, tok.Line); err != nil {
		return err
	}
	p.st.cursor++
	return nil
}

func (p *parser) declareCharacter(tok Token) *Error {
	if isEmptyCharLiteral(tok) {
		return nil
	}
	v, e := evalCharLiteral(tok)
	if e != nil {
		return e
	}
	if err := p.st.writeByte(p.st.cursor, v, DataTypeChar, tok.Line); err != nil {
		return err
	}
	p.st.cursor++
	return nil
}
