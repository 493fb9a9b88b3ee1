package tableau

// parser implements precedence-climbing (Pratt) parsing over the token
// stream produced by lexer, driven entirely by a ConnectiveTable. Unary
// prefix connectives bind tighter than any infix connective of lower
// declared precedence.
type parser struct {
	lx      *lexer
	table   *ConnectiveTable
	cur     token
	started bool
}

// Parse parses src into a Formula using table's connective grammar.
func Parse(src string, table *ConnectiveTable) (*Formula, error) {
	if len(src) == 0 {
		return nil, &ParseError{Kind: "EmptyInput", Pos: 0}
	}
	p := &parser{lx: newLexer(src, table), table: table}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.kind == tokEOF {
		return nil, &ParseError{Kind: "EmptyInput", Pos: 0}
	}
	f, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, &ParseError{Kind: "TrailingInput", Pos: p.cur.pos, Got: p.cur.text}
	}
	return f, nil
}

func (p *parser) advance() error {
	t, err := p.lx.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

// parseExpr parses an expression whose outermost infix connective must
// bind at least as tightly as minPrec (standard precedence climbing).
func (p *parser) parseExpr(minPrec int) (*Formula, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		if p.cur.kind != tokSymbol {
			break
		}
		spec, ok := p.table.Get(p.cur.text)
		if !ok || spec.Fixity != FixityInfix || spec.Precedence < minPrec {
			break
		}

		op := spec
		if err := p.advance(); err != nil {
			return nil, err
		}

		nextMin := op.Precedence + 1
		if op.Associativity == AssocRight {
			nextMin = op.Precedence
		}
		right, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}
		left, err = NewCompound(op.Symbol, 2, left, right)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *parser) parsePrefix() (*Formula, error) {
	switch p.cur.kind {
	case tokAtom:
		name := p.cur.text
		pos := p.cur.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		f, err := NewAtom(name)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Pos = pos
			}
			return nil, err
		}
		return f, nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, &ParseError{Kind: "UnterminatedParen", Pos: p.cur.pos, Expected: ")", Got: p.cur.text}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil

	case tokSymbol:
		spec, ok := p.table.Get(p.cur.text)
		if !ok || spec.Fixity != FixityPrefix {
			return nil, &ParseError{Kind: "UnexpectedToken", Pos: p.cur.pos, Expected: "atom, '(', or prefix connective", Got: p.cur.text}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseExpr(spec.Precedence)
		if err != nil {
			return nil, err
		}
		return NewCompound(spec.Symbol, 1, operand)

	case tokEOF:
		return nil, &ParseError{Kind: "UnexpectedToken", Pos: p.cur.pos, Expected: "atom, '(', or prefix connective", Got: "<eof>"}

	default:
		return nil, &ParseError{Kind: "UnexpectedToken", Pos: p.cur.pos, Got: p.cur.text}
	}
}
