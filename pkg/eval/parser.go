package eval

import "strconv"

// parser is a cursor over an expression string that has already passed
// the validation pipeline. Grammar, lowest precedence first:
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("*" | "/" | "%") factor }
//	factor = "(" expr ")" | "-" factor | number
//
// Same-precedence operators associate left to right.
type parser struct {
	input string
	pos   int
}

// parse builds the AST for s. Returns a KindMalformed error if s does not
// match the grammar exactly (leftover input counts as a failure).
func parse(s string) (node, error) {
	p := &parser{input: s}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		return nil, errorf(KindMalformed, s, "unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return n, nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) next() byte {
	ch := p.peek()
	p.pos++
	return ch
}

func (p *parser) parseExpr() (node, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '+', '-':
			op := p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			n = binary{op: op, left: n, right: right}
		default:
			return n, nil
		}
	}
}

func (p *parser) parseTerm() (node, error) {
	n, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '*', '/', '%':
			op := p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			n = binary{op: op, left: n, right: right}
		default:
			return n, nil
		}
	}
}

func (p *parser) parseFactor() (node, error) {
	switch ch := p.peek(); {
	case ch == '(':
		p.next()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, errorf(KindMalformed, p.input, "missing ')' at offset %d", p.pos)
		}
		p.next()
		return n, nil
	case ch == '-':
		p.next()
		n, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return unary{op: '-', operand: n}, nil
	case ch >= '0' && ch <= '9' || ch == '.':
		return p.parseNumber()
	case ch == 0:
		return nil, errorf(KindMalformed, p.input, "unexpected end of expression")
	default:
		return nil, errorf(KindMalformed, p.input, "unexpected %q at offset %d", ch, p.pos)
	}
}

func (p *parser) parseNumber() (node, error) {
	start := p.pos
	sawDot := false
	for {
		ch := p.peek()
		if ch >= '0' && ch <= '9' {
			p.next()
			continue
		}
		if ch == '.' && !sawDot {
			sawDot = true
			p.next()
			continue
		}
		break
	}
	text := p.input[start:p.pos]
	if text == "" || text == "." {
		return nil, errorf(KindMalformed, p.input, "expected number at offset %d", start)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, errorf(KindMalformed, p.input, "bad number %q", text)
	}
	return literal(v), nil
}
