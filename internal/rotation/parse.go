// Package rotation parses cast-priority entries. an entry is a spell id,
// optionally gated on run state:
//
//	fireball
//	chain_spark if enemies >= 3
//	meteor_shard if energy > 40 && enemies >= 2
//
// fields come from whatever Env the caller evaluates against; the parser
// only checks grammar
package rotation

import (
	"fmt"
	"strconv"
)

// Entry is one parsed rotation line
type Entry struct {
	SpellID string
	Conds   []Condition
}

// Condition gates an entry on a named run-state field
type Condition struct {
	Field string
	Op    string
	Value float64
}

// Env supplies field values at evaluation time
type Env func(field string) (float64, bool)

// Ready reports whether every condition holds under env. unknown fields
// fail the entry rather than the run
func (e Entry) Ready(env Env) bool {
	for _, c := range e.Conds {
		v, ok := env(c.Field)
		if !ok {
			return false
		}
		if !c.holds(v) {
			return false
		}
	}
	return true
}

func (c Condition) holds(v float64) bool {
	switch c.Op {
	case ">":
		return v > c.Value
	case ">=":
		return v >= c.Value
	case "<":
		return v < c.Value
	case "<=":
		return v <= c.Value
	case "==":
		return v == c.Value
	case "!=":
		return v != c.Value
	}
	return false
}

type parser struct {
	tokens []item
	pos    int
}

// Parse parses one rotation entry
func Parse(line string) (Entry, error) {
	p := &parser{tokens: lex(line)}
	var e Entry

	t := p.next()
	if t.typ != itemIdent {
		return e, fmt.Errorf("rotation %q: expected spell id, got %v", line, t)
	}
	e.SpellID = t.val

	t = p.next()
	if t.typ == itemEOF {
		return e, nil
	}
	if t.typ != itemIf {
		return e, fmt.Errorf("rotation %q: expected if, got %v", line, t)
	}

	for {
		c, err := p.condition()
		if err != nil {
			return e, fmt.Errorf("rotation %q: %w", line, err)
		}
		e.Conds = append(e.Conds, c)

		t = p.next()
		if t.typ == itemEOF {
			return e, nil
		}
		if t.typ != itemAnd {
			return e, fmt.Errorf("rotation %q: expected &&, got %v", line, t)
		}
	}
}

// ParseAll parses every entry, failing on the first bad line
func ParseAll(lines []string) ([]Entry, error) {
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		e, err := Parse(line)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (p *parser) condition() (Condition, error) {
	var c Condition
	t := p.next()
	if t.typ != itemIdent {
		return c, fmt.Errorf("expected field, got %v", t)
	}
	c.Field = t.val

	t = p.next()
	if t.typ != itemOp {
		return c, fmt.Errorf("expected comparison, got %v", t)
	}
	switch t.val {
	case ">", ">=", "<", "<=", "==", "!=":
	default:
		return c, fmt.Errorf("bad comparison %q", t.val)
	}
	c.Op = t.val

	t = p.next()
	if t.typ != itemNumber {
		return c, fmt.Errorf("expected number, got %v", t)
	}
	v, err := strconv.ParseFloat(t.val, 64)
	if err != nil {
		return c, fmt.Errorf("bad number %q: %w", t.val, err)
	}
	c.Value = v
	return c, nil
}

func (p *parser) next() item {
	if p.pos >= len(p.tokens) {
		return item{typ: itemEOF}
	}
	t := p.tokens[p.pos]
	p.pos++
	return t
}
