package runtime

import "strings"

// Serialize renders v in canonical textual form. Pairs already on the print
// path render as "..." so cyclic structures terminate.
func Serialize(v Value) string {
	p := printer{active: make(map[*Pair]bool)}
	p.write(v)
	return p.b.String()
}

type printer struct {
	b      strings.Builder
	active map[*Pair]bool
}

func (p *printer) write(v Value) {
	switch x := v.(type) {
	case nil:
		p.b.WriteString("()")
	case Number:
		p.b.WriteString(x.String())
	case Symbol:
		p.b.WriteString(string(x))
	case *Pair:
		p.writePair(x)
	case *Builtin:
		p.b.WriteString("#<builtin " + x.Name + ">")
	case *Closure:
		if x.Name == "" {
			p.b.WriteString("#<closure>")
		} else {
			p.b.WriteString("#<closure " + x.Name + ">")
		}
	}
}

func (p *printer) writePair(head *Pair) {
	if p.active[head] {
		p.b.WriteString("...")
		return
	}

	var marked []*Pair
	defer func() {
		for _, m := range marked {
			delete(p.active, m)
		}
	}()

	p.b.WriteByte('(')
	cur := head
	for {
		p.active[cur] = true
		marked = append(marked, cur)
		p.write(cur.Car)

		next, ok := cur.Cdr.(*Pair)
		if !ok {
			break
		}
		if p.active[next] {
			p.b.WriteString(" ...)")
			return
		}
		p.b.WriteByte(' ')
		cur = next
	}

	if cur.Cdr != nil {
		p.b.WriteString(" . ")
		p.write(cur.Cdr)
	}
	p.b.WriteByte(')')
}
