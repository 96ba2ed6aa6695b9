package eargs

// Value is the bound result for a value-bearing flag or a positional
// argument. It distinguishes three states: absent, present without a
// value (a flag with an optional value supplied bare), and present with
// a value, which may legitimately be the empty string.
type Value struct {
	present bool
	hasText bool
	text    string
}

// Present reports whether the flag or positional was supplied at all.
func (v Value) Present() bool {
	return v.present
}

// HasValue reports whether a value accompanied the flag. It is false
// both when the element is absent and when a flag with an optional
// value was supplied bare.
func (v Value) HasValue() bool {
	return v.hasText
}

// Get returns the supplied value and whether one exists.
func (v Value) Get() (string, bool) {
	if !v.hasText {
		return "", false
	}
	return v.text, true
}

// String returns the supplied value, or "" when none exists.
func (v Value) String() string {
	return v.text
}

type slotKind int

const (
	slotDiscard slotKind = iota
	slotBool
	slotValue
	slotList
)

func (k slotKind) String() string {
	switch k {
	case slotDiscard:
		return "discard"
	case slotBool:
		return "bool"
	case slotValue:
		return "value"
	case slotList:
		return "list"
	}
	return "unknown"
}

// Slot is a receiver handle for one declared schema element. Callers
// pass one Slot per declaration, in schema order, plus one trailing
// List slot when the schema ends with a variadic "..." tail.
type Slot struct {
	kind slotKind
	b    *bool
	v    *Value
	l    *[]string
}

// Bool returns a Slot receiving the presence of a pure boolean flag.
// A nil pointer discards the value.
func Bool(p *bool) Slot {
	return Slot{kind: slotBool, b: p}
}

// String returns a Slot receiving a value-bearing flag or a positional
// argument. A nil pointer discards the value.
func String(p *Value) Slot {
	return Slot{kind: slotValue, v: p}
}

// List returns a Slot receiving a repeating flag's values or the
// variadic positional tail. A nil pointer discards the value.
func List(p *[]string) Slot {
	return Slot{kind: slotList, l: p}
}

// Discard returns an inert Slot that accepts any element and drops it.
func Discard() Slot {
	return Slot{kind: slotDiscard}
}

func (s Slot) setBool(v bool) {
	if s.b != nil {
		*s.b = v
	}
}

func (s Slot) setValue(v Value) {
	if s.v != nil {
		*s.v = v
	}
}

func (s Slot) setList(v []string) {
	if s.l != nil {
		*s.l = v
	}
}

// neededSlotKind returns the slot shape a declared element binds to.
func neededSlotKind(cs *compiledSchema, el declElement) slotKind {
	if el.kind == declPositional {
		return slotValue
	}
	g := &cs.groups[el.idx]
	switch {
	case g.repeating:
		return slotList
	case g.hasAssign:
		return slotValue
	default:
		return slotBool
	}
}

// validateSlots checks the slot list against the compiled schema before
// any input is read, so that binding itself cannot fail.
func validateSlots(cs *compiledSchema, slots []Slot) *SchemaError {
	if want := cs.slotCount(); len(slots) != want {
		return errSlotCount(want, len(slots))
	}
	for i, el := range cs.sequence {
		need := neededSlotKind(cs, el)
		if got := slots[i].kind; got != slotDiscard && got != need {
			return errSlotShape(i, need, got)
		}
	}
	if cs.variadicTail {
		i := len(slots) - 1
		if got := slots[i].kind; got != slotDiscard && got != slotList {
			return errSlotShape(i, slotList, got)
		}
	}
	return nil
}

// bindInput writes final values into the slots in declaration order.
// Repeating groups and the variadic tail always bind to freshly
// allocated, non-nil lists whose ownership passes to the caller; a
// non-repeating optional element absent at runtime binds to the absent
// Value state.
func bindInput(cs *compiledSchema, in *parsedInput, slots []Slot) {
	for i, el := range cs.sequence {
		slot := slots[i]

		if el.kind == declPositional {
			var v Value
			if el.idx < len(in.positionals) {
				v = Value{present: true, hasText: true, text: in.positionals[el.idx]}
			}
			slot.setValue(v)
			continue
		}

		g := &cs.groups[el.idx]
		switch {
		case g.repeating:
			slot.setList(repeatedValues(in, el.idx))
		case g.hasAssign:
			slot.setValue(groupValue(g, in, el.idx))
		default:
			slot.setBool(g.used)
		}
	}

	if cs.variadicTail {
		tail := make([]string, 0, max(len(in.positionals)-len(cs.positionals), 0))
		if n := len(cs.positionals); len(in.positionals) > n {
			tail = append(tail, in.positionals[n:]...)
		}
		slots[len(slots)-1].setList(tail)
	}
}

// repeatedValues collects a repeating group's assigned values in
// occurrence order. Repeating occurrences always carry a value; the
// matcher rejected bare ones.
func repeatedValues(in *parsedInput, group int) []string {
	n := 0
	for _, occ := range in.occurrences {
		if occ.group == group {
			n++
		}
	}
	vals := make([]string, 0, n)
	for _, occ := range in.occurrences {
		if occ.group == group {
			vals = append(vals, occ.value)
		}
	}
	return vals
}

// groupValue computes the bound Value for a non-repeating value-bearing
// group: the assigned value when one was supplied, the present-but-empty
// state when the flag appeared bare, absent when the group went unused.
func groupValue(g *floatGroup, in *parsedInput, group int) Value {
	if !g.used {
		return Value{}
	}
	for _, occ := range in.occurrences {
		if occ.group != group {
			continue
		}
		if occ.hasValue {
			return Value{present: true, hasText: true, text: occ.value}
		}
		return Value{present: true}
	}
	return Value{}
}
