// Package eargs matches an argument vector against a declarative schema
// string and binds the results into caller-supplied slots.
//
// A schema declares positional arguments, flag groups with aliases, and
// an optional variadic tail:
//
//	-f|--flag1=val [--flag2] [-f3[=val]] [-D=val...] fname lname [mname] ...
//
// Square brackets mark an element optional, "=name" makes a flag
// value-bearing, a trailing "..." after the assignment makes it
// repeating, "[=name]" makes the value itself optional, and a trailing
// "..." after all declarations enables a variadic positional tail.
// Evaluate compiles the schema, tokenizes the argument vector, validates
// the two against each other and fills one slot per declared element in
// declaration order.
//
// The pipeline is pure: the argument vector is never mutated and no
// state is shared across calls, so repeated evaluation of the same
// inputs is deterministic. Evaluate is safe for concurrent use.
package eargs

import "github.com/vadimr/ext-args/internal/pool"

// scratch holds the per-evaluation compile and parse state. It is
// recycled across Evaluate calls; everything handed to the caller
// (lists, error messages) is freshly allocated.
type scratch struct {
	cs compiledSchema
	in parsedInput
}

const preAlloc = 8

func newScratch() *scratch {
	return &scratch{
		cs: compiledSchema{
			positionals: make([]positionalSpec, 0, preAlloc),
			groups:      make([]floatGroup, 0, preAlloc),
			aliases:     make([]aliasSpec, 0, preAlloc),
			sequence:    make([]declElement, 0, preAlloc),
		},
		in: parsedInput{
			tokens:      make([]inToken, 0, 2*preAlloc),
			occurrences: make([]occurrence, 0, preAlloc),
			positionals: make([]string, 0, preAlloc),
		},
	}
}

func resetScratch(s *scratch) {
	s.cs.reset()
	s.in.reset()
}

var scratchPool = pool.NewPoolWithReset(newScratch, resetScratch)

// Evaluate compiles schema, matches args against it and binds the
// outcome into slots: one slot per declared element in declaration
// order, plus one trailing List slot when the schema ends with a
// variadic "..." tail.
//
// args is the argument vector excluding the program name and is never
// mutated. When the schema fails to compile, nothing is read from args.
//
// Evaluate returns nil on success, a *SchemaError for a malformed
// schema or a slot list that does not fit it, and an *InputError for
// any runtime mismatch against a well-formed schema.
func Evaluate(args []string, schema string, slots ...Slot) error {
	s := scratchPool.Get()
	defer scratchPool.Put(s)

	if err := compileSchema(schema, &s.cs); err != nil {
		return err
	}
	if err := validateSlots(&s.cs, slots); err != nil {
		return err
	}
	if err := s.in.lex(args); err != nil {
		return err
	}
	if err := s.in.structure(); err != nil {
		return err
	}
	if err := matchInput(&s.cs, &s.in); err != nil {
		return err
	}
	bindInput(&s.cs, &s.in, slots)
	return nil
}
