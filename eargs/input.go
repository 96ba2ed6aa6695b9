package eargs

import "strings"

// The argument vector has its own micro-grammar, independent of the
// schema language: each element lexes on its own (no cross-element
// state) into flag, equals, value and terminator tokens, and a single
// pass then groups the token stream into flag occurrences and
// positional values.

type inTokKind int

const (
	inFlag inTokKind = iota
	inEql
	inVal
	inEOI
)

// inToken is a view into one argv element. elem keeps the whole
// originating element for diagnostics.
type inToken struct {
	kind inTokKind
	text string
	elem string
}

// occurrence is one observed use of a flag, pre-resolution. group is
// filled in by the matcher.
type occurrence struct {
	text     string
	elem     string
	value    string
	hasValue bool
	group    int
}

// parsedInput is the structured form of the argument vector.
type parsedInput struct {
	tokens      []inToken
	occurrences []occurrence
	positionals []string
}

func (in *parsedInput) reset() {
	in.tokens = in.tokens[:0]
	in.occurrences = in.occurrences[:0]
	in.positionals = in.positionals[:0]
}

// lex tokenizes the argument vector. A flag-shaped prefix followed by
// anything other than "=value" is ambiguous. An element that is exactly
// "--" terminates the stream; everything after it is ignored. An
// implicit terminator is appended when the stream did not end with one.
func (in *parsedInput) lex(args []string) *InputError {
	for _, elem := range args {
		if end := scanFlag(elem, 0); end > 0 {
			in.tokens = append(in.tokens, inToken{inFlag, elem[:end], elem})
			rest := elem[end:]
			if rest == "" {
				continue
			}
			if rest[0] != '=' {
				return errAmbiguousArgument(elem)
			}
			in.tokens = append(in.tokens, inToken{inEql, rest[:1], elem})
			if len(rest) > 1 {
				in.tokens = append(in.tokens, inToken{inVal, rest[1:], elem})
			}
			continue
		}

		// A lone "=value" element assigns a value to a preceding
		// equals-less flag element.
		if strings.HasPrefix(elem, "=") {
			in.tokens = append(in.tokens, inToken{inEql, elem[:1], elem})
			if len(elem) > 1 {
				in.tokens = append(in.tokens, inToken{inVal, elem[1:], elem})
			}
			continue
		}

		if elem == "--" {
			in.tokens = append(in.tokens, inToken{kind: inEOI, elem: elem})
			break
		}

		in.tokens = append(in.tokens, inToken{inVal, elem, elem})
	}

	if n := len(in.tokens); n == 0 || in.tokens[n-1].kind != inEOI {
		in.tokens = append(in.tokens, inToken{kind: inEOI})
	}
	return nil
}

// structure walks the token stream once, grouping it into flag
// occurrences (each possibly carrying an assigned value) and positional
// values, stopping at the terminator.
func (in *parsedInput) structure() *InputError {
	i := 0
	for in.tokens[i].kind != inEOI {
		switch tok := in.tokens[i]; tok.kind {
		case inFlag:
			occ := occurrence{text: tok.text, elem: tok.elem, group: -1}
			i++
			if in.tokens[i].kind == inEql {
				i++
				if in.tokens[i].kind != inVal {
					return errValueExpected(tok.elem)
				}
				occ.value = in.tokens[i].text
				occ.hasValue = true
				i++
			}
			in.occurrences = append(in.occurrences, occ)

		case inVal:
			in.positionals = append(in.positionals, tok.text)
			i++

		default:
			return errUnexpectedInput(tok.elem)
		}
	}
	return nil
}
