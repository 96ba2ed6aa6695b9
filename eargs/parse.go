package eargs

// Schema grammar:
//
//	synopsis:  decl* DOTS? EOI
//	decl:      arg | LBRAK arg RBRAK
//	arg:       NAME | FLOAT_ARG (PIPE FLOAT_ARG)* (assignval DOTS? | LBRAK assignval RBRAK)?
//	assignval: EQL NAME
//
// The parser is recursive descent with backtracking: every alternative
// saves the cursor and restores it on failure without committing partial
// results. Lexing errors and mandatory-match failures abort the whole
// compilation via a compileFailure panic recovered in compileSchema;
// declined alternatives are ordinary control flow and never observable.

// compileFailure carries a *SchemaError out of the backtracking parser
// without threading an error return through every alternative.
type compileFailure struct {
	err *SchemaError
}

type schemaParser struct {
	src string
	pos int

	// last holds the most recently matched token so the save helpers
	// can pick up its text.
	last token

	// optionalDecl is set while parsing the body of a bracketed decl.
	optionalDecl bool

	cs *compiledSchema
}

// next lexes the next schema token, skipping whitespace runs. Input
// matching no token kind is a lexing error reported from the offending
// position, even when reached during a speculative alternative.
func (p *schemaParser) next() token {
	for p.pos < len(p.src) {
		if isSpace(p.src[p.pos]) {
			p.pos++
			continue
		}

		start := p.pos
		switch p.src[p.pos] {
		case '[':
			p.pos++
			return token{tokLBrak, p.src[start:p.pos]}
		case ']':
			p.pos++
			return token{tokRBrak, p.src[start:p.pos]}
		case '|':
			p.pos++
			return token{tokPipe, p.src[start:p.pos]}
		case '=':
			p.pos++
			return token{tokEql, p.src[start:p.pos]}
		}

		if end := scanName(p.src, p.pos); end != p.pos {
			p.pos = end
			return token{tokName, p.src[start:end]}
		}
		if end := scanFlag(p.src, p.pos); end != p.pos {
			p.pos = end
			return token{tokFloatArg, p.src[start:end]}
		}
		if end := scanDots(p.src, p.pos); end != p.pos {
			p.pos = end
			return token{tokDots, p.src[start:end]}
		}

		panic(compileFailure{errSchemaLex(p.src[start:])})
	}
	return token{kind: tokEOI}
}

// match consumes the next token when it has the wanted kind. A failed
// mandatory match aborts compilation with a parse error carrying the
// expected kind, the found kind, and the excerpt from the pre-token
// cursor; a failed optional match restores the cursor and reports false.
func (p *schemaParser) match(kind tokKind, mandatory bool) bool {
	bk := p.pos
	t := p.next()
	if t.kind == kind {
		p.last = t
		return true
	}
	if mandatory {
		panic(compileFailure{errSchemaParse(kind, t.kind, p.src[bk:])})
	}
	p.pos = bk
	return false
}

// assignVal parses "= NAME".
func (p *schemaParser) assignVal(mandatory bool) bool {
	bk := p.pos
	if !p.match(tokEql, mandatory) {
		return false
	}
	if !p.match(tokName, mandatory) {
		p.pos = bk
		return false
	}
	return true
}

func (p *schemaParser) savePositional() {
	p.cs.sequence = append(p.cs.sequence, declElement{declPositional, len(p.cs.positionals)})
	p.cs.positionals = append(p.cs.positionals, positionalSpec{
		name:     p.last.text,
		optional: p.optionalDecl,
	})
}

func (p *schemaParser) saveAlias(group int) {
	p.cs.aliases = append(p.cs.aliases, aliasSpec{text: p.last.text, group: group})
}

func (p *schemaParser) saveGroup(hasAssign, repeating bool, aliasCount int) {
	p.cs.sequence = append(p.cs.sequence, declElement{declGroup, len(p.cs.groups)})
	p.cs.groups = append(p.cs.groups, floatGroup{
		optional:   p.optionalDecl,
		hasAssign:  hasAssign,
		repeating:  repeating,
		aliasCount: aliasCount,
	})
}

// arg parses a positional name or a flag group declaration. A bare name
// commits immediately as a positional; a flag declaration collects its
// alias list left to right, then tries the three value modes: "=name"
// (mandatory value), "=name..." (repeating), or "[=name]" (optional
// value). The modes are mutually exclusive by construction.
func (p *schemaParser) arg(mandatory bool) bool {
	if p.match(tokName, false) {
		p.savePositional()
		return true
	}

	if !p.match(tokFloatArg, mandatory) {
		return false
	}

	group := len(p.cs.groups)
	aliasBk := len(p.cs.aliases)
	p.saveAlias(group)

	bk := p.pos
	aliasCount := 1
	for p.match(tokPipe, false) {
		if !p.match(tokFloatArg, mandatory) {
			p.pos = bk
			p.cs.aliases = p.cs.aliases[:aliasBk]
			return false
		}
		p.saveAlias(group)
		aliasCount++
	}

	if p.assignVal(false) {
		repeating := p.match(tokDots, false)
		p.saveGroup(true, repeating, aliasCount)
		return true
	}

	p.saveGroup(false, false, aliasCount)

	bk = p.pos
	if !p.match(tokLBrak, false) {
		return true
	}
	if !p.assignVal(false) {
		p.pos = bk
		return true
	}
	if !p.match(tokRBrak, false) {
		p.pos = bk
		return true
	}

	p.cs.groups[group].hasAssign = true
	p.cs.groups[group].assignOptional = true
	return true
}

// decl parses one declaration, bracketed declarations marking their
// element optional.
func (p *schemaParser) decl(mandatory bool) bool {
	p.optionalDecl = false
	if p.arg(false) {
		return true
	}

	bk := p.pos
	if !p.match(tokLBrak, mandatory) {
		return false
	}

	p.optionalDecl = true
	if !p.arg(mandatory) {
		p.pos = bk
		return false
	}
	if !p.match(tokRBrak, mandatory) {
		p.pos = bk
		return false
	}
	return true
}

func (p *schemaParser) synopsis() {
	for p.decl(false) {
	}
	if p.match(tokDots, false) {
		p.cs.variadicTail = true
	}
	p.match(tokEOI, true)
}

// compileSchema compiles the schema string into cs. On failure cs holds
// no usable schema and the error describes the first lexing, parsing or
// ordering violation.
func compileSchema(schema string, cs *compiledSchema) (err *SchemaError) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(compileFailure)
			if !ok {
				panic(r)
			}
			err = f.err
		}
	}()

	p := &schemaParser{src: schema, cs: cs}
	p.synopsis()

	// Schemas like "[a] b" are rejected; "a [b]" is fine.
	for i := 0; i+1 < len(cs.positionals); i++ {
		if cs.positionals[i].optional && !cs.positionals[i+1].optional {
			return errSchemaOrder()
		}
	}
	return nil
}
