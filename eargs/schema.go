package eargs

// tokKind identifies a schema token.
type tokKind int

const (
	tokEOI tokKind = iota
	tokLBrak
	tokRBrak
	tokPipe
	tokEql
	tokName
	tokFloatArg
	tokDots
)

// String returns the token kind name used in parse diagnostics.
func (k tokKind) String() string {
	switch k {
	case tokEOI:
		return "EOI"
	case tokLBrak:
		return "LBRAK"
	case tokRBrak:
		return "RBRAK"
	case tokPipe:
		return "PIPE"
	case tokEql:
		return "EQL"
	case tokName:
		return "NAME"
	case tokFloatArg:
		return "FLOAT_ARG"
	case tokDots:
		return "DOTS"
	}
	return "UNKNOWN"
}

// token is a view into the schema string, never a copy.
type token struct {
	kind tokKind
	text string
}

// Scanning primitives shared by the schema lexer and the argv lexer.
// Each returns the end index of the scanned production, or the start
// index unchanged when nothing matches there.

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// scanName scans a bare name: a leading letter followed by letters,
// digits, '_' and '-'. A name may not end with '-'.
func scanName(s string, i int) int {
	if i >= len(s) || !isLetter(s[i]) {
		return i
	}
	j := i + 1
	for j < len(s) && isNameByte(s[j]) {
		j++
	}
	if s[j-1] == '-' {
		return i
	}
	return j
}

// scanFlag scans a flag spelling: one or more '-' followed by a name.
func scanFlag(s string, i int) int {
	j := i
	for j < len(s) && s[j] == '-' {
		j++
	}
	if j == i {
		return i
	}
	end := scanName(s, j)
	if end == j {
		return i
	}
	return end
}

// scanDots scans a run of dots that must be exactly three long.
func scanDots(s string, i int) int {
	j := i
	for j < len(s) && s[j] == '.' {
		j++
	}
	if j-i != 3 {
		return i
	}
	return j
}

// positionalSpec describes one declared positional argument.
type positionalSpec struct {
	name     string
	optional bool
}

// floatGroup describes one logical flag: a set of alias spellings
// sharing arity and value rules. hasAssign=false implies both
// assignOptional=false and repeating=false by grammatical construction.
type floatGroup struct {
	optional       bool
	hasAssign      bool
	assignOptional bool
	repeating      bool
	aliasCount     int
	used           bool
}

// aliasSpec binds one flag spelling to its group. The flat list keeps
// schema order, so when two groups declare a colliding spelling the
// first group wins.
type aliasSpec struct {
	text  string
	group int
}

type declKind int

const (
	declPositional declKind = iota
	declGroup
)

// declElement records schema declaration order. Receiver slots are
// supplied by the caller in this order, independent of whether an
// element is positional or floating.
type declElement struct {
	kind declKind
	idx  int
}

// compiledSchema is the output of schema compilation. It is built once
// per evaluation and read-only afterwards, except for the per-group
// usage marks set by the matcher.
type compiledSchema struct {
	positionals  []positionalSpec
	groups       []floatGroup
	aliases      []aliasSpec
	sequence     []declElement
	variadicTail bool
}

// resolveAlias returns the group whose alias set contains text, or -1.
func (cs *compiledSchema) resolveAlias(text string) int {
	for _, a := range cs.aliases {
		if a.text == text {
			return a.group
		}
	}
	return -1
}

// firstAlias returns the first declared spelling of a group.
func (cs *compiledSchema) firstAlias(group int) string {
	for _, a := range cs.aliases {
		if a.group == group {
			return a.text
		}
	}
	return ""
}

// slotCount returns the number of receiver slots the schema requires.
func (cs *compiledSchema) slotCount() int {
	n := len(cs.sequence)
	if cs.variadicTail {
		n++
	}
	return n
}

func (cs *compiledSchema) reset() {
	cs.positionals = cs.positionals[:0]
	cs.groups = cs.groups[:0]
	cs.aliases = cs.aliases[:0]
	cs.sequence = cs.sequence[:0]
	cs.variadicTail = false
}
