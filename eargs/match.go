package eargs

// matchInput cross-checks the parsed input against the compiled schema.
// Each occurrence resolves against the alias lists by exact text match,
// then the flag-shape/occurrence truth table applies: a reused
// non-repeating group, a value-bearing group supplied bare (unless its
// value is optional) and a pure boolean group supplied with a value are
// all errors. Afterwards unused mandatory groups and positional arity
// are checked. Resolved group indices are stored on the occurrences for
// the binder.
func matchInput(cs *compiledSchema, in *parsedInput) *InputError {
	for oi := range in.occurrences {
		occ := &in.occurrences[oi]

		gi := cs.resolveAlias(occ.text)
		if gi < 0 {
			return errUnknownFlag(occ.text, cs)
		}

		g := &cs.groups[gi]
		if g.used && !g.repeating {
			return errDuplicateFlag(occ.text)
		}
		if g.hasAssign {
			if !occ.hasValue && !g.assignOptional {
				return errValueRequired(occ.text)
			}
		} else if occ.hasValue {
			return errValueNotAccepted(occ.text)
		}

		g.used = true
		occ.group = gi
	}

	for gi := range cs.groups {
		g := &cs.groups[gi]
		if g.used || g.optional {
			continue
		}
		return errMissingRequired(cs.firstAlias(gi), g.aliasCount > 1)
	}

	mandatory := 0
	for _, pa := range cs.positionals {
		if !pa.optional {
			mandatory++
		}
	}
	if len(in.positionals) < mandatory {
		return errNotEnoughArgs()
	}
	if !cs.variadicTail && len(in.positionals) > len(cs.positionals) {
		return errTooManyArgs()
	}
	return nil
}
