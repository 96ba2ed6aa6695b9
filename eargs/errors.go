package eargs

import (
	"fmt"

	"github.com/vadimr/ext-args/internal/fuzzy"
)

// ErrorType categorizes evaluation errors. Schema categories indicate a
// programmer mistake in the embedded schema string or slot list; input
// categories indicate a user mistake in the argument vector.
type ErrorType string

const (
	// Schema-compile errors.
	ErrorTypeSchemaLex   ErrorType = "schema_lex"
	ErrorTypeSchemaParse ErrorType = "schema_parse"
	ErrorTypeSchemaOrder ErrorType = "schema_order"
	ErrorTypeSlotCount   ErrorType = "slot_count"
	ErrorTypeSlotShape   ErrorType = "slot_shape"

	// Input errors.
	ErrorTypeAmbiguousArgument ErrorType = "ambiguous_argument"
	ErrorTypeMissingValue      ErrorType = "missing_value"
	ErrorTypeUnexpectedInput   ErrorType = "unexpected_input"
	ErrorTypeDuplicateFlag     ErrorType = "duplicate_flag"
	ErrorTypeUnexpectedValue   ErrorType = "unexpected_value"
	ErrorTypeUnknownFlag       ErrorType = "unknown_flag"
	ErrorTypeMissingRequired   ErrorType = "missing_required"
	ErrorTypeNotEnoughArgs     ErrorType = "not_enough_args"
	ErrorTypeTooManyArgs       ErrorType = "too_many_args"
)

// SchemaError reports a malformed schema string or a slot list that does
// not fit the compiled schema. It is a programmer mistake, never a
// runtime condition; callers conventionally treat it as fatal.
type SchemaError struct {
	Type    ErrorType
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

// InputError reports an argument vector that does not match a well-formed
// schema. It is expected, recoverable and user-facing. Flag carries the
// offending spelling when one exists; Suggestion optionally carries a
// "did you mean" hint for unknown flags and is never part of Message.
type InputError struct {
	Type       ErrorType
	Message    string
	Flag       string
	Suggestion string
}

func (e *InputError) Error() string {
	return e.Message
}

func errSchemaLex(excerpt string) *SchemaError {
	return &SchemaError{
		Type:    ErrorTypeSchemaLex,
		Message: fmt.Sprintf("schema lexing error, starting from %q", excerpt),
	}
}

func errSchemaParse(expected, received tokKind, excerpt string) *SchemaError {
	return &SchemaError{
		Type: ErrorTypeSchemaParse,
		Message: fmt.Sprintf("schema parsing error: expected %s but received %s, starting from %q",
			expected, received, excerpt),
	}
}

func errSchemaOrder() *SchemaError {
	return &SchemaError{
		Type:    ErrorTypeSchemaOrder,
		Message: "all optional positional arguments must be chained at the schema's right side",
	}
}

func errSlotCount(want, got int) *SchemaError {
	return &SchemaError{
		Type:    ErrorTypeSlotCount,
		Message: fmt.Sprintf("schema declares %d receiving slots but %d provided", want, got),
	}
}

func errSlotShape(index int, want, got slotKind) *SchemaError {
	return &SchemaError{
		Type:    ErrorTypeSlotShape,
		Message: fmt.Sprintf("slot %d must be a %s slot, not %s", index, want, got),
	}
}

func errAmbiguousArgument(elem string) *InputError {
	return &InputError{
		Type:    ErrorTypeAmbiguousArgument,
		Message: fmt.Sprintf("ambiguous argument %q", elem),
		Flag:    elem,
	}
}

func errValueExpected(elem string) *InputError {
	return &InputError{
		Type:    ErrorTypeMissingValue,
		Message: fmt.Sprintf("a value expected after %q", elem),
		Flag:    elem,
	}
}

func errUnexpectedInput(elem string) *InputError {
	return &InputError{
		Type:    ErrorTypeUnexpectedInput,
		Message: fmt.Sprintf("unexpected input %q", elem),
	}
}

func errDuplicateFlag(text string) *InputError {
	return &InputError{
		Type:    ErrorTypeDuplicateFlag,
		Message: fmt.Sprintf("same argument provided multiple times: %s", text),
		Flag:    text,
	}
}

func errValueRequired(text string) *InputError {
	return &InputError{
		Type:    ErrorTypeMissingValue,
		Message: fmt.Sprintf("%q argument requires a value", text),
		Flag:    text,
	}
}

func errValueNotAccepted(text string) *InputError {
	return &InputError{
		Type:    ErrorTypeUnexpectedValue,
		Message: fmt.Sprintf("%q argument does not accept a value", text),
		Flag:    text,
	}
}

// maxSuggestionDistance bounds the edit distance for unknown-flag hints.
const maxSuggestionDistance = 2

func errUnknownFlag(text string, cs *compiledSchema) *InputError {
	err := &InputError{
		Type:    ErrorTypeUnknownFlag,
		Message: fmt.Sprintf("ambiguous argument %q provided", text),
		Flag:    text,
	}

	candidates := make([]string, len(cs.aliases))
	for i, a := range cs.aliases {
		candidates[i] = a.text
	}
	if best := fuzzy.FindBestFlag(text, candidates, maxSuggestionDistance); best != "" {
		err.Suggestion = fmt.Sprintf("did you mean %q?", best)
	}
	return err
}

func errMissingRequired(alias string, hasAliases bool) *InputError {
	orAlias := ""
	if hasAliases {
		orAlias = "(or alias) "
	}
	return &InputError{
		Type:    ErrorTypeMissingRequired,
		Message: fmt.Sprintf("%q argument %srequired but not provided", alias, orAlias),
		Flag:    alias,
	}
}

func errNotEnoughArgs() *InputError {
	return &InputError{
		Type:    ErrorTypeNotEnoughArgs,
		Message: "not enough positional arguments provided",
	}
}

func errTooManyArgs() *InputError {
	return &InputError{
		Type:    ErrorTypeTooManyArgs,
		Message: "too many positional arguments provided",
	}
}
