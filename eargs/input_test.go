//nolint:testpackage // using package name 'eargs' to inspect the token stream
package eargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func lexAndStructure(t *testing.T, args []string) (*parsedInput, *InputError) {
	t.Helper()
	in := &parsedInput{}
	if err := in.lex(args); err != nil {
		return in, err
	}
	return in, in.structure()
}

func TestInputLexAmbiguousArgument(t *testing.T) {
	_, err := lexAndStructure(t, []string{"-a.one"})
	if err == nil {
		t.Fatal("expected input error")
	}
	if err.Type != ErrorTypeAmbiguousArgument {
		t.Errorf("expected %s, got %s", ErrorTypeAmbiguousArgument, err.Type)
	}
	if want := `ambiguous argument "-a.one"`; err.Message != want {
		t.Errorf("message = %q, expected %q", err.Message, want)
	}
}

func TestInputStructure(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		occurrences []occurrence
		positionals []string
	}{
		{
			name: "flag with attached value",
			args: []string{"-a=1"},
			occurrences: []occurrence{
				{text: "-a", elem: "-a=1", value: "1", hasValue: true, group: -1},
			},
		},
		{
			name: "flag without value",
			args: []string{"--flag"},
			occurrences: []occurrence{
				{text: "--flag", elem: "--flag", group: -1},
			},
		},
		{
			name: "value in following element after dangling equals",
			args: []string{"-a=", "x"},
			occurrences: []occurrence{
				{text: "-a", elem: "-a=", value: "x", hasValue: true, group: -1},
			},
		},
		{
			name: "value in separate equals element",
			args: []string{"-f", "=x"},
			occurrences: []occurrence{
				{text: "-f", elem: "-f", value: "x", hasValue: true, group: -1},
			},
		},
		{
			name: "empty string is a value",
			args: []string{"-a=", ""},
			occurrences: []occurrence{
				{text: "-a", elem: "-a=", value: "", hasValue: true, group: -1},
			},
		},
		{
			name: "plain value after flag stays positional",
			args: []string{"-f", "val"},
			occurrences: []occurrence{
				{text: "-f", elem: "-f", group: -1},
			},
			positionals: []string{"val"},
		},
		{
			name:        "positionals only",
			args:        []string{"one", "two"},
			positionals: []string{"one", "two"},
		},
		{
			name:        "terminator drops the rest",
			args:        []string{"one", "--", "-x", "two"},
			positionals: []string{"one"},
		},
		{
			name: "interleaved flags and positionals",
			args: []string{"one", "-v", "two", "-o=out"},
			occurrences: []occurrence{
				{text: "-v", elem: "-v", group: -1},
				{text: "-o", elem: "-o=out", value: "out", hasValue: true, group: -1},
			},
			positionals: []string{"one", "two"},
		},
		{
			name: "empty vector",
			args: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := lexAndStructure(t, tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			opts := []cmp.Option{cmp.AllowUnexported(occurrence{}), cmpopts.EquateEmpty()}
			if diff := cmp.Diff(tt.occurrences, in.occurrences, opts...); diff != "" {
				t.Errorf("occurrences mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.positionals, in.positionals, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("positionals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInputStructureValueExpected(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "dangling equals at end",
			args:    []string{"-a="},
			message: `a value expected after "-a="`,
		},
		{
			name:    "separate equals at end",
			args:    []string{"-a", "="},
			message: `a value expected after "-a"`,
		},
		{
			name:    "equals then terminator",
			args:    []string{"-a", "=", "--"},
			message: `a value expected after "-a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lexAndStructure(t, tt.args)
			if err == nil {
				t.Fatal("expected input error")
			}
			if err.Type != ErrorTypeMissingValue {
				t.Errorf("expected %s, got %s", ErrorTypeMissingValue, err.Type)
			}
			if err.Message != tt.message {
				t.Errorf("message = %q, expected %q", err.Message, tt.message)
			}
		})
	}
}

func TestInputStructureUnexpectedInput(t *testing.T) {
	_, err := lexAndStructure(t, []string{"-a=1", "=b"})
	if err == nil {
		t.Fatal("expected input error")
	}
	if err.Type != ErrorTypeUnexpectedInput {
		t.Errorf("expected %s, got %s", ErrorTypeUnexpectedInput, err.Type)
	}
	if want := `unexpected input "=b"`; err.Message != want {
		t.Errorf("message = %q, expected %q", err.Message, want)
	}
}

func TestInputLexTerminatorExact(t *testing.T) {
	// Only the exact element "--" terminates; "---x" is a flag spelling
	// and "-" is an ordinary value.
	in, err := lexAndStructure(t, []string{"-", "---x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.positionals) != 1 || in.positionals[0] != "-" {
		t.Errorf("positionals = %v, expected [-]", in.positionals)
	}
	if len(in.occurrences) != 1 || in.occurrences[0].text != "---x" {
		t.Errorf("occurrences = %+v, expected one ---x flag", in.occurrences)
	}
}
