package cornellfmt

import (
	"strings"
	"testing"
)

// rawScenario is the canonical messy-model-output fixture.
const rawScenario = "[[!cornell]] Topic\n## Questions/Cues\n- q1\nSome text\n[!summary]\nSummary body"

func TestNormalize_EndToEnd(t *testing.T) {
	t.Parallel()

	expected := strings.Join([]string{
		"> [!cornell] Topic",
		">",
		"> > ## Questions/Cues",
		"> >",
		"> > - q1",
		"> >",
		"> > Some text",
		"",
		"> [!summary]",
		">",
		"> Summary body",
	}, "\n")

	got := Normalize(rawScenario)
	if got != expected {
		t.Errorf("Normalize():\ngot:  %q\nwant: %q", got, expected)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "canonical scenario",
			input: rawScenario,
		},
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t\n  ",
		},
		{
			name:  "no recognizable markers",
			input: "plain text\n> quoted\nmore",
		},
		{
			name: "messy quoting and blanks",
			input: "[!Cornell] Photosynthesis\n\n\n>> ## Cues\n>>> - light\n- dark\n\n### Chlorophyll\nGreen pigment\n\n[[!summary]]\nPlants eat light.\n[!adlibitum]- Fun fact\nSome trivia",
		},
		{
			name:  "marker with no body",
			input: "[!cornell]",
		},
		{
			name:  "all three sections",
			input: "[!cornell] T\n## A\n- x\n### C\nprose\n[!summary]\ns1\ns2\n[!ad-libitum]- X\n- a\ntext",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			once := Normalize(tt.input)
			twice := Normalize(once)
			if once != twice {
				t.Errorf("Normalize not idempotent:\nonce:  %q\ntwice: %q", once, twice)
			}
		})
	}
}

func TestNormalize_CanonicalizesMarkers(t *testing.T) {
	t.Parallel()

	input := "[[!cornell]] T\n## A\n[!adlibitum]- X\nbody\n[!ad_libitum]\nmore"
	got := Normalize(input)

	for _, residual := range []string{"[[!cornell]]", "[!adlibitum]", "[!ad_libitum]"} {
		if strings.Contains(got, residual) {
			t.Errorf("Normalize() output still contains %q:\n%s", residual, got)
		}
	}
	for _, canonical := range []string{"[!cornell]", "[!ad-libitum]"} {
		if !strings.Contains(got, canonical) {
			t.Errorf("Normalize() output missing %q:\n%s", canonical, got)
		}
	}
}

func TestNormalize_DepthInvariant(t *testing.T) {
	t.Parallel()

	input := "[!cornell] T\n## A\n- x\n- y\n### C\nprose line\n[!summary]\nsum\n- point\n[!ad-libitum]- X\nextra"
	got := Normalize(input)

	current := sectionNone
	for _, raw := range strings.Split(got, "\n") {
		if isBlankLine(raw) || isSpacerLine(raw) {
			continue
		}
		if ln := classifyLine(raw, false); ln.kind == lineMarker {
			current = sectionFor(ln.marker)
			if !strings.HasPrefix(raw, "> [!") {
				t.Errorf("marker line %q should carry exactly one quote marker", raw)
			}
			continue
		}
		switch current {
		case sectionMain:
			if !strings.HasPrefix(raw, "> > ") {
				t.Errorf("main body line %q should start with %q", raw, "> > ")
			}
		case sectionSummary, sectionAdLibitum:
			if !strings.HasPrefix(raw, "> ") || strings.HasPrefix(raw, "> > ") {
				t.Errorf("flat body line %q should start with exactly %q", raw, "> ")
			}
		}
	}
}

func TestNormalize_PassThrough(t *testing.T) {
	t.Parallel()

	input := "Hello world\n> an ordinary quote\n\nbye"
	got := Normalize(input)
	if got != input {
		t.Errorf("Normalize() = %q, want unchanged %q", got, input)
	}
}

func TestService_PolicyVariants(t *testing.T) {
	t.Parallel()

	t.Run("default cap collapses double blanks outside sections", func(t *testing.T) {
		t.Parallel()

		got := New().Normalize("a\n\n\nb")
		if got != "a\n\nb" {
			t.Errorf("Normalize() = %q, want %q", got, "a\n\nb")
		}
	})

	t.Run("historical cap keeps double blanks", func(t *testing.T) {
		t.Parallel()

		svc := New(WithPolicy(Policy{
			MaxConsecutiveBlankLines: 2,
			DistinctSummarySection:   true,
		}))
		got := svc.Normalize("a\n\n\nb")
		if got != "a\n\n\nb" {
			t.Errorf("Normalize() = %q, want %q", got, "a\n\n\nb")
		}
	})
}

func TestWithPolicy_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithPolicy should panic for an out-of-range blank cap")
		}
	}()
	WithPolicy(Policy{MaxConsecutiveBlankLines: 5})
}

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultPolicy().Validate(); err != nil {
		t.Errorf("DefaultPolicy().Validate() = %v, want nil", err)
	}
	if err := (Policy{MaxConsecutiveBlankLines: 3}).Validate(); err == nil {
		t.Error("Validate() = nil, want error for cap 3")
	}
}
