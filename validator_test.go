package cornellfmt

import (
	"strings"
	"testing"
)

// wellFormedNote is a fully normalized document used across validator tests.
var wellFormedNote = strings.Join([]string{
	"> [!cornell] Topic",
	">",
	"> > ## Questions/Cues",
	"> >",
	"> > - q1",
	"",
	"> [!summary]",
	">",
	"> Summary body",
	"",
	"> [!ad-libitum]- Extra",
	">",
	"> More context",
}, "\n")

func TestMarkerValidator_ValidateStructure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		input          string
		expectedValid  bool
		expectedIssues []string
	}{
		{
			name:          "empty input reports all markers missing",
			input:         "",
			expectedValid: false,
			expectedIssues: []string{
				issueMissingCornell,
				issueMissingSummary,
				issueMissingAdLibitum,
			},
		},
		{
			name:           "well-formed note is valid",
			input:          wellFormedNote,
			expectedValid:  true,
			expectedIssues: nil,
		},
		{
			name:          "residual doubled markers reported",
			input:         "[[!cornell]] T\n[[!summary]]\n[[!ad-libitum]]",
			expectedValid: false,
			expectedIssues: []string{
				issueDoubledCornell,
				issueDoubledSummary,
				issueDoubledAdLibitum,
				issueMissingSubsections,
			},
		},
		{
			name:          "cornell without subsections",
			input:         "> [!cornell] T\n> > just prose\n\n> [!summary]\n> s\n\n> [!ad-libitum]- x\n> a",
			expectedValid: false,
			expectedIssues: []string{
				issueMissingSubsections,
			},
		},
		{
			name:          "summary-titled cornell needs no subsections",
			input:         "> [!cornell] #### Summary\n> prose\n\n> [!summary]\n> s\n\n> [!ad-libitum]- x\n> a",
			expectedValid: true,
		},
		{
			name:          "one issue per deficient main block",
			input:         "> [!cornell] A\n> > text\n\n> [!cornell] B\n> > text\n\n> [!summary]\n> s\n\n> [!ad-libitum]- x\n> a",
			expectedValid: false,
			expectedIssues: []string{
				issueMissingSubsections,
				issueMissingSubsections,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := markerValidator{}.ValidateStructure(tt.input)
			if got.Valid != tt.expectedValid {
				t.Errorf("Valid = %v, want %v (issues: %v)", got.Valid, tt.expectedValid, got.Issues)
			}
			if len(got.Issues) != len(tt.expectedIssues) {
				t.Fatalf("Issues = %v, want %v", got.Issues, tt.expectedIssues)
			}
			for i, issue := range tt.expectedIssues {
				if got.Issues[i] != issue {
					t.Errorf("Issues[%d] = %q, want %q", i, got.Issues[i], issue)
				}
			}
		})
	}
}

func TestValidate_NeverPanics(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"\n\n\n",
		">>>>>",
		"[!cornell]",
		strings.Repeat("> [!cornell]\n", 50),
	}

	for _, input := range inputs {
		_ = Validate(input) // must not panic
	}
}
