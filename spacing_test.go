package cornellfmt

import "testing"

func TestSectionSpacer_NormalizeSpacing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "blank inserted before marker after content",
			input:    "> > text\n> [!summary]",
			expected: "> > text\n\n> [!summary]",
		},
		{
			name:     "existing blank separator kept",
			input:    "> > text\n\n> [!summary]",
			expected: "> > text\n\n> [!summary]",
		},
		{
			name:     "spacer line counts as separator",
			input:    ">\n> [!summary]",
			expected: ">\n> [!summary]",
		},
		{
			name:     "marker at document start untouched",
			input:    "> [!cornell] T\n> body",
			expected: "> [!cornell] T\n> body",
		},
		{
			name:     "every sibling marker separated",
			input:    "> [!cornell] T\n> body\n> [!summary]\n> s\n> [!ad-libitum]- X",
			expected: "> [!cornell] T\n> body\n\n> [!summary]\n> s\n\n> [!ad-libitum]- X",
		},
		{
			name:     "idempotent on its own output",
			input:    "> [!cornell] T\n> body\n\n> [!summary]",
			expected: "> [!cornell] T\n> body\n\n> [!summary]",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sectionSpacer{}.NormalizeSpacing(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeSpacing():\ngot:  %q\nwant: %q", got, tt.expected)
			}
		})
	}
}
