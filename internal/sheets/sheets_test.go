package sheets

import "testing"

func TestParseRow(t *testing.T) {
	tests := []struct {
		name         string
		row          []any
		wantQuestion string
		wantAnswer   string
		wantCat      string
	}{
		{
			name:         "full row",
			row:          []any{"When is allowance paid?", "25th-30th", "allowances", "2025-01-02"},
			wantQuestion: "When is allowance paid?",
			wantAnswer:   "25th-30th",
			wantCat:      "allowances",
		},
		{
			name:         "no category",
			row:          []any{"q", "a"},
			wantQuestion: "q",
			wantAnswer:   "a",
		},
		{
			name:         "question only",
			row:          []any{"q"},
			wantQuestion: "q",
		},
		{name: "empty row", row: []any{}},
		{
			name:       "non-string cells ignored",
			row:        []any{42, "a", true},
			wantAnswer: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := parseRow(tt.row)
			if entry.Question != tt.wantQuestion || entry.Answer != tt.wantAnswer || entry.Category != tt.wantCat {
				t.Errorf("parseRow(%v) = %+v", tt.row, entry)
			}
		})
	}
}
