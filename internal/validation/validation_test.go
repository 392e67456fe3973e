package validation

import "testing"

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"What Is Mammy Market", "what is mammy market"},
		{"  padded  question  ", "padded  question"},
		{"already lower", "already lower"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeQuestion(tt.in); got != tt.want {
			t.Errorf("NormalizeQuestion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateInstantKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		wantErr bool
	}{
		{"valid", "allowance", false},
		{"valid multiword", "camp requirements", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"mixed case", "Allowance", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInstantKeyword(tt.keyword)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInstantKeyword(%q) error = %v, wantErr %v", tt.keyword, err, tt.wantErr)
			}
		})
	}
}

func TestParseModeratorCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       string
		wantID     string
		wantAnswer string
		wantErr    bool
	}{
		{
			name:       "id and answer",
			args:       "3f1c27aa-9f8e-4a10-bb1d-000000000001 Camp lasts three weeks.",
			wantID:     "3f1c27aa-9f8e-4a10-bb1d-000000000001",
			wantAnswer: "Camp lasts three weeks.",
		},
		{
			name:       "answer whitespace trimmed",
			args:       "  some-id   padded answer  ",
			wantID:     "some-id",
			wantAnswer: "padded answer",
		},
		{name: "id only", args: "some-id", wantErr: true},
		{name: "id with trailing spaces only", args: "some-id    ", wantErr: true},
		{name: "empty", args: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, answer, err := ParseModeratorCommand(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseModeratorCommand(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if id != tt.wantID || answer != tt.wantAnswer {
				t.Errorf("ParseModeratorCommand(%q) = (%q, %q), want (%q, %q)", tt.args, id, answer, tt.wantID, tt.wantAnswer)
			}
		})
	}
}
