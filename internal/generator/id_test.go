package generator

import (
	"testing"
)

func TestGenerateID(t *testing.T) {
	got, err := GenerateID()
	if err != nil {
		t.Fatalf("GenerateID() error = %v", err)
	}

	if len(got) != 36 {
		t.Errorf("GenerateID() returned ID with length = %v, want %v", len(got), 36)
	}

	if !IsValidID(got) {
		t.Errorf("GenerateID() returned ID that is not valid: %v", got)
	}

	got2, _ := GenerateID()
	if got == got2 {
		t.Errorf("GenerateID() generated the same ID twice: %v", got)
	}
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{
			name: "Canonical UUID",
			id:   "3f2b8c1e-9a4d-4e2f-8b7a-1c2d3e4f5a6b",
			want: true,
		},
		{
			name: "Empty string",
			id:   "",
			want: false,
		},
		{
			name: "Integer id",
			id:   "123456",
			want: false,
		},
		{
			name: "URN form",
			id:   "urn:uuid:3f2b8c1e-9a4d-4e2f-8b7a-1c2d3e4f5a6b",
			want: false,
		},
		{
			name: "Upper case",
			id:   "3F2B8C1E-9A4D-4E2F-8B7A-1C2D3E4F5A6B",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.id); got != tt.want {
				t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
