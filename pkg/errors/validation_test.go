package errors

import (
	"testing"
)

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one", 1, false},
		{"typical", 8, false},
		{"max", MaxMatrixSize, false},

		{"zero", 0, true},
		{"negative", -3, true},
		{"too large", MaxMatrixSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateSize(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"table", "json", "text"}

	for _, f := range allowed {
		if err := ValidateFormat(f, allowed...); err != nil {
			t.Errorf("ValidateFormat(%q) unexpected error: %v", f, err)
		}
	}

	for _, f := range []string{"", "JSON", "yaml"} {
		err := ValidateFormat(f, allowed...)
		if !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) = %v, want %v", f, err, ErrCodeInvalidFormat)
		}
	}
}

func TestValidatePowers(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		wantErr bool
	}{
		{"all", []int{1, 2, 3}, false},
		{"single", []int{2}, false},

		{"empty", nil, true},
		{"zero", []int{0}, true},
		{"four", []int{1, 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePowers(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePowers(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "graph.svg", false},
		{"nested", "out/graph.png", false},

		{"empty", "", true},
		{"null byte", "foo\x00.svg", true},
		{"newline", "foo\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
