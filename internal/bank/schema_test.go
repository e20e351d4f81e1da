package bank

import "testing"

func TestValidateBank(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"flat array", `[{"id": "A", "question": "x"}]`, false},
		{"wrapped object", `{"questions": [{"id": "A"}]}`, false},
		{"empty array", `[]`, false},
		{"not json", `{`, true},
		{"wrong envelope", `{"items": []}`, true},
		{"scalar", `42`, true},
		{"array of scalars", `[1, 2]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBank([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBank() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}
