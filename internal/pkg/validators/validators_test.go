//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Handle   string `validate:"required,mailhandle"`
	Number   string `validate:"omitempty,employeenumber"`
	Username string `validate:"omitempty,username"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     sample
		shouldErr bool
	}{
		{"valid handle", sample{Handle: "bob.yates"}, false},
		{"handle too short", sample{Handle: "bo"}, true},
		{"handle uppercase", sample{Handle: "Bobby"}, true},
		{"handle starts with digit", sample{Handle: "9lives"}, true},
		{"valid employee number", sample{Handle: "carl", Number: "000042"}, false},
		{"short employee number", sample{Handle: "carl", Number: "42"}, true},
		{"valid username", sample{Handle: "carl", Username: "Miner_99"}, false},
		{"username with space", sample{Handle: "carl", Username: "bad name"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			if tt.shouldErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), "validation failed")
			} else {
				require.NoError(t, err)
			}
		})
	}
}
