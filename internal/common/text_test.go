package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Declaración Única", "declaracion unica"},
		{"PANAMÁ", "panama"},
		{"Niño ñandú", "nino nandu"},
		{"already plain", "already plain"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FoldText(tt.in), tt.in)
	}
}
