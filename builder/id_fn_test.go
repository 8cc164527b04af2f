package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sigma/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.IDFn
		input int
		want  string
	}{
		{"decimal zero", builder.DefaultIDFn, 0, "0"},
		{"decimal", builder.DefaultIDFn, 123, "123"},
		{"base36 digit", builder.AlphanumericIDFn, 9, "9"},
		{"base36 letter", builder.AlphanumericIDFn, 35, "z"},
		{"base36 carry", builder.AlphanumericIDFn, 36, "10"},
		{"prefixed", builder.SymbolNumberIDFn("v"), 12, "v12"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}

	assert.Panics(t, func() { builder.AlphanumericIDFn(-1) })
	assert.Panics(t, func() { builder.SymbolNumberIDFn("v")(-1) })
}
