package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-ledger/internal/domain/ledger"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"20", 20},
		{"  7 ", 7},
		{"12.0", 12},
		{"1e2", 100},
		{"", 0},
		{"0", 0},
		{"-4", 0},
		{"3.5", 0},
		{"abc", 0},
		{"12abc", 0},
		{"99999999999999999999999", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ledger.ParseQuantity(tc.raw), "ParseQuantity(%q)", tc.raw)
	}
}
