package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"a, b,c", []string{"a", "b", "c"}},
		{"single", []string{"single"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"  spaced tag , other ", []string{"spaced tag", "other"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, SplitTags(tt.in))
		})
	}
}
