package sqs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceiveBatchClampsToServiceCeiling(t *testing.T) {
	cases := []struct {
		name string
		max  int
		want int32
	}{
		{"within limit", 5, 5},
		{"at limit", 10, 10},
		{"above limit", 20, 10},
		{"zero", 0, 1},
		{"negative", -3, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, receiveBatch(tc.max))
		})
	}
}
