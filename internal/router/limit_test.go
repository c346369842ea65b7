package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"megabytes", 11 << 20, "11M"},
		{"kilobytes", 1536 << 10, "1536K"},
		{"bytes", 1025, "1025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBytes(tt.in))
		})
	}
}

func TestBodyLimitAddsMultipartOverhead(t *testing.T) {
	assert.Equal(t, "11M", bodyLimit(10<<20))
}
