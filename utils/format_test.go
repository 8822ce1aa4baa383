package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1500, "1.46 KB"},
		{1048576, "1 MB"},
		{1572864, "1.5 MB"},
		{1073741824, "1 GB"},
		{5368709120, "5 GB"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatFileSize(tc.bytes), "bytes=%d", tc.bytes)
	}
}
