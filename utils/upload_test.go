package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.png":          "photo.png",
		"my photo.png":       "my_photo.png",
		"../../etc/passwd":   "passwd",
		"..":                 "",
		"weird$na#me!.jpg":   "weird_na_me_.jpg",
		"UPPER-case_ok.jpeg": "UPPER-case_ok.jpeg",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}
}
