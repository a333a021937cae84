package hnyclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing slash trimmed", "https://api.eu1.honeycomb.io/", "https://api.eu1.honeycomb.io"},
		{"missing scheme defaults to https", "api.eu1.honeycomb.io", "https://api.eu1.honeycomb.io"},
		{"plain http kept", "http://localhost:8080/", "http://localhost:8080"},
		{"already normalized", "https://api.honeycomb.io", "https://api.honeycomb.io"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, normalizeBaseURL(test.in))
		})
	}
}
