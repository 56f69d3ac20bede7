package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{addr: ":4000", want: "http://localhost:4000"},
		{addr: "0.0.0.0:8080", want: "http://localhost:8080"},
		{addr: "localhost:4000", want: "http://localhost:4000"},
		{addr: "[::]:4000", want: "http://localhost:4000"},
		{addr: "bogus", want: "http://bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, baseURL(tt.addr))
		})
	}
}
