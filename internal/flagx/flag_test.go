package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-a", "http://api.local", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://api.local"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--config=portal.json", "-t", "30"},
			allowed: []string{"--config"},
			want:    []string{"--config=portal.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-a", "-t", "30"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "addr"},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}
