//go:build (linux || freebsd || openbsd || netbsd) && !android

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDisplay(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{"none", map[string]string{}, ErrNoDisplay},
		{"x11", map[string]string{"DISPLAY": ":0"}, nil},
		{"wayland", map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, nil},
		{"both", map[string]string{"DISPLAY": ":1", "WAYLAND_DISPLAY": "wayland-1"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			err := CheckDisplay(getenv)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
