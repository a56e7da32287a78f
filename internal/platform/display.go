// Package platform probes the host for a usable windowing environment.
package platform

import "errors"

var ErrNoDisplay = errors.New("no windowing environment available")

// Getenv matches os.Getenv so tests can supply their own environment.
type Getenv func(key string) string
