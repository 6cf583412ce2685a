// Package host reads facts about the machine the server runs on.
package host

import (
	"errors"
	"fmt"
)

// ErrHostnameLookup is returned when the hostname cannot be determined.
var ErrHostnameLookup = errors.New("hostname lookup failed")

// Hostname returns the node name of the running machine. It is meant to be
// called once at start-up; the result is constant for the process lifetime.
func Hostname() (string, error) {
	name, err := nodename()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHostnameLookup, err)
	}
	if name == "" {
		return "", fmt.Errorf("%w: empty node name", ErrHostnameLookup)
	}
	return name, nil
}
