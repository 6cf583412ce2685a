//go:build !unix

package host

import "os"

var nodename = os.Hostname
