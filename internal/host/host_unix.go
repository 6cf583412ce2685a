//go:build unix

package host

import "golang.org/x/sys/unix"

var nodename = unameNodename

// unameNodename is the second field of uname(2), same as `uname -n`.
func unameNodename() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Nodename[:]), nil
}
