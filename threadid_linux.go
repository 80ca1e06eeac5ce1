package simplelog

import "golang.org/x/sys/unix"

// threadID returns the id of the OS thread running the caller.
func threadID() int {
	return unix.Gettid()
}
