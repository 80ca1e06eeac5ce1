//go:build !linux && !windows

package simplelog

import "os"

// threadID falls back to the process id where no portable thread id exists.
func threadID() int {
	return os.Getpid()
}
