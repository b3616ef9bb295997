//go:build !linux

package log

func isTerminal(fd uintptr) bool {
	return false
}
