package utils

import (
	"bytes"
	"runtime"
)

// Stack returns the formatted stack of the calling goroutine with the
// innermost skip frames removed.
func Stack(skip int) []byte {
	buf := make([]byte, 8192)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, len(buf)*2)
	}

	// first line is the goroutine header, then two lines per frame
	lines := bytes.Split(buf, []byte("\n"))
	if len(lines) == 0 {
		return buf
	}
	drop := 1 + 2*(skip+1)
	if drop >= len(lines) {
		return buf
	}
	out := append([][]byte{lines[0]}, lines[drop:]...)
	return bytes.Join(out, []byte("\n"))
}
