package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"
)

// recoverPanic turns a panic inside a step into an error after logging the
// stack and putting it on screen.
func (s *system) recoverPanic(err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()
	s.logf("screenkit panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			s.log.WriteLineString(line)
		}
	}
	s.panicScreen(v, stack)
	*err = fmt.Errorf("app: panic: %v", v)
}

// panicScreen prints the panic value and as much of the stack as fits in
// black on white, then shows it without waiting for vsync.
func (s *system) panicScreen(v any, stack []byte) {
	back := s.video.Back()
	back.FillAll(colorWhite)

	lines := []string{
		"screenkit panic:",
		fmt.Sprintf("panic: %v", v),
		fmt.Sprintf("frame: %d", s.frame),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
			}
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	lh := s.video.LineHeight()
	cols := 1
	if w := s.video.TextWidth("0"); w > 0 {
		cols = max(back.Width/w, 1)
	}
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lh > back.Height {
				s.video.Flip(false)
				return
			}
			chunk, rest := takeRunes(line, cols)
			s.video.PrintString(chunk, 0, y, colorBlack, -1)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
	s.video.Flip(false)
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
