package core

import (
	"strings"
	"unicode/utf8"
)

// MaxShareLen caps what sharebuttonctl sends in one share.
const MaxShareLen = 64 * 1024

// Normalize prepares text for sharing: CRLF becomes LF, trailing blanks are
// stripped from every line, runs of blank lines collapse to one, and the
// result is trimmed. Inner spacing of a line is left alone.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.TrimRight(l, " \t\r")
		if l == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, l)
	}

	return truncate(strings.Join(out, "\n"), MaxShareLen)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
