package core

import (
	"net/url"
	"strings"
)

var (
	commandPrefixes = []string{"$ ", "sudo ", "go ", "git ", "docker ", "kubectl ", "curl "}
	commandMarkers  = []string{" --", " | ", " && ", " > "}
	codeKeywords    = []string{"func ", "function ", "package ", "import ", "def ", "class ", "return "}
)

// DetectType guesses a content type for a share that was not labelled.
func DetectType(content string) ContentType {
	s := strings.TrimSpace(content)
	switch {
	case s == "":
		return ContentTypeText
	case isURL(s):
		return ContentTypeURL
	case looksLikeCommand(s):
		return ContentTypeCommand
	case looksLikeCode(s):
		return ContentTypeCode
	}
	return ContentTypeText
}

func isURL(s string) bool {
	if strings.ContainsAny(s, " \n\t") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func looksLikeCommand(s string) bool {
	// single line only; multi-line input is more likely a script or code
	if strings.Contains(s, "\n") {
		return false
	}
	return hasAnyPrefix(s, commandPrefixes) || containsAny(s, commandMarkers)
}

func looksLikeCode(s string) bool {
	if strings.Contains(s, "{") && strings.Contains(s, "}") {
		return true
	}
	if containsAny(s, codeKeywords) {
		return true
	}
	return strings.Contains(s, ";") && strings.Contains(s, "=")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
