package main

import (
	"html"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// labelFromClipboard turns pasted text, possibly RTF or HTML, into a single
// line suitable for a shape label.
func labelFromClipboard(text string) string {
	if isHTML(text) {
		text = stripHTML(text)
	}
	text = stripRTF(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteRune(' ')
		case r >= 32 && r != 127:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isHTML(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "<") &&
		(strings.Contains(t, "<html") || strings.Contains(t, "<body") || strings.Contains(t, "<div") || strings.Contains(t, "<span"))
}

func stripHTML(text string) string {
	var b strings.Builder
	inTag := false
	for _, r := range text {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String())
}

// rtfDestinations are groups whose text never belongs to the document body.
var rtfDestinations = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"header":     true,
	"footer":     true,
}

// stripRTF drops destination groups, control words and their numeric
// parameters, and keeps escaped braces and backslashes.
func stripRTF(text string) string {
	if !strings.Contains(text, "\\rtf") {
		return text
	}
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{':
			if word := rtfGroupWord(runes, i+1); word == "*" || rtfDestinations[word] {
				i = skipRTFGroup(runes, i)
			}
		case '}':
			continue
		case '\\':
			if i+1 >= len(runes) {
				continue
			}
			next := runes[i+1]
			if next == '\\' || next == '{' || next == '}' {
				b.WriteRune(next)
				i++
				continue
			}
			word := i + 1
			for word < len(runes) && isASCIILetter(runes[word]) {
				word++
			}
			for word < len(runes) && (runes[word] == '-' || (runes[word] >= '0' && runes[word] <= '9')) {
				word++
			}
			switch string(runes[i+1 : word]) {
			case "par", "line", "tab":
				b.WriteRune(' ')
			}
			if word < len(runes) && runes[word] == ' ' {
				word++
			}
			i = word - 1
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// rtfGroupWord returns the control word opening a group at runes[i], or "*"
// for an ignorable destination.
func rtfGroupWord(runes []rune, i int) string {
	if i+1 >= len(runes) || runes[i] != '\\' {
		return ""
	}
	if runes[i+1] == '*' {
		return "*"
	}
	end := i + 1
	for end < len(runes) && isASCIILetter(runes[end]) {
		end++
	}
	return string(runes[i+1 : end])
}

// skipRTFGroup returns the index of the brace closing the group opened at
// runes[open].
func skipRTFGroup(runes []rune, open int) int {
	depth := 0
	for i := open; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(runes) - 1
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
