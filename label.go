package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errInvalidFontSize = errors.New("font size must be a positive integer")

type labelField int

const (
	fieldName labelField = iota
	fieldKind
	fieldColor
	fieldFontSize
	numLabelFields
)

func (f labelField) String() string {
	switch f {
	case fieldName:
		return "Name"
	case fieldKind:
		return "Shape"
	case fieldColor:
		return "Color"
	case fieldFontSize:
		return "Font size"
	default:
		return ""
	}
}

// labelForm holds the label editor's pending values. Nothing reaches the
// shape until Apply succeeds.
type labelForm struct {
	focus    labelField
	name     []rune
	nameCur  int
	kind     LabelKind
	color    int
	fontSize []rune
	fontCur  int
}

func newLabelForm(s Shape) *labelForm {
	f := &labelForm{
		name:     []rune(s.LabelText()),
		kind:     s.LabelKind(),
		fontSize: []rune(strconv.Itoa(s.FontSize())),
	}
	f.nameCur = len(f.name)
	f.fontCur = len(f.fontSize)
	for i, c := range labelColors {
		if c == s.LabelColor() {
			f.color = i
		}
	}
	return f
}

func (f *labelForm) Name() string     { return string(f.name) }
func (f *labelForm) FontSize() string { return string(f.fontSize) }
func (f *labelForm) Color() Color     { return labelColors[f.color] }
func (f *labelForm) Kind() LabelKind  { return f.kind }

// Apply validates the form and, only if every field is valid, writes it to s.
func (f *labelForm) Apply(s Shape) error {
	size, err := strconv.Atoi(strings.TrimSpace(string(f.fontSize)))
	if err != nil || size <= 0 {
		return fmt.Errorf("%w: %q", errInvalidFontSize, string(f.fontSize))
	}
	s.SetLabelText(string(f.name))
	s.SetLabelKind(f.kind)
	s.SetLabelColor(labelColors[f.color])
	s.SetFontSize(size)
	return nil
}

// Paste inserts clipboard text at the cursor of the focused text field.
// Choice fields ignore it.
func (f *labelForm) Paste(text string) {
	if f.focus != fieldName && f.focus != fieldFontSize {
		return
	}
	text = labelFromClipboard(text)
	if f.focus == fieldFontSize {
		text = strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, text)
	}
	f.insert([]rune(text))
}

// HandleKey applies an editing key to the focused field.
func (f *labelForm) HandleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "tab", "down":
		f.focus = (f.focus + 1) % numLabelFields
		return
	case "shift+tab", "up":
		f.focus = (f.focus + numLabelFields - 1) % numLabelFields
		return
	}

	switch f.focus {
	case fieldKind:
		switch msg.String() {
		case "left", "right", " ", "space":
			if f.kind == LabelRect {
				f.kind = LabelOval
			} else {
				f.kind = LabelRect
			}
		}
	case fieldColor:
		switch msg.String() {
		case "left":
			f.color = (f.color + len(labelColors) - 1) % len(labelColors)
		case "right", " ", "space":
			f.color = (f.color + 1) % len(labelColors)
		}
	default:
		f.editText(msg)
	}
}

func (f *labelForm) text() (*[]rune, *int) {
	if f.focus == fieldFontSize {
		return &f.fontSize, &f.fontCur
	}
	return &f.name, &f.nameCur
}

func (f *labelForm) insert(rs []rune) {
	text, cur := f.text()
	out := make([]rune, 0, len(*text)+len(rs))
	out = append(out, (*text)[:*cur]...)
	out = append(out, rs...)
	out = append(out, (*text)[*cur:]...)
	*text = out
	*cur += len(rs)
}

func (f *labelForm) editText(msg tea.KeyMsg) {
	text, cur := f.text()
	switch msg.Type {
	case tea.KeyLeft:
		if *cur > 0 {
			*cur--
		}
	case tea.KeyRight:
		if *cur < len(*text) {
			*cur++
		}
	case tea.KeyHome:
		*cur = 0
	case tea.KeyEnd:
		*cur = len(*text)
	case tea.KeyBackspace:
		if *cur > 0 {
			*text = append((*text)[:*cur-1], (*text)[*cur:]...)
			*cur--
		}
	case tea.KeyDelete:
		if *cur < len(*text) {
			*text = append((*text)[:*cur], (*text)[*cur+1:]...)
		}
	case tea.KeySpace:
		f.insert([]rune{' '})
	case tea.KeyRunes:
		f.insert(msg.Runes)
	}
}

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true)
	formFocusStyle = lipgloss.NewStyle().Reverse(true)
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
)

// View renders the form as a block of lines.
func (f *labelForm) View() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("Edit label"))
	b.WriteString("\n")
	for field := fieldName; field < numLabelFields; field++ {
		var value string
		switch field {
		case fieldName:
			value = withCursor(f.name, f.nameCur, f.focus == field)
		case fieldKind:
			value = "< " + f.kind.String() + " >"
		case fieldColor:
			value = "< " + labelColors[f.color].String() + " >"
		case fieldFontSize:
			value = withCursor(f.fontSize, f.fontCur, f.focus == field)
		}
		name := fmt.Sprintf("%-10s", field.String()+":")
		if f.focus == field {
			name = formFocusStyle.Render(name)
		}
		b.WriteString(name + " " + value + "\n")
	}
	return b.String()
}

func withCursor(text []rune, cur int, focused bool) string {
	if !focused {
		return string(text)
	}
	if cur >= len(text) {
		return string(text) + "█"
	}
	return string(text[:cur]) + cursorStyle.Render(string(text[cur])) + string(text[cur+1:])
}
