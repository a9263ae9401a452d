package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	toolStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeToolStyle = toolStyle.Copy().Reverse(true).Bold(true)
	bufferBarStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

const toolGap = 0

func (t tool) label() string {
	return t.key + ":" + t.name
}

func (t tool) active(c *Canvas) bool {
	if t.action != nil || c.Mode() != t.mode {
		return false
	}
	return t.mode != ModeLink || c.LinkKind() == t.kind
}

func (m *model) renderToolbar() string {
	c := m.getCanvas()
	parts := make([]string, 0, len(tools))
	for _, t := range tools {
		if t.active(c) {
			parts = append(parts, activeToolStyle.Render(t.label()))
		} else {
			parts = append(parts, toolStyle.Render(t.label()))
		}
	}
	return strings.Join(parts, strings.Repeat(" ", toolGap))
}

// toolAt returns the toolbar button under screen column x.
func toolAt(x int) (tool, bool) {
	start := 0
	for _, t := range tools {
		end := start + lipgloss.Width(toolStyle.Render(t.label()))
		if x >= start && x < end {
			return t, true
		}
		start = end + toolGap
	}
	return tool{}, false
}

func (m *model) renderBufferBar(width int) string {
	var bar strings.Builder
	bar.WriteString("Open diagrams: ")
	for i, buf := range m.buffers {
		if i > 0 {
			bar.WriteString(" | ")
		}
		name := buf.filename
		if name == "" {
			name = fmt.Sprintf("Buffer %d", i+1)
		}
		if i == m.currentBufferIndex {
			name = "[" + name + "]"
		}
		bar.WriteString(name)
	}
	return bufferBarStyle.Copy().MaxWidth(width).Render(bar.String())
}

// renderCanvas draws the current buffer into a terminal surface of the
// given size, including a preview of a link being drawn.
func (m *model) renderCanvas(width, height int) *termSurface {
	buf := m.getCurrentBuffer()
	s := newTermSurface(width, height, m.config.CellWidth, m.config.CellHeight, buf.panX, buf.panY)
	buf.canvas.Render(s)
	if _, port, ok := buf.canvas.PendingLink(); ok {
		p := m.cursorWorld()
		s.SetColor(ColorBlue)
		s.SetStroke(true, 1)
		s.DrawLine(float64(port.X), float64(port.Y), float64(p.X), float64(p.Y))
		s.SetStroke(false, 1)
	}
	return s
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width := max(m.width, 1)
	height := m.canvasHeight()

	var result strings.Builder
	result.WriteString(m.renderToolbar())
	result.WriteString("\n")
	if len(m.buffers) > 1 {
		result.WriteString(m.renderBufferBar(width))
		result.WriteString("\n")
	}

	surface := m.renderCanvas(width, height)
	if m.mode == inputNormal {
		surface.markCursor(m.cursorX, m.cursorY)
	}
	lines := surface.Lines()
	if m.mode == inputLabel && m.form != nil {
		form := strings.Split(strings.TrimRight(m.form.View(), "\n"), "\n")
		for i := 0; i < len(form) && i < len(lines); i++ {
			lines[i] = form[i]
		}
	}
	result.WriteString(strings.Join(lines, "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m *model) statusLine() string {
	c := m.getCanvas()
	var status string
	switch m.mode {
	case inputLabel:
		status = "Mode: LABEL | Tab=next field, ←/→=change, Ctrl+V=paste, Ctrl+Y=copy, Enter=apply, Esc=cancel"
	case inputFile:
		op := "Export PNG"
		if m.fileOp == fileOpSaveVisualTXT {
			op = "Export TXT"
		}
		status = fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", op, m.filename)
	case inputConfirm:
		var message string
		switch m.confirmAction {
		case confirmQuit:
			message = "Quit? (y/n)"
		case confirmDeleteShape:
			message = fmt.Sprintf("Delete %s and its links? (y/n)", m.confirmShape.LabelText())
		case confirmCloseBuffer:
			message = "Close current buffer? Unsaved changes will be lost. (y/n)"
		case confirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.exportFilename())
		}
		status = "Mode: CONFIRM | " + message
	default:
		modeStr := c.Mode().String()
		if c.Mode() == ModeLink {
			modeStr += " " + c.LinkKind().String()
		}
		if m.zPanMode {
			modeStr += " (PAN)"
		}
		p := m.cursorWorld()
		status = fmt.Sprintf("Mode: %s | Cursor: (%d,%d)", modeStr, p.X, p.Y)
		if s := c.SelectedShape(); s != nil {
			status += " | Selected: " + s.LabelText()
		}
		if start, _, ok := c.PendingLink(); ok {
			status += fmt.Sprintf(" | Link from %s (release on target)", start.LabelText())
		}
		if m.holding {
			status += " | Holding"
		}
		if m.successMessage == "" && m.errorMessage == "" {
			status += " | ? for help | q to quit"
		}
	}
	if m.successMessage != "" {
		status += " | " + successStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	}
	return status
}

var helpLines = []string{
	"Workflow Help",
	"=============",
	"",
	"Tools:",
	"------",
	"  r                Rectangle tool: click to place a box",
	"  o                Oval tool: click to place an oval",
	"  s                Select tool: click a shape to select and drag it,",
	"                   drag on empty space to select with a marquee",
	"  1                Association link: drag from one shape to another",
	"  2                Generalization link (hollow triangle head)",
	"  3                Composition link (diamond head)",
	"  g                Group the selected shapes",
	"  G                Ungroup the selected group",
	"  Esc              No tool, clear the selection",
	"",
	"Mouse:",
	"------",
	"  Left button      Press, drag and release act on the canvas",
	"  Toolbar          Click a button to pick a tool",
	"",
	"Keyboard pointer:",
	"-----------------",
	"  h/←/j/↓/k/↑/l/→  Move cursor around the screen",
	"  Shift+h/j/k/l    Move cursor 2x faster",
	"  z                Toggle pan mode (movement keys pan the canvas)",
	"  Enter            Click at the cursor",
	"  Space            Press at the cursor; move, then Space again to release",
	"",
	"Shapes:",
	"-------",
	"  e                Edit the label of the selected shape",
	"  d                Delete the selected shape and its links",
	"",
	"Label editor:",
	"-------------",
	"  Tab/Shift+Tab    Next/previous field",
	"  ←/→              Change shape or colour",
	"  Ctrl+V           Paste from clipboard",
	"  Ctrl+Y           Copy the label text",
	"  Enter            Apply, Esc cancels",
	"",
	"Files and buffers:",
	"------------------",
	"  P                Export the diagram as PNG",
	"  T                Export the visible canvas as text",
	"  N                New diagram in a new buffer",
	"  {/}              Previous/next buffer",
	"  x                Close current buffer",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visibleHeight := max(m.height-1, 1)
	startLine := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result
}
