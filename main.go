package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "workflow")
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfgPath != "" {
		w := newConfigWatcher(cfgPath, func() {
			cfg, _, err := LoadConfigFromPath(cfgPath)
			p.Send(configReloadedMsg{config: cfg, err: err})
		})
		go func() {
			if err := w.Watch(ctx); err != nil {
				log.Printf("config watcher stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(cfg *Config) model {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	m := model{config: cfg}
	m.addNewBuffer()
	return m
}

func (m *model) getCurrentBuffer() *Buffer {
	if len(m.buffers) == 0 {
		return nil
	}
	return &m.buffers[m.currentBufferIndex]
}

func (m *model) getCanvas() *Canvas {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return nil
	}
	return buf.canvas
}

func (m *model) addNewBuffer() {
	canvas := NewCanvas()
	canvas.SetLinkKind(m.config.defaultLinkKind())
	m.buffers = append(m.buffers, Buffer{canvas: canvas})
	m.currentBufferIndex = len(m.buffers) - 1
	m.resetPointer()
}

// resetPointer drops any gesture in flight, e.g. when the buffer changes.
func (m *model) resetPointer() {
	if m.holding || m.mouseDown {
		if c := m.getCanvas(); c != nil {
			c.resetGesture()
		}
	}
	m.holding = false
	m.mouseDown = false
	m.cursorX = 0
	m.cursorY = 0
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) setStatus(success string) {
	m.successMessage = success
	m.errorMessage = ""
}

func (m *model) setError(err string) {
	m.errorMessage = err
	m.successMessage = ""
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case configReloadedMsg:
		if msg.err != nil {
			log.Printf("config reload failed: %v", msg.err)
			m.setError(fmt.Sprintf("config reload failed: %v", msg.err))
			return m, nil
		}
		m.config = msg.config
		log.Printf("config reloaded")
		m.setStatus("Config reloaded")
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg)
		}
		switch m.mode {
		case inputLabel:
			return m.handleLabelKey(msg)
		case inputFile:
			return m.handleFileKey(msg)
		case inputConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}
	return m, nil
}

func (m model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.getCanvas()
	key := msg.String()

	if msg.Type == tea.KeyEscape {
		m.zPanMode = false
		m.holding = false
		c.SetMode(ModeNone)
		return m, nil
	}

	for _, t := range tools {
		if key == t.key {
			m.useTool(t)
			return m, nil
		}
	}

	switch key {
	case "ctrl+c", "q":
		if !m.config.Confirmations {
			return m, tea.Quit
		}
		m.mode = inputConfirm
		m.confirmAction = confirmQuit
	case "?":
		m.help = true
	case "z":
		m.zPanMode = !m.zPanMode
	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		m.handleNavigation(key, m.getMoveSpeed(key))
	case "enter":
		p := m.cursorWorld()
		c.Press(p.X, p.Y)
		c.Release(p.X, p.Y)
	case " ", "space":
		p := m.cursorWorld()
		if m.holding {
			c.Release(p.X, p.Y)
		} else {
			c.Press(p.X, p.Y)
		}
		m.holding = !m.holding
	case "e":
		s := c.SelectedShape()
		if s == nil {
			m.setError("Select a shape first")
			return m, nil
		}
		m.form = newLabelForm(s)
		m.formShape = s
		m.mode = inputLabel
		m.errorMessage = ""
	case "d":
		s := c.SelectedShape()
		if s == nil {
			m.setError("Select a shape first")
			return m, nil
		}
		if m.config.Confirmations {
			m.mode = inputConfirm
			m.confirmAction = confirmDeleteShape
			m.confirmShape = s
			return m, nil
		}
		m.deleteShape(s)
	case "P":
		m.mode = inputFile
		m.fileOp = fileOpSavePNG
		m.filename = ""
	case "T":
		m.mode = inputFile
		m.fileOp = fileOpSaveVisualTXT
		m.filename = ""
	case "N":
		m.addNewBuffer()
	case "{":
		if len(m.buffers) > 1 {
			m.resetPointer()
			m.currentBufferIndex = (m.currentBufferIndex + len(m.buffers) - 1) % len(m.buffers)
		}
	case "}":
		if len(m.buffers) > 1 {
			m.resetPointer()
			m.currentBufferIndex = (m.currentBufferIndex + 1) % len(m.buffers)
		}
	case "x":
		if m.config.Confirmations {
			m.mode = inputConfirm
			m.confirmAction = confirmCloseBuffer
			return m, nil
		}
		m.closeBuffer()
	}
	return m, nil
}

func (m *model) useTool(t tool) {
	c := m.getCanvas()
	m.holding = false
	if t.action != nil {
		if t.action(c) {
			m.setStatus(t.name + " done")
		} else if t.name == "Group" {
			m.setError("Select two or more shapes to group")
		} else {
			m.setError("Select a group to ungroup")
		}
		return
	}
	if t.mode == ModeLink {
		c.SetLinkKind(t.kind)
	}
	c.SetMode(t.mode)
	m.errorMessage = ""
}

func (m *model) deleteShape(s Shape) {
	if m.getCanvas().DeleteShape(s) {
		m.setStatus(fmt.Sprintf("Deleted %s", s.LabelText()))
	}
}

func (m *model) closeBuffer() {
	if len(m.buffers) <= 1 {
		m.buffers = nil
		m.currentBufferIndex = 0
		m.addNewBuffer()
		return
	}
	m.resetPointer()
	m.buffers = append(m.buffers[:m.currentBufferIndex], m.buffers[m.currentBufferIndex+1:]...)
	if m.currentBufferIndex > 0 {
		m.currentBufferIndex--
	}
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.help || m.mode != inputNormal {
		return m, nil
	}
	c := m.getCanvas()
	col, row := msg.X, msg.Y-m.canvasTop()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y < toolbarRows {
			if t, ok := toolAt(msg.X); ok {
				m.useTool(t)
			}
			return m, nil
		}
		if row < 0 || row >= m.canvasHeight() {
			return m, nil
		}
		m.cursorX, m.cursorY = col, row
		m.ensureCursorInBounds()
		p := m.toWorld(col, row)
		m.mouseDown = true
		c.Press(p.X, p.Y)
	case tea.MouseActionMotion:
		if !m.mouseDown {
			return m, nil
		}
		m.cursorX, m.cursorY = col, row
		m.ensureCursorInBounds()
		p := m.toWorld(col, row)
		c.Drag(p.X, p.Y)
	case tea.MouseActionRelease:
		if !m.mouseDown {
			return m, nil
		}
		m.mouseDown = false
		p := m.toWorld(col, row)
		c.Release(p.X, p.Y)
	}
	return m, nil
}

func (m model) handleLabelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNormal
		m.form = nil
		m.formShape = nil
		m.errorMessage = ""
	case "enter":
		if err := m.form.Apply(m.formShape); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		log.Printf("label set to %q", m.formShape.LabelText())
		m.mode = inputNormal
		m.form = nil
		m.formShape = nil
		m.setStatus("Label updated")
	case "ctrl+v":
		text, err := readClipboardText()
		if err != nil {
			m.setError(fmt.Sprintf("Clipboard: %v", err))
			return m, nil
		}
		m.form.Paste(text)
	case "ctrl+y":
		if err := writeClipboardText(m.form.Name()); err != nil {
			m.setError(fmt.Sprintf("Clipboard: %v", err))
			return m, nil
		}
		m.setStatus("Label copied")
	default:
		m.form.HandleKey(msg)
	}
	return m, nil
}

func (m model) handleFileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = inputNormal
		m.filename = ""
		m.errorMessage = ""
	case tea.KeyEnter:
		if strings.TrimSpace(m.filename) == "" {
			m.setError("Please enter a filename")
			return m, nil
		}
		path := m.config.GetSavePath(m.exportFilename())
		if _, err := os.Stat(path); err == nil && m.config.Confirmations {
			m.mode = inputConfirm
			m.confirmAction = confirmOverwriteFile
			return m, nil
		}
		m.runExport(path)
	case tea.KeyBackspace:
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.filename += " "
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m *model) exportFilename() string {
	ext := ".png"
	if m.fileOp == fileOpSaveVisualTXT {
		ext = ".txt"
	}
	name := strings.TrimSpace(m.filename)
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}

// runExport writes the current buffer to path and leaves file mode on
// success. On failure the prompt stays open so the name can be fixed.
func (m *model) runExport(path string) {
	var err error
	switch m.fileOp {
	case fileOpSavePNG:
		err = exportPNG(m.getCanvas(), path, m.config)
	case fileOpSaveVisualTXT:
		err = exportVisualTXT(path, m.renderCanvas(m.width, m.canvasHeight()).Plain())
	}
	if err != nil {
		if errors.Is(err, errNothingToExport) {
			m.mode = inputNormal
		} else {
			m.mode = inputFile
		}
		m.setError(fmt.Sprintf("Error exporting: %v", err))
		return
	}
	if buf := m.getCurrentBuffer(); buf != nil {
		buf.filename = filepath.Base(path)
	}
	absPath, _ := filepath.Abs(path)
	m.setStatus(fmt.Sprintf("Exported to %s", absPath))
	m.mode = inputNormal
	m.filename = ""
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case confirmQuit:
			return m, tea.Quit
		case confirmDeleteShape:
			m.deleteShape(m.confirmShape)
			m.confirmShape = nil
		case confirmCloseBuffer:
			m.closeBuffer()
		case confirmOverwriteFile:
			m.runExport(m.config.GetSavePath(m.exportFilename()))
			return m, nil
		}
		m.mode = inputNormal
	case "n", "N", "esc":
		if m.confirmAction == confirmOverwriteFile {
			m.mode = inputFile
		} else {
			m.mode = inputNormal
		}
		m.confirmShape = nil
	}
	return m, nil
}
