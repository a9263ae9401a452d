package main

func (m *model) handleNavigation(key string, speed int) {
	if m.zPanMode {
		m.handlePan(key, speed)
		return
	}
	m.handleCursorMove(key, speed)
}

func (m *model) handlePan(key string, speed int) {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	switch key {
	case "h", "left", "H", "shift+left":
		buf.panX -= speed
	case "l", "right", "L", "shift+right":
		buf.panX += speed
	case "k", "up", "K", "shift+up":
		buf.panY -= speed
	case "j", "down", "J", "shift+down":
		buf.panY += speed
	}
	m.dragToCursor()
}

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	m.dragToCursor()
}

// dragToCursor continues a keyboard drag started with space.
func (m *model) dragToCursor() {
	if !m.holding {
		return
	}
	if c := m.getCanvas(); c != nil {
		p := m.cursorWorld()
		c.Drag(p.X, p.Y)
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return fastSpeed
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	if maxY := m.canvasHeight() - 1; m.cursorY > maxY {
		m.cursorY = max(maxY, 0)
	}
}

// canvasTop is the screen row where the diagram starts.
func (m *model) canvasTop() int {
	if len(m.buffers) > 1 {
		return toolbarRows + 1
	}
	return toolbarRows
}

func (m *model) canvasHeight() int {
	return max(m.height-m.canvasTop()-statusRows, 1)
}

// toWorld converts a canvas cell to diagram units at the cell centre.
func (m *model) toWorld(col, row int) Point {
	panX, panY := 0, 0
	if buf := m.getCurrentBuffer(); buf != nil {
		panX, panY = buf.panX, buf.panY
	}
	x, y := cellCenter(col, row, panX, panY, m.config.CellWidth, m.config.CellHeight)
	return Point{int(x), int(y)}
}

func (m *model) cursorWorld() Point {
	return m.toWorld(m.cursorX, m.cursorY)
}
