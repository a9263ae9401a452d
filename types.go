package main

// Buffer is one open diagram. Pan offsets are in terminal cells.
type Buffer struct {
	canvas   *Canvas
	filename string
	panX     int
	panY     int
}

type model struct {
	width              int
	height             int
	cursorX            int
	cursorY            int
	zPanMode           bool
	holding            bool // space pressed, cursor moves drag
	mouseDown          bool
	buffers            []Buffer
	currentBufferIndex int
	mode               inputMode
	help               bool
	helpScroll         int
	form               *labelForm
	formShape          Shape
	filename           string
	fileOp             fileOperation
	confirmAction      confirmAction
	confirmShape       Shape
	errorMessage       string
	successMessage     string
	config             *Config
}

// configReloadedMsg is sent by the config watcher after the file changes.
type configReloadedMsg struct {
	config *Config
	err    error
}

// tool is one toolbar button.
type tool struct {
	name   string
	key    string
	mode   Mode
	kind   LinkKind
	action func(c *Canvas) bool
}

var tools = []tool{
	{name: "Rect", key: "r", mode: ModeDrawRect},
	{name: "Oval", key: "o", mode: ModeDrawOval},
	{name: "Select", key: "s", mode: ModeSelect},
	{name: "Group", key: "g", action: (*Canvas).Group},
	{name: "UnGroup", key: "G", action: (*Canvas).Ungroup},
	{name: "Assoc", key: "1", mode: ModeLink, kind: Association},
	{name: "Inherit", key: "2", mode: ModeLink, kind: Generalization},
	{name: "Compose", key: "3", mode: ModeLink, kind: Composition},
}
