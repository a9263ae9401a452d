package main

type inputMode int

const (
	inputNormal inputMode = iota
	inputLabel
	inputFile
	inputConfirm
)

type fileOperation int

const (
	fileOpSavePNG fileOperation = iota
	fileOpSaveVisualTXT
)

type confirmAction int

const (
	confirmQuit confirmAction = iota
	confirmDeleteShape
	confirmCloseBuffer
	confirmOverwriteFile
)

const (
	toolbarRows = 1
	statusRows  = 1
	fastSpeed   = 2
)
