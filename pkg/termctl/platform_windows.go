// ABOUTME: Windows default for the save/restore cursor form
// ABOUTME: Legacy consoles only honor the DEC private ESC 7 / ESC 8 pair

//go:build windows

package termctl

const defaultSaveRestoreANSI = false
