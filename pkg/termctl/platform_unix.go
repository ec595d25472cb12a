// ABOUTME: Unix default for the save/restore cursor form
// ABOUTME: Everything ANSI-capable gets CSI s / CSI u

//go:build unix

package termctl

const defaultSaveRestoreANSI = true
