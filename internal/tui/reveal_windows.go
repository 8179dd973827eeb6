//go:build windows

package tui

import (
	"os/exec"
	"syscall"
)

func defaultRevealer(path string) (bool, error) {
	cmd := exec.Command("explorer.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: explorerCmdLine(path)}
	// explorer.exe exits non-zero even on success, so only Start is checked.
	if err := cmd.Start(); err != nil {
		return false, err
	}
	return true, cmd.Process.Release()
}
