//go:build windows

package convert

import "syscall"

// createNoWindow keeps ffmpeg from flashing a console window
const createNoWindow = 0x08000000

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true, CreationFlags: createNoWindow}
}
