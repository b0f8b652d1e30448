//go:build !windows

package convert

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
