package syscall_bridge

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// KernelBridge is the real Bridge, issuing raw capget(2)/capset(2).
type KernelBridge struct{}

func New() KernelBridge {
	return KernelBridge{}
}

func (KernelBridge) Get(hdr *CapUserHeader, data *CapUserData) error {
	_, _, errno := unix.Syscall(unix.SYS_CAPGET, uintptr(unsafe.Pointer(hdr)), uintptr(unsafe.Pointer(data)), 0)
	if errno != 0 {
		return SyscallError{Op: "capget", Code: errno}
	}

	return nil
}

func (KernelBridge) Set(hdr *CapUserHeader, data *CapUserData) error {
	_, _, errno := unix.Syscall(unix.SYS_CAPSET, uintptr(unsafe.Pointer(hdr)), uintptr(unsafe.Pointer(data)), 0)
	if errno != 0 {
		return SyscallError{Op: "capset", Code: errno}
	}

	return nil
}
