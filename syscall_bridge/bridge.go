// The syscall_bridge package mirrors the kernel's versioned capget/capset ABI.
// It marshals a target thread id and ABI version into the two fixed structures
// the kernel exchanges, and reports success or failure from the raw return
// code alone.
package syscall_bridge

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// LinuxCapabilityVersion3 is the _LINUX_CAPABILITY_VERSION_3 ABI tag: 64
// capability bits carried as two 32-bit words per set.
const LinuxCapabilityVersion3 = 0x20080522

// CapUserHeader matches the kernel's cap_user_header_t. Version must be set
// before every call; Pid 0 addresses the calling thread.
type CapUserHeader struct {
	Version uint32
	Pid     int32
}

// CapUserData matches two consecutive cap_user_data_t records as the kernel
// lays them out for version 3: the low words of all three sets, then the high
// words. Bit i of a (low, high) pair is capability index i, with indices 32
// and up living in the high word.
type CapUserData struct {
	Effective0   uint32
	Permitted0   uint32
	Inheritable0 uint32
	Effective1   uint32
	Permitted1   uint32
	Inheritable1 uint32
}

//go:generate counterfeiter -o fake_bridge/fake_bridge.go . Bridge

// Bridge issues the two capability syscalls. Get fills data with the kernel's
// current state for the header's thread; Set replaces that state wholesale
// with the contents of data.
type Bridge interface {
	Get(hdr *CapUserHeader, data *CapUserData) error
	Set(hdr *CapUserHeader, data *CapUserData) error
}

// SyscallError is returned when capget or capset returns non-zero. Code is
// the raw error number from the kernel; no attempt is made to interpret it.
type SyscallError struct {
	Op   string
	Code unix.Errno
}

func (err SyscallError) Error() string {
	return fmt.Sprintf("syscall_bridge: %s failed with code %d", err.Op, int(err.Code))
}
