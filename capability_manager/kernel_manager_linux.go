package capability_manager

import (
	"code.cloudfoundry.org/caps-linux/syscall_bridge"
	"code.cloudfoundry.org/lager"
)

// NewKernelManager builds a Manager backed by the real capget/capset syscalls.
func NewKernelManager(logger lager.Logger) *Manager {
	return New(syscall_bridge.New(), logger)
}
