// The capability_manager package implements set algebra over a thread's
// capability sets on top of the syscall bridge: membership queries, full
// overwrite, clear, and single-capability raise/drop.
package capability_manager

import (
	"fmt"

	"code.cloudfoundry.org/caps-linux/capability"
	"code.cloudfoundry.org/caps-linux/syscall_bridge"
	"code.cloudfoundry.org/lager"
)

// UnsupportedSetError is returned when an operation is asked about the
// bounding or ambient set, neither of which is carried by the capget/capset
// structure.
type UnsupportedSetError struct {
	CapType capability.CapType
}

func (err UnsupportedSetError) Error() string {
	return fmt.Sprintf("capability_manager: the %s set is not carried by the capget structure", err.CapType)
}

// OversizedIndexError is returned when a capability handed to Set has a bit
// index that does not fit the two-word pair.
type OversizedIndexError struct {
	Index uint
}

func (err OversizedIndexError) Error() string {
	return fmt.Sprintf("capability_manager: capability index %d does not fit in 64 bits", err.Index)
}

// Manager performs capability set operations for a target thread.
//
// Every mutating operation is an unsynchronized fetch-modify-store: a
// concurrent mutation of the same thread's capability state between the fetch
// and the store is silently overwritten. Callers that share a target thread
// id must serialize externally.
type Manager struct {
	bridge syscall_bridge.Bridge
	logger lager.Logger
}

func New(bridge syscall_bridge.Bridge, logger lager.Logger) *Manager {
	return &Manager{
		bridge: bridge,
		logger: logger,
	}
}

// Has reports whether the capability is present in the given set of thread
// tid (0 means the calling thread).
func (m *Manager) Has(tid int, ctype capability.CapType, c capability.Cap) (bool, error) {
	log := m.logger.Session("has", lager.Data{"tid": tid, "capType": ctype.String(), "cap": c.String()})

	if err := supported(ctype); err != nil {
		log.Error("unsupported-cap-type", err)
		return false, err
	}

	_, data, err := m.fetch(tid)
	if err != nil {
		log.Error("capget-failed", err)
		return false, err
	}

	return capMask(ctype, data)&c.Mask() != 0, nil
}

// Read returns every capability present in the given set of thread tid.
func (m *Manager) Read(tid int, ctype capability.CapType) (capability.Set, error) {
	log := m.logger.Session("read", lager.Data{"tid": tid, "capType": ctype.String()})

	if err := supported(ctype); err != nil {
		log.Error("unsupported-cap-type", err)
		return nil, err
	}

	_, data, err := m.fetch(tid)
	if err != nil {
		log.Error("capget-failed", err)
		return nil, err
	}

	mask := capMask(ctype, data)
	caps := capability.NewSet()
	for _, c := range capability.All() {
		if mask&c.Mask() != 0 {
			caps.Add(c)
		}
	}

	return caps, nil
}

// Set overwrites the given set of thread tid with exactly the supplied
// capabilities. The other two sets keep their just-fetched values; the full
// structure is written back in a single store.
func (m *Manager) Set(tid int, ctype capability.CapType, caps capability.Set) error {
	log := m.logger.Session("set", lager.Data{"tid": tid, "capType": ctype.String(), "caps": caps.String()})

	if err := supported(ctype); err != nil {
		log.Error("unsupported-cap-type", err)
		return err
	}

	for c := range caps {
		if index := c.Index(); index > 63 {
			err := OversizedIndexError{Index: index}
			log.Error("oversized-index", err)
			return err
		}
	}

	hdr, data, err := m.fetch(tid)
	if err != nil {
		log.Error("capget-failed", err)
		return err
	}

	low, high := words(ctype, data)
	*low, *high = 0, 0
	for c := range caps {
		if c.Index() < 32 {
			*low |= uint32(c.Mask())
		} else {
			*high |= uint32(c.Mask() >> 32)
		}
	}

	if err := m.bridge.Set(hdr, data); err != nil {
		log.Error("capset-failed", err)
		return err
	}

	return nil
}

// Clear empties the given set of thread tid. Clearing PERMITTED also clears
// EFFECTIVE in the same store; the kernel never lets effective capabilities
// exceed permitted ones.
func (m *Manager) Clear(tid int, ctype capability.CapType) error {
	log := m.logger.Session("clear", lager.Data{"tid": tid, "capType": ctype.String()})

	if err := supported(ctype); err != nil {
		log.Error("unsupported-cap-type", err)
		return err
	}

	hdr, data, err := m.fetch(tid)
	if err != nil {
		log.Error("capget-failed", err)
		return err
	}

	switch ctype {
	case capability.EFFECTIVE:
		data.Effective0, data.Effective1 = 0, 0
	case capability.INHERITABLE:
		data.Inheritable0, data.Inheritable1 = 0, 0
	case capability.PERMITTED:
		data.Effective0, data.Effective1 = 0, 0
		data.Permitted0, data.Permitted1 = 0, 0
	}

	if err := m.bridge.Set(hdr, data); err != nil {
		log.Error("capset-failed", err)
		return err
	}

	return nil
}

// Raise adds a single capability to the given set of thread tid. If the
// capability is already present no store is issued.
func (m *Manager) Raise(tid int, ctype capability.CapType, c capability.Cap) error {
	caps, err := m.Read(tid, ctype)
	if err != nil {
		return err
	}

	if caps.Has(c) {
		return nil
	}

	caps.Add(c)
	return m.Set(tid, ctype, caps)
}

// Drop removes a single capability from the given set of thread tid. If the
// capability is not present no store is issued.
func (m *Manager) Drop(tid int, ctype capability.CapType, c capability.Cap) error {
	caps, err := m.Read(tid, ctype)
	if err != nil {
		return err
	}

	if !caps.Has(c) {
		return nil
	}

	caps.Remove(c)
	return m.Set(tid, ctype, caps)
}

func (m *Manager) fetch(tid int) (*syscall_bridge.CapUserHeader, *syscall_bridge.CapUserData, error) {
	hdr := &syscall_bridge.CapUserHeader{
		Version: syscall_bridge.LinuxCapabilityVersion3,
		Pid:     int32(tid),
	}
	data := &syscall_bridge.CapUserData{}

	if err := m.bridge.Get(hdr, data); err != nil {
		return nil, nil, err
	}

	return hdr, data, nil
}

func supported(ctype capability.CapType) error {
	switch ctype {
	case capability.EFFECTIVE, capability.PERMITTED, capability.INHERITABLE:
		return nil
	}
	return UnsupportedSetError{CapType: ctype}
}

func capMask(ctype capability.CapType, data *syscall_bridge.CapUserData) uint64 {
	low, high := words(ctype, data)
	return uint64(*high)<<32 | uint64(*low)
}

func words(ctype capability.CapType, data *syscall_bridge.CapUserData) (low, high *uint32) {
	switch ctype {
	case capability.EFFECTIVE:
		return &data.Effective0, &data.Effective1
	case capability.PERMITTED:
		return &data.Permitted0, &data.Permitted1
	default:
		return &data.Inheritable0, &data.Inheritable1
	}
}
