// This file was generated by counterfeiter
package fake_bridge

import (
	"sync"

	"code.cloudfoundry.org/caps-linux/syscall_bridge"
)

type FakeBridge struct {
	GetStub        func(hdr *syscall_bridge.CapUserHeader, data *syscall_bridge.CapUserData) error
	getMutex       sync.RWMutex
	getArgsForCall []struct {
		hdr  *syscall_bridge.CapUserHeader
		data *syscall_bridge.CapUserData
	}
	getReturns struct {
		result1 error
	}
	SetStub        func(hdr *syscall_bridge.CapUserHeader, data *syscall_bridge.CapUserData) error
	setMutex       sync.RWMutex
	setArgsForCall []struct {
		hdr  *syscall_bridge.CapUserHeader
		data *syscall_bridge.CapUserData
	}
	setReturns struct {
		result1 error
	}
}

func (fake *FakeBridge) Get(hdr *syscall_bridge.CapUserHeader, data *syscall_bridge.CapUserData) error {
	fake.getMutex.Lock()
	fake.getArgsForCall = append(fake.getArgsForCall, struct {
		hdr  *syscall_bridge.CapUserHeader
		data *syscall_bridge.CapUserData
	}{hdr, data})
	fake.getMutex.Unlock()
	if fake.GetStub != nil {
		return fake.GetStub(hdr, data)
	} else {
		return fake.getReturns.result1
	}
}

func (fake *FakeBridge) GetCallCount() int {
	fake.getMutex.RLock()
	defer fake.getMutex.RUnlock()
	return len(fake.getArgsForCall)
}

func (fake *FakeBridge) GetArgsForCall(i int) (*syscall_bridge.CapUserHeader, *syscall_bridge.CapUserData) {
	fake.getMutex.RLock()
	defer fake.getMutex.RUnlock()
	return fake.getArgsForCall[i].hdr, fake.getArgsForCall[i].data
}

func (fake *FakeBridge) GetReturns(result1 error) {
	fake.GetStub = nil
	fake.getReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeBridge) Set(hdr *syscall_bridge.CapUserHeader, data *syscall_bridge.CapUserData) error {
	fake.setMutex.Lock()
	fake.setArgsForCall = append(fake.setArgsForCall, struct {
		hdr  *syscall_bridge.CapUserHeader
		data *syscall_bridge.CapUserData
	}{hdr, data})
	fake.setMutex.Unlock()
	if fake.SetStub != nil {
		return fake.SetStub(hdr, data)
	} else {
		return fake.setReturns.result1
	}
}

func (fake *FakeBridge) SetCallCount() int {
	fake.setMutex.RLock()
	defer fake.setMutex.RUnlock()
	return len(fake.setArgsForCall)
}

func (fake *FakeBridge) SetArgsForCall(i int) (*syscall_bridge.CapUserHeader, *syscall_bridge.CapUserData) {
	fake.setMutex.RLock()
	defer fake.setMutex.RUnlock()
	return fake.setArgsForCall[i].hdr, fake.setArgsForCall[i].data
}

func (fake *FakeBridge) SetReturns(result1 error) {
	fake.SetStub = nil
	fake.setReturns = struct {
		result1 error
	}{result1}
}

var _ syscall_bridge.Bridge = new(FakeBridge)
