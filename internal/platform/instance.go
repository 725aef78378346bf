package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another timer process holds the lock.
var ErrAlreadyRunning = errors.New("another timer is already running")

// InstanceLock keeps a single timer per user by holding a localhost port
// derived from the application name.
type InstanceLock struct {
	listener net.Listener
}

// LockInstance acquires the lock for appName.
func LockInstance(appName string) (*InstanceLock, error) {
	address := InstanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", ErrAlreadyRunning, address)
	}
	return &InstanceLock{listener: listener}, nil
}

// Release frees the lock. It is safe to call on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// InstanceAddress returns the localhost address used as the lock for appName.
func InstanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
