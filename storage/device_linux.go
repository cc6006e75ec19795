//go:build linux

package storage

import (
	"fmt"
	"io/fs"
	"math"
	"syscall"

	"github.com/mdlayher/block"
)

// DeviceStore is a block device opened by FileOpener.
type DeviceStore struct {
	device *block.Device
	path   string
}

func openDevice(path string) (Store, error) {
	device, err := block.New(path, syscall.O_RDONLY|syscall.O_CLOEXEC)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	return &DeviceStore{device: device, path: path}, nil
}

// Size returns the device size reported by the kernel.
func (s *DeviceStore) Size() (int64, error) {
	if s.device == nil {
		return 0, fs.ErrClosed
	}

	size, err := s.device.Size()
	if err != nil {
		return 0, fmt.Errorf("size of %s: %w", s.path, err)
	}
	if size > math.MaxInt64 {
		return 0, fmt.Errorf("size of %s: %d bytes out of range", s.path, size)
	}
	return int64(size), nil
}

// Close closes the device.
func (s *DeviceStore) Close() error {
	if s.device != nil {
		err := s.device.Close()
		s.device = nil
		return err
	}
	return nil
}
