//go:build !linux

package storage

import (
	"errors"
	"io/fs"
)

// ErrUnsupportedDevice is returned when a block device node is opened on a
// platform without block device support.
var ErrUnsupportedDevice = errors.New("block devices not supported on this platform")

func openDevice(path string) (Store, error) {
	return nil, &fs.PathError{Op: "open", Path: path, Err: ErrUnsupportedDevice}
}
