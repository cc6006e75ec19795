package hd

import (
	"fmt"

	"github.com/ardnew/softscsi/pkg"
)

// Capacity tiers used to pick a product name. Units are 1 MiB at the
// default sector size.
const (
	tierProdrive    = 300
	tierMaverick    = 600
	tierLightning   = 800
	tierTrailbrazer = 1000
	tierFireball    = 2000

	capacityUnitShift = 11
)

// Open sizes the backing store at path and makes the disk ready.
//
// The store is opened read-only and closed again before Open returns. Its
// size must be a multiple of the sector size and no more than MaxCapacity.
// On failure the disk stays not ready and the returned *pkg.IOError
// carries the reason. Opening a disk that is already ready returns
// pkg.ErrAlreadyOpen and changes nothing.
func (d *Disk) Open(path string) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.ready {
		return fmt.Errorf("%s: %w", path, pkg.ErrAlreadyOpen)
	}

	size, err := d.storeSize(path)
	if err != nil {
		pkg.LogWarn(pkg.ComponentDevice, "open failed",
			"path", path,
			"error", err)
		return err
	}

	if size%DefaultSectorSize != 0 {
		pkg.LogWarn(pkg.ComponentDevice, "backing store size not sector aligned",
			"path", path,
			"size", size)
		return &pkg.IOError{Path: path, Reason: pkg.ErrMisalignedSize}
	}

	if size > MaxCapacity {
		pkg.LogWarn(pkg.ComponentDevice, "backing store too large",
			"path", path,
			"size", size,
			"max", int64(MaxCapacity))
		return &pkg.IOError{Path: path, Reason: pkg.ErrCapacityExceeded}
	}

	d.sectorSizeExponent = DefaultSectorSizeExponent
	d.blockCount = uint64(size) >> d.sectorSizeExponent
	d.product = ProductName(d.blockCount >> capacityUnitShift)
	d.path = path
	d.ready = true

	pkg.LogInfo(pkg.ComponentDevice, "disk opened",
		"path", path,
		"kind", d.kind,
		"lun", d.lun,
		"blocks", d.blockCount,
		"product", d.product)

	return nil
}

// storeSize opens path read-only through the configured opener and returns
// its size in bytes. The store is closed before returning.
func (d *Disk) storeSize(path string) (int64, error) {
	store, err := d.opener.OpenReadOnly(path)
	if err != nil {
		return 0, &pkg.IOError{Path: path, Reason: pkg.ErrOpenFailed, Err: err}
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			pkg.LogDebug(pkg.ComponentStorage, "close failed",
				"path", path,
				"error", cerr)
		}
	}()

	size, err := store.Size()
	if err != nil {
		return 0, &pkg.IOError{Path: path, Reason: pkg.ErrOpenFailed, Err: err}
	}
	if size < 0 {
		return 0, &pkg.IOError{
			Path:   path,
			Reason: pkg.ErrOpenFailed,
			Err:    fmt.Errorf("negative size %d", size),
		}
	}

	return size, nil
}

// ProductName returns the INQUIRY product identification for a disk of the
// given capacity in units of 2048 sectors.
func ProductName(units uint64) string {
	switch {
	case units < tierProdrive:
		return fmt.Sprintf("PRODRIVE LPS%dS", units)
	case units < tierMaverick:
		return fmt.Sprintf("MAVERICK%dS", units)
	case units < tierLightning:
		return fmt.Sprintf("LIGHTNING%dS", units)
	case units < tierTrailbrazer:
		return fmt.Sprintf("TRAILBRAZER%dS", units)
	case units < tierFireball:
		return fmt.Sprintf("FIREBALL%dS", units)
	default:
		return fmt.Sprintf("FBSE%d.%dS", units/1000, (units%1000)/100)
	}
}
