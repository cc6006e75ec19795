package hd

import (
	"sync"

	"github.com/ardnew/softscsi/device"
	"github.com/ardnew/softscsi/pkg"
	"github.com/ardnew/softscsi/scsi"
	"github.com/ardnew/softscsi/storage"
)

// Geometry and capacity limits.
const (
	// DefaultSectorSizeExponent gives 512-byte sectors.
	DefaultSectorSizeExponent = 9

	// DefaultSectorSize is the only sector size this disk supports.
	DefaultSectorSize = 1 << DefaultSectorSizeExponent

	// MaxCapacity is the largest backing store accepted, 2 TiB. Larger disks
	// need 16-byte READ/WRITE commands.
	MaxCapacity = 1 << 41
)

// Default identity strings.
const (
	DefaultVendor   = "QUANTUM"
	DefaultRevision = "1.00"
)

// Disk is the state and command core of one emulated hard disk unit.
type Disk struct {
	// Configuration
	opener storage.Opener
	kind   device.Kind
	lun    uint8

	// Identity
	vendor   string
	product  string
	revision string

	// Geometry, fixed once ready
	sectorSizeExponent uint
	blockCount         uint64
	path               string

	// State
	ready          bool
	locked         bool
	attention      bool
	resetPending   bool
	writeProtected bool
	lastStatus     scsi.StatusCode

	mutex sync.RWMutex
}

// Option configures a Disk.
type Option func(*Disk)

// WithOpener sets the backing store opener used by Open.
// The default is storage.FileOpener.
func WithOpener(opener storage.Opener) Option {
	return func(d *Disk) {
		d.opener = opener
	}
}

// WithKind sets the device variant.
func WithKind(kind device.Kind) Option {
	return func(d *Disk) {
		d.kind = kind
	}
}

// WithLUN sets the logical unit the disk answers as. Values above 7 are
// ignored.
func WithLUN(lun uint8) Option {
	return func(d *Disk) {
		if lun <= scsi.MaxLogicalUnit {
			d.lun = lun
		}
	}
}

// WithVendor sets the INQUIRY vendor identification.
func WithVendor(vendor string) Option {
	return func(d *Disk) {
		d.vendor = vendor
	}
}

// WithRevision sets the INQUIRY product revision.
func WithRevision(revision string) Option {
	return func(d *Disk) {
		d.revision = revision
	}
}

// New creates a disk that is not ready. Hard disks are write protected
// from construction.
func New(opts ...Option) *Disk {
	d := &Disk{
		opener:             storage.FileOpener{},
		vendor:             DefaultVendor,
		revision:           DefaultRevision,
		sectorSizeExponent: DefaultSectorSizeExponent,
		writeProtected:     true,
		lastStatus:         scsi.StatusNoError,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Reset unlocks the unit, drops attention and pending reset and clears the
// last status. Readiness is unchanged.
func (d *Disk) Reset() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.locked = false
	d.attention = false
	d.resetPending = false
	d.lastStatus = scsi.StatusNoError

	pkg.LogDebug(pkg.ComponentDevice, "reset",
		"kind", d.kind,
		"lun", d.lun)
}

// finish records status as the last status and wraps it in a Result.
// The caller must hold the write lock.
func (d *Disk) finish(status scsi.StatusCode, length int) device.Result {
	d.lastStatus = status
	return device.Result{Status: status, Length: length}
}

// IsReady reports whether a backing store has been opened.
func (d *Disk) IsReady() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.ready
}

// LastStatus returns the status of the most recent command.
func (d *Disk) LastStatus() scsi.StatusCode {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.lastStatus
}

// Identity returns the vendor, product and revision strings. The product
// is empty until Open succeeds.
func (d *Disk) Identity() device.Identity {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.identity()
}

func (d *Disk) identity() device.Identity {
	return device.Identity{
		Vendor:   d.vendor,
		Product:  d.product,
		Revision: d.revision,
	}
}

// Kind returns the device variant.
func (d *Disk) Kind() device.Kind {
	return d.kind
}

// LUN returns the logical unit the disk answers as.
func (d *Disk) LUN() uint8 {
	return d.lun
}

// SectorSize returns the sector size in bytes.
func (d *Disk) SectorSize() uint32 {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return 1 << d.sectorSizeExponent
}

// BlockCount returns the number of addressable sectors, 0 before Open.
func (d *Disk) BlockCount() uint64 {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.blockCount
}

// Path returns the backing store path recorded by Open.
func (d *Disk) Path() string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.path
}

// WriteProtected reports whether the medium is write protected.
func (d *Disk) WriteProtected() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.writeProtected
}

// Locked reports whether medium removal is prevented.
func (d *Disk) Locked() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.locked
}

// SetLocked records a PREVENT/ALLOW MEDIUM REMOVAL decision.
func (d *Disk) SetLocked(locked bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.locked = locked
}

// Attention reports whether a unit attention condition is pending.
func (d *Disk) Attention() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.attention
}

// SetAttention raises or drops the unit attention condition.
func (d *Disk) SetAttention(attention bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.attention = attention
}

// ResetPending reports whether a bus reset has not been reported yet.
func (d *Disk) ResetPending() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.resetPending
}

// SetResetPending records that a bus reset must be reported.
func (d *Disk) SetResetPending(pending bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.resetPending = pending
}

// SenseData writes fixed-format sense data to buf. A failed last command is
// reported first; otherwise a pending bus reset, then a unit attention
// condition. Neither flag is cleared.
// Returns the number of bytes written, or 0 if buf is too small.
func (d *Disk) SenseData(buf []byte) int {
	return scsi.NewSenseResponse(d.senseStatus()).MarshalTo(buf)
}

func (d *Disk) senseStatus() scsi.StatusCode {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	switch {
	case !d.lastStatus.OK():
		return d.lastStatus
	case d.resetPending:
		return scsi.StatusReset
	case d.attention:
		return scsi.StatusAttention
	default:
		return scsi.StatusNoError
	}
}

// Compile-time interface check
var _ device.Handler = (*Disk)(nil)
