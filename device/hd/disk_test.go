package hd

import (
	"testing"

	"github.com/ardnew/softscsi/device"
	"github.com/ardnew/softscsi/scsi"
	"github.com/ardnew/softscsi/storage"
)

const testImage = "disk0.hds"

// newOpenDisk returns a ready disk backed by an in-memory store of size
// bytes.
func newOpenDisk(t *testing.T, size int64, opts ...Option) *Disk {
	t.Helper()

	opener := storage.NewMemoryOpener()
	opener.Add(testImage, size)

	d := New(append([]Option{WithOpener(opener)}, opts...)...)
	if err := d.Open(testImage); err != nil {
		t.Fatalf("Open(%q) error = %v", testImage, err)
	}
	return d
}

func TestNew(t *testing.T) {
	d := New()

	if d.IsReady() {
		t.Error("IsReady() = true, want false")
	}
	if !d.WriteProtected() {
		t.Error("WriteProtected() = false, want true")
	}
	if got := d.SectorSize(); got != DefaultSectorSize {
		t.Errorf("SectorSize() = %d, want %d", got, DefaultSectorSize)
	}
	if got := d.BlockCount(); got != 0 {
		t.Errorf("BlockCount() = %d, want 0", got)
	}
	if got := d.LastStatus(); got != scsi.StatusNoError {
		t.Errorf("LastStatus() = %v, want %v", got, scsi.StatusNoError)
	}

	id := d.Identity()
	if id.Vendor != DefaultVendor || id.Revision != DefaultRevision || id.Product != "" {
		t.Errorf("Identity() = %+v, want default vendor and revision, empty product", id)
	}
}

func TestNew_Options(t *testing.T) {
	opener := storage.NewMemoryOpener()
	d := New(
		WithOpener(opener),
		WithKind(device.KindRemovable),
		WithLUN(3),
		WithVendor("SOFTSCSI"),
		WithRevision("0200"),
	)

	if d.Kind() != device.KindRemovable {
		t.Errorf("Kind() = %v, want %v", d.Kind(), device.KindRemovable)
	}
	if d.LUN() != 3 {
		t.Errorf("LUN() = %d, want 3", d.LUN())
	}
	if id := d.Identity(); id.Vendor != "SOFTSCSI" || id.Revision != "0200" {
		t.Errorf("Identity() = %+v", id)
	}
	if d.opener != opener {
		t.Error("WithOpener did not set the opener")
	}
}

func TestWithLUN_OutOfRange(t *testing.T) {
	d := New(WithLUN(2), WithLUN(8))
	if d.LUN() != 2 {
		t.Errorf("LUN() = %d, want 2", d.LUN())
	}
}

func TestReset(t *testing.T) {
	tests := []struct {
		name  string
		ready bool
	}{
		{"not ready", false},
		{"ready", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d *Disk
			if tt.ready {
				d = newOpenDisk(t, 1<<20)
			} else {
				d = New()
			}

			d.SetLocked(true)
			d.SetAttention(true)
			d.SetResetPending(true)
			d.Identify(scsi.InquiryCDB{EVPD: true}, make([]byte, 8))
			if d.LastStatus() == scsi.StatusNoError {
				t.Fatal("LastStatus() = NoError before Reset, want failure")
			}

			d.Reset()
			first := snapshot(d)
			d.Reset()
			second := snapshot(d)

			if first != second {
				t.Errorf("second Reset() state = %+v, want %+v", second, first)
			}
			if first.locked || first.attention || first.resetPending {
				t.Errorf("Reset() left flags set: %+v", first)
			}
			if first.status != scsi.StatusNoError {
				t.Errorf("LastStatus() = %v, want %v", first.status, scsi.StatusNoError)
			}
			if first.ready != tt.ready {
				t.Errorf("IsReady() = %v, want %v", first.ready, tt.ready)
			}
		})
	}
}

type diskState struct {
	ready        bool
	locked       bool
	attention    bool
	resetPending bool
	status       scsi.StatusCode
	blocks       uint64
	sectorSize   uint32
	identity     device.Identity
}

func snapshot(d *Disk) diskState {
	return diskState{
		ready:        d.IsReady(),
		locked:       d.Locked(),
		attention:    d.Attention(),
		resetPending: d.ResetPending(),
		status:       d.LastStatus(),
		blocks:       d.BlockCount(),
		sectorSize:   d.SectorSize(),
		identity:     d.Identity(),
	}
}

func TestSenseData(t *testing.T) {
	d := New()
	d.Identify(scsi.InquiryCDB{}, make([]byte, 36))

	buf := make([]byte, scsi.SenseFixedSize)
	if n := d.SenseData(buf); n != scsi.SenseFixedSize {
		t.Fatalf("SenseData() = %d, want %d", n, scsi.SenseFixedSize)
	}
	if buf[0] != scsi.SenseResponseCurrent {
		t.Errorf("response code = 0x%02X, want 0x%02X", buf[0], scsi.SenseResponseCurrent)
	}
	if buf[2] != scsi.StatusNotReady.SenseKey() {
		t.Errorf("sense key = 0x%02X, want 0x%02X", buf[2], scsi.StatusNotReady.SenseKey())
	}
	if buf[12] != scsi.StatusNotReady.ASC() {
		t.Errorf("ASC = 0x%02X, want 0x%02X", buf[12], scsi.StatusNotReady.ASC())
	}

	if n := d.SenseData(make([]byte, 4)); n != 0 {
		t.Errorf("SenseData(short) = %d, want 0", n)
	}
}

func TestSenseData_UnitAttention(t *testing.T) {
	tests := []struct {
		name         string
		resetPending bool
		attention    bool
		failed       bool
		want         scsi.StatusCode
	}{
		{"clear", false, false, false, scsi.StatusNoError},
		{"attention", false, true, false, scsi.StatusAttention},
		{"reset", true, false, false, scsi.StatusReset},
		{"reset before attention", true, true, false, scsi.StatusReset},
		{"failure before attention", true, true, true, scsi.StatusInvalidCDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newOpenDisk(t, 1<<20)
			d.SetResetPending(tt.resetPending)
			d.SetAttention(tt.attention)
			if tt.failed {
				d.Identify(scsi.InquiryCDB{EVPD: true}, make([]byte, 8))
			}

			buf := make([]byte, scsi.SenseFixedSize)
			d.SenseData(buf)
			if buf[2] != tt.want.SenseKey() || buf[12] != tt.want.ASC() {
				t.Errorf("sense = %02X/%02X, want %02X/%02X",
					buf[2], buf[12], tt.want.SenseKey(), tt.want.ASC())
			}
			if d.ResetPending() != tt.resetPending || d.Attention() != tt.attention {
				t.Error("SenseData() changed the pending flags")
			}

			d.Reset()
			d.SenseData(buf)
			if buf[2] != scsi.SenseNoSense {
				t.Errorf("sense key after Reset() = %02X, want %02X", buf[2], scsi.SenseNoSense)
			}
		})
	}
}
