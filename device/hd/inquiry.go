package hd

import (
	"github.com/ardnew/softscsi/device"
	"github.com/ardnew/softscsi/pkg"
	"github.com/ardnew/softscsi/scsi"
)

// Identify answers INQUIRY with SCSI-2 standard data.
//
// Vital product data pages are not supported. The response is 130 bytes,
// cut to the allocation length and to len(buf). A LUN other than the
// disk's own is answered with the "not present" peripheral qualifier.
func (d *Disk) Identify(cdb scsi.InquiryCDB, buf []byte) device.Result {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if cdb.EVPD {
		pkg.LogDebug(pkg.ComponentDevice, "vital product data not supported",
			"page", cdb.PageCode)
		return d.finish(scsi.StatusInvalidCDB, 0)
	}

	if !d.ready {
		return d.finish(scsi.StatusNotReady, 0)
	}

	peripheral := uint8(scsi.DeviceTypeDisk)
	if cdb.LUN != d.lun {
		pkg.LogDebug(pkg.ComponentDevice, "inquiry for absent unit",
			"lun", cdb.LUN,
			"own", d.lun)
		peripheral = scsi.PeripheralNotPresent
	}

	resp := scsi.NewInquiryResponse(peripheral, d.kind.Removable(), d.identity().Padded())

	var data [scsi.InquiryAdditionalLength + 5]byte
	size := resp.MarshalTo(data[:])
	size = min(size, int(cdb.AllocationLength), len(buf))
	copy(buf, data[:size])

	return d.finish(scsi.StatusNoError, size)
}
