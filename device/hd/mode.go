package hd

import (
	"encoding/hex"

	"github.com/ardnew/softscsi/device"
	"github.com/ardnew/softscsi/pkg"
	"github.com/ardnew/softscsi/scsi"
)

// ApplyModeParameters answers MODE SELECT(6) and MODE SELECT(10).
//
// Only parameter lists that leave the sector size unchanged are accepted.
// The block descriptor length and the format device page are checked
// against the current sector size. Caching parameters are logged and
// otherwise ignored, as are unknown pages. Without the PF bit the list is
// vendor specific and ignored. Only the first ParameterListLength bytes of
// params are read.
func (d *Disk) ApplyModeParameters(cdb scsi.ModeSelectCDB, params []byte) device.Result {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.ready {
		return d.finish(scsi.StatusNotReady, 0)
	}

	params = params[:min(len(params), int(cdb.ParameterListLength))]

	if !cdb.PF {
		pkg.LogDebug(pkg.ComponentMode, "parameter list without page format ignored",
			"length", len(params))
		return d.finish(scsi.StatusNoError, 0)
	}

	sectorSize := uint32(1) << d.sectorSizeExponent

	if blockLength, ok := cdb.ModeHeaderBlockLength(params); ok {
		if blockLength != sectorSize {
			pkg.LogWarn(pkg.ComponentMode, "block length change rejected",
				"blockLength", blockLength,
				"sectorSize", sectorSize)
			return d.finish(scsi.StatusInvalidParam, 0)
		}
		params = params[cdb.HeaderSize():]
	}

	cursor := scsi.NewPageCursor(params)
	for {
		page, ok := cursor.Next()
		if !ok {
			break
		}

		if page.Truncated() {
			pkg.LogDebug(pkg.ComponentMode, "mode page overruns parameter list",
				"page", page.Code,
				"size", page.Size,
				"available", len(page.Data))
		}

		switch page.Code {
		case scsi.ModePageFormatDevice:
			size, ok := page.FormatDeviceSectorSize()
			if !ok {
				pkg.LogWarn(pkg.ComponentMode, "format device page too short",
					"length", len(page.Data))
				return d.finish(scsi.StatusInvalidParam, 0)
			}
			if uint32(size) != sectorSize {
				pkg.LogWarn(pkg.ComponentMode, "sector size change rejected",
					"requested", size,
					"sectorSize", sectorSize)
				return d.finish(scsi.StatusInvalidParam, 0)
			}

		case scsi.ModePageCaching:
			pkg.LogWarn(pkg.ComponentMode, "caching parameters not applied",
				"size", page.Size,
				"data", hex.EncodeToString(page.Data))

		default:
			pkg.LogDebug(pkg.ComponentMode, "unknown mode page ignored",
				"page", page.Code,
				"size", page.Size)
		}
	}

	return d.finish(scsi.StatusNoError, 0)
}
