// Package hd implements the command core of an emulated SCSI hard disk.
//
// A [Disk] holds the state of one logical unit: readiness, transient
// session flags, the last command status, the sector geometry and the
// INQUIRY identity. It answers the commands of [device.Handler]:
//
//   - Reset - clears lock, attention and reset flags and the status
//   - Open - sizes a backing image read-only and derives geometry and a
//     capacity-tiered product name
//   - Identify - INQUIRY standard data
//   - ApplyModeParameters - MODE SELECT; the sector size cannot be changed
//
// Each logical unit gets its own Disk; handlers never touch another
// unit's state.
//
// # Usage Example
//
//	disk := hd.New(hd.WithLUN(0), hd.WithVendor("QUANTUM"))
//	if err := disk.Open("/var/lib/scsi/disk0.hds"); err != nil {
//	    return err
//	}
//
//	cdb, _ := scsi.ParseInquiryCDB(raw)
//	res := disk.Identify(cdb, buf)
//	if !res.OK() {
//	    // res.Status explains why, and stays available via LastStatus
//	}
package hd
