// Package scsi implements the wire layer of an emulated SCSI direct-access
// device: operation codes, status codes, command descriptor decoding and
// the byte layouts of the responses and parameter lists the device core
// reads and writes.
//
// # Status Codes
//
// A [StatusCode] packs a sense key, additional sense code (ASC) and
// qualifier (ASCQ) into one value, so a single field can remember the
// outcome of the last command and later be turned into sense data:
//
//	status := scsi.StatusInvalidCDB
//	status.SenseKey() // SenseIllegalRequest
//	status.ASC()      // ASCInvalidFieldInCDB
//
// # Command Descriptors
//
// [ParseInquiryCDB] and [ParseModeSelectCDB] decode raw CDB bytes into
// descriptors carrying only the fields the device core needs.
//
// # Mode Parameters
//
// A MODE SELECT parameter list is a mode parameter header followed by a
// sequence of variable-length pages. [PageCursor] walks the pages with a
// bounds check on every step, so malformed lists never cause reads past
// the end of the buffer.
//
// # References
//
//   - SCSI-2 (X3.131-1994) 8.2.5 INQUIRY, 8.2.8 MODE SELECT(6)
//   - SCSI Primary Commands (SPC-4)
//   - SCSI Block Commands (SBC-3), 6.4.4 Format Device mode page
package scsi
