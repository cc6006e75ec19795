// Package device defines the command capability set shared by emulated
// SCSI devices.
//
// A bus or transport layer resolves each command's opcode, decodes the
// CDB with package scsi and calls the matching [Handler] method. Every
// call returns a [Result] carrying the command status and, for data-in
// commands, the number of response bytes; the handler also keeps the
// status so it can be reported later through REQUEST SENSE.
//
// Device variants are described by a [Kind] tag on the implementing type
// rather than by separate types per variant. The hard disk implementation
// lives in package hd.
package device
