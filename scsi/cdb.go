package scsi

import (
	"encoding/binary"
	"errors"
)

// Command descriptor errors.
var (
	// ErrShortCDB indicates the CDB is shorter than its opcode requires.
	ErrShortCDB = errors.New("CDB too short")

	// ErrOpcodeMismatch indicates the CDB opcode does not match the
	// descriptor being decoded.
	ErrOpcodeMismatch = errors.New("CDB opcode mismatch")
)

// InquiryCDB is a decoded INQUIRY command descriptor.
type InquiryCDB struct {
	EVPD             bool   // Vital product data requested (byte 1, bit 0)
	PageCode         uint8  // VPD page code (byte 2)
	LUN              uint8  // Logical unit selector (byte 1, bits 5-7)
	AllocationLength uint16 // Allocation length (byte 4)
}

// ParseInquiryCDB decodes a 6-byte INQUIRY CDB.
//
// The allocation length is the single byte 4 of the SCSI-2 layout; byte 3
// is reserved there and is ignored.
func ParseInquiryCDB(cdb []byte) (InquiryCDB, error) {
	if len(cdb) < CDBSize6 {
		return InquiryCDB{}, ErrShortCDB
	}
	if cdb[0] != OpInquiry {
		return InquiryCDB{}, ErrOpcodeMismatch
	}

	return InquiryCDB{
		EVPD:             cdb[1]&InquiryEVPD != 0,
		PageCode:         cdb[2],
		LUN:              (cdb[1] >> cdbLUNShift) & cdbLUNMask,
		AllocationLength: uint16(cdb[4]),
	}, nil
}

// MarshalTo writes the descriptor as a 6-byte CDB into buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (c InquiryCDB) MarshalTo(buf []byte) int {
	if len(buf) < CDBSize6 {
		return 0
	}

	clear(buf[:CDBSize6])
	buf[0] = OpInquiry
	buf[1] = (c.LUN & cdbLUNMask) << cdbLUNShift
	if c.EVPD {
		buf[1] |= InquiryEVPD
	}
	buf[2] = c.PageCode
	buf[4] = uint8(min(c.AllocationLength, 0xFF))

	return CDBSize6
}

// ModeSelectCDB is a decoded MODE SELECT(6) or MODE SELECT(10) descriptor.
type ModeSelectCDB struct {
	Opcode              uint8  // OpModeSelect6 or OpModeSelect10
	PF                  bool   // Page format (byte 1, bit 4)
	SP                  bool   // Save pages (byte 1, bit 0)
	LUN                 uint8  // Logical unit selector (byte 1, bits 5-7)
	ParameterListLength uint16 // Byte 4 (6-byte) or bytes 7-8 (10-byte)
}

// ParseModeSelectCDB decodes a MODE SELECT(6) or MODE SELECT(10) CDB.
func ParseModeSelectCDB(cdb []byte) (ModeSelectCDB, error) {
	if len(cdb) < CDBSize6 {
		return ModeSelectCDB{}, ErrShortCDB
	}

	c := ModeSelectCDB{
		Opcode: cdb[0],
		PF:     cdb[1]&ModeSelectPF != 0,
		SP:     cdb[1]&ModeSelectSP != 0,
		LUN:    (cdb[1] >> cdbLUNShift) & cdbLUNMask,
	}

	switch c.Opcode {
	case OpModeSelect6:
		c.ParameterListLength = uint16(cdb[4])
	case OpModeSelect10:
		if len(cdb) < CDBSize10 {
			return ModeSelectCDB{}, ErrShortCDB
		}
		c.ParameterListLength = binary.BigEndian.Uint16(cdb[7:9])
	default:
		return ModeSelectCDB{}, ErrOpcodeMismatch
	}

	return c, nil
}

// MarshalTo writes the descriptor as a CDB into buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (c ModeSelectCDB) MarshalTo(buf []byte) int {
	size := CDBSize6
	if c.Opcode == OpModeSelect10 {
		size = CDBSize10
	}
	if len(buf) < size {
		return 0
	}

	clear(buf[:size])
	buf[0] = c.Opcode
	buf[1] = (c.LUN & cdbLUNMask) << cdbLUNShift
	if c.PF {
		buf[1] |= ModeSelectPF
	}
	if c.SP {
		buf[1] |= ModeSelectSP
	}
	if size == CDBSize10 {
		binary.BigEndian.PutUint16(buf[7:9], c.ParameterListLength)
	} else {
		buf[4] = uint8(min(c.ParameterListLength, 0xFF))
	}

	return size
}

// HeaderSize returns the size of the mode parameter header plus one block
// descriptor for the descriptor's command variant.
func (c ModeSelectCDB) HeaderSize() int {
	if c.Opcode == OpModeSelect10 {
		return ModeHeaderSize10
	}
	return ModeHeaderSize6
}

// blockLengthOffset returns where the 3-byte block length sits in the header.
func (c ModeSelectCDB) blockLengthOffset() int {
	if c.Opcode == OpModeSelect10 {
		return modeBlockLengthOffset10
	}
	return modeBlockLengthOffset6
}
