package scsi

import (
	"fmt"

	"github.com/ardnew/softscsi/pkg"
)

// StatusCode is the outcome of a command: sense key in bits 16-23, ASC in
// bits 8-15 and ASCQ in bits 0-7.
type StatusCode uint32

// Status values reported by the disk core.
const (
	StatusNoError      StatusCode = 0
	StatusInvalidCDB              = StatusCode(SenseIllegalRequest<<16 | ASCInvalidFieldInCDB<<8)
	StatusInvalidParam            = StatusCode(SenseIllegalRequest<<16 | ASCInvalidFieldInParamList<<8)
	StatusNotReady                = StatusCode(SenseNotReady<<16 | ASCMediumNotPresent<<8)
	StatusAttention               = StatusCode(SenseUnitAttention<<16 | ASCNotReadyToReadyChange<<8)
	StatusReset                   = StatusCode(SenseUnitAttention<<16 | ASCPowerOnReset<<8)
)

// NewStatus packs a sense key, ASC and ASCQ into a StatusCode.
func NewStatus(key, asc, ascq uint8) StatusCode {
	return StatusCode(uint32(key&0x0F)<<16 | uint32(asc)<<8 | uint32(ascq))
}

// SenseKey returns the sense key (bits 0-3 of sense byte 2).
func (s StatusCode) SenseKey() uint8 {
	return uint8(s>>16) & 0x0F
}

// ASC returns the additional sense code.
func (s StatusCode) ASC() uint8 {
	return uint8(s >> 8)
}

// ASCQ returns the additional sense code qualifier.
func (s StatusCode) ASCQ() uint8 {
	return uint8(s)
}

// OK reports whether s is StatusNoError.
func (s StatusCode) OK() bool {
	return s == StatusNoError
}

// String returns a string representation of the status code.
func (s StatusCode) String() string {
	switch s {
	case StatusNoError:
		return "no error"
	case StatusInvalidCDB:
		return "invalid CDB"
	case StatusInvalidParam:
		return "invalid parameter"
	case StatusNotReady:
		return "not ready"
	case StatusAttention:
		return "unit attention"
	case StatusReset:
		return "reset"
	default:
		return fmt.Sprintf("sense %02X/%02X/%02X", s.SenseKey(), s.ASC(), s.ASCQ())
	}
}

// Err returns the corresponding error for the status code, or nil for
// StatusNoError.
func (s StatusCode) Err() error {
	switch s {
	case StatusNoError:
		return nil
	case StatusInvalidCDB:
		return pkg.ErrInvalidCDB
	case StatusInvalidParam:
		return pkg.ErrInvalidParameter
	case StatusNotReady:
		return pkg.ErrNotReady
	default:
		return fmt.Errorf("%w: %s", pkg.ErrCommandFailed, s)
	}
}
