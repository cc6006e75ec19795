package scsi

// SenseResponse represents fixed-format sense data.
type SenseResponse struct {
	ResponseCode     uint8 // 0x70 = current, fixed format
	SenseKey         uint8 // Sense key (bits 0-3)
	AdditionalLength uint8 // Additional sense length (n-7)
	ASC              uint8 // Additional sense code
	ASCQ             uint8 // Additional sense code qualifier
}

// NewSenseResponse creates fixed-format sense data describing status.
func NewSenseResponse(status StatusCode) *SenseResponse {
	return &SenseResponse{
		ResponseCode:     SenseResponseCurrent,
		SenseKey:         status.SenseKey(),
		AdditionalLength: SenseFixedSize - 8,
		ASC:              status.ASC(),
		ASCQ:             status.ASCQ(),
	}
}

// MarshalTo writes the sense data to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (r *SenseResponse) MarshalTo(buf []byte) int {
	if len(buf) < SenseFixedSize {
		return 0
	}

	clear(buf[:SenseFixedSize])
	buf[0] = r.ResponseCode
	buf[2] = r.SenseKey & 0x0F
	buf[7] = r.AdditionalLength
	buf[12] = r.ASC
	buf[13] = r.ASCQ

	return SenseFixedSize
}
