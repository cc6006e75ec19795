package scsi

// InquiryResponse represents SCSI-2 standard INQUIRY data.
type InquiryResponse struct {
	Peripheral       uint8                     // Qualifier and device type
	RMB              uint8                     // Removable media bit (bit 7)
	Version          uint8                     // ANSI version
	ResponseFormat   uint8                     // Response data format
	AdditionalLength uint8                     // Additional length (n-4)
	Identity         [InquiryIdentitySize]byte // Vendor, product, revision
}

// NewInquiryResponse creates a SCSI-2 INQUIRY response for a device of the
// given type.
func NewInquiryResponse(deviceType uint8, removable bool, identity [InquiryIdentitySize]byte) *InquiryResponse {
	resp := &InquiryResponse{
		Peripheral:       deviceType,
		Version:          InquiryVersionSCSI2,
		ResponseFormat:   InquiryFormatSCSI2,
		AdditionalLength: InquiryAdditionalLength,
		Identity:         identity,
	}

	if removable {
		resp.RMB = InquiryRMB
	}

	return resp
}

// Size returns the total response size announced by the additional length.
func (r *InquiryResponse) Size() int {
	return int(r.AdditionalLength) + 5
}

// MarshalTo writes the response to buf, up to Size bytes. Bytes past the
// identity are zero.
// Returns the number of bytes written, or 0 if buf cannot hold the header.
func (r *InquiryResponse) MarshalTo(buf []byte) int {
	if len(buf) < InquiryHeaderSize {
		return 0
	}

	n := min(r.Size(), len(buf))
	clear(buf[:n])

	buf[0] = r.Peripheral
	buf[1] = r.RMB
	buf[2] = r.Version
	buf[3] = r.ResponseFormat
	buf[4] = r.AdditionalLength
	if n > InquiryIdentityOffset {
		copy(buf[InquiryIdentityOffset:n], r.Identity[:])
	}

	return n
}

// PaddedIdentity returns vendor, product and revision padded with spaces
// or truncated to 8, 16 and 4 bytes, concatenated.
func PaddedIdentity(vendor, product, revision string) [InquiryIdentitySize]byte {
	var id [InquiryIdentitySize]byte
	copy(id[0:VendorSize], padString(vendor, VendorSize))
	copy(id[VendorSize:VendorSize+ProductSize], padString(product, ProductSize))
	copy(id[VendorSize+ProductSize:], padString(revision, RevisionSize))
	return id
}

// padString pads or truncates a string to the specified length.
func padString(s string, length int) []byte {
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		if i < len(s) {
			result[i] = s[i]
		} else {
			result[i] = ' '
		}
	}
	return result
}
