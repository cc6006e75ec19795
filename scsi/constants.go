package scsi

// SCSI operation codes used by the disk core.
const (
	OpInquiry      = 0x12 // Get device information
	OpModeSelect6  = 0x15 // Set mode parameters (6-byte)
	OpModeSelect10 = 0x55 // Set mode parameters (10-byte)
)

// Command descriptor lengths.
const (
	CDBSize6  = 6
	CDBSize10 = 10
)

// CDB byte 1 flags.
const (
	InquiryEVPD    = 0x01 // Return vital product data
	ModeSelectSP   = 0x01 // Save pages
	ModeSelectPF   = 0x10 // Page format
	cdbLUNShift    = 5    // Logical unit selector, bits 5-7 of byte 1
	cdbLUNMask     = 0x07
	MaxLogicalUnit = 7 // Highest LUN encodable in a CDB
)

// SCSI sense keys.
const (
	SenseNoSense        = 0x00 // No error
	SenseNotReady       = 0x02 // Device not ready
	SenseMediumError    = 0x03 // Medium error
	SenseIllegalRequest = 0x05 // Illegal request
	SenseUnitAttention  = 0x06 // Unit attention
)

// Additional Sense Codes (ASC).
const (
	ASCNoAdditionalInfo        = 0x00 // No additional sense information
	ASCInvalidFieldInCDB       = 0x24 // Invalid field in CDB
	ASCInvalidFieldInParamList = 0x26 // Invalid field in parameter list
	ASCNotReadyToReadyChange   = 0x28 // Not ready to ready change
	ASCPowerOnReset            = 0x29 // Power on, reset, or bus device reset
	ASCMediumNotPresent        = 0x3A // Medium not present
)

// DeviceTypeDisk is the peripheral device type of a direct access block
// device.
const DeviceTypeDisk = 0x00

// PeripheralNotPresent is returned in INQUIRY byte 0 when the addressed
// logical unit is not the one answering: qualifier 011b, type 1Fh.
const PeripheralNotPresent = 0x7F

// INQUIRY response constants.
const (
	InquiryHeaderSize       = 8    // Bytes zeroed before the response is built
	InquiryIdentityOffset   = 8    // Start of vendor/product/revision
	InquiryIdentitySize     = 28   // Vendor (8) + product (16) + revision (4)
	InquiryStandardSize     = 36   // Header + identity
	InquiryAdditionalLength = 125  // Reported additional length, close to a real drive
	InquiryVersionSCSI2     = 0x02 // ANSI version: SCSI-2
	InquiryFormatSCSI2      = 0x02 // Response data format: SCSI-2
	InquiryRMB              = 0x80 // Removable media bit
)

// Identity field widths.
const (
	VendorSize   = 8
	ProductSize  = 16
	RevisionSize = 4
)

// Mode parameter list layout.
const (
	// ModeHeaderSize6 is the MODE SELECT(6) header (4 bytes) plus one block
	// descriptor (8 bytes).
	ModeHeaderSize6 = 12

	// ModeHeaderSize10 is the MODE SELECT(10) header (8 bytes) plus one
	// block descriptor (8 bytes).
	ModeHeaderSize10 = 16

	// Offsets of the 3-byte block length inside the header.
	modeBlockLengthOffset6  = 9
	modeBlockLengthOffset10 = 13

	// ModePageHeaderSize is the page code byte plus the page length byte.
	ModePageHeaderSize = 2
)

// Mode page codes.
const (
	ModePageFormatDevice = 0x03 // Format device parameters
	ModePageCaching      = 0x08 // Caching parameters
)

// Format device page field offsets.
const (
	formatDeviceSectorSizeOffset = 0x0C // Data bytes per physical sector (2 bytes)
	formatDeviceMinSize          = formatDeviceSectorSizeOffset + 2
)

// Sense data constants.
const (
	SenseFixedSize       = 18   // Fixed-format sense data length
	SenseResponseCurrent = 0x70 // Current errors, fixed format
)
