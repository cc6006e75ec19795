package device

import (
	"fmt"
	"strings"

	"github.com/ardnew/softscsi/scsi"
)

// Handler is the set of commands a SCSI device core answers.
type Handler interface {
	// Reset clears transient session state and the last status.
	Reset()

	// Open attaches the backing store at path and makes the device ready.
	Open(path string) error

	// Identify answers INQUIRY into buf.
	Identify(cdb scsi.InquiryCDB, buf []byte) Result

	// ApplyModeParameters answers MODE SELECT with the parameter list params.
	ApplyModeParameters(cdb scsi.ModeSelectCDB, params []byte) Result

	// IsReady reports whether a backing store has been opened.
	IsReady() bool

	// LastStatus returns the status of the most recent command.
	LastStatus() scsi.StatusCode

	// Identity returns the vendor, product and revision strings.
	Identity() Identity
}

// Result is the outcome of one command.
type Result struct {
	// Status is the command status, also kept by the handler as its last
	// status.
	Status scsi.StatusCode

	// Length is the number of valid response bytes for data-in commands.
	Length int
}

// OK reports whether the command succeeded.
func (r Result) OK() bool {
	return r.Status.OK()
}

// Err returns nil on success, or the error matching the status.
func (r Result) Err() error {
	return r.Status.Err()
}

// Identity is the INQUIRY identification of a device.
type Identity struct {
	Vendor   string
	Product  string
	Revision string
}

// Padded returns the 28-byte space-padded INQUIRY form of the identity.
func (id Identity) Padded() [scsi.InquiryIdentitySize]byte {
	return scsi.PaddedIdentity(id.Vendor, id.Product, id.Revision)
}

// String returns the padded identity with trailing spaces removed.
func (id Identity) String() string {
	p := id.Padded()
	return strings.TrimRight(string(p[:]), " ")
}

// Kind tags a device variant.
type Kind uint8

// Device kinds.
const (
	KindFixed     Kind = iota // Fixed hard disk
	KindRemovable             // Removable hard disk
)

// String returns the short device type identifier.
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "SCHD"
	case KindRemovable:
		return "SCRM"
	default:
		return "unknown"
	}
}

// Removable reports whether the kind reports removable media.
func (k Kind) Removable() bool {
	return k == KindRemovable
}

// ParseKind accepts "fixed", "removable" or the short identifiers "SCHD"
// and "SCRM", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed", "schd":
		return KindFixed, nil
	case "removable", "scrm":
		return KindRemovable, nil
	default:
		return KindFixed, fmt.Errorf("unknown device kind %q", s)
	}
}
