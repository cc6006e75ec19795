package scsi

// ModeHeaderBlockLength returns the 3-byte big-endian block length from the
// block descriptor that follows the mode parameter header, and false if
// params is shorter than the header for the command variant.
func (c ModeSelectCDB) ModeHeaderBlockLength(params []byte) (uint32, bool) {
	if len(params) < c.HeaderSize() {
		return 0, false
	}
	off := c.blockLengthOffset()
	return uint32(params[off])<<16 | uint32(params[off+1])<<8 | uint32(params[off+2]), true
}

// ModePage is one page of a mode parameter list.
type ModePage struct {
	// Code is the first page byte as sent. A page with the PS or SPF bit
	// set does not match the plain page code.
	Code uint8

	// Data is the whole page including its 2-byte page header. It is shorter
	// than Size when the page was cut off by the end of the parameter list.
	Data []byte

	// Size is the declared page size, page length + 2.
	Size int
}

// Truncated reports whether the parameter list ended inside the page.
func (p ModePage) Truncated() bool {
	return len(p.Data) < p.Size
}

// FormatDeviceSectorSize returns the "data bytes per physical sector" field
// of a format device page (bytes 0x0C-0x0D), and false if the page is too
// short to hold it.
func (p ModePage) FormatDeviceSectorSize() (uint16, bool) {
	if len(p.Data) < formatDeviceMinSize {
		return 0, false
	}
	off := formatDeviceSectorSizeOffset
	return uint16(p.Data[off])<<8 | uint16(p.Data[off+1]), true
}

// PageCursor walks the pages of a mode parameter list. Every step is
// bounded by the list length.
type PageCursor struct {
	buf []byte
	off int
}

// NewPageCursor returns a cursor positioned at the first page of pages,
// which must not include the mode parameter header.
func NewPageCursor(pages []byte) *PageCursor {
	return &PageCursor{buf: pages}
}

// Remaining returns the number of unread bytes.
func (c *PageCursor) Remaining() int {
	return len(c.buf) - c.off
}

// Next returns the next page and advances past it. It returns false when
// fewer than two bytes remain. A page whose declared size runs past the end
// of the list is returned with its available bytes and ends the walk.
func (c *PageCursor) Next() (ModePage, bool) {
	if c.Remaining() < ModePageHeaderSize {
		c.off = len(c.buf)
		return ModePage{}, false
	}

	rest := c.buf[c.off:]
	page := ModePage{
		Code: rest[0],
		Size: int(rest[1]) + ModePageHeaderSize,
	}

	if page.Size > len(rest) {
		page.Data = rest
		c.off = len(c.buf)
		return page, true
	}

	page.Data = rest[:page.Size]
	c.off += page.Size
	return page, true
}
