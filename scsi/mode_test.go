package scsi

import (
	"bytes"
	"testing"
)

func TestModeHeaderBlockLength(t *testing.T) {
	six := ModeSelectCDB{Opcode: OpModeSelect6}
	ten := ModeSelectCDB{Opcode: OpModeSelect10}

	hdr6 := make([]byte, ModeHeaderSize6)
	hdr6[9], hdr6[10], hdr6[11] = 0x00, 0x02, 0x00
	if got, ok := six.ModeHeaderBlockLength(hdr6); !ok || got != 512 {
		t.Errorf("ModeHeaderBlockLength(6) = %d, %v, want 512, true", got, ok)
	}

	hdr10 := make([]byte, ModeHeaderSize10)
	hdr10[13], hdr10[14], hdr10[15] = 0x01, 0x00, 0x00
	if got, ok := ten.ModeHeaderBlockLength(hdr10); !ok || got != 0x010000 {
		t.Errorf("ModeHeaderBlockLength(10) = %#x, %v, want 0x10000, true", got, ok)
	}

	if _, ok := ten.ModeHeaderBlockLength(hdr6); ok {
		t.Error("ModeHeaderBlockLength(10) on a 12-byte list = true, want false")
	}
}

func TestPageCursor(t *testing.T) {
	pages := []byte{
		0x03, 0x02, 0xAA, 0xBB, // page 3, 2 data bytes
		0x88, 0x00, // page 8 with PS bit, no data
		0x43, 0x00, // page 3 with SPF bit, no data
		0x21, 0x01, 0xCC, // page 0x21, 1 data byte
	}

	c := NewPageCursor(pages)
	want := []struct {
		code uint8
		data []byte
	}{
		{0x03, pages[0:4]},
		{0x88, pages[4:6]},
		{0x43, pages[6:8]},
		{0x21, pages[8:11]},
	}

	for i, w := range want {
		page, ok := c.Next()
		if !ok {
			t.Fatalf("Next() #%d = false, want true", i)
		}
		if page.Code != w.code {
			t.Errorf("page %d code = %#x, want %#x", i, page.Code, w.code)
		}
		if !bytes.Equal(page.Data, w.data) {
			t.Errorf("page %d data = % X, want % X", i, page.Data, w.data)
		}
		if page.Truncated() {
			t.Errorf("page %d truncated, want complete", i)
		}
	}

	if _, ok := c.Next(); ok {
		t.Error("Next() after last page = true, want false")
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", c.Remaining())
	}
}

func TestPageCursor_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		pages     []byte
		wantPages int
		truncated bool
	}{
		{"empty", nil, 0, false},
		{"single trailing byte", []byte{0x03}, 0, false},
		{"declared length overruns", []byte{0x03, 0x16, 0x00, 0x01}, 1, true},
		{"complete then overrun", []byte{0x20, 0x00, 0x08, 0xFF, 0x00}, 2, true},
		{"complete then trailing byte", []byte{0x20, 0x00, 0x08}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPageCursor(tt.pages)
			var n int
			var last ModePage
			for {
				page, ok := c.Next()
				if !ok {
					break
				}
				n++
				last = page
				if n > len(tt.pages) {
					t.Fatal("cursor did not terminate")
				}
			}
			if n != tt.wantPages {
				t.Errorf("pages = %d, want %d", n, tt.wantPages)
			}
			if n > 0 && last.Truncated() != tt.truncated {
				t.Errorf("last page truncated = %v, want %v", last.Truncated(), tt.truncated)
			}
			if c.Remaining() != 0 {
				t.Errorf("Remaining() = %d, want 0", c.Remaining())
			}
		})
	}
}

func TestModePage_FormatDeviceSectorSize(t *testing.T) {
	page := make([]byte, 0x18)
	page[0], page[1] = ModePageFormatDevice, 0x16
	page[0x0C], page[0x0D] = 0x02, 0x00

	got, ok := ModePage{Code: ModePageFormatDevice, Data: page, Size: len(page)}.FormatDeviceSectorSize()
	if !ok || got != 512 {
		t.Errorf("FormatDeviceSectorSize() = %d, %v, want 512, true", got, ok)
	}

	short := ModePage{Code: ModePageFormatDevice, Data: page[:0x0D], Size: len(page)}
	if _, ok := short.FormatDeviceSectorSize(); ok {
		t.Error("FormatDeviceSectorSize() on short page = true, want false")
	}
}
