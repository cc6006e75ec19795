package scsi

import (
	"bytes"
	"testing"
)

func TestPaddedIdentity(t *testing.T) {
	tests := []struct {
		name                      string
		vendor, product, revision string
		want                      string
	}{
		{"padded", "QUANTUM", "FIREBALL1000S", "1.0", "QUANTUM FIREBALL1000S   1.0 "},
		{"exact", "ABCDEFGH", "0123456789ABCDEF", "WXYZ", "ABCDEFGH0123456789ABCDEFWXYZ"},
		{"truncated", "VENDORNAME", "A VERY LONG PRODUCT NAME", "12345", "VENDORNAA VERY LONG PROD1234"},
		{"empty", "", "", "", "                            "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaddedIdentity(tt.vendor, tt.product, tt.revision)
			if string(got[:]) != tt.want {
				t.Errorf("PaddedIdentity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInquiryResponse_MarshalTo(t *testing.T) {
	id := PaddedIdentity("QUANTUM", "PRODRIVE LPS1S", "0100")
	resp := NewInquiryResponse(DeviceTypeDisk, false, id)

	if got := resp.Size(); got != 130 {
		t.Fatalf("Size() = %d, want 130", got)
	}

	buf := bytes.Repeat([]byte{0xEE}, 256)
	n := resp.MarshalTo(buf)
	if n != 130 {
		t.Fatalf("MarshalTo() = %d, want 130", n)
	}

	wantHeader := []byte{0x00, 0x00, 0x02, 0x02, 125, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf[:8], wantHeader) {
		t.Errorf("header = % X, want % X", buf[:8], wantHeader)
	}
	if !bytes.Equal(buf[8:36], id[:]) {
		t.Errorf("identity = %q, want %q", buf[8:36], id[:])
	}
	if !bytes.Equal(buf[36:130], make([]byte, 94)) {
		t.Error("bytes 36..129 not zeroed")
	}
	if buf[130] != 0xEE {
		t.Error("MarshalTo wrote past the response size")
	}
}

func TestInquiryResponse_Removable(t *testing.T) {
	resp := NewInquiryResponse(DeviceTypeDisk, true, PaddedIdentity("A", "B", "C"))
	buf := make([]byte, InquiryStandardSize)
	if n := resp.MarshalTo(buf); n != InquiryStandardSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, InquiryStandardSize)
	}
	if buf[1] != InquiryRMB {
		t.Errorf("byte 1 = %#x, want %#x", buf[1], InquiryRMB)
	}
}

func TestInquiryResponse_ShortBuffer(t *testing.T) {
	resp := NewInquiryResponse(DeviceTypeDisk, false, PaddedIdentity("QUANTUM", "X", "1"))

	if n := resp.MarshalTo(make([]byte, 7)); n != 0 {
		t.Errorf("MarshalTo(7 bytes) = %d, want 0", n)
	}

	buf := make([]byte, 20)
	if n := resp.MarshalTo(buf); n != 20 {
		t.Errorf("MarshalTo(20 bytes) = %d, want 20", n)
	}
	if string(buf[8:20]) != "QUANTUM X   " {
		t.Errorf("partial identity = %q", buf[8:20])
	}
}
