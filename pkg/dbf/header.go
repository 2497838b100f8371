package dbf

import (
	"encoding/binary"
	"fmt"
	"time"
)

// HeaderSize is the fixed size of the table header in bytes.
const HeaderSize = 32

// Table region markers.
const (
	DescriptorTerminator = 0x0D // ends the field descriptor array
	EOFMarker            = 0x1A // logical end of file
)

// Record status markers (byte 0 of every record).
const (
	RecordActive  = 0x20
	RecordDeleted = 0x2A
)

// TableHeader is the decoded 32-byte file header.
type TableHeader struct {
	Version      byte
	Year         byte // last-modified year, stored as year-1900
	Month        byte
	Day          byte
	RecordCount  uint32
	HeaderLength uint16 // offset of the first record
	RecordLength uint16
	Reserved     [20]byte // bytes 12-31, preserved verbatim
}

// DecodeHeader parses the fixed 32-byte header.
func DecodeHeader(data []byte) (TableHeader, error) {
	if len(data) < HeaderSize {
		return TableHeader{}, fmt.Errorf("%w: %d bytes, need %d", ErrMalformedHeader, len(data), HeaderSize)
	}

	h := TableHeader{
		Version:      data[0],
		Year:         data[1],
		Month:        data[2],
		Day:          data[3],
		RecordCount:  binary.LittleEndian.Uint32(data[4:8]),
		HeaderLength: binary.LittleEndian.Uint16(data[8:10]),
		RecordLength: binary.LittleEndian.Uint16(data[10:12]),
	}
	copy(h.Reserved[:], data[12:32])

	return h, nil
}

// Encode serializes the header into a fresh 32-byte block. The version and
// reserved bytes round-trip from the decoded header; the last-modified date
// is taken from now. Years at or past 2156 overflow the year byte silently,
// matching the legacy tooling.
func (h TableHeader) Encode(now time.Time) []byte {
	buf := make([]byte, HeaderSize)

	buf[0] = h.Version
	buf[1] = byte(now.Year() - 1900)
	buf[2] = byte(now.Month())
	buf[3] = byte(now.Day())
	binary.LittleEndian.PutUint32(buf[4:8], h.RecordCount)
	binary.LittleEndian.PutUint16(buf[8:10], h.HeaderLength)
	binary.LittleEndian.PutUint16(buf[10:12], h.RecordLength)
	copy(buf[12:32], h.Reserved[:])

	return buf
}

// LastModified returns the header's date fields as a time.Time.
func (h TableHeader) LastModified() time.Time {
	return time.Date(1900+int(h.Year), time.Month(h.Month), int(h.Day), 0, 0, 0, 0, time.UTC)
}
