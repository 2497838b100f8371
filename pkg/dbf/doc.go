// Package dbf implements the binary codecs for the legacy fixed-record
// table format (a dBASE III variant) used by the HydroBuddy substances
// database.
//
// # File Layout
//
// A table file consists of four regions:
//
//	[Header(32)][FieldDescriptor(32)...][0x0D][Record(RecordLength)...][0x1A]
//
// Header fields (all multi-byte integers little-endian):
//   - byte 0: format version
//   - byte 1: last-modified year, stored as year-1900
//   - byte 2: last-modified month
//   - byte 3: last-modified day
//   - bytes 4-7: record count (uint32)
//   - bytes 8-9: header length in bytes (uint16)
//   - bytes 10-11: record length in bytes (uint16)
//   - bytes 12-31: reserved, round-tripped verbatim
//
// Each field descriptor is a 32-byte block:
//   - bytes 0-10: field name, ASCII, NUL/space padded
//   - byte 11: type character ('N' numeric, 'C' character, 'L' logical)
//   - byte 16: field length in bytes
//   - byte 17: decimal count (numeric fields only)
//
// The descriptor array is terminated by a block whose first byte is 0x0D.
// Records follow at offset HeaderLength. Byte 0 of every record is the
// status marker: 0x20 active, 0x2A deleted. The remaining bytes are the
// concatenated field values in descriptor order with no gaps, so the
// descriptor widths must sum to RecordLength-1.
//
// # Field Encoding
//
// Numeric values are fixed-point ASCII, right-justified, space padded, with
// exactly Decimals fractional digits. Character values are ASCII,
// left-justified, space padded. Logical values are a single 'T' or 'F'.
// A blank-filled field decodes as absent (nil).
//
// # Name Convention
//
// The substances table stores an 80-byte name field at record offset 1.
// RecordName relies on that contract directly instead of a schema lookup;
// it is specific to this table, not generic dBASE behavior.
package dbf
