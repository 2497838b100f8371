package dbf

import (
	"fmt"
	"strings"
)

// DescriptorSize is the size of one field descriptor block in bytes.
const DescriptorSize = 32

// FieldType identifies how a field's bytes are interpreted.
type FieldType byte

const (
	FieldTypeNumeric     FieldType = 'N'
	FieldTypeCharacter   FieldType = 'C'
	FieldTypeLogical     FieldType = 'L'
	FieldTypeUnsupported FieldType = 0
)

func (t FieldType) String() string {
	switch t {
	case FieldTypeNumeric:
		return "numeric"
	case FieldTypeCharacter:
		return "character"
	case FieldTypeLogical:
		return "logical"
	default:
		return "unsupported"
	}
}

// FieldDescriptor describes one column of the table: its name, type, byte
// width, and decimal precision. Descriptors are immutable after load; this
// system never adds or removes fields.
type FieldDescriptor struct {
	Name     string
	Type     FieldType
	Length   uint8
	Decimals uint8 // meaningful for numeric fields only
}

// DecodeFieldDescriptors reads 32-byte descriptor blocks from data until a
// block whose first byte is the terminator 0x0D. It returns
// ErrMalformedFieldDescriptor if the terminator is never found.
func DecodeFieldDescriptors(data []byte) ([]FieldDescriptor, error) {
	var fields []FieldDescriptor

	for offset := 0; ; offset += DescriptorSize {
		if offset >= len(data) {
			return nil, fmt.Errorf("%w: no terminator before end of data", ErrMalformedFieldDescriptor)
		}
		if data[offset] == DescriptorTerminator {
			return fields, nil
		}
		if offset+DescriptorSize > len(data) {
			return nil, fmt.Errorf("%w: partial descriptor block at offset %d", ErrMalformedFieldDescriptor, offset)
		}

		block := data[offset : offset+DescriptorSize]
		fields = append(fields, FieldDescriptor{
			Name:     trimFieldName(block[0:11]),
			Type:     fieldTypeOf(block[11]),
			Length:   block[16],
			Decimals: block[17],
		})
	}
}

// FieldsWidth returns the total byte width of the descriptor sequence. For
// a well-formed table it equals RecordLength-1 (one byte for the status
// marker).
func FieldsWidth(fields []FieldDescriptor) int {
	width := 0
	for _, fd := range fields {
		width += int(fd.Length)
	}
	return width
}

func fieldTypeOf(b byte) FieldType {
	switch b {
	case 'N':
		return FieldTypeNumeric
	case 'C':
		return FieldTypeCharacter
	case 'L':
		return FieldTypeLogical
	default:
		return FieldTypeUnsupported
	}
}

func trimFieldName(raw []byte) string {
	return strings.TrimRight(string(raw), "\x00 ")
}
