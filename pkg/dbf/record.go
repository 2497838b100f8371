package dbf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Name-field contract of the substances table: an 80-byte name occupies
// record bytes 1..81. This is specific to this table's schema, not a
// general dBASE convention, so it stays a documented constant instead of a
// descriptor lookup.
const (
	NameFieldOffset = 1
	NameFieldWidth  = 80
)

// RecordEncoder encodes field values into fixed-width record bytes.
//
// TruncateOverflow selects the legacy behavior for numeric values wider
// than their field: silently keep the low-order characters. When false the
// encoder rejects such values with ErrEncodingOverflow instead.
type RecordEncoder struct {
	TruncateOverflow bool
}

// NewRecordEncoder creates an encoder with the legacy truncation behavior.
func NewRecordEncoder() *RecordEncoder {
	return &RecordEncoder{TruncateOverflow: true}
}

// EncodeRecord builds a complete record of recordLength bytes: the active
// status marker followed by every field's encoded value at its cumulative
// offset in descriptor order. Field names absent from values encode as
// blank; there is no check that every descriptor is supplied.
func (e *RecordEncoder) EncodeRecord(values map[string]any, fields []FieldDescriptor, recordLength int) ([]byte, error) {
	if FieldsWidth(fields)+1 > recordLength {
		return nil, fmt.Errorf("%w: field widths exceed record length %d", ErrMalformedFieldDescriptor, recordLength)
	}

	record := make([]byte, recordLength)
	record[0] = RecordActive

	offset := 1
	for _, fd := range fields {
		encoded, err := e.EncodeField(values[fd.Name], fd)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}
		copy(record[offset:offset+int(fd.Length)], encoded)
		offset += int(fd.Length)
	}

	return record, nil
}

// EncodeField formats a single value into exactly fd.Length bytes according
// to the field's type. A nil value encodes as blank (or 'F' for logical).
func (e *RecordEncoder) EncodeField(value any, fd FieldDescriptor) ([]byte, error) {
	switch fd.Type {
	case FieldTypeNumeric:
		return e.encodeNumeric(value, fd)
	case FieldTypeCharacter:
		return encodeCharacter(value, fd), nil
	case FieldTypeLogical:
		return encodeLogical(value, fd), nil
	default:
		return blankField(fd.Length), nil
	}
}

func (e *RecordEncoder) encodeNumeric(value any, fd FieldDescriptor) ([]byte, error) {
	if value == nil {
		return blankField(fd.Length), nil
	}

	num, ok := toFloat(value)
	if !ok {
		return nil, fmt.Errorf("cannot format %T as numeric", value)
	}

	text := strconv.FormatFloat(num, 'f', int(fd.Decimals), 64)
	if len(text) > int(fd.Length) {
		if !e.TruncateOverflow {
			return nil, fmt.Errorf("%w: %q into %d bytes", ErrEncodingOverflow, text, fd.Length)
		}
		// Legacy overflow drops the high-order characters.
		text = text[len(text)-int(fd.Length):]
	}

	out := blankField(fd.Length)
	copy(out[int(fd.Length)-len(text):], text)
	return out, nil
}

func encodeCharacter(value any, fd FieldDescriptor) []byte {
	text := ""
	if value != nil {
		if s, ok := value.(string); ok {
			text = s
		} else {
			text = fmt.Sprint(value)
		}
	}

	out := blankField(fd.Length)
	pos := 0
	for _, b := range []byte(text) {
		if pos >= int(fd.Length) {
			break
		}
		if b > 127 {
			b = ' ' // non-ASCII is replaced, never rejected
		}
		out[pos] = b
		pos++
	}
	return out
}

func encodeLogical(value any, fd FieldDescriptor) []byte {
	out := blankField(fd.Length)
	if len(out) == 0 {
		return out
	}
	if truthy(value) {
		out[0] = 'T'
	} else {
		out[0] = 'F'
	}
	return out
}

// DecodeField interprets raw field bytes per the descriptor. Numeric fields
// return float64 or nil when blank or unparsable; character fields return a
// right-trimmed string; logical fields return bool. Unsupported fields
// decode as nil.
func DecodeField(raw []byte, fd FieldDescriptor) any {
	switch fd.Type {
	case FieldTypeNumeric:
		text := strings.TrimSpace(string(raw))
		if text == "" {
			return nil
		}
		num, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil
		}
		return num
	case FieldTypeCharacter:
		return strings.TrimRight(string(raw), " \x00")
	case FieldTypeLogical:
		return len(raw) > 0 && (raw[0] == 'T' || raw[0] == 't')
	default:
		return nil
	}
}

// DecodeRecord decodes every field of a record into a name-to-value map.
func DecodeRecord(record []byte, fields []FieldDescriptor) map[string]any {
	values := make(map[string]any, len(fields))
	offset := 1
	for _, fd := range fields {
		end := offset + int(fd.Length)
		if end > len(record) {
			break
		}
		values[fd.Name] = DecodeField(record[offset:end], fd)
		offset = end
	}
	return values
}

// RecordName extracts the display name from record bytes using the
// substances-table name convention. Non-ASCII bytes are dropped rather than
// rejected, matching the legacy reader.
func RecordName(record []byte) string {
	end := NameFieldOffset + NameFieldWidth
	if end > len(record) {
		end = len(record)
	}
	if NameFieldOffset >= end {
		return ""
	}

	raw := record[NameFieldOffset:end]
	var buf bytes.Buffer
	for _, b := range raw {
		if b <= 127 {
			buf.WriteByte(b)
		}
	}
	return strings.TrimSpace(strings.TrimRight(buf.String(), "\x00"))
}

// Deleted reports whether the record carries the tombstone status marker.
func Deleted(record []byte) bool {
	return len(record) > 0 && record[0] == RecordDeleted
}

func blankField(length uint8) []byte {
	out := make([]byte, length)
	for i := range out {
		out[i] = ' '
	}
	return out
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0" && !strings.EqualFold(v, "false") && !strings.EqualFold(v, "f")
	default:
		num, ok := toFloat(value)
		return ok && num != 0
	}
}
