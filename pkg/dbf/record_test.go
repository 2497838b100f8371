package dbf

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeField_Numeric(t *testing.T) {
	enc := NewRecordEncoder()

	testCases := []struct {
		name  string
		value any
		fd    FieldDescriptor
		want  string
	}{
		{
			name:  "right justified with two decimals",
			value: 21.58,
			fd:    FieldDescriptor{Name: "K", Type: FieldTypeNumeric, Length: 18, Decimals: 2},
			want:  "             21.58",
		},
		{
			name:  "zero",
			value: 0.0,
			fd:    FieldDescriptor{Name: "Ca", Type: FieldTypeNumeric, Length: 18, Decimals: 2},
			want:  "              0.00",
		},
		{
			name:  "negative",
			value: -4.5,
			fd:    FieldDescriptor{Name: "Cost", Type: FieldTypeNumeric, Length: 10, Decimals: 2},
			want:  "     -4.50",
		},
		{
			name:  "integer field has no decimal point",
			value: 42,
			fd:    FieldDescriptor{Name: "Count", Type: FieldTypeNumeric, Length: 5, Decimals: 0},
			want:  "   42",
		},
		{
			name:  "absent fills with spaces",
			value: nil,
			fd:    FieldDescriptor{Name: "Mo", Type: FieldTypeNumeric, Length: 6, Decimals: 4},
			want:  "      ",
		},
		{
			name:  "bool coerces to 0/1",
			value: true,
			fd:    FieldDescriptor{Name: "isLiquid", Type: FieldTypeNumeric, Length: 3, Decimals: 0},
			want:  "  1",
		},
		{
			name:  "six decimal places",
			value: 0.0009,
			fd:    FieldDescriptor{Name: "Mo", Type: FieldTypeNumeric, Length: 18, Decimals: 6},
			want:  "          0.000900",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := enc.EncodeField(tc.value, tc.fd)
			if err != nil {
				t.Fatalf("EncodeField failed: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("EncodeField = %q, want %q", got, tc.want)
			}
			if len(got) != int(tc.fd.Length) {
				t.Errorf("length = %d, want %d", len(got), tc.fd.Length)
			}
		})
	}
}

func TestEncodeField_NumericOverflow(t *testing.T) {
	fd := FieldDescriptor{Name: "Purity", Type: FieldTypeNumeric, Length: 5, Decimals: 2}

	t.Run("legacy mode drops high-order characters", func(t *testing.T) {
		enc := NewRecordEncoder()
		got, err := enc.EncodeField(123456.78, fd)
		if err != nil {
			t.Fatalf("EncodeField failed: %v", err)
		}
		// "123456.78" truncated from the left to 5 bytes.
		if string(got) != "56.78" {
			t.Errorf("EncodeField = %q, want %q", got, "56.78")
		}
	})

	t.Run("strict mode rejects", func(t *testing.T) {
		enc := &RecordEncoder{TruncateOverflow: false}
		if _, err := enc.EncodeField(123456.78, fd); !errors.Is(err, ErrEncodingOverflow) {
			t.Errorf("err = %v, want ErrEncodingOverflow", err)
		}
	})
}

func TestEncodeField_Character(t *testing.T) {
	enc := NewRecordEncoder()

	testCases := []struct {
		name  string
		value any
		fd    FieldDescriptor
		want  string
	}{
		{
			name:  "left justified, space padded",
			value: "Calcium Sulfate",
			fd:    FieldDescriptor{Name: "Name", Type: FieldTypeCharacter, Length: 20},
			want:  "Calcium Sulfate     ",
		},
		{
			name:  "truncated when too long",
			value: "Jacks Calcium Nitrate",
			fd:    FieldDescriptor{Name: "Name", Type: FieldTypeCharacter, Length: 10},
			want:  "Jacks Calc",
		},
		{
			name:  "non-ASCII bytes replaced",
			value: "CaSO4·2H2O",
			fd:    FieldDescriptor{Name: "Formula", Type: FieldTypeCharacter, Length: 12},
			want:  "CaSO4  2H2O ",
		},
		{
			name:  "nil encodes blank",
			value: nil,
			fd:    FieldDescriptor{Name: "Source", Type: FieldTypeCharacter, Length: 4},
			want:  "    ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := enc.EncodeField(tc.value, tc.fd)
			if err != nil {
				t.Fatalf("EncodeField failed: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("EncodeField = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeField_Logical(t *testing.T) {
	enc := NewRecordEncoder()
	fd := FieldDescriptor{Name: "isLiquid", Type: FieldTypeLogical, Length: 1}

	testCases := []struct {
		value any
		want  string
	}{
		{true, "T"},
		{false, "F"},
		{nil, "F"},
		{1, "T"},
		{0.0, "F"},
	}
	for _, tc := range testCases {
		got, err := enc.EncodeField(tc.value, fd)
		if err != nil {
			t.Fatalf("EncodeField(%v) failed: %v", tc.value, err)
		}
		if string(got) != tc.want {
			t.Errorf("EncodeField(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestEncodeField_Unsupported(t *testing.T) {
	enc := NewRecordEncoder()
	fd := FieldDescriptor{Name: "Memo", Type: FieldTypeUnsupported, Length: 6}

	got, err := enc.EncodeField("anything", fd)
	if err != nil {
		t.Fatalf("EncodeField failed: %v", err)
	}
	if string(got) != "      " {
		t.Errorf("EncodeField = %q, want blank", got)
	}
}

func testFields() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "Name", Type: FieldTypeCharacter, Length: 80},
		{Name: "Purity", Type: FieldTypeNumeric, Length: 18, Decimals: 2},
		{Name: "isLiquid", Type: FieldTypeLogical, Length: 1},
	}
}

func TestEncodeRecord(t *testing.T) {
	enc := NewRecordEncoder()
	fields := testFields()
	recordLength := FieldsWidth(fields) + 1

	record, err := enc.EncodeRecord(map[string]any{
		"Name":     "Calcium Sulfate",
		"Purity":   1.0,
		"isLiquid": false,
	}, fields, recordLength)
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}

	if len(record) != recordLength {
		t.Fatalf("record length = %d, want %d", len(record), recordLength)
	}
	if record[0] != RecordActive {
		t.Errorf("status byte = 0x%02X, want 0x20", record[0])
	}
	if !bytes.HasPrefix(record[1:], []byte("Calcium Sulfate")) {
		t.Errorf("name field = %q", record[1:81])
	}
	if got := string(record[81:99]); got != "              1.00" {
		t.Errorf("purity field = %q", got)
	}
	if record[99] != 'F' {
		t.Errorf("logical field = %q, want F", record[99])
	}
}

func TestEncodeRecord_MissingFieldsBlank(t *testing.T) {
	enc := NewRecordEncoder()
	fields := testFields()
	recordLength := FieldsWidth(fields) + 1

	record, err := enc.EncodeRecord(map[string]any{"Name": "Gypsum"}, fields, recordLength)
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}

	// Absent numeric fields are blank, absent logical fields are F.
	if got := string(record[81:99]); strings.TrimSpace(got) != "" {
		t.Errorf("purity field = %q, want blank", got)
	}
	if record[99] != 'F' {
		t.Errorf("logical field = %q, want F", record[99])
	}
}

func TestEncodeRecord_WidthsExceedRecordLength(t *testing.T) {
	enc := NewRecordEncoder()
	fields := testFields()

	if _, err := enc.EncodeRecord(nil, fields, 10); !errors.Is(err, ErrMalformedFieldDescriptor) {
		t.Errorf("err = %v, want ErrMalformedFieldDescriptor", err)
	}
}

func TestDecodeField(t *testing.T) {
	numeric := FieldDescriptor{Name: "K", Type: FieldTypeNumeric, Length: 18, Decimals: 2}

	if got := DecodeField([]byte("             21.58"), numeric); got != 21.58 {
		t.Errorf("numeric decode = %v, want 21.58", got)
	}
	if got := DecodeField([]byte("                  "), numeric); got != nil {
		t.Errorf("blank numeric decode = %v, want nil", got)
	}
	if got := DecodeField([]byte("        not-a-num "), numeric); got != nil {
		t.Errorf("unparsable numeric decode = %v, want nil", got)
	}

	character := FieldDescriptor{Name: "Name", Type: FieldTypeCharacter, Length: 10}
	if got := DecodeField([]byte("Gypsum    "), character); got != "Gypsum" {
		t.Errorf("character decode = %v, want Gypsum", got)
	}

	logical := FieldDescriptor{Name: "isLiquid", Type: FieldTypeLogical, Length: 1}
	if got := DecodeField([]byte("T"), logical); got != true {
		t.Errorf("logical decode T = %v, want true", got)
	}
	if got := DecodeField([]byte("t"), logical); got != true {
		t.Errorf("logical decode t = %v, want true", got)
	}
	if got := DecodeField([]byte("?"), logical); got != false {
		t.Errorf("logical decode ? = %v, want false", got)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	enc := NewRecordEncoder()
	fields := testFields()
	recordLength := FieldsWidth(fields) + 1

	values := map[string]any{
		"Name":     "Jacks 5-12-26 Part A",
		"Purity":   1.0,
		"isLiquid": true,
	}

	record, err := enc.EncodeRecord(values, fields, recordLength)
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}

	decoded := DecodeRecord(record, fields)
	if decoded["Name"] != "Jacks 5-12-26 Part A" {
		t.Errorf("Name = %v", decoded["Name"])
	}
	if decoded["Purity"] != 1.0 {
		t.Errorf("Purity = %v, want 1.0", decoded["Purity"])
	}
	if decoded["isLiquid"] != true {
		t.Errorf("isLiquid = %v, want true", decoded["isLiquid"])
	}
}

func TestRecordName(t *testing.T) {
	enc := NewRecordEncoder()
	fields := testFields()
	recordLength := FieldsWidth(fields) + 1

	record, err := enc.EncodeRecord(map[string]any{"Name": "Calcium Sulfate"}, fields, recordLength)
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}

	if got := RecordName(record); got != "Calcium Sulfate" {
		t.Errorf("RecordName = %q, want %q", got, "Calcium Sulfate")
	}

	// Non-ASCII bytes are dropped, not surfaced as errors.
	record[2] = 0xC3
	if got := RecordName(record); got != "Clcium Sulfate" {
		t.Errorf("RecordName with non-ASCII byte = %q, want %q", got, "Clcium Sulfate")
	}
}

func TestDeleted(t *testing.T) {
	active := []byte{RecordActive, 'x'}
	tombstone := []byte{RecordDeleted, 'x'}

	if Deleted(active) {
		t.Error("active record reported deleted")
	}
	if !Deleted(tombstone) {
		t.Error("tombstoned record reported active")
	}
	if Deleted(nil) {
		t.Error("empty record reported deleted")
	}
}
