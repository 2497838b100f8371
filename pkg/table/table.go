// Package table owns the in-memory representation of one substances table
// file and its backup-then-rewrite persistence protocol.
//
// A Table is an exclusively-owned resource for the duration of one
// load-check-append-commit sequence. No locking is implemented; concurrent
// invocations against the same file are a correctness hazard (last write
// wins) and must be prevented by the caller.
package table

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hydrotools/fertbase/pkg/dbf"
)

// Table holds one decoded header, the table's field schema, and every
// record block in on-disk order. Record order is significant: it determines
// byte offsets on rewrite.
type Table struct {
	Header dbf.TableHeader
	Fields []dbf.FieldDescriptor

	// schemaBlock is the verbatim descriptor region of the original file
	// (bytes 32..HeaderLength, terminator and padding included). It is
	// copied unchanged into every rewrite; this system never mutates
	// schema.
	schemaBlock []byte
	records     [][]byte
}

// Load reads and decodes the table file at path. The file handle is scoped
// to the call; nothing stays open afterwards.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table file: %w", err)
	}

	header, err := dbf.DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	headerLen := int(header.HeaderLength)
	if headerLen < dbf.HeaderSize+1 || headerLen > len(data) {
		return nil, fmt.Errorf("%w: header length %d outside file of %d bytes",
			dbf.ErrMalformedHeader, headerLen, len(data))
	}

	schemaBlock := append([]byte(nil), data[dbf.HeaderSize:headerLen]...)
	fields, err := dbf.DecodeFieldDescriptors(schemaBlock)
	if err != nil {
		return nil, err
	}

	if width := dbf.FieldsWidth(fields); width+1 != int(header.RecordLength) {
		return nil, fmt.Errorf("%w: field widths total %d, record length is %d",
			dbf.ErrMalformedFieldDescriptor, width, header.RecordLength)
	}

	recordLen := int(header.RecordLength)
	need := headerLen + int(header.RecordCount)*recordLen
	if len(data) < need {
		return nil, fmt.Errorf("%w: need %d bytes for %d records, have %d",
			dbf.ErrTruncatedFile, need, header.RecordCount, len(data))
	}

	records := make([][]byte, 0, header.RecordCount)
	for i := 0; i < int(header.RecordCount); i++ {
		start := headerLen + i*recordLen
		records = append(records, append([]byte(nil), data[start:start+recordLen]...))
	}

	return &Table{
		Header:      header,
		Fields:      fields,
		schemaBlock: schemaBlock,
		records:     records,
	}, nil
}

// RecordCount returns the number of records currently held, committed or
// not.
func (t *Table) RecordCount() int {
	return len(t.records)
}

// Record returns the raw bytes of the i-th record in file order.
func (t *Table) Record(i int) []byte {
	return t.records[i]
}

// ContainsName reports whether an active record with the given name exists.
// The comparison is case-insensitive and tombstoned records are skipped.
// This is a linear scan; batches are tens of records, not a hot path.
func (t *Table) ContainsName(name string) bool {
	for _, record := range t.records {
		if dbf.Deleted(record) {
			continue
		}
		if strings.EqualFold(dbf.RecordName(record), name) {
			return true
		}
	}
	return false
}

// ActiveNames returns the names of all non-tombstoned records in file
// order.
func (t *Table) ActiveNames() []string {
	names := make([]string, 0, len(t.records))
	for _, record := range t.records {
		if dbf.Deleted(record) {
			continue
		}
		names = append(names, dbf.RecordName(record))
	}
	return names
}

// DeletedCount returns the number of tombstoned records.
func (t *Table) DeletedCount() int {
	deleted := 0
	for _, record := range t.records {
		if dbf.Deleted(record) {
			deleted++
		}
	}
	return deleted
}

// Append adds a record to the end of the in-memory sequence and bumps the
// header's record count. Records are never inserted mid-sequence, removed,
// or compacted.
func (t *Table) Append(record []byte) error {
	if len(record) != int(t.Header.RecordLength) {
		return fmt.Errorf("record is %d bytes, table record length is %d",
			len(record), t.Header.RecordLength)
	}
	t.records = append(t.records, record)
	t.Header.RecordCount++
	return nil
}

// EncodeRecord encodes candidate field values against this table's schema.
func (t *Table) EncodeRecord(enc *dbf.RecordEncoder, values map[string]any) ([]byte, error) {
	return enc.EncodeRecord(values, t.Fields, int(t.Header.RecordLength))
}

// Commit rewrites the table file at path: the new image is written to a
// temporary file in the same directory and fsynced, the original file is
// renamed to a timestamped backup, then the temporary file is renamed into
// place. The backup stays on disk indefinitely as the recovery point. If
// the final rename fails the caller must restore from the returned backup
// path by hand; the operation is not retried.
func (t *Table) Commit(path string) (string, error) {
	tmpPath := fmt.Sprintf("%s.tmp-%d", path, os.Getpid())
	if err := t.writeImage(tmpPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: writing new image: %v", dbf.ErrCommitFailed, err)
	}

	backupPath := fmt.Sprintf("%s.backup-%s", path, time.Now().Format("20060102-150405"))
	if err := os.Rename(path, backupPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: backup rename: %v", dbf.ErrCommitFailed, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return backupPath, fmt.Errorf("%w: publishing new image, original preserved at %s: %v",
			dbf.ErrCommitFailed, backupPath, err)
	}

	return backupPath, nil
}

// writeImage writes the complete table image: encoded header with the
// current date, the verbatim schema block, every record in sequence order,
// and the end-of-file marker. The file handle is closed on every exit path.
func (t *Table) writeImage(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	if err := t.writeTo(writer); err != nil {
		file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func (t *Table) writeTo(w *bufio.Writer) error {
	if _, err := w.Write(t.Header.Encode(time.Now())); err != nil {
		return err
	}
	if _, err := w.Write(t.schemaBlock); err != nil {
		return err
	}
	for _, record := range t.records {
		if _, err := w.Write(record); err != nil {
			return err
		}
	}
	return w.WriteByte(dbf.EOFMarker)
}
