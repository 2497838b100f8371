// Package updater drives one batch update against a substances table:
// load, duplicate check, append, and a single commit.
package updater

import (
	"fmt"

	"github.com/segmentio/ksuid"

	"github.com/hydrotools/fertbase/pkg/dbf"
	"github.com/hydrotools/fertbase/pkg/fertilizer"
	"github.com/hydrotools/fertbase/pkg/table"
	"github.com/hydrotools/fertbase/util"
)

// Options configures one batch run.
type Options struct {
	// StrictOverflow rejects numeric values wider than their field with
	// ErrEncodingOverflow instead of the legacy left truncation.
	StrictOverflow bool
}

// Result reports what one batch run did.
type Result struct {
	RunID      string
	Added      int
	AddedNames []string
	Skipped    []string
	Committed  bool
	BackupPath string
}

// Apply processes the candidates in order against the table loaded from
// path: candidates whose name is already active in the table are skipped,
// the rest are encoded and appended. The table file is rewritten at most
// once, and only when at least one record was added; a batch of pure
// duplicates leaves the file untouched and creates no backup. Any encoding
// error aborts the batch before a single byte is written.
func Apply(tbl *table.Table, path string, candidates []fertilizer.Fertilizer, opts Options) (*Result, error) {
	result := &Result{RunID: ksuid.New().String()}

	encoder := dbf.NewRecordEncoder()
	encoder.TruncateOverflow = !opts.StrictOverflow

	for _, candidate := range candidates {
		if tbl.ContainsName(candidate.Name) {
			util.Info("run %s: %q already exists, skipping", result.RunID, candidate.Name)
			result.Skipped = append(result.Skipped, candidate.Name)
			continue
		}

		record, err := tbl.EncodeRecord(encoder, candidate.FieldValues())
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", candidate.Name, err)
		}
		if err := tbl.Append(record); err != nil {
			return nil, fmt.Errorf("append %q: %w", candidate.Name, err)
		}

		util.Info("run %s: added %q", result.RunID, candidate.Name)
		result.Added++
		result.AddedNames = append(result.AddedNames, candidate.Name)
	}

	if result.Added == 0 {
		util.Info("run %s: no new records, file untouched", result.RunID)
		return result, nil
	}

	backupPath, err := tbl.Commit(path)
	if err != nil {
		return nil, err
	}
	result.Committed = true
	result.BackupPath = backupPath
	util.Info("run %s: committed %d record(s), backup at %s", result.RunID, result.Added, backupPath)

	return result, nil
}
