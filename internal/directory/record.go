package directory

import "strings"

// CompanyRecord is one row of the companies workbook.
type CompanyRecord struct {
	Name       string
	TaxID      string
	Plates     []string
	PayEnabled bool
}

// Snapshot is an immutable view of the directory. PayableNames and
// PlateIndex are derived from Records and rebuilt on every load; they
// are never written back to the workbook.
type Snapshot struct {
	Records      []CompanyRecord
	PayableNames []string
	PlateIndex   map[string]string
}

// buildSnapshot derives the payable list and the plate -> company index.
// The index is filled in record order, so a plate registered under two
// companies resolves to the later one.
func buildSnapshot(records []CompanyRecord) Snapshot {
	snap := Snapshot{
		Records:    records,
		PlateIndex: make(map[string]string),
	}
	for _, rec := range records {
		if rec.PayEnabled {
			snap.PayableNames = append(snap.PayableNames, rec.Name)
		}
		for _, plate := range rec.Plates {
			snap.PlateIndex[plate] = rec.Name
		}
	}
	return snap
}

// find locates a record by name, case-insensitively.
func find(records []CompanyRecord, name string) (int, bool) {
	for i, rec := range records {
		if strings.EqualFold(rec.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// Company returns the record for name from this snapshot.
func (s Snapshot) Company(name string) (CompanyRecord, bool) {
	if i, ok := find(s.Records, name); ok {
		return s.Records[i], true
	}
	return CompanyRecord{}, false
}
