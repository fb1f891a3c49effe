// Package directory keeps the company/plate/payment directory in the
// companies workbook and answers who owns which plate.
//
// The workbook is the source of truth and is edited by people as well:
// every mutation re-reads it, applies one change, writes it back and
// lets the caller reload. Nothing is cached in between, so external
// edits are picked up on the next call.
package directory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Canonical column headers written on persist. Loading accepts the
// synonym set below, but the file always comes back in this shape.
const (
	colName   = "Компания"
	colTaxID  = "ИНН"
	colPlates = "Номера"
	colPay    = "Оплата"
)

var (
	ErrEmptyCompanyName = errors.New("company name is empty")
	ErrCompanyExists    = errors.New("company already exists")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrNoPlatesSelected = errors.New("no plates selected")
)

// fieldTag identifies a canonical directory column.
type fieldTag int

const (
	fieldNone fieldTag = iota
	fieldName
	fieldTaxID
	fieldPlates
	fieldPay
)

// headerTags maps lowercase source headers to canonical fields. The
// payment column additionally matches any header containing "оплат"
// ("Оплата (да/нет)" and friends).
var headerTags = map[string]fieldTag{
	"компания":    fieldName,
	"название":    fieldName,
	"организация": fieldName,
	"контрагент":  fieldName,
	"company":     fieldName,
	"name":        fieldName,

	"инн": fieldTaxID,
	"inn": fieldTaxID,

	"номера":    fieldPlates,
	"госномер":  fieldPlates,
	"госномера": fieldPlates,
	"машины":    fieldPlates,
	"авто":      fieldPlates,
	"plates":    fieldPlates,
	"cars":      fieldPlates,

	"опл":     fieldPay,
	"pay":     fieldPay,
	"payment": fieldPay,
}

func tagFor(header string) fieldTag {
	v := strings.ToLower(strings.TrimSpace(header))
	if tag, ok := headerTags[v]; ok {
		return tag
	}
	if strings.Contains(v, "оплат") {
		return fieldPay
	}
	return fieldNone
}

// payAffirmative holds the tokens that switch a company into the
// payable list.
var payAffirmative = map[string]bool{
	"да":   true,
	"yes":  true,
	"true": true,
	"1":    true,
}

// Store owns the path to the companies workbook. It holds no directory
// state of its own.
type Store struct {
	path string
	log  *zap.Logger
}

func NewStore(path string, log *zap.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads the workbook and returns a snapshot with freshly derived
// indices. An unreadable source degrades to an empty snapshot.
func (s *Store) Load() Snapshot {
	return buildSnapshot(s.read())
}

// FindByPlate resolves a plate to its owning company via a fresh
// snapshot.
func (s *Store) FindByPlate(plate string) (string, bool) {
	owner, ok := s.Load().PlateIndex[strings.TrimSpace(plate)]
	return owner, ok
}

func (s *Store) read() []CompanyRecord {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		s.log.Warn("companies workbook unavailable, directory is empty",
			zap.String("path", s.path),
			zap.Error(err))
		return nil
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		s.log.Warn("companies workbook unreadable, directory is empty",
			zap.String("path", s.path),
			zap.Error(err))
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	// Resolve each canonical field to a source column, first match
	// wins. Unmatched source columns are dropped; unmatched fields
	// read as empty.
	cols := map[fieldTag]int{}
	for i, h := range rows[0] {
		tag := tagFor(h)
		if tag == fieldNone {
			continue
		}
		if _, taken := cols[tag]; !taken {
			cols[tag] = i
		}
	}

	var records []CompanyRecord
	for _, row := range rows[1:] {
		name := fieldValue(row, cols, fieldName)
		if name == "" {
			continue
		}
		records = append(records, CompanyRecord{
			Name:       name,
			TaxID:      fieldValue(row, cols, fieldTaxID),
			Plates:     ParsePlates(fieldValue(row, cols, fieldPlates)),
			PayEnabled: payAffirmative[strings.ToLower(fieldValue(row, cols, fieldPay))],
		})
	}
	return records
}

func fieldValue(row []string, cols map[fieldTag]int, tag fieldTag) string {
	i, ok := cols[tag]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Persist writes records back in the canonical four-column shape, in
// the given order. Appending new companies at the end of the slice is
// how "new companies go last" is guaranteed.
func (s *Store) Persist(records []CompanyRecord) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{colName, colTaxID, colPlates, colPay}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, rec := range records {
		pay := "нет"
		if rec.PayEnabled {
			pay = "да"
		}
		values := []string{rec.Name, rec.TaxID, JoinPlates(rec.Plates), pay}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", rowIdx+2, err)
			}
		}
	}

	// A viewer holding the workbook open locks it briefly on shared
	// drives; retry the save a few times before giving up.
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = 200 * time.Millisecond
	err := backoff.Retry(func() error {
		return f.SaveAs(s.path)
	}, backoff.WithMaxRetries(retry, 4))
	if err != nil {
		return fmt.Errorf("save companies workbook: %w", err)
	}
	return nil
}

// AddCompany appends a new company at the end of the directory with
// payment enabled. A name already present (case-insensitively) is
// declined.
func (s *Store) AddCompany(name, taxID string, plates []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCompanyName
	}

	records := s.read()
	if _, ok := find(records, name); ok {
		return ErrCompanyExists
	}

	records = append(records, CompanyRecord{
		Name:       name,
		TaxID:      strings.TrimSpace(taxID),
		Plates:     normalizePlates(plates),
		PayEnabled: true,
	})
	if err := s.Persist(records); err != nil {
		return err
	}
	s.log.Info("company added", zap.String("company", name))
	return nil
}

// AddPlates unions new plates into an existing company.
func (s *Store) AddPlates(name string, plates []string) error {
	records := s.read()
	i, ok := find(records, name)
	if !ok {
		return ErrCompanyNotFound
	}

	records[i].Plates = normalizePlates(append(records[i].Plates, plates...))
	if err := s.Persist(records); err != nil {
		return err
	}
	s.log.Info("plates added",
		zap.String("company", records[i].Name),
		zap.Strings("plates", plates))
	return nil
}

// RemovePlates drops the listed plates from a company. The company
// record stays even when its plate list ends up empty; removing the
// company itself is a separate operation.
func (s *Store) RemovePlates(name string, plates []string) error {
	selected := normalizePlates(plates)
	if len(selected) == 0 {
		return ErrNoPlatesSelected
	}

	records := s.read()
	i, ok := find(records, name)
	if !ok {
		return ErrCompanyNotFound
	}

	drop := make(map[string]bool, len(selected))
	for _, p := range selected {
		drop[p] = true
	}
	var kept []string
	for _, p := range records[i].Plates {
		if !drop[p] {
			kept = append(kept, p)
		}
	}
	records[i].Plates = normalizePlates(kept)

	if err := s.Persist(records); err != nil {
		return err
	}
	s.log.Info("plates removed",
		zap.String("company", records[i].Name),
		zap.Strings("plates", selected))
	return nil
}

// SetPayment toggles the payment flag of an existing company.
func (s *Store) SetPayment(name string, enabled bool) error {
	records := s.read()
	i, ok := find(records, name)
	if !ok {
		return ErrCompanyNotFound
	}

	records[i].PayEnabled = enabled
	if err := s.Persist(records); err != nil {
		return err
	}
	s.log.Info("payment flag set",
		zap.String("company", records[i].Name),
		zap.Bool("enabled", enabled))
	return nil
}

// RemoveCompany deletes a company and, with it, its plates from the
// derived index. Removing an absent company is a no-op.
func (s *Store) RemoveCompany(name string) error {
	records := s.read()
	kept := records[:0]
	for _, rec := range records {
		if !strings.EqualFold(rec.Name, name) {
			kept = append(kept, rec)
		}
	}

	if err := s.Persist(kept); err != nil {
		return err
	}
	s.log.Info("company removed", zap.String("company", name))
	return nil
}

// ParsePlates splits a workbook cell into individual plates.
func ParsePlates(cell string) []string {
	var plates []string
	for _, p := range strings.Split(cell, ",") {
		if p = strings.TrimSpace(p); p != "" {
			plates = append(plates, p)
		}
	}
	return plates
}

// JoinPlates renders a plate list back into its workbook cell.
func JoinPlates(plates []string) string {
	return strings.Join(plates, ", ")
}

// normalizePlates trims, deduplicates and sorts. Mutations store plates
// in this canonical form; Persist itself never reorders.
func normalizePlates(plates []string) []string {
	seen := make(map[string]bool, len(plates))
	var out []string
	for _, p := range plates {
		if p = strings.TrimSpace(p); p != "" && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
