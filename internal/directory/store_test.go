package directory

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// writeDirectoryFixture builds a companies workbook with arbitrary
// headers and rows.
func writeDirectoryFixture(t *testing.T, headers []string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			t.Fatalf("set header: %v", err)
		}
	}
	for r, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "companies.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	return path
}

func testStore(t *testing.T) *Store {
	t.Helper()
	path := writeDirectoryFixture(t,
		// Synonym headers plus an extra column that must be dropped.
		[]string{"Организация", "inn", "Госномера", "Оплата (да/нет)", "Комментарий"},
		[][]string{
			{"ООО Ромашка", "7701234567", "А123ВС77, В456ЕК77", "да", "постоянный клиент"},
			{"ИП Петров", "", "К789МН50", "нет", ""},
			{"", "0000000000", "Х000ХХ00", "да", "строка без названия"},
			{"АО Вектор", "5009876543", " С111ТТ99 ,, ", "TRUE", ""},
		})
	return NewStore(path, zap.NewNop())
}

func TestLoadNormalizesColumns(t *testing.T) {
	snap := testStore(t).Load()

	want := []CompanyRecord{
		{Name: "ООО Ромашка", TaxID: "7701234567", Plates: []string{"А123ВС77", "В456ЕК77"}, PayEnabled: true},
		{Name: "ИП Петров", Plates: []string{"К789МН50"}},
		{Name: "АО Вектор", TaxID: "5009876543", Plates: []string{"С111ТТ99"}, PayEnabled: true},
	}
	if !reflect.DeepEqual(snap.Records, want) {
		t.Fatalf("Records = %+v, want %+v", snap.Records, want)
	}

	wantPayable := []string{"ООО Ромашка", "АО Вектор"}
	if !reflect.DeepEqual(snap.PayableNames, wantPayable) {
		t.Errorf("PayableNames = %v, want %v", snap.PayableNames, wantPayable)
	}
	if owner := snap.PlateIndex["К789МН50"]; owner != "ИП Петров" {
		t.Errorf("PlateIndex[К789МН50] = %q, want ИП Петров", owner)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "нет.xlsx"), zap.NewNop())
	snap := s.Load()
	if len(snap.Records) != 0 || len(snap.PayableNames) != 0 || len(snap.PlateIndex) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	s := testStore(t)
	before := s.Load()

	if err := s.Persist(before.Records); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	after := s.Load()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("round trip changed snapshot:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestPlateIndexLastWins(t *testing.T) {
	path := writeDirectoryFixture(t,
		[]string{"Компания", "ИНН", "Номера", "Оплата"},
		[][]string{
			{"Первая", "", "Х555ХХ77", "да"},
			{"Вторая", "", "Х555ХХ77", "да"},
		})
	snap := NewStore(path, zap.NewNop()).Load()

	if owner := snap.PlateIndex["Х555ХХ77"]; owner != "Вторая" {
		t.Errorf("PlateIndex = %q, want Вторая", owner)
	}
}

func TestAddCompany(t *testing.T) {
	s := testStore(t)

	if err := s.AddCompany("ООО Новая", "1234567890", []string{"М777ММ77", " М777ММ77 "}); err != nil {
		t.Fatalf("AddCompany: %v", err)
	}

	snap := s.Load()
	last := snap.Records[len(snap.Records)-1]
	if last.Name != "ООО Новая" {
		t.Errorf("new company is not last, got %q", last.Name)
	}
	if !reflect.DeepEqual(last.Plates, []string{"М777ММ77"}) {
		t.Errorf("plates not deduplicated: %v", last.Plates)
	}
	if !last.PayEnabled {
		t.Error("new company must start payable")
	}
	if snap.PayableNames[len(snap.PayableNames)-1] != "ООО Новая" {
		t.Errorf("new company missing from payable tail: %v", snap.PayableNames)
	}
}

func TestAddCompanyDuplicate(t *testing.T) {
	s := testStore(t)
	if err := s.AddCompany("ооо ромашка", "", nil); !errors.Is(err, ErrCompanyExists) {
		t.Errorf("duplicate add = %v, want ErrCompanyExists", err)
	}
	if err := s.AddCompany("  ", "", nil); !errors.Is(err, ErrEmptyCompanyName) {
		t.Errorf("blank add = %v, want ErrEmptyCompanyName", err)
	}
}

func TestAddPlates(t *testing.T) {
	s := testStore(t)

	if err := s.AddPlates("ИП Петров", []string{"Е222ЕЕ77", "К789МН50"}); err != nil {
		t.Fatalf("AddPlates: %v", err)
	}
	rec, _ := s.Load().Company("ИП Петров")
	want := []string{"Е222ЕЕ77", "К789МН50"}
	if !reflect.DeepEqual(rec.Plates, want) {
		t.Errorf("Plates = %v, want %v", rec.Plates, want)
	}

	// Re-running with the same plates changes nothing.
	if err := s.AddPlates("ИП Петров", []string{"Е222ЕЕ77"}); err != nil {
		t.Fatalf("AddPlates repeat: %v", err)
	}
	rec, _ = s.Load().Company("ИП Петров")
	if !reflect.DeepEqual(rec.Plates, want) {
		t.Errorf("repeat changed plates: %v", rec.Plates)
	}

	if err := s.AddPlates("Нет такой", []string{"A000AA00"}); !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("unknown company = %v, want ErrCompanyNotFound", err)
	}
}

func TestRemovePlates(t *testing.T) {
	s := testStore(t)

	if err := s.RemovePlates("ООО Ромашка", nil); !errors.Is(err, ErrNoPlatesSelected) {
		t.Errorf("empty selection = %v, want ErrNoPlatesSelected", err)
	}

	if err := s.RemovePlates("ООО Ромашка", []string{"А123ВС77", "В456ЕК77"}); err != nil {
		t.Fatalf("RemovePlates: %v", err)
	}

	snap := s.Load()
	rec, ok := snap.Company("ООО Ромашка")
	if !ok {
		t.Fatal("company disappeared after plate removal")
	}
	if len(rec.Plates) != 0 {
		t.Errorf("Plates = %v, want empty", rec.Plates)
	}
	if _, ok := snap.PlateIndex["А123ВС77"]; ok {
		t.Error("removed plate still in index")
	}
}

func TestSetPayment(t *testing.T) {
	s := testStore(t)

	if err := s.SetPayment("ООО Ромашка", false); err != nil {
		t.Fatalf("SetPayment: %v", err)
	}
	snap := s.Load()
	for _, name := range snap.PayableNames {
		if name == "ООО Ромашка" {
			t.Error("company still payable after switching off")
		}
	}

	if err := s.SetPayment("ИП Петров", true); err != nil {
		t.Fatalf("SetPayment on: %v", err)
	}
	rec, _ := s.Load().Company("ИП Петров")
	if !rec.PayEnabled {
		t.Error("payment flag not set")
	}
}

func TestRemoveCompany(t *testing.T) {
	s := testStore(t)

	if err := s.RemoveCompany("ООО Ромашка"); err != nil {
		t.Fatalf("RemoveCompany: %v", err)
	}
	snap := s.Load()
	if _, ok := snap.Company("ООО Ромашка"); ok {
		t.Error("company still present")
	}
	if _, ok := snap.PlateIndex["А123ВС77"]; ok {
		t.Error("plates of removed company still indexed")
	}

	// Removing an absent company is a no-op, not an error.
	if err := s.RemoveCompany("Нет такой"); err != nil {
		t.Errorf("remove absent = %v, want nil", err)
	}
}

func TestFindByPlate(t *testing.T) {
	s := testStore(t)

	owner, ok := s.FindByPlate("К789МН50")
	if !ok || owner != "ИП Петров" {
		t.Errorf("FindByPlate = %q, %v", owner, ok)
	}
	if _, ok := s.FindByPlate("Z999ZZ99"); ok {
		t.Error("unexpected owner for unknown plate")
	}
}

func TestParseJoinPlates(t *testing.T) {
	plates := ParsePlates(" А123ВС77 , , В456ЕК77,")
	want := []string{"А123ВС77", "В456ЕК77"}
	if !reflect.DeepEqual(plates, want) {
		t.Errorf("ParsePlates = %v, want %v", plates, want)
	}
	if got := JoinPlates(plates); got != "А123ВС77, В456ЕК77" {
		t.Errorf("JoinPlates = %q", got)
	}
}
