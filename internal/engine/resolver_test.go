package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dyike/finchat/internal/dataset"
	"github.com/dyike/finchat/internal/intent"
)

const fixtureCSV = `Company,FiscalYear,TotalRevenue,NetIncome,TotalAssets,TotalLiabilities,CFO
Apple,2022,394328,99803,352755,302083,122151
Apple,2023,383285,96995,352583,290437,110543
Apple,2024,391035,93736,364980,308030,118254
Microsoft,2023,211915,72361,411976,205753,87582
Microsoft,2024,245122,88136,512163,243686,118548
Tesla,2022,81462,0,82338,36440,14724
Tesla,2023,96773,14997,106618,43009,13256
Tesla,2024,97690,7091,122070,48390,14923
`

func loadFixture(t *testing.T) *dataset.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return store
}

func TestResolveSingleValue(t *testing.T) {
	store := loadFixture(t)

	res, err := Resolve(intent.Query{
		Companies: []string{"Apple"},
		Metric:    dataset.MetricRevenue,
		Year:      2024,
	}, store)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(res.Entries) != 1 || res.Compare {
		t.Fatalf("expected one non-compare entry, got %+v", res)
	}
	v := res.Entries[0].Value
	if v == nil {
		t.Fatalf("expected a value entry, got %+v", res.Entries[0])
	}
	if v.Amount.String() != "391035" || v.Year != 2024 {
		t.Fatalf("unexpected value: %+v", v)
	}
}

func TestResolveDefaultsToLatestYear(t *testing.T) {
	store := loadFixture(t)

	res, err := Resolve(intent.Query{
		Companies: []string{"Microsoft"},
		Metric:    dataset.MetricNetIncome,
	}, store)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	v := res.Entries[0].Value
	if v.Year != 2024 {
		t.Fatalf("expected latest year 2024, got %d", v.Year)
	}
	if v.Amount.String() != "88136" {
		t.Fatalf("expected 88136, got %s", v.Amount.String())
	}
}

func TestResolveYoY(t *testing.T) {
	store := loadFixture(t)

	res, err := Resolve(intent.Query{
		Companies: []string{"Tesla"},
		Metric:    dataset.MetricNetIncome,
		Year:      2024,
		YoY:       true,
	}, store)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	c := res.Entries[0].Change
	if c == nil {
		t.Fatalf("expected a change entry, got %+v", res.Entries[0])
	}
	if c.PriorYear != 2023 || c.Prior.String() != "14997" || c.Current.String() != "7091" {
		t.Fatalf("unexpected change: %+v", c)
	}
	// (7091 - 14997) / 14997 * 100
	if c.Pct.StringFixed(2) != "-52.72" {
		t.Fatalf("expected -52.72, got %s", c.Pct.StringFixed(2))
	}
}

func TestResolveYoYPositiveSign(t *testing.T) {
	store := loadFixture(t)

	res, err := Resolve(intent.Query{
		Companies: []string{"Tesla"},
		Metric:    dataset.MetricRevenue,
		Year:      2023,
		YoY:       true,
	}, store)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	c := res.Entries[0].Change
	// (96773 - 81462) / 81462 * 100
	if c.Pct.StringFixed(2) != "18.80" {
		t.Fatalf("expected 18.80, got %s", c.Pct.StringFixed(2))
	}
}

func TestResolveYoYInsufficientHistory(t *testing.T) {
	store := loadFixture(t)

	_, err := Resolve(intent.Query{
		Companies: []string{"Microsoft"},
		Metric:    dataset.MetricRevenue,
		Year:      2023,
		YoY:       true,
	}, store)

	var ih *InsufficientHistoryError
	if !errors.As(err, &ih) {
		t.Fatalf("expected InsufficientHistoryError, got %v", err)
	}
	if ih.PriorYear != 2022 || ih.Company != "Microsoft" {
		t.Fatalf("unexpected error fields: %+v", ih)
	}
}

func TestResolveYoYZeroPrior(t *testing.T) {
	store := loadFixture(t)

	_, err := Resolve(intent.Query{
		Companies: []string{"Tesla"},
		Metric:    dataset.MetricNetIncome,
		Year:      2023,
		YoY:       true,
	}, store)

	var dz *DivisionByZeroError
	if !errors.As(err, &dz) {
		t.Fatalf("expected DivisionByZeroError, got %v", err)
	}
	if dz.PriorYear != 2022 || dz.Year != 2023 {
		t.Fatalf("unexpected error fields: %+v", dz)
	}
}

func TestResolveCompareOrdering(t *testing.T) {
	store := loadFixture(t)

	res, err := Resolve(intent.Query{
		Companies: []string{"Microsoft", "Apple"},
		Metric:    dataset.MetricCFO,
		Year:      2024,
		Compare:   true,
	}, store)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !res.Compare || len(res.Entries) != 2 {
		t.Fatalf("expected two compare entries, got %+v", res)
	}
	if res.Entries[0].Company != "Microsoft" || res.Entries[1].Company != "Apple" {
		t.Fatalf("mention order not preserved: %+v", res.Entries)
	}
}

func TestResolveComparePartialFailure(t *testing.T) {
	store := loadFixture(t)

	// Microsoft has no FY2022 row; the other two do.
	res, err := Resolve(intent.Query{
		Companies: []string{"Apple", "Microsoft", "Tesla"},
		Metric:    dataset.MetricRevenue,
		Year:      2022,
		Compare:   true,
	}, store)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(res.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(res.Entries))
	}
	if res.Entries[0].Value == nil || res.Entries[2].Value == nil {
		t.Fatalf("expected values for Apple and Tesla: %+v", res.Entries)
	}
	var nf *dataset.NotFoundError
	if !errors.As(res.Entries[1].Err, &nf) {
		t.Fatalf("expected NotFoundError for Microsoft, got %v", res.Entries[1].Err)
	}
}

func TestResolveCompareLatestYearPerCompany(t *testing.T) {
	store := loadFixture(t)

	res, err := Resolve(intent.Query{
		Companies: []string{"Apple", "Microsoft"},
		Metric:    dataset.MetricAssets,
		Compare:   true,
	}, store)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	for _, entry := range res.Entries {
		if entry.Value == nil || entry.Value.Year != 2024 {
			t.Fatalf("expected latest year per company, got %+v", entry)
		}
	}
}

func TestResolveUnrecognized(t *testing.T) {
	store := loadFixture(t)

	_, err := Resolve(intent.Query{Metric: dataset.MetricRevenue}, store)
	var uc *UnrecognizedCompanyError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnrecognizedCompanyError, got %v", err)
	}

	_, err = Resolve(intent.Query{Companies: []string{"Apple"}}, store)
	var um *UnrecognizedMetricError
	if !errors.As(err, &um) {
		t.Fatalf("expected UnrecognizedMetricError, got %v", err)
	}
}
