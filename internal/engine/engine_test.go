package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/extract"
	"github.com/Veraticus/aduana/internal/finance"
	"github.com/Veraticus/aduana/internal/ledger"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/precedent"
	"github.com/Veraticus/aduana/internal/region"
	"github.com/Veraticus/aduana/internal/service"
	"github.com/Veraticus/aduana/internal/storage"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

const ducaText = "DUCA-F No. 2024-GT-000123\n" +
	"Partida arancelaria: 6109.10.00\n" +
	"Valor CIF: 1,000.00\n" +
	"DAI (10%): 90.00\n" +
	"ISC (5%): 55.00\n" +
	"IVA: 138.60\n" +
	"Total a pagar: 1,293.60\n"

const prohibitedText = "Commercial Invoice\n" +
	"Invoice No: INV-9\n" +
	"Description: Cocaine powder\n" +
	"FOB: 2,500.00\n" +
	"Freight: 100.00\n" +
	"Insurance: 37.50\n" +
	"CIF: 2,637.50\n"

type failingSource struct{ calls int }

func (s *failingSource) ActivePrecedents(context.Context, model.Region) ([]model.Precedent, error) {
	s.calls++
	return nil, fmt.Errorf("%w: connection refused", common.ErrLookupUnavailable)
}

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	base := []Option{
		WithPrecedents(precedent.NewEngine(precedent.WithClock(func() time.Time { return testNow }))),
	}
	e, err := New(region.NewStore(), append(base, opts...)...)
	require.NoError(t, err)
	return e
}

func ruleCodes(findings []model.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.RuleCode)
	}
	return out
}

func countRule(findings []model.Finding, code string) int {
	n := 0
	for _, f := range findings {
		if f.RuleCode == code {
			n++
		}
	}
	return n
}

func TestNew_RequiresRegionStore(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestValidateDocument_Invoice(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.ValidateDocument(context.Background(), DocumentInput{
		ID:   "INV-2024-0087",
		Text: loadFixture(t, "invoice_pa.txt"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.DocInvoice, report.Detection.Type)
	assert.Equal(t, model.RegionPanama, report.Detection.Region)

	result := report.Result
	assert.Equal(t, "INV-2024-0087", result.DocumentID)
	assert.Equal(t, model.RegionPanama, result.Region)
	assert.Nil(t, result.PreviousHash)
	assert.Len(t, result.Hash, 64)
	assert.Equal(t, []string{RulePermitRequired, RulePermitRequired}, ruleCodes(result.Findings))
	assert.Equal(t, 90, result.Score)
	assert.True(t, result.IsValid)
	assert.Zero(t, result.BlockingIssues)

	require.NotNil(t, report.CIF)
	assert.InDelta(t, 1115, report.CIF.CalculatedCIF, 0.001)
	assert.Nil(t, report.Taxes)
	require.NotNil(t, report.FiscalID)
	assert.True(t, report.FiscalID.Valid)

	require.Len(t, report.Lines, 2)
	assert.Equal(t, "antibioticos", report.Lines[0].Classification.Subcategory)
	assert.Equal(t, []string{"MINSA"}, report.Lines[0].Classification.Authorities)
	assert.Equal(t, "analgesicos", report.Lines[1].Classification.Subcategory)

	require.NotNil(t, report.Verdict)
	assert.Equal(t, precedent.VerdictEndorsed, report.Verdict.Kind)
	assert.Equal(t, "ANA-RA-2021-0147", report.Verdict.Precedent.RulingID)

	assert.Contains(t, report.Advisories, "Requiere permiso de MINSA")
	assert.Equal(t, 1, countAdvisory(report.Advisories, "Requiere permiso de MINSA"), "advisories are de-duplicated")
	last := report.Advisories[len(report.Advisories)-1]
	assert.True(t, strings.HasPrefix(last, "Clasificación respaldada"), last)

	// Permit warnings are not financial and leave the review flag alone.
	assert.False(t, report.Extraction.ValidationRequired)
}

func TestValidateDocument_ReviewFlag(t *testing.T) {
	invoice := loadFixture(t, "invoice_pa.txt")

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "clean financials",
			text: invoice,
			want: false,
		},
		{
			name: "CIF mismatch",
			text: strings.Replace(invoice, "CIF: $1,115.00", "CIF: $1,200.00", 1),
			want: true,
		},
		{
			name: "low extraction confidence",
			text: "nothing recognisable here",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			report, err := e.ValidateDocument(context.Background(), DocumentInput{
				Text:   tt.text,
				Region: model.RegionPanama,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Extraction.ValidationRequired)
		})
	}
}

func countAdvisory(advisories []string, want string) int {
	n := 0
	for _, a := range advisories {
		if a == want {
			n++
		}
	}
	return n
}

func TestValidateDocument_ChainsIdenticalData(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	in := DocumentInput{ID: "INV-2024-0087", Text: loadFixture(t, "invoice_pa.txt")}

	first, err := e.ValidateDocument(ctx, in)
	require.NoError(t, err)
	second, err := e.ValidateDocument(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, first.Result.Hash, second.Result.Hash)
	require.NotNil(t, second.Result.PreviousHash)
	assert.Equal(t, first.Result.Hash, *second.Result.PreviousHash)
	require.NoError(t, ledger.VerifyChain(e.Ledger().History()))
}

func TestValidateDocument_TaxCascadeMismatch(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.ValidateDocument(context.Background(), DocumentInput{
		Text:   ducaText,
		Region: model.RegionGuatemala,
	})
	require.NoError(t, err)

	assert.Equal(t, model.DocDUCAF, report.Detection.Type)
	assert.Equal(t, model.RegionGuatemala, report.Result.Region)
	assert.NotEmpty(t, report.Result.DocumentID, "a document ID is generated")

	findings := report.Result.Findings
	assert.Equal(t, 1, countRule(findings, finance.RuleDAIMismatch))
	assert.Zero(t, countRule(findings, finance.RuleISCMismatch))
	assert.Zero(t, countRule(findings, finance.RuleVATMismatch))
	assert.Zero(t, countRule(findings, finance.RuleTotalMismatch))
	assert.Zero(t, countRule(findings, RuleDocumentNotApplicable))

	for _, f := range findings {
		if f.RuleCode == finance.RuleDAIMismatch {
			assert.Equal(t, model.SeverityCritical, f.Severity)
			require.NotNil(t, f.AutoCorrection)
			assert.InDelta(t, 100, f.AutoCorrection.Value, 0.001)
		}
	}

	require.NotNil(t, report.Taxes)
	assert.InDelta(t, 100, report.Taxes.Breakdown.DAI, 0.001)
	assert.InDelta(t, 1293.6, report.Taxes.Breakdown.Total, 0.001)
	assert.Nil(t, report.CIF, "no FOB was declared")
}

func TestValidateDocument_DocumentNotApplicableInRegion(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.ValidateDocument(context.Background(), DocumentInput{
		Text:   ducaText,
		Region: model.RegionPanama,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRule(report.Result.Findings, RuleDocumentNotApplicable))
}

func TestValidateDocument_ProhibitedAndBroker(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.ValidateDocument(context.Background(), DocumentInput{
		Text:   prohibitedText,
		Region: model.RegionPanama,
	})
	require.NoError(t, err)

	result := report.Result
	assert.Equal(t, []string{RuleProhibitedProduct, RuleBrokerRequired}, ruleCodes(result.Findings))
	assert.Equal(t, 79, result.Score)
	assert.True(t, result.IsValid, "critical findings do not block")

	require.Len(t, report.Lines, 1)
	line := report.Lines[0]
	assert.True(t, line.Classification.IsProhibited)
	assert.Equal(t, model.CategoryGeneral, line.Classification.ProductCategory)
	assert.InDelta(t, 2500, line.Item.TotalValue, 0.001)

	// Classification discrepancy without a declared code falls back to GRI.
	require.NotNil(t, report.Verdict)
	assert.Equal(t, precedent.VerdictGRIOnly, report.Verdict.Kind)
	assert.Contains(t, report.Advisories, "Sin precedente aplicable. GRI 1 (confianza 85%): "+report.Verdict.GRI.Justification)
}

func TestValidateDocument_NegativeAmountsBlock(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.ValidateDocument(context.Background(), DocumentInput{
		Text: "Commercial Invoice\nInvoice No: INV-10\nFOB: -50.00\nFreight: 10.00\nCIF: -40.00\n",
	})
	require.NoError(t, err)

	result := report.Result
	assert.False(t, result.IsValid)
	assert.GreaterOrEqual(t, result.BlockingIssues, 2)
	assert.GreaterOrEqual(t, countRule(result.Findings, finance.RuleNegativeAmount), 2)
	assert.LessOrEqual(t, result.Score, 50)
}

func TestValidateDocument_RemoteUnavailable(t *testing.T) {
	src := &failingSource{}
	e := newTestEngine(t, WithPrecedents(precedent.NewEngine(
		precedent.WithSource(src),
		precedent.WithClock(func() time.Time { return testNow }),
		precedent.WithRetry(service.RetryOptions{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}),
	)))

	report, err := e.ValidateDocument(context.Background(), DocumentInput{Text: loadFixture(t, "invoice_pa.txt")})
	require.NoError(t, err)

	assert.Equal(t, 2, src.calls)
	assert.Equal(t, 1, countRule(report.Result.Findings, RulePrecedentUnavailable))
	assert.Equal(t, 89, report.Result.Score)

	require.NotNil(t, report.Verdict)
	assert.Equal(t, precedent.SourceCache, report.Verdict.Lookup.Source)
	assert.Equal(t, precedent.VerdictEndorsed, report.Verdict.Kind)
	last := report.Advisories[len(report.Advisories)-1]
	assert.Contains(t, last, "caché local")
}

func TestValidateDocument_Errors(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.ValidateDocument(ctx, DocumentInput{Text: "   \n"})
	require.ErrorIs(t, err, common.ErrEmptyDocument)

	_, err = e.ValidateDocument(ctx, DocumentInput{Text: prohibitedText, Region: "MX"})
	require.ErrorIs(t, err, common.ErrUnknownRegion)

	assert.Empty(t, e.Ledger().History(), "rejected input never reaches the ledger")
}

func TestValidateDocument_LowConfidenceText(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.ValidateDocument(context.Background(), DocumentInput{
		Text:   "nothing recognisable here",
		Region: model.RegionCostaRica,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{RuleLowExtractionConfidence}, ruleCodes(report.Result.Findings))
	assert.Equal(t, 80, report.Result.Score)
	assert.True(t, report.Extraction.ValidationRequired)
}

func TestRecordCorrection_AppliesToLaterDocuments(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	entry, err := e.RecordCorrection(ctx, "farmacia el sol", "Farmacia El Sol, S.A.", "analista", model.DocInvoice)
	require.NoError(t, err)
	assert.Equal(t, "farmacia el sol", entry.Pattern)

	report, err := e.ValidateDocument(ctx, DocumentInput{Text: loadFixture(t, "invoice_pa.txt")})
	require.NoError(t, err)

	consignee, ok := report.Extraction.Text(extract.FieldConsignee)
	require.True(t, ok)
	assert.Equal(t, "Farmacia El Sol, S.A.", consignee)
	assert.Equal(t, 1, report.Result.CorrectionsMade)

	_, err = e.RecordCorrection(ctx, "  ", "x", "analista", model.DocInvoice)
	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
}

func TestEngine_PersistsAcrossRestarts(t *testing.T) {
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "aduana.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	build := func() *Engine {
		x, err := extract.NewExtractor(extract.WithMemory(extract.NewMemory(extract.WithMemoryStore(store))))
		require.NoError(t, err)
		e := newTestEngine(t,
			WithExtractor(x),
			WithLedger(ledger.New(ledger.WithHistoryStore(store))),
		)
		require.NoError(t, e.Restore(ctx))
		return e
	}

	first := build()
	_, err = first.RecordCorrection(ctx, "global pharma", "Global Pharma Supply, LLC", "analista", model.DocInvoice)
	require.NoError(t, err)
	report, err := first.ValidateDocument(ctx, DocumentInput{ID: "doc-1", Text: loadFixture(t, "invoice_pa.txt")})
	require.NoError(t, err)

	last, err := store.LastValidationHash(ctx)
	require.NoError(t, err)
	assert.Equal(t, report.Result.Hash, last)

	second := build()
	head, ok := second.Ledger().LastHash()
	require.True(t, ok)
	assert.Equal(t, report.Result.Hash, head)
	assert.Equal(t, 1, second.Memory().Len())

	next, err := second.ValidateDocument(ctx, DocumentInput{ID: "doc-2", Text: loadFixture(t, "invoice_pa.txt")})
	require.NoError(t, err)
	require.NotNil(t, next.Result.PreviousHash)
	assert.Equal(t, report.Result.Hash, *next.Result.PreviousHash)

	shipper, _ := next.Extraction.Text(extract.FieldShipper)
	assert.Equal(t, "Global Pharma Supply, LLC", shipper)

	history, err := store.RecentValidations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.NoError(t, ledger.VerifyChain(history))

	stored, err := store.LoadMemory(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 2, stored[0].Occurrences, "every applied correction is counted in the store")
}

type failingMemoryStore struct{ entries []model.MemoryEntry }

func (s *failingMemoryStore) LoadMemory(context.Context) ([]model.MemoryEntry, error) {
	return s.entries, nil
}

func (s *failingMemoryStore) SaveMemory(context.Context, []model.MemoryEntry) error {
	return errors.New("database is locked")
}

func TestValidateDocument_MemorySaveFailureStillReports(t *testing.T) {
	src := &failingMemoryStore{entries: []model.MemoryEntry{{
		Pattern:      "global pharma",
		Correction:   "Global Pharma Supply, LLC",
		DocumentType: model.DocInvoice,
		CorrectedBy:  "analista",
		LastSeen:     testNow,
	}}}
	x, err := extract.NewExtractor(extract.WithMemory(extract.NewMemory(extract.WithMemoryStore(src))))
	require.NoError(t, err)
	e := newTestEngine(t, WithExtractor(x))
	require.NoError(t, e.Restore(context.Background()))

	report, err := e.ValidateDocument(context.Background(), DocumentInput{Text: loadFixture(t, "invoice_pa.txt")})
	require.Error(t, err)
	require.NotNil(t, report)
	assert.Len(t, report.Result.Hash, 64)
	assert.Equal(t, 1, report.Extraction.CorrectionsApplied)
}

type failingHistory struct{}

func (failingHistory) AppendValidation(context.Context, model.ValidationResult) error {
	return errors.New("disk full")
}

func (failingHistory) LastValidationHash(context.Context) (string, error) {
	return "", common.ErrNotFound
}

func (failingHistory) RecentValidations(context.Context, int) ([]model.ValidationResult, error) {
	return nil, nil
}

func TestValidateDocument_PersistFailureStillReports(t *testing.T) {
	e := newTestEngine(t, WithLedger(ledger.New(ledger.WithHistoryStore(failingHistory{}))))

	report, err := e.ValidateDocument(context.Background(), DocumentInput{Text: prohibitedText})
	require.Error(t, err)
	require.NotNil(t, report)
	assert.Len(t, report.Result.Hash, 64)
}

func TestValidateDocument_ConcurrentCallersKeepChain(t *testing.T) {
	e := newTestEngine(t)
	text := loadFixture(t, "invoice_pa.txt")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := e.ValidateDocument(context.Background(), DocumentInput{
				ID:   fmt.Sprintf("doc-%d", i),
				Text: text,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	history := e.Ledger().History()
	require.Len(t, history, 8)
	require.NoError(t, ledger.VerifyChain(history))
}
