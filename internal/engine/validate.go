package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/aduana/internal/classification"
	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/extract"
	"github.com/Veraticus/aduana/internal/finance"
	"github.com/Veraticus/aduana/internal/ledger"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/precedent"
)

// minClassificationConfidence is the product confidence below which a line
// counts as a classification discrepancy worth a precedent review.
const minClassificationConfidence = 50

// DocumentInput is one document handed over by the text extraction layer.
// Region, HSCode and FiscalID override what is detected in the text.
type DocumentInput struct {
	ID       string       `json:"id,omitempty"`
	Text     string       `json:"text"`
	Region   model.Region `json:"region,omitempty"`
	HSCode   string       `json:"hs_code,omitempty"`
	FiscalID string       `json:"fiscal_id,omitempty"`
}

// LineClassification pairs a line item with its product classification.
type LineClassification struct {
	Item           model.LineItem             `json:"item"`
	Classification model.ClassificationResult `json:"classification"`
}

// Report is everything the engine learned about one document. Result holds
// the aggregated findings sealed in the ledger.
type Report struct {
	Result     model.ValidationResult   `json:"result"`
	Detection  classification.Detection `json:"detection"`
	Extraction *extract.Extraction      `json:"extraction"`
	CIF        *finance.CIFResult       `json:"cif,omitempty"`
	Taxes      *finance.TaxResult       `json:"taxes,omitempty"`
	FiscalID   *finance.FiscalIDResult  `json:"fiscal_id,omitempty"`
	Verdict    *precedent.Verdict       `json:"verdict,omitempty"`
	Lines      []LineClassification     `json:"lines"`
	Advisories []string                 `json:"advisories"`
}

// ValidateDocument runs the full pipeline over one document. Rule outcomes
// are findings, never errors. When the ledger fails to persist the result
// the report is still returned together with the error.
func (e *Engine) ValidateDocument(ctx context.Context, in DocumentInput) (*Report, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, common.ErrEmptyDocument
	}
	if in.Region != model.RegionUnassigned && !in.Region.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownRegion, in.Region)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	docID := in.ID
	if docID == "" {
		docID = e.newID()
	}

	detection := e.detector.Classify(in.Text)
	r := detection.Region
	if in.Region != model.RegionUnassigned {
		r = in.Region
		detection.Region = r
	}
	cfg, err := e.regions.Get(r)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Validating document",
		"document_id", docID,
		"type", detection.Type,
		"region", r)

	ext := e.extractor.Extract(in.Text, detection.Type)
	report := &Report{Detection: detection, Extraction: ext, Advisories: []string{}}

	var findings []model.Finding

	if !e.detector.Applicable(detection.Type, r) {
		f := e.finding(RuleDocumentNotApplicable, model.SeverityWarning, r,
			fmt.Sprintf("El tipo de documento %s no se utiliza en %s", detection.Type, cfg.Country))
		f.LegalBasis = cfg.Citations.CustomsCode
		findings = append(findings, f)
	}

	if ext.Confidence < extract.ValidationThreshold {
		f := e.finding(RuleLowExtractionConfidence, model.SeverityCritical, r,
			fmt.Sprintf("Confianza de extracción baja (%.1f%%): se requiere validación manual", ext.Confidence))
		f.Detail = fmt.Sprintf("%d campos extraídos, umbral %d%%", len(ext.Fields), extract.ValidationThreshold)
		f.Actual = ptr(ext.Confidence)
		findings = append(findings, f)
	}

	financial, err := e.validateFinancials(report, ext, r, in.FiscalID)
	if err != nil {
		return nil, err
	}
	findings = append(findings, financial...)

	lineFindings, classDiscrepancy := e.classifyLines(report, ext, r, cfg.Citations.Restrictions)
	findings = append(findings, lineFindings...)

	if value, ok := declaredValue(ext); ok && e.thresholds.RequiresBroker(value) {
		f := e.finding(RuleBrokerRequired, model.SeverityInfo, r,
			fmt.Sprintf("Valor declarado USD %.2f: se requiere agente corredor de aduanas (umbral USD %.2f)",
				value, e.thresholds.Broker))
		f.Actual = ptr(value)
		f.Expected = ptr(e.thresholds.Broker)
		f.LegalBasis = cfg.Citations.CustomsCode
		findings = append(findings, f)
	}

	hsCode := strings.TrimSpace(in.HSCode)
	if hsCode == "" {
		hsCode, _ = ext.Text(extract.FieldHSCode)
	}
	finDiscrepancy := false
	for _, f := range financial {
		if f.Severity.AtLeast(model.SeverityCritical) {
			finDiscrepancy = true
			break
		}
	}
	if desc := precedentDescription(ext); desc != "" && (hsCode != "" || finDiscrepancy || classDiscrepancy) {
		findings = append(findings, e.reviewPrecedent(ctx, report, hsCode, desc, r, cfg.Citations.Precedents)...)
	}

	ext.FlagFindings(financial)

	result, err := e.ledger.Record(ctx, ledger.Entry{
		Data:            sealedRecord(docID, detection, r, hsCode, ext),
		DocumentID:      docID,
		Region:          r,
		Findings:        findings,
		CorrectionsMade: ext.CorrectionsApplied,
	})
	if result.Hash == "" {
		return nil, err
	}
	report.Result = result

	if ext.CorrectionsApplied > 0 {
		if saveErr := e.extractor.Memory().Save(ctx); saveErr != nil {
			e.logger.Error("Correction counters were not persisted",
				"document_id", docID,
				"error", saveErr)
			err = errors.Join(err, saveErr)
		}
	}

	e.logger.Info("Document validated",
		"document_id", docID,
		"score", result.Score,
		"valid", result.IsValid,
		"findings", len(result.Findings))

	if err != nil {
		return report, err
	}
	return report, nil
}

// validateFinancials checks the CIF identity when a FOB is present, the tax
// cascade when a DAI rate is present, and the fiscal ID. The cascade is based
// on the computed CIF, or on the declared CIF when no FOB was extracted.
func (e *Engine) validateFinancials(report *Report, ext *extract.Extraction, r model.Region, fiscalID string) ([]model.Finding, error) {
	var findings []model.Finding

	cifBase, haveCIF := ext.Number(extract.FieldCIF)
	if fob, ok := ext.Number(extract.FieldFOB); ok {
		freight, _ := ext.Number(extract.FieldFreight)
		in := finance.CIFInput{Region: r, FOB: fob, Freight: freight, DeclaredCIF: cifBase, CIFUndeclared: !haveCIF}
		if ins, ok := ext.Number(extract.FieldInsurance); ok {
			in.Insurance = ptr(ins)
		}

		cifResult, err := e.finance.ValidateCIF(in)
		if err != nil {
			return nil, err
		}
		report.CIF = &cifResult
		findings = append(findings, cifResult.Findings...)
		cifBase, haveCIF = cifResult.CalculatedCIF, true
	}

	if daiPct, ok := ext.Number(extract.FieldDAIPercent); ok && haveCIF {
		iscPct, _ := ext.Number(extract.FieldISCPercent)
		taxResult, err := e.finance.ValidateTaxCascade(finance.TaxInput{
			Region:     r,
			CIF:        cifBase,
			DAIPercent: daiPct,
			ISCPercent: iscPct,
			Declared: finance.DeclaredTaxes{
				DAI:   numberPtr(ext, extract.FieldDAI),
				ISC:   numberPtr(ext, extract.FieldISC),
				VAT:   numberPtr(ext, extract.FieldVAT),
				Total: numberPtr(ext, extract.FieldTotal),
			},
		})
		if err != nil {
			return nil, err
		}
		report.Taxes = &taxResult
		findings = append(findings, taxResult.Findings...)
	}

	id, present := fiscalID, fiscalID != ""
	if !present {
		if f, ok := ext.Field(extract.FieldFiscalID); ok {
			id, _ = f.Text()
			present = true
		}
	}
	if present {
		idResult, err := e.finance.ValidateFiscalID(id, r)
		if err != nil {
			return nil, err
		}
		report.FiscalID = &idResult
		findings = append(findings, idResult.Findings...)
	}

	return findings, nil
}

// classifyLines classifies every line item, or the description field when the
// document has no line items. It reports whether any line is a discrepancy.
func (e *Engine) classifyLines(report *Report, ext *extract.Extraction, r model.Region, basis string) ([]model.Finding, bool) {
	items := ext.LineItems
	if len(items) == 0 {
		if desc, ok := ext.Text(extract.FieldDescription); ok && desc != "" {
			value, _ := ext.Number(extract.FieldFOB)
			items = []model.LineItem{{Description: desc, TotalValue: value, Quantity: 1, UnitValue: value}}
		}
	}

	var findings []model.Finding
	discrepancy := false
	for i, item := range items {
		result := e.products.Classify(item.Description, item.TotalValue)
		report.Lines = append(report.Lines, LineClassification{Item: item, Classification: result})
		report.Advisories = appendUnique(report.Advisories, result.Advisories...)

		field := fmt.Sprintf("line_items[%d]", i)
		if result.IsProhibited {
			f := e.finding(RuleProhibitedProduct, model.SeverityCritical, r,
				fmt.Sprintf("Posible mercancía prohibida: %q", item.Description))
			f.Field = field
			f.LegalBasis = basis
			findings = append(findings, f)
			discrepancy = true
		}
		if result.RequiresPermit {
			f := e.finding(RulePermitRequired, model.SeverityWarning, r,
				fmt.Sprintf("%q requiere permiso de %s", item.Description, strings.Join(result.Authorities, ", ")))
			f.Field = field
			f.Detail = fmt.Sprintf("Categoría %s / %s", result.ProductCategory, result.Subcategory)
			f.LegalBasis = basis
			findings = append(findings, f)
		}
		if !result.IsDocument && result.Confidence < minClassificationConfidence {
			discrepancy = true
		}
	}
	return findings, discrepancy
}

func (e *Engine) reviewPrecedent(ctx context.Context, report *Report, hsCode, desc string, r model.Region, basis string) []model.Finding {
	verdict := e.precedents.ValidateByPrecedent(ctx, hsCode, desc, r)
	report.Verdict = &verdict
	report.Advisories = append(report.Advisories, precedent.FormatAdvisory(verdict))

	var findings []model.Finding
	switch {
	case verdict.Kind == precedent.VerdictNeedsReview:
		f := e.finding(RulePrecedentReview, model.SeverityWarning, r,
			fmt.Sprintf("La resolución %s clasifica mercancía similar en la partida %s; se recomienda revisión del corredor",
				verdict.Precedent.RulingID, verdict.Precedent.HSCode))
		f.Field = extract.FieldHSCode
		f.Detail = verdict.Rationale
		f.LegalBasis = basis
		findings = append(findings, f)
	case verdict.Kind == precedent.VerdictGRIOnly && hsCode != "":
		f := e.finding(RulePrecedentNotFound, model.SeverityWarning, r,
			fmt.Sprintf("No hay precedente que respalde la partida %s", hsCode))
		f.Field = extract.FieldHSCode
		if verdict.GRI != nil {
			f.Detail = verdict.GRI.Justification
		}
		f.LegalBasis = basis
		findings = append(findings, f)
	}

	if verdict.Lookup.Unavailable() {
		f := e.finding(RulePrecedentUnavailable, model.SeverityInfo, r,
			"Consulta remota de precedentes no disponible: se usó la caché local")
		f.Detail = verdict.Lookup.LookupErr.Error()
		findings = append(findings, f)
	}
	return findings
}

// declaredValue is the FOB when present, otherwise the sum of line totals.
func declaredValue(ext *extract.Extraction) (float64, bool) {
	if fob, ok := ext.Number(extract.FieldFOB); ok {
		return fob, true
	}
	if len(ext.LineItems) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, item := range ext.LineItems {
		sum += item.TotalValue
	}
	return sum, true
}

func precedentDescription(ext *extract.Extraction) string {
	if desc, ok := ext.Text(extract.FieldDescription); ok && strings.TrimSpace(desc) != "" {
		return desc
	}
	parts := make([]string, 0, len(ext.LineItems))
	for _, item := range ext.LineItems {
		parts = append(parts, item.Description)
	}
	return strings.Join(parts, "; ")
}

// sealedRecord is the canonical data hashed into the ledger.
func sealedRecord(docID string, d classification.Detection, r model.Region, hsCode string, ext *extract.Extraction) map[string]any {
	fields := make(map[string]any, len(ext.Fields))
	for _, f := range ext.Fields {
		fields[f.Name] = f.Value
	}
	items := ext.LineItems
	if items == nil {
		items = []model.LineItem{}
	}
	return map[string]any{
		"document_id":   docID,
		"document_type": string(d.Type),
		"region":        string(r),
		"hs_code":       hsCode,
		"fields":        fields,
		"line_items":    items,
	}
}

func numberPtr(ext *extract.Extraction, name string) *float64 {
	if n, ok := ext.Number(name); ok {
		return &n
	}
	return nil
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

func ptr(f float64) *float64 { return &f }
