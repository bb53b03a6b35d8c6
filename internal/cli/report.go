package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/aduana/internal/engine"
	"github.com/Veraticus/aduana/internal/finance"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/precedent"
)

// RenderReport renders the full outcome of one validated document.
func RenderReport(name string, r *engine.Report) string {
	var b strings.Builder

	b.WriteString(FormatTitle(name))
	b.WriteString("\n")
	b.WriteString(keyValue("Document", fmt.Sprintf("%s (%d%%)", r.Detection.Type, r.Detection.Confidence)))
	b.WriteString(keyValue("Region", string(r.Result.Region)))
	if r.Extraction != nil {
		b.WriteString(keyValue("Extraction", fmt.Sprintf("%.0f%% confidence, %d fields, %d corrections",
			r.Extraction.Confidence, len(r.Extraction.Fields), r.Extraction.CorrectionsApplied)))
	}
	b.WriteString(keyValue("Score", formatScore(r.Result)))
	b.WriteString(keyValue("Hash", SubtleStyle.Render(r.Result.Hash)))

	if r.CIF != nil {
		b.WriteString("\n")
		b.WriteString(RenderCIF(*r.CIF))
	}
	if r.Taxes != nil {
		b.WriteString("\n")
		b.WriteString(RenderTaxes(*r.Taxes))
	}
	if len(r.Lines) > 0 {
		b.WriteString("\n")
		b.WriteString(renderLines(r.Lines))
	}

	b.WriteString("\n")
	b.WriteString(RenderFindings(r.Result.Findings))

	if len(r.Advisories) > 0 {
		b.WriteString("\n")
		b.WriteString(BoldStyle.Render("Advisories"))
		b.WriteString("\n")
		for _, a := range r.Advisories {
			b.WriteString("  • " + a + "\n")
		}
	}
	return b.String()
}

// RenderFindings renders findings as a table, most severe first.
func RenderFindings(findings []model.Finding) string {
	if len(findings) == 0 {
		return FormatSuccess("No findings") + "\n"
	}

	sorted := make([]model.Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() > sorted[j].Severity.Rank()
	})

	rows := make([][]string, 0, len(sorted))
	for _, f := range sorted {
		msg := f.Message
		if f.AutoCorrection != nil {
			msg += SubtleStyle.Render(fmt.Sprintf(" → %s = %.2f", f.AutoCorrection.Field, f.AutoCorrection.Value))
		}
		rows = append(rows, []string{FormatSeverity(f.Severity), f.RuleCode, msg})
	}
	return renderTable([]string{"Severity", "Rule", "Message"}, rows)
}

// RenderCIF renders a CIF computation.
func RenderCIF(res finance.CIFResult) string {
	var b strings.Builder
	b.WriteString(BoldStyle.Render("CIF valuation"))
	b.WriteString("\n")
	insurance := money(res.Insurance)
	if res.InsuranceDerived {
		insurance += SubtleStyle.Render(" (derived)")
	}
	b.WriteString(keyValue("Insurance", insurance))
	b.WriteString(keyValue("Calculated CIF", money(res.CalculatedCIF)))
	return b.String()
}

// RenderTaxes renders a tax cascade breakdown.
func RenderTaxes(res finance.TaxResult) string {
	bd := res.Breakdown
	rows := [][]string{
		{"CIF", money(bd.CIF)},
		{"DAI", money(bd.DAI)},
		{"ISC", money(bd.ISC)},
		{fmt.Sprintf("VAT (%.0f%%)", bd.VATRate*100), money(bd.VAT)},
		{"System fee", money(bd.SystemFee)},
		{"Total", BoldStyle.Render(money(bd.Total))},
	}
	return BoldStyle.Render("Tax cascade") + "\n" + renderTable([]string{"Component", "Amount"}, rows)
}

// RenderFiscalID renders the outcome of a fiscal identifier check.
func RenderFiscalID(id string, res finance.FiscalIDResult) string {
	if res.Valid {
		return FormatSuccess(fmt.Sprintf("%s matches %s", id, res.Format)) + "\n"
	}
	return FormatError(fmt.Sprintf("%s is not a valid fiscal identifier", id)) + "\n" + RenderFindings(res.Findings)
}

// RenderClassification renders a product classification.
func RenderClassification(desc string, c model.ClassificationResult) string {
	var b strings.Builder
	b.WriteString(FormatTitle(desc))
	b.WriteString("\n")
	b.WriteString(keyValue("Category", fmt.Sprintf("%s / %s", c.ProductCategory, c.Subcategory)))
	b.WriteString(keyValue("Confidence", fmt.Sprintf("%d%%", c.Confidence)))
	b.WriteString(keyValue("Bracket", string(c.CustomsValueBracket)))
	if len(c.Authorities) > 0 {
		b.WriteString(keyValue("Authorities", strings.Join(c.Authorities, ", ")))
	}
	if len(c.MatchedKeywords) > 0 {
		b.WriteString(keyValue("Keywords", strings.Join(c.MatchedKeywords, ", ")))
	}
	switch {
	case c.IsProhibited:
		b.WriteString(BlockingStyle.Render(BlockingIcon+" Prohibited") + "\n")
	case c.RequiresPermit:
		b.WriteString(FormatWarning("Permit required") + "\n")
	}
	for _, a := range c.Advisories {
		b.WriteString("  • " + a + "\n")
	}
	return b.String()
}

// RenderPrecedents renders a precedent search.
func RenderPrecedents(res precedent.LookupResult) string {
	var b strings.Builder
	if res.Unavailable() {
		b.WriteString(FormatWarning("Remote precedent store unavailable, searched the local cache") + "\n")
	}
	if len(res.Matches) == 0 {
		b.WriteString(FormatInfo("No matching precedents") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(res.Matches))
	for _, m := range res.Matches {
		rows = append(rows, []string{
			m.Precedent.RulingID,
			m.Precedent.HSCode,
			fmt.Sprintf("%d", m.RelevanceScore),
			strings.Join(m.MatchedKeywords, ", "),
		})
	}
	b.WriteString(renderTable([]string{"Ruling", "HS code", "Score", "Keywords"}, rows))
	return b.String()
}

// RenderPrecedentList renders stored rulings.
func RenderPrecedentList(precedents []model.Precedent) string {
	if len(precedents) == 0 {
		return FormatInfo("No rulings stored") + "\n"
	}
	rows := make([][]string, 0, len(precedents))
	for _, p := range precedents {
		status := "active"
		if !p.Active {
			status = "inactive"
		}
		rows = append(rows, []string{
			p.RulingID,
			string(p.Region),
			p.HSCode,
			p.Authority,
			p.EffectiveDate.Format("2006-01-02"),
			status,
		})
	}
	return renderTable([]string{"Ruling", "Region", "HS code", "Authority", "Effective", "Status"}, rows)
}

// RenderVerdict renders a precedent verdict for a declared code.
func RenderVerdict(v precedent.Verdict) string {
	line := precedent.FormatAdvisory(v)
	switch v.Kind {
	case precedent.VerdictEndorsed:
		return FormatSuccess(line) + "\n"
	case precedent.VerdictNeedsReview:
		return FormatWarning(line) + "\n"
	default:
		return FormatInfo(line) + "\n"
	}
}

// RenderManifest renders the queue routing of a manifest.
func RenderManifest(s *engine.ManifestSummary) string {
	rows := make([][]string, 0, len(s.Lines))
	for _, l := range s.Lines {
		rows = append(rows, []string{
			l.Row.Tracking,
			l.Row.Description,
			money(l.Row.Value),
			l.Classification.ProductCategory,
			string(l.Queue),
		})
	}

	var b strings.Builder
	b.WriteString(renderTable([]string{"Tracking", "Description", "Value", "Category", "Queue"}, rows))
	b.WriteString("\n")
	b.WriteString(keyValue("Total value", money(s.TotalValue)))
	b.WriteString(keyValue("Total weight", fmt.Sprintf("%.2f", s.TotalWeight)))

	queues := []engine.Queue{
		engine.QueueProhibited, engine.QueuePermit, engine.QueueBroker,
		engine.QueueDocuments, engine.QueueManual, engine.QueueStandard,
	}
	for _, q := range queues {
		if n := s.Queues[q]; n > 0 {
			b.WriteString(keyValue(string(q), fmt.Sprintf("%d", n)))
		}
	}
	return b.String()
}

// RenderMemory renders learned corrections.
func RenderMemory(entries []model.MemoryEntry) string {
	if len(entries) == 0 {
		return FormatInfo("No corrections recorded") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Pattern,
			e.Correction,
			string(e.DocumentType),
			fmt.Sprintf("%d", e.Occurrences),
			e.CorrectedBy,
			e.LastSeen.Format("2006-01-02"),
		})
	}
	return renderTable([]string{"Pattern", "Correction", "Document", "Seen", "By", "Last seen"}, rows)
}

// RenderHistory renders sealed validation results, oldest first.
func RenderHistory(results []model.ValidationResult) string {
	if len(results) == 0 {
		return FormatInfo("No validations recorded") + "\n"
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Timestamp.Format("2006-01-02 15:04"),
			r.DocumentID,
			string(r.Region),
			formatScore(r),
			shortHash(r.Hash),
		})
	}
	return renderTable([]string{"Validated", "Document", "Region", "Score", "Hash"}, rows)
}

// RenderBatchSummary renders totals over several validated documents.
func RenderBatchSummary(results []model.ValidationResult) string {
	valid, blocked, total := 0, 0, 0
	for _, r := range results {
		if r.IsValid {
			valid++
		}
		if r.BlockingIssues > 0 {
			blocked++
		}
		total += r.Score
	}
	avg := 0
	if len(results) > 0 {
		avg = total / len(results)
	}

	content := keyValue("Documents", fmt.Sprintf("%d", len(results))) +
		keyValue("Valid", SuccessStyle.Render(fmt.Sprintf("%d", valid))) +
		keyValue("Blocked", BlockingStyle.Render(fmt.Sprintf("%d", blocked))) +
		strings.TrimSuffix(keyValue("Average score", fmt.Sprintf("%d/100", avg)), "\n")
	return RenderBox("Batch summary", content) + "\n"
}

func renderLines(lines []engine.LineClassification) string {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		flag := ""
		switch {
		case l.Classification.IsProhibited:
			flag = BlockingStyle.Render("prohibited")
		case l.Classification.RequiresPermit:
			flag = WarningStyle.Render("permit: " + strings.Join(l.Classification.Authorities, ", "))
		}
		rows = append(rows, []string{
			l.Item.Description,
			money(l.Item.TotalValue),
			l.Classification.ProductCategory + "/" + l.Classification.Subcategory,
			flag,
		})
	}
	return BoldStyle.Render("Products") + "\n" + renderTable([]string{"Description", "Value", "Category", ""}, rows)
}

func formatScore(r model.ValidationResult) string {
	score := fmt.Sprintf("%d/100", r.Score)
	switch {
	case r.BlockingIssues > 0:
		return BlockingStyle.Render(fmt.Sprintf("%s, %d blocking", score, r.BlockingIssues))
	case !r.IsValid:
		return ErrorStyle.Render(score)
	default:
		return SuccessStyle.Render(score)
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func keyValue(label, value string) string {
	return LabelStyle.Render(label) + value + "\n"
}

func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = TableCellStyle.Width(widths[i] + 2).Render(h)
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...)))
	b.WriteString("\n")
	for _, row := range rows {
		line := make([]string, len(headers))
		for i := range headers {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			line[i] = TableCellStyle.Width(widths[i] + 2).Render(cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, line...))
		b.WriteString("\n")
	}
	return b.String()
}
