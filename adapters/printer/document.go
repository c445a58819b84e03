package printer

import (
	"html/template"
	"strings"
	"time"

	"github.com/goodsign/monday"

	"edudesk/domain/table"
	"edudesk/internal/errors"
)

// SummaryCard is one statistic block rendered above the print table.
type SummaryCard struct {
	Label string
	Value string
}

// Renderer builds standalone print documents: a header block, summary
// cards, the data table and a footer, with an inlined print stylesheet.
// The document carries everything it needs; nothing interactive survives
// into it.
type Renderer struct {
	company  string
	subtitle string
	locale   monday.Locale
	tmpl     *template.Template
}

// NewRenderer creates a print renderer. locale selects the language of the
// long-form generation timestamp, e.g. "en_US".
func NewRenderer(company, subtitle, locale string) *Renderer {
	return &Renderer{
		company:  company,
		subtitle: subtitle,
		locale:   monday.Locale(locale),
		tmpl:     template.Must(template.New("print").Parse(printTemplate)),
	}
}

type documentData struct {
	Title       string
	Subtitle    string
	GeneratedAt string
	Company     string
	Cards       []SummaryCard
	Headers     []string
	Rows        [][]string
	RowCount    int
	SettleDelay int
}

// Render produces the self-contained print document for a report. The
// visible table is rebuilt from the records and column contract, so no
// pagination, search box or other control can leak into the output.
func (r *Renderer) Render(title string, cards []SummaryCard, columns []table.ColumnDefinition, records []table.Record, now time.Time) (string, error) {
	data := documentData{
		Title:       title,
		Subtitle:    r.subtitle,
		GeneratedAt: monday.Format(now, "Monday, January 2, 2006 15:04", r.locale),
		Company:     r.company,
		Cards:       cards,
		RowCount:    len(records),
		SettleDelay: settleDelayMillis,
	}

	for _, col := range columns {
		data.Headers = append(data.Headers, col.Title)
	}
	for _, record := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = table.ResolveString(record, col.ValuePath())
		}
		data.Rows = append(data.Rows, row)
	}

	var out strings.Builder
	if err := r.tmpl.Execute(&out, data); err != nil {
		return "", errors.Wrap(err, "could not render print document")
	}
	return out.String(), nil
}

// settleDelayMillis gives the new window time to lay out before the print
// command fires; the surface closes itself afterwards.
const settleDelayMillis = 500

const printTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 18mm 14mm; }
* { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
body { font-family: Arial, Helvetica, sans-serif; color: #1a1a1a; margin: 0; }
.report-header { border-bottom: 2px solid #333; padding-bottom: 10px; margin-bottom: 16px; }
.report-header h1 { margin: 0 0 4px 0; font-size: 20px; }
.report-header .subtitle { color: #555; font-size: 13px; }
.report-header .meta { color: #777; font-size: 11px; margin-top: 6px; }
.summary-cards { display: flex; gap: 10px; margin-bottom: 16px; }
.summary-card { border: 1px solid #ccc; border-radius: 4px; padding: 8px 14px; background: #f6f6f6; }
.summary-card .label { font-size: 10px; text-transform: uppercase; color: #666; }
.summary-card .value { font-size: 16px; font-weight: bold; }
table { width: 100%; border-collapse: collapse; font-size: 11px; }
th { background: #e8e8e8; text-align: left; border: 1px solid #bbb; padding: 5px 7px; }
td { border: 1px solid #ccc; padding: 4px 7px; }
tr:nth-child(even) td { background: #fafafa; }
.status-badge { padding: 1px 6px; border-radius: 8px; background: #def; }
.report-footer { border-top: 1px solid #999; margin-top: 18px; padding-top: 8px; font-size: 10px; color: #777; display: flex; justify-content: space-between; }
.no-print, button, input, select, nav { display: none !important; }
</style>
</head>
<body>
<div class="report-header">
<h1>{{.Title}}</h1>
<div class="subtitle">{{.Subtitle}}</div>
<div class="meta">Generated {{.GeneratedAt}} &middot; Page 1</div>
</div>
{{if .Cards}}<div class="summary-cards">
{{range .Cards}}<div class="summary-card"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>
{{end}}</div>{{end}}
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
<div class="report-footer">
<span>Confidential &mdash; for internal use only</span>
<span>Generated by {{.Company}} ({{.RowCount}} records)</span>
</div>
<script>
setTimeout(function () { window.print(); window.close(); }, {{.SettleDelay}});
</script>
</body>
</html>
`
