package render

import (
	"io"
	"sort"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/staffgrid/timecard/internal/domain"
)

// Summary builds the pay-period report: the combined table with one row per
// employee per facility, followed by one table per facility.
func Summary(batch *domain.Batch) g.Node {
	body := []g.Node{
		h.Div(h.ID("header")),
		combinedTable(batch),
	}
	for _, t := range facilityTables(batch) {
		body = append(body, h.Br(), t)
	}
	body = append(body, h.Div(h.ID("footer")))
	return h.Doctype(
		h.HTML(
			h.Head(
				h.TitleEl(g.Text("Summary Hours")),
				h.StyleEl(g.Raw(summaryCSS)),
			),
			h.Body(body...),
		),
	)
}

// WriteSummary renders the summary HTML to out.
func WriteSummary(out io.Writer, batch *domain.Batch) error {
	return Summary(batch).Render(out)
}

// combinedTable is the whole-batch table: facility in the second column.
func combinedTable(batch *domain.Batch) g.Node {
	rows := []g.Node{summaryHeaderRows("Summary Hours", "Name", "Staff", "Facility")}
	var totals domain.SummaryHours
	for _, p := range batch.PayPeriods {
		s := p.Summary()
		rows = append(rows, summaryRow(p.EmployeeName, p.Facility, s))
		accumulate(&totals, s)
	}
	rows = append(rows, totalRow(totals))
	return h.Table(rows...)
}

// facilityTables builds one table per facility with the employee's week-1 and
// week-2 ids in the second column, in facility name order.
func facilityTables(batch *domain.Batch) []g.Node {
	byFacility := make(map[string][]*domain.PayPeriod)
	var names []string
	for _, p := range batch.PayPeriods {
		if _, ok := byFacility[p.Facility]; !ok {
			names = append(names, p.Facility)
		}
		byFacility[p.Facility] = append(byFacility[p.Facility], p)
	}
	sort.Strings(names)

	var tables []g.Node
	for _, facility := range names {
		rows := []g.Node{summaryHeaderRows(facility, "Staff", "Name", "Week 1 & 2 IDs")}
		var totals domain.SummaryHours
		for _, p := range byFacility[facility] {
			s := p.Summary()
			rows = append(rows, summaryRow(p.EmployeeName, weekIDs(p), s))
			accumulate(&totals, s)
		}
		rows = append(rows, totalRow(totals))
		tables = append(tables, h.Table(rows...))
	}
	return tables
}

func weekIDs(p *domain.PayPeriod) string {
	id := func(w *domain.WeeklyRecord) string {
		if w == nil {
			return ""
		}
		return w.Employee.ID
	}
	return id(p.Week1) + " & " + id(p.Week2)
}

func accumulate(totals *domain.SummaryHours, s domain.SummaryHours) {
	totals.Week1Regular += s.Week1Regular
	totals.Week1Overtime += s.Week1Overtime
	totals.Week2Regular += s.Week2Regular
	totals.Week2Overtime += s.Week2Overtime
	totals.TotalRegular += s.TotalRegular
	totals.TotalOvertime += s.TotalOvertime
	totals.Total += s.Total
}

func summaryHeaderRows(title, rowName, col1, col2 string) g.Node {
	return g.Group([]g.Node{
		h.Tr(h.Th(g.Attr("colspan", "10"), g.Text(title))),
		h.Tr(
			h.Th(g.Attr("colspan", "2"), g.Text(rowName)),
			h.Th(g.Attr("colspan", "2"), g.Text("Week 1 Hours")),
			h.Th(g.Attr("colspan", "2"), g.Text("Week 2 Hours")),
			h.Th(g.Attr("colspan", "3"), g.Text("Total Hours")),
		),
		h.Tr(
			h.Th(h.Class("top-row"), g.Text(col1)),
			h.Th(h.Class("top-row"), g.Text(col2)),
			h.Th(h.Class("top-row"), g.Text("Regular")),
			h.Th(h.Class("top-row"), g.Text("Overtime")),
			h.Th(h.Class("top-row"), g.Text("Regular")),
			h.Th(h.Class("top-row"), g.Text("Overtime")),
			h.Th(h.Class("top-row"), g.Text("Regular")),
			h.Th(h.Class("top-row"), g.Text("Overtime")),
			h.Th(h.Class("top-row"), g.Text("Total")),
		),
	})
}

func summaryRow(name, facility string, s domain.SummaryHours) g.Node {
	return h.Tr(
		h.Td(h.Class("employee-name-row"), g.Text(name)),
		h.Td(h.Class("col-two-value"), g.Text(facility)),
		h.Td(h.Class("input-text"), g.Text(domain.FormatHours(s.Week1Regular))),
		h.Td(h.Class("input-text"), g.Text(domain.FormatHours(s.Week1Overtime))),
		h.Td(h.Class("input-text"), g.Text(domain.FormatHours(s.Week2Regular))),
		h.Td(h.Class("input-text"), g.Text(domain.FormatHours(s.Week2Overtime))),
		h.Td(h.Class("input-text"), g.Text(domain.FormatHours(s.TotalRegular))),
		h.Td(h.Class("input-text"), g.Text(domain.FormatHours(s.TotalOvertime))),
		h.Td(h.Class("input-text"), g.Text(domain.FormatHours(s.Total))),
	)
}

func totalRow(t domain.SummaryHours) g.Node {
	return h.Tr(
		h.Th(g.Attr("colspan", "2"), g.Text("Total")),
		h.Th(g.Text(domain.FormatHours(t.Week1Regular))),
		h.Th(g.Text(domain.FormatHours(t.Week1Overtime))),
		h.Th(g.Text(domain.FormatHours(t.Week2Regular))),
		h.Th(g.Text(domain.FormatHours(t.Week2Overtime))),
		h.Th(g.Text(domain.FormatHours(t.TotalRegular))),
		h.Th(g.Text(domain.FormatHours(t.TotalOvertime))),
		h.Th(g.Text(domain.FormatHours(t.Total))),
	)
}

const summaryCSS = `
body {
	font-family: Arial, sans-serif;
	padding: 0;
	font-size: 12px;
	width: 760px;
	margin: 0 auto;
}
table {
	border-collapse: collapse;
	width: 100%;
}
th, td {
	border: 1px solid black;
	padding-top: 6px;
	padding-bottom: 6px;
	text-align: center;
}
.employee-name-row {
	text-align: left;
	padding-left: 10px;
}
.top-row, .col-two-value {
	font-size: 11px;
}
.input-text {
	font-size: 11px;
	width: 60px;
}
`
