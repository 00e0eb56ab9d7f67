// Package render produces the printable HTML weekly time cards and the
// pay-period summary report.
package render

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/staffgrid/timecard/internal/domain"
)

// inOutColumns is the number of in/out pairs a day row has space for.
const inOutColumns = 3

// WeeklyTimeCard builds the printable time card for one weekly record.
func WeeklyTimeCard(w *domain.WeeklyRecord) g.Node {
	return h.Doctype(
		h.HTML(
			h.Head(
				h.TitleEl(g.Text(w.Employee.Name+"'s Time Card")),
				h.StyleEl(g.Raw(timeCardCSS)),
			),
			h.Body(
				h.Div(h.ID("header")),
				h.Table(
					headerRows(w),
					hoursHeaderRows(),
					entryRows(w),
					footerRows(w),
				),
				h.Div(h.ID("footer")),
			),
		),
	)
}

// WriteWeeklyTimeCard renders the time card HTML to out.
func WriteWeeklyTimeCard(out io.Writer, w *domain.WeeklyRecord) error {
	return WeeklyTimeCard(w).Render(out)
}

func headerRows(w *domain.WeeklyRecord) g.Node {
	from := w.Days[0].DateString()
	to := w.Days[domain.DaysInWeek-1].DateString()
	return g.Group([]g.Node{
		h.Tr(
			h.Th(g.Attr("colspan", "2"), h.Class("header-row"), g.Text("WEEKLY TIME CARD")),
			h.Th(g.Attr("colspan", "12"), h.Class("header-row"), g.Text(strings.ToUpper(w.Employee.Entity))),
		),
		h.Tr(
			h.Td(g.Attr("colspan", "2"), h.Class("date-row"), h.B(g.Text("From: ")), g.Text(from)),
			h.Td(g.Attr("colspan", "4"), h.Class("date-row"), h.B(g.Text("To: ")), g.Text(to)),
			h.Th(g.Attr("colspan", "5")),
		),
		h.Tr(
			h.Td(g.Attr("colspan", "6"), h.Class("employee-name-row"), h.B(g.Text("Employee Name: ")), g.Text(w.Employee.Name)),
			h.Th(g.Attr("colspan", "5"), g.Text("Program")),
		),
		h.Tr(
			h.Td(g.Attr("colspan", "6"), h.Class("position-row"), h.B(g.Text("Position: ")), g.Text(w.Employee.Position)),
			h.Th(g.Attr("colspan", "5"), g.Text(strings.ToUpper(w.Employee.Facility))),
		),
	})
}

func hoursHeaderRows() g.Node {
	inOut := make([]g.Node, 0, inOutColumns*2)
	for i := 0; i < inOutColumns; i++ {
		inOut = append(inOut,
			h.Th(g.Attr("rowspan", "2"), g.Text("In")),
			h.Th(g.Attr("rowspan", "2"), g.Text("Out")),
		)
	}
	return g.Group([]g.Node{
		h.Tr(
			h.Th(g.Attr("rowspan", "3")),
			h.Th(g.Attr("rowspan", "3"), g.Text("DATES")),
			h.Th(g.Attr("colspan", "6"), g.Text("HOURS")),
			h.Th(g.Attr("colspan", "3")),
		),
		h.Tr(append(inOut, h.Th(g.Attr("colspan", "3"), g.Text("SUBTOTAL HOURS")))...),
		h.Tr(
			h.Th(h.Class("input-text"), g.Text("Total")),
			h.Th(h.Class("input-text"), g.Text("Regular")),
			h.Th(h.Class("input-text"), g.Text("Overtime")),
		),
	})
}

func entryRows(w *domain.WeeklyRecord) g.Node {
	rows := make([]g.Node, 0, domain.DaysInWeek)
	for _, alloc := range w.DailyAllocations() {
		rows = append(rows, dayRow(alloc))
	}
	return g.Group(rows)
}

func dayRow(alloc domain.DailyAllocation) g.Node {
	day := alloc.Day
	cells := []g.Node{
		h.Td(h.Class("column1"), g.Text(day.DayName())),
		h.Td(h.Class("input-text"), g.Text(day.DateString())),
	}
	for _, iv := range day.Intervals {
		cells = append(cells,
			h.Td(h.Class("input-text"), g.Text(iv.StartStr)),
			h.Td(h.Class("input-text"), g.Text(iv.EndStr)),
		)
	}
	for i := len(day.Intervals); i < inOutColumns; i++ {
		cells = append(cells,
			h.Td(h.Class("input-text")),
			h.Td(h.Class("input-text")),
		)
	}
	cells = append(cells,
		h.Td(g.Text(displayHours(day.TotalHours))),
		h.Td(g.Text(displayHours(alloc.Regular))),
		h.Td(g.Text(displayHours(alloc.Overtime))),
	)
	return h.Tr(cells...)
}

func footerRows(w *domain.WeeklyRecord) g.Node {
	return g.Group([]g.Node{
		h.Tr(
			h.Td(g.Attr("rowspan", "2"), g.Attr("colspan", "8"), h.Class("column1"), g.Text("EMPLOYEE SIGNATURE:")),
			h.Th(g.Attr("colspan", "3"), g.Text("TOTAL HOURS")),
		),
		h.Tr(
			h.Td(g.Text(displayHours(w.TotalHours))),
			h.Td(g.Text(displayHours(w.RegularHours()))),
			h.Td(g.Text(displayHours(w.OvertimeHours()))),
		),
		h.Tr(
			h.Td(g.Attr("colspan", "14"), h.Class("boiler-plate"),
				g.Text("*Note: No Overtime Hours will be worked without the prior approval of Administrator "+
					"and/or Owner/Licenses. The times reported accurately reflect the hours I have worked. "+
					"I certify under penalty of perjury the information above is true and correct to the "+
					"best of my knowledge.")),
		),
		h.Tr(
			h.Td(g.Attr("colspan", "14"), h.Class("column1"),
				h.Br(), g.Text("FACILITY MANAGER SIGNATURE:"), h.Br(), h.Br()),
		),
	})
}

// displayHours renders zero as an empty cell, matching the printed card.
func displayHours(hours float64) string {
	if hours == 0 {
		return ""
	}
	return domain.FormatHours(hours)
}

const timeCardCSS = `
@media print {
	@page {
		size: letter;
		margin: 20mm;
	}
}
body {
	font-family: Arial, sans-serif;
	padding: 0;
	font-size: 12px;
	width: 760px;
	margin: 0 auto;
}
#header, #footer {
	text-align: center;
	margin-bottom: 20px;
}
table {
	border-collapse: collapse;
	width: 100%;
}
th, td {
	border: 1px solid black;
	padding-top: 8px;
	padding-bottom: 8px;
	text-align: center;
}
.header-row {
	font-size: 16px;
	text-align: left;
	padding-left: 10px;
}
.date-row, .employee-name-row, .position-row {
	text-align: left;
	padding-left: 10px;
}
.column1 {
	text-align: left;
	padding-left: 10px;
	font-weight: bold;
}
.input-text {
	font-size: 11px;
	width: 60px;
}
.boiler-plate {
	padding: 10px;
	text-align: left;
	font-size: 10px;
}
#footer {
	margin-top: 20px;
}
`
