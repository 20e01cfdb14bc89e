// Package output renders command results for the terminal.
//
// Headings and status lines are styled with lipgloss; tables use go-pretty
// and structured dumps use yaml.v3. Every method writes to the [Printer]'s
// writer so tests can capture output with [NewPrinterWithWriter].
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Printer writes styled output.
type Printer struct {
	out io.Writer
}

// NewPrinterWithWriter returns a Printer writing to w.
func NewPrinterWithWriter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Header prints a section title.
func (p *Printer) Header(title string) {
	fmt.Fprintln(p.out, headerStyle.Render(title))
}

// Field prints a "label: value" line.
func (p *Printer) Field(label string, value any) {
	fmt.Fprintf(p.out, "%s %v\n", labelStyle.Render(label+":"), value)
}

// Line prints text as is.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.out, s)
}

// Success prints a line marked as a success.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, successStyle.Render("✓ "+msg))
}

// Failure prints a line marked as a failure.
func (p *Printer) Failure(msg string) {
	fmt.Fprintln(p.out, failureStyle.Render("✗ "+msg))
}

// Step prints a progress marker like "[2/7] compute".
func (p *Printer) Step(index, total int, name string) {
	fmt.Fprintln(p.out, stepStyle.Render(fmt.Sprintf("[%d/%d] %s", index, total, name)))
}

// Divider prints a horizontal rule.
func (p *Printer) Divider() {
	fmt.Fprintln(p.out, dividerStyle.Render(strings.Repeat("-", 21)))
}

// TableOption adjusts how [Printer.Table] renders.
type TableOption func(*tableLayout)

type tableLayout struct {
	headerFormat text.Format
	rightAligned map[int]bool
}

// UpperHeaders renders header cells in upper case.
func UpperHeaders() TableOption {
	return func(l *tableLayout) { l.headerFormat = text.FormatUpper }
}

// AlignRight right-aligns the given 0-based columns. Headers stay left.
func AlignRight(columns ...int) TableOption {
	return func(l *tableLayout) {
		for _, c := range columns {
			l.rightAligned[c] = true
		}
	}
}

// Table prints rows under headers with rounded borders. Headers are printed
// as given unless [UpperHeaders] is passed; short rows are padded.
func (p *Printer) Table(headers []string, rows [][]string, opts ...TableOption) {
	if len(headers) == 0 {
		return
	}

	layout := tableLayout{headerFormat: text.FormatDefault, rightAligned: map[int]bool{}}
	for _, opt := range opts {
		opt(&layout)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = layout.headerFormat
	tw.AppendHeader(toRow(headers, len(headers)))
	for _, row := range rows {
		tw.AppendRow(toRow(row, len(headers)))
	}

	configs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		align := text.AlignLeft
		if layout.rightAligned[i] {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	fmt.Fprintln(p.out, tw.Render())
}

// toRow converts cells into a row of exactly width columns.
func toRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}

// YAML prints v encoded as YAML. A *yaml.Node keeps its key order.
func (p *Printer) YAML(v any) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
