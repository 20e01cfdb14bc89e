package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrinter_Lines(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinterWithWriter(buf)

	p.Header("legacy")
	p.Field("Compute", 16)
	p.Success("workflow completed")
	p.Failure("expected failure")
	p.Step(2, 7, "compute")
	p.Line("plain")
	p.Divider()

	out := buf.String()
	assert.Contains(t, out, "legacy")
	assert.Contains(t, out, "Compute:")
	assert.Contains(t, out, "16")
	assert.Contains(t, out, "workflow completed")
	assert.Contains(t, out, "expected failure")
	assert.Contains(t, out, "[2/7] compute")
	assert.Contains(t, out, "plain\n")
	assert.Contains(t, out, "---------------------")
}

func TestPrinter_Table(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinterWithWriter(buf)

	p.Table([]string{"KEY", "VALUE"}, [][]string{
		{"EnableStuff", "True"},
		{"WidthStuff"},
	})

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "EnableStuff")
	assert.Contains(t, out, "True")
	assert.Contains(t, out, "WidthStuff")
	assert.Contains(t, out, "╭")
}

func TestPrinter_Table_HeaderCase(t *testing.T) {
	tests := []struct {
		name    string
		opts    []TableOption
		want    string
		notWant string
	}{
		{name: "kept as given", want: "Value", notWant: "VALUE"},
		{name: "upper", opts: []TableOption{UpperHeaders()}, want: "VALUE", notWant: "Value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			NewPrinterWithWriter(buf).Table([]string{"Key", "Value"}, [][]string{{"EnableStuff", "True"}}, tt.opts...)

			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), tt.notWant)
		})
	}
}

func TestPrinter_Table_AlignRight(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinterWithWriter(buf).Table([]string{"Key", "Length"}, [][]string{
		{"EnableStuff", "4"},
		{"WidthStuff", "12345"},
	}, AlignRight(1))

	// "Length" is wider than "4", so a right-aligned cell is padded on the left.
	assert.Contains(t, buf.String(), "      4 │")
}

func TestPrinter_Table_NoHeaders(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinterWithWriter(buf).Table(nil, [][]string{{"x"}})
	assert.Empty(t, buf.String())
}

func TestPrinter_YAML(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinterWithWriter(buf)

	require.NoError(t, p.YAML(map[string]string{"EnableStuff": "True"}))

	var got map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "True", got["EnableStuff"])
}

func TestPrinter_Writer(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.Same(t, buf, NewPrinterWithWriter(buf).Writer())
}
