package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"
)

// Formatter is the interface for output formatting
type Formatter interface {
	Print(data any) error
	PrintList(items any, columns []Column) error
	PrintSuccess(msg string)
	PrintError(err error)
	PrintHint(msg string)
}

// Column defines a column for table/list output
type Column struct {
	Name  string // Display name
	Key   string // Struct field name or map key
	Width int    // Width for rich mode (0 = auto)
}

// New creates a formatter for the specified mode writing to stdout and stderr
func New(mode string) Formatter {
	return NewTo(mode, os.Stdout, os.Stderr)
}

// NewTo creates a formatter for the specified mode writing to out and errOut
func NewTo(mode string, out, errOut io.Writer) Formatter {
	switch mode {
	case "json":
		return &jsonFormatter{out: out, err: errOut}
	case "rich":
		return &richFormatter{out: out, err: errOut, profile: termenv.ColorProfile()}
	default:
		return &plainFormatter{out: out, err: errOut}
	}
}

// rowValues extracts the column values of a struct or map item
func rowValues(item reflect.Value, columns []Column) []string {
	if item.Kind() == reflect.Ptr {
		item = item.Elem()
	}

	values := make([]string, len(columns))
	for j, col := range columns {
		var field reflect.Value
		switch item.Kind() {
		case reflect.Map:
			field = item.MapIndex(reflect.ValueOf(col.Key))
		case reflect.Struct:
			field = item.FieldByName(col.Key)
		}
		if field.IsValid() {
			values[j] = fmt.Sprintf("%v", field.Interface())
		}
	}
	return values
}

func sliceValue(items any) (reflect.Value, error) {
	v := reflect.ValueOf(items)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("PrintList requires a slice")
	}
	return v, nil
}

// jsonFormatter outputs JSON
type jsonFormatter struct {
	out io.Writer
	err io.Writer
}

func (f *jsonFormatter) encode(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (f *jsonFormatter) Print(data any) error {
	return f.encode(f.out, data)
}

func (f *jsonFormatter) PrintList(items any, columns []Column) error {
	v, err := sliceValue(items)
	if err != nil {
		return err
	}

	// Wrap in envelope with metadata
	envelope := map[string]any{
		"data":  items,
		"count": v.Len(),
	}

	return f.Print(envelope)
}

func (f *jsonFormatter) PrintSuccess(msg string) {
	_ = f.encode(f.out, map[string]any{"ok": true, "message": msg})
}

func (f *jsonFormatter) PrintError(err error) {
	_ = f.encode(f.err, map[string]string{"error": err.Error()})
}

func (f *jsonFormatter) PrintHint(msg string) {
	// Hints are for humans; JSON consumers only get the error object
}

// plainFormatter outputs tab-separated values
type plainFormatter struct {
	out io.Writer
	err io.Writer
}

func (f *plainFormatter) Print(data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() == reflect.Struct {
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			fmt.Fprintf(f.out, "%s\t%v\n", t.Field(i).Name, v.Field(i).Interface())
		}
		return nil
	}

	// For non-struct types, just print the value
	fmt.Fprintf(f.out, "%v\n", data)
	return nil
}

func (f *plainFormatter) PrintList(items any, columns []Column) error {
	v, err := sliceValue(items)
	if err != nil {
		return err
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Name
	}
	fmt.Fprintf(f.out, "%s\n", strings.Join(headers, "\t"))

	for i := 0; i < v.Len(); i++ {
		fmt.Fprintf(f.out, "%s\n", strings.Join(rowValues(v.Index(i), columns), "\t"))
	}

	return nil
}

func (f *plainFormatter) PrintSuccess(msg string) {
	fmt.Fprintln(f.out, msg)
}

func (f *plainFormatter) PrintError(err error) {
	fmt.Fprintf(f.err, "error: %v\n", err)
}

func (f *plainFormatter) PrintHint(msg string) {
	fmt.Fprintf(f.err, "hint: %v\n", msg)
}

// richFormatter outputs styled content for terminal
type richFormatter struct {
	out     io.Writer
	err     io.Writer
	profile termenv.Profile
}

func (f *richFormatter) render(style lipgloss.Style, s string) string {
	if f.profile == termenv.Ascii {
		return s
	}
	return style.Render(s)
}

func (f *richFormatter) Print(data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() == reflect.Struct {
		keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			fmt.Fprintf(f.out, "%s: %v\n", f.render(keyStyle, t.Field(i).Name), v.Field(i).Interface())
		}
		return nil
	}

	fmt.Fprintf(f.out, "%v\n", data)
	return nil
}

func (f *richFormatter) PrintList(items any, columns []Column) error {
	v, err := sliceValue(items)
	if err != nil {
		return err
	}

	rows := make([][]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		rows[i] = rowValues(v.Index(i), columns)
	}

	RenderTable(f.out, columns, rows, f.profile != termenv.Ascii)
	return nil
}

func (f *richFormatter) PrintSuccess(msg string) {
	okStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	fmt.Fprintf(f.out, "%s %s\n", f.render(okStyle, "✓"), msg)
}

func (f *richFormatter) PrintError(err error) {
	errorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9"))

	fmt.Fprintf(f.err, "%s\n", f.render(errorStyle, "error: "+err.Error()))
}

func (f *richFormatter) PrintHint(msg string) {
	hintStyle := lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color("8"))

	fmt.Fprintf(f.err, "%s\n", f.render(hintStyle, "hint: "+msg))
}
