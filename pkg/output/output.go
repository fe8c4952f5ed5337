package output

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	json "github.com/json-iterator/go"

	"github.com/onesocial/cli/pkg/config"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
	FormatText  OutputFormat = "text"
)

// Out is where every printer writes. Tests swap it for a buffer.
var Out io.Writer = color.Output

// GetOutputFormat returns the configured output format
func GetOutputFormat() OutputFormat {
	switch config.GetString("output.format") {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// ValidateOutputFormat checks if format is valid
func ValidateOutputFormat(format string) bool {
	return format == "json" || format == "table" || format == "text"
}

// Print outputs data in the configured format with optional title
func Print(title string, data interface{}) error {
	switch GetOutputFormat() {
	case FormatJSON:
		return printJSON(data)
	default:
		// Table format doesn't make sense for generic objects
		return printText(title, data)
	}
}

// PrintList outputs rows under columns in the configured format. raw is
// what the JSON format prints; it may be nil to print the rows.
func PrintList(title string, columns []string, rows [][]string, raw interface{}) error {
	switch GetOutputFormat() {
	case FormatJSON:
		if raw == nil {
			raw = rows
		}
		return printJSON(raw)
	case FormatTable:
		printTable(columns, rows)
		return nil
	default:
		if title != "" {
			color.New(color.Bold).Fprintf(Out, "%s\n", title)
		}
		printTable(columns, rows)
		return nil
	}
}

// PrintRecord outputs a single record in the configured format, keys sorted
func PrintRecord(title string, record map[string]interface{}) error {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	switch GetOutputFormat() {
	case FormatJSON:
		return printJSON(record)
	case FormatTable:
		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, []string{k, fmt.Sprintf("%v", record[k])})
		}
		printTable([]string{"Field", "Value"}, rows)
		return nil
	default:
		if title != "" {
			fmt.Fprintf(Out, "%s:\n", title)
		}
		bold := color.New(color.Bold)
		for _, k := range keys {
			bold.Fprint(Out, k+": ")
			fmt.Fprintf(Out, "%v\n", record[k])
		}
		return nil
	}
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(Out, msg+"\n", args...)
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(Out, "Error: "+msg+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(Out, msg+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(Out, "Warning: "+msg+"\n", args...)
}

func printJSON(data interface{}) error {
	pretty, err := FormatAsPrettyJSON(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(Out, pretty)
	return err
}

func printText(title string, data interface{}) error {
	if title != "" {
		fmt.Fprintf(Out, "%s:\n", title)
	}
	return printJSON(data)
}

func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)

	for i, h := range headers {
		bold.Fprint(w, h)
		if i < len(headers)-1 {
			fmt.Fprint(w, "\t")
		}
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprint(w, cell)
			if i < len(row)-1 {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintln(w)
	}

	w.Flush()
}

// FormatAsJSON converts data to JSON string (convenience function)
func FormatAsJSON(data interface{}) (string, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

// FormatAsPrettyJSON converts data to pretty JSON string (convenience function)
func FormatAsPrettyJSON(data interface{}) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}
