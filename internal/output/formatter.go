package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rpgo/rollover-planner/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(results *domain.PlanComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVExporter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// WriteFormatted runs a formatter and writes its output to a timestamped
// file, returning the filename.
func WriteFormatted(f Formatter, results *domain.PlanComparison, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("rollover_plan_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateReport formats the comparison with the named formatter. Console
// output goes to stdout; file formats are written next to the working
// directory.
func GenerateReport(results *domain.PlanComparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown output format %q", format)
	}
	if f.Name() == "console" {
		data, err := f.Format(results)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	filename, err := WriteFormatted(f, results, f.Name())
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}
