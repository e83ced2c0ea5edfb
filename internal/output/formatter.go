package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/firecalc/compound-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting under a fixed FormatConfig).
type Formatter interface {
	Format(results *domain.Comparison, cfg FormatConfig) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file
// with the given extension, returning the file name.
func WriteFormatted(f Formatter, results *domain.Comparison, cfg FormatConfig, ext string) (string, error) {
	data, err := f.Format(results, cfg)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("projection_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVTableExporter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"csv-table":   "csv",
	"spreadsheet": "csv",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
