package export

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"familygarden/internal/fileutil"
	"familygarden/internal/gedcom"
	"familygarden/internal/textutil"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name. "yml" is accepted for YAML.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json, yaml or csv)", value)
	}
}

// DefaultPath names the output for source when none is given: a
// filesystem-safe token of the file name plus the format extension, or a
// "<token>_csv" directory for CSV bundles.
func DefaultPath(source string, format Format) string {
	base := filepath.Base(source)
	token := textutil.SanitizeToken(strings.TrimSuffix(base, filepath.Ext(base)))
	if format == FormatCSV {
		return token + "_csv"
	}
	return token + "." + string(format)
}

// Write exports result to out. JSON and YAML write a single file; CSV
// treats out as a directory and writes the bundle into it.
func Write(result *gedcom.ParseResult, format Format, out string) error {
	if result == nil {
		return fmt.Errorf("export: result is nil")
	}
	if format == FormatCSV {
		return WriteCSVBundle(result, out)
	}

	var encode func(io.Writer, *gedcom.ParseResult) error
	switch format {
	case FormatJSON:
		encode = WriteJSON
	case FormatYAML:
		encode = WriteYAML
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	return fileutil.WriteFileAtomic(out, 0o644, func(w io.Writer) error {
		return encode(w, result)
	})
}

// WriteJSON encodes result as indented JSON.
func WriteJSON(w io.Writer, result *gedcom.ParseResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML encodes result as a YAML document.
func WriteYAML(w io.Writer, result *gedcom.ParseResult) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}
	return nil
}
