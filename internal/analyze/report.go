package analyze

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/kaslabs/textstat/internal/errors"
)

// Report is the result of one completed analysis run: the merged totals
// plus the run parameters they were computed under.
type Report struct {
	Stats      `yaml:",inline"`
	Term       string        `json:"term" yaml:"term"`
	Workers    int           `json:"workers" yaml:"workers"`
	InputBytes int           `json:"input_bytes" yaml:"input_bytes"`
	Duration   time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Output formats supported by Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormat reports whether name is a supported output format.
func ValidFormat(name string) bool {
	switch name {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Format renders the report in the requested output format.
func (r *Report) Format(format string) (string, error) {
	switch format {
	case FormatText:
		return r.Text(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", errors.NewInternalError(errors.ErrCodeInternalError,
				"could not encode report as JSON", err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return "", errors.NewInternalError(errors.ErrCodeInternalError,
				"could not encode report as YAML", err)
		}
		return string(data), nil
	default:
		return "", errors.NewConfigError(errors.ErrCodeInvalidFormat,
			"unknown output format: "+format)
	}
}

// Text renders the report as plain key/value lines. Counters are printed
// with digit grouping for readability on large inputs.
func (r *Report) Text() string {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	fmt.Fprintf(&b, "Input size:  %s\n", p.Sprintf("%d bytes", r.InputBytes))
	fmt.Fprintf(&b, "Workers:     %d\n", r.Workers)
	fmt.Fprintf(&b, "Characters:  %s\n", p.Sprintf("%d", r.Chars))
	fmt.Fprintf(&b, "Lines:       %s\n", p.Sprintf("%d", r.Lines))
	fmt.Fprintf(&b, "Words:       %s\n", p.Sprintf("%d", r.Words))
	fmt.Fprintf(&b, "Term (%q):   %s\n", r.Term, p.Sprintf("%d occurrences", r.TermOccurrences))
	fmt.Fprintf(&b, "Duration:    %s\n", r.Duration)

	return b.String()
}
