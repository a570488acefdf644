package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
	FormatCBOR
)

var formatNames = [...]string{"text", "json", "yaml", "cbor"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ErrUnknownFormat is returned for format names ParseFormat does not know.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat maps a format name to its Format. Matching ignores case.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownFormat, name, strings.Join(formatNames[:], ", "))
}

// cborEncMode uses canonical encoding so equal reports produce equal
// bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("report: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Encode writes reports to w in the given format.
func Encode(w io.Writer, f Format, reports []*Report) error {
	switch f {
	case FormatText:
		for _, r := range reports {
			if _, err := io.WriteString(w, r.String()); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case FormatCBOR:
		data, err := cborEncMode.Marshal(reports)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("%w %s", ErrUnknownFormat, f)
}

// String renders the report as indented text.
func (r *Report) String() string {
	var sb strings.Builder

	sb.WriteString(r.Target)
	sb.WriteString(": ")
	sb.WriteString(r.Tag)
	sb.WriteString("\n")

	if r.Name != "" {
		sb.WriteString("  name: ")
		sb.WriteString(r.Name)
		sb.WriteString("\n")
	}
	if r.Scope != "" {
		sb.WriteString("  scope: ")
		sb.WriteString(r.Scope)
		sb.WriteString("\n")
	}
	if len(r.ConstructorParameters) > 0 {
		sb.WriteString("  constructor parameters: ")
		sb.WriteString(strings.Join(r.ConstructorParameters, ", "))
		sb.WriteString("\n")
	}
	if r.Tag == "function" {
		sb.WriteString("  parameters: ")
		sb.WriteString(strings.Join(r.Parameters, ", "))
		sb.WriteString("\n")
	}

	if len(r.Properties) > 0 {
		sb.WriteString("  properties:\n")
		for _, p := range r.Properties {
			fmt.Fprintf(&sb, "    %s: %s%s\n", p.Name, p.Tag, ownSuffix(p.Own))
		}
	}
	if len(r.Methods) > 0 {
		sb.WriteString("  methods:\n")
		for _, m := range r.Methods {
			fmt.Fprintf(&sb, "    %s(%s)%s\n", m.Name, strings.Join(m.Parameters, ", "), ownSuffix(m.Own))
		}
	}
	return sb.String()
}

func ownSuffix(own bool) string {
	if own {
		return " (own)"
	}
	return ""
}
