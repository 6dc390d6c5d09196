package audit

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed labels.yaml
var defaultCatalog []byte

const (
	undefinedDisplay = "Non défini"
	yesDisplay       = "Oui"
	noDisplay        = "Non"
	dateTimeLayout   = "02/01/2006 15:04"
)

type labelSet struct {
	Fields  map[string]string            `yaml:"fields"`
	Choices map[string]map[string]string `yaml:"choices"`
}

type catalog struct {
	Common   labelSet            `yaml:"common"`
	Entities map[string]labelSet `yaml:"entities"`
}

// Formatter renders field names and values of audited entities for display.
type Formatter struct {
	catalog catalog
}

// NewFormatter creates a Formatter from the built in label catalog.
func NewFormatter() (*Formatter, error) {
	return NewFormatterFromYAML(defaultCatalog)
}

// NewFormatterFromYAML creates a Formatter from a YAML label catalog.
func NewFormatterFromYAML(data []byte) (*Formatter, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse audit label catalog: %w", err)
	}
	return &Formatter{catalog: c}, nil
}

// FieldLabel returns the display label of field on objectClass. Unknown
// fields are humanized from their camelCase name.
func (f *Formatter) FieldLabel(objectClass, field string) string {
	if label, ok := f.catalog.Entities[objectClass].Fields[field]; ok {
		return label
	}
	if label, ok := f.catalog.Common.Fields[field]; ok {
		return label
	}
	return humanize(field)
}

// FormatValue renders value for display.
func (f *Formatter) FormatValue(objectClass, field string, value interface{}) string {
	if s, ok := value.(string); ok {
		if label, ok := f.catalog.Entities[objectClass].Choices[field][s]; ok {
			return label
		}
	}
	return formatValue(value)
}

// Decorate fills labels and display values of changes and returns them
// sorted by field name.
func (f *Formatter) Decorate(objectClass string, changes map[string]FieldChange) []FieldChange {
	decorated := make([]FieldChange, 0, len(changes))
	for field, change := range changes {
		change.Field = field
		change.Label = f.FieldLabel(objectClass, field)
		change.OldDisplay = f.FormatValue(objectClass, field, change.OldValue)
		change.NewDisplay = f.FormatValue(objectClass, field, change.NewValue)
		decorated = append(decorated, change)
	}
	sort.Slice(decorated, func(i, j int) bool {
		return decorated[i].Field < decorated[j].Field
	})
	return decorated
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return undefinedDisplay
	case bool:
		if v {
			return yesDisplay
		}
		return noDisplay
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.Format(dateTimeLayout)
		}
		return v
	case time.Time:
		return v.Format(dateTimeLayout)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	case []string:
		return strings.Join(v, ", ")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// humanize turns "nextFollowUpDate" into "Next follow up date".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case unicode.IsUpper(r) && i > 0:
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return out
	}
	first := []rune(out)
	first[0] = unicode.ToUpper(first[0])
	return string(first)
}
