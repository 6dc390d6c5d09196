package notification

import (
	"embed"
	"fmt"
	"strings"

	"github.com/osteele/liquid"
)

//go:embed templates/*.liquid
var templateFS embed.FS

// Template names
const (
	TemplateContactAck = "contact_ack"
	TemplateRiskAlert  = "risk_alert"
)

// Renderer renders the embedded Liquid email bodies.
type Renderer struct {
	templates map[string]*liquid.Template
}

// NewRenderer parses every embedded template once.
func NewRenderer() (*Renderer, error) {
	engine := liquid.NewEngine()
	engine.RegisterFilter("percent", func(v float64) string {
		return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.1f", v), "0"), ".")
	})

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*liquid.Template, len(entries))}
	for _, entry := range entries {
		source, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		tpl, err := engine.ParseString(string(source))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
		r.templates[strings.TrimSuffix(entry.Name(), ".liquid")] = tpl
	}
	return r, nil
}

// Render renders the template called name with vars.
func (r *Renderer) Render(name string, vars map[string]interface{}) (string, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	out, err := tpl.RenderString(vars)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return strings.TrimSpace(out), nil
}
