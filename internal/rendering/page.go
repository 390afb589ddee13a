package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/jonathan/ytj-lookup/internal/types"
)

//go:embed templates/index.html
var templateFS embed.FS

const defaultTemplate = "templates/index.html"

// PageData is what the lookup page template receives.
// Result is nil when no lookup has been made yet (plain GET).
type PageData struct {
	Input  string
	Result *types.LookupResult
}

// Renderer renders the lookup page. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the page template. An empty templatePath selects the
// built-in template; otherwise the file at templatePath is used.
func NewRenderer(templatePath string) (*Renderer, error) {
	content, err := readTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("index").Funcs(template.FuncMap{
		"href":       WebsiteHref,
		"hasAddress": hasAddress,
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

func readTemplate(templatePath string) ([]byte, error) {
	if templatePath == "" {
		return templateFS.ReadFile(defaultTemplate)
	}
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return content, nil
}

// Render executes the template into w. Output is buffered so that a failing
// template never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return &RenderError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{
			Message: "failed to write page",
			Cause:   err,
		}
	}
	return nil
}

// WebsiteHref turns a registry website value such as "www.example.fi" into a link target.
func WebsiteHref(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	lower := strings.ToLower(website)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return website
	}
	return "https://" + website
}

func hasAddress(a types.Address) bool {
	return a != types.Address{}
}
