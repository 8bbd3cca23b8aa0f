package renderer

import (
	"regexp"
	"strings"

	"github.com/draftkit/draftkit/internal/models"
)

var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Substitute replaces every {{key}} token in content with the matching value.
// Each key is processed in a single linear pass with a global replace; no
// recursive or fixed-point substitution is performed, so replacement values
// containing further {{...}} tokens are left as-is. Placeholders with no
// matching key pass through verbatim.
func Substitute(content string, values map[string]string) string {
	for key, value := range values {
		content = strings.ReplaceAll(content, "{{"+key+"}}", value)
	}
	return content
}

// Placeholders returns the unique placeholder keys referenced by content, in
// order of first appearance.
func Placeholders(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]bool, len(matches))
	var keys []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

// Unresolved returns the placeholder keys in content that have no entry in
// values. Used by the preview to flag tokens that survived substitution.
func Unresolved(content string, values map[string]string) []string {
	var missing []string
	for _, key := range Placeholders(content) {
		if _, ok := values[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Renderer produces a document from a template and client info
type Renderer struct {
	template *models.Template
	info     models.ClientInfo
}

// NewRenderer creates a new renderer instance
func NewRenderer(tmpl *models.Template, info models.ClientInfo) *Renderer {
	return &Renderer{
		template: tmpl,
		info:     info,
	}
}

// RenderText renders the document as plain text
func (r *Renderer) RenderText() string {
	if r.template == nil {
		return ""
	}
	return Substitute(r.template.Content, r.info)
}
