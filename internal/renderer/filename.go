package renderer

import "strings"

// ExportFilename synthesizes the download filename for a generated document.
// The default is "{templateName with spaces replaced by underscores}_{lastName}.txt";
// a non-empty override wins. The result is sanitized so it is always a safe
// single path element ending in .txt.
func ExportFilename(templateName, lastName, override string) string {
	name := strings.TrimSpace(override)
	if name == "" {
		base := strings.ReplaceAll(strings.TrimSpace(templateName), " ", "_")
		if base == "" {
			base = "document"
		}
		last := strings.TrimSpace(lastName)
		if last != "" {
			base = base + "_" + last
		}
		name = base
	}

	name = sanitizeFilename(name)
	if name == "" {
		name = "document"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".txt") {
		name += ".txt"
	}
	return name
}

// sanitizeFilename strips path separators and control characters
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ':':
			b.WriteByte('_')
		case r < 32 || r == 127:
			// drop control characters
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), ". ")
}
