package resolver

import (
	"strings"
)

// descriptionFields is the subset of an R package DESCRIPTION file this
// resolver needs: Package, Version, and URL (which may list several
// comma-separated URLs, continued on indented lines per the Debian
// control-file format DESCRIPTION reuses).
type descriptionFields struct {
	Package string
	Version string
	URLs    []string
}

// parseDescription parses DESCRIPTION's "Key: Value" fields, folding
// indented continuation lines into the previous field's value.
func parseDescription(raw string) descriptionFields {
	var fields descriptionFields
	var curKey string
	var curVal strings.Builder

	flush := func() {
		switch curKey {
		case "Package":
			fields.Package = strings.TrimSpace(curVal.String())
		case "Version":
			fields.Version = strings.TrimSpace(curVal.String())
		case "URL":
			fields.URLs = splitURLList(curVal.String())
		}
		curKey = ""
		curVal.Reset()
	}

	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		if (line[0] == ' ' || line[0] == '\t') && curKey != "" {
			curVal.WriteByte(' ')
			curVal.WriteString(strings.TrimSpace(line))
			continue
		}
		if idx := strings.IndexByte(line, ':'); idx >= 0 {
			flush()
			curKey = strings.TrimSpace(line[:idx])
			curVal.WriteString(line[idx+1:])
			continue
		}
	}
	flush()

	return fields
}

func splitURLList(raw string) []string {
	var urls []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }) {
		u := strings.TrimSpace(part)
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// firstHTTPSURL returns the first https:// URL in urls, if any.
func firstHTTPSURL(urls []string) (string, bool) {
	for _, u := range urls {
		if strings.HasPrefix(u, "https://") {
			return u, true
		}
	}
	return "", false
}
