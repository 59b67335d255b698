package swaggen

import "strings"

// docBuilder assembles the description of a struct or union definition:
// the type's own doc followed by one "name: doc" line per field, each
// line newline-terminated.
type docBuilder struct {
	b strings.Builder
}

func newDocBuilder(doc string) *docBuilder {
	d := &docBuilder{}
	if doc != "" {
		d.b.WriteString(doc)
		d.b.WriteByte('\n')
	}
	return d
}

func (d *docBuilder) field(name, doc string) {
	d.b.WriteString(name)
	d.b.WriteString(": ")
	d.b.WriteString(doc)
	d.b.WriteByte('\n')
}

func (d *docBuilder) String() string {
	return d.b.String()
}

// splitDoc splits route doc text into a short summary and a long
// description. The summary runs up to the first sentence terminator
// (a period followed by whitespace, or a period ending the text); when
// no terminator exists the first line is the summary. Empty doc yields
// empty summary and description.
func splitDoc(doc string) (summary, description string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return "", ""
	}
	for i := 0; i < len(doc); i++ {
		if doc[i] != '.' {
			continue
		}
		rest := doc[i+1:]
		if rest == "" {
			return doc, ""
		}
		if rest[0] == ' ' || rest[0] == '\n' || rest[0] == '\t' {
			return doc[:i+1], strings.TrimSpace(rest)
		}
	}
	if nl := strings.IndexByte(doc, '\n'); nl >= 0 {
		return doc[:nl], strings.TrimSpace(doc[nl+1:])
	}
	return doc, ""
}
