package resume

import (
	"regexp"
	"strings"
)

// Parser extracts contact fields from résumé text. Binary decoding of
// uploaded documents happens upstream; this layer only sees text.
type Parser interface {
	Parse(text string) Parsed
}

// Parsed is the extraction result. Empty fields could not be found and
// must be collected from the candidate directly.
type Parsed struct {
	Name     string
	Email    string
	Phone    string
	FullText string
}

// MissingFields lists the contact fields that could not be extracted.
func (p Parsed) MissingFields() []string {
	missing := []string{}
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// RegexParser is the default pattern-based implementation.
type RegexParser struct {
	email *regexp.Regexp
	phone *regexp.Regexp
}

func NewRegexParser() *RegexParser {
	return &RegexParser{
		email: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		phone: regexp.MustCompile(`[\+]?[(]?[0-9]{3}[)]?[-\s\.]?[(]?[0-9]{3}[)]?[-\s\.]?[0-9]{4,6}`),
	}
}

func (p *RegexParser) Parse(text string) Parsed {
	return Parsed{
		Name:     p.extractName(text),
		Email:    p.email.FindString(text),
		Phone:    p.phone.FindString(text),
		FullText: text,
	}
}

// extractName scans the first few lines for something that looks like a
// person's name: short, no digits, not an email or phone number.
func (p *RegexParser) extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) <= 2 {
			continue
		}
		if len(strings.Fields(line)) > 4 {
			continue
		}
		if p.email.MatchString(line) || p.phone.MatchString(line) {
			continue
		}
		if strings.ContainsAny(line, "0123456789") {
			continue
		}
		return line
	}
	return ""
}
