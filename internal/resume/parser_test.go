package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `Jane Doe
Senior Fullstack Developer
jane.doe@example.com
+1 (415) 555-0123

Experience
- Built React dashboards
- Ran Node.js services in production`

func TestParseExtractsAllContactFields(t *testing.T) {
	parsed := NewRegexParser().Parse(sampleResume)

	assert.Equal(t, "Jane Doe", parsed.Name)
	assert.Equal(t, "jane.doe@example.com", parsed.Email)
	assert.NotEmpty(t, parsed.Phone)
	assert.Equal(t, sampleResume, parsed.FullText)
	assert.Empty(t, parsed.MissingFields())
}

func TestParseReportsMissingFields(t *testing.T) {
	parsed := NewRegexParser().Parse("1234\n5678\nplain experience text with many many words in a row here")

	assert.Empty(t, parsed.Email)
	assert.Empty(t, parsed.Phone)
	assert.ElementsMatch(t, []string{"name", "email", "phone"}, parsed.MissingFields())
}

func TestParseEmptyInput(t *testing.T) {
	parsed := NewRegexParser().Parse("")

	assert.Empty(t, parsed.Name)
	assert.Len(t, parsed.MissingFields(), 3)
}

func TestExtractNameSkipsNonNameLines(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			"email line before the name",
			"jane@example.com\nJane Doe\n",
			"Jane Doe",
		},
		{
			"phone line before the name",
			"415-555-0123\nJane Doe\n",
			"Jane Doe",
		},
		{
			"long sentences are not names",
			"I am a developer with ten years of experience\nJane Doe\n",
			"Jane Doe",
		},
		{
			"lines with digits are not names",
			"Jane Doe 3rd\nJane Doe\n",
			"Jane Doe",
		},
		{
			"name beyond the scan window is missed",
			strings.Repeat("\n", 11) + "Jane Doe\n",
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed := NewRegexParser().Parse(tc.text)
			assert.Equal(t, tc.want, parsed.Name)
		})
	}
}

func TestParsePhoneFormats(t *testing.T) {
	p := NewRegexParser()
	for _, phone := range []string{
		"415-555-0123",
		"(415) 555-0123",
		"415.555.0123",
		"+14155550123",
	} {
		parsed := p.Parse("Contact: " + phone)
		assert.NotEmpty(t, parsed.Phone, "phone format %q", phone)
	}
}
