package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFields() []FieldValue {
	return []FieldValue{
		{Label: "Your Name", Value: "Jane Doe"},
		{Label: "Your Email", Value: "jane@example.com"},
	}
}

func TestWriteCSV_Layout(t *testing.T) {
	var buf bytes.Buffer
	letter := "Dear Hiring Manager,\n\nI am writing to apply.\n\nSincerely,\nJane Doe"

	require.NoError(t, WriteCSV(&buf, sampleFields(), letter))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "Field,Value", lines[0])
	assert.Equal(t, "Personal Info - Your Name,Jane Doe", lines[1])
	assert.Equal(t, "Personal Info - Your Email,jane@example.com", lines[2])
	assert.Equal(t, "", lines[3]) // separator row
	assert.Equal(t, "Cover Letter Content", lines[4])

	// One row per non-blank line of the letter; blank letter lines dropped
	assert.Equal(t, "\"Dear Hiring Manager,\"", lines[5])
	assert.Equal(t, "I am writing to apply.", lines[6])
	assert.Equal(t, "\"Sincerely,\"", lines[7])
	assert.Equal(t, "Jane Doe", lines[8])
}

func TestWriteCSV_ValueWithCommaIsQuoted(t *testing.T) {
	var buf bytes.Buffer
	fields := []FieldValue{{Label: "Your Address", Value: "123 Main St, Springfield"}}

	require.NoError(t, WriteCSV(&buf, fields, "Letter body"))

	assert.Contains(t, buf.String(), "\"123 Main St, Springfield\"")
}

func TestWriteCSV_NoFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, "Only content"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Field,Value", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "Cover Letter Content", lines[2])
	assert.Equal(t, "Only content", lines[3])
}

func TestWriteDocument_Layout(t *testing.T) {
	var buf bytes.Buffer
	letter := "Dear Hiring Manager,\n\nFirst paragraph here.\n\nSincerely,\nJane"

	require.NoError(t, WriteDocument(&buf, "Personalized Cover Letter", sampleFields(), letter))
	doc := buf.String()

	assert.True(t, strings.HasPrefix(doc, "# Personalized Cover Letter\n"))
	assert.Contains(t, doc, "## Personal Information")
	assert.Contains(t, doc, "**Your Name:** Jane Doe")
	assert.Contains(t, doc, "**Your Email:** jane@example.com")
	assert.Contains(t, doc, "## Cover Letter Content")
	assert.Contains(t, doc, "Dear Hiring Manager,")

	// Multi-line closing block stays one paragraph
	assert.Contains(t, doc, "Sincerely,\nJane")
}

func TestWriteDocument_NoFieldsSkipsPersonalInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, "Cover Letter", nil, "Body"))

	assert.NotContains(t, buf.String(), "Personal Information")
	assert.Contains(t, buf.String(), "## Cover Letter Content")
}

func TestParagraphs(t *testing.T) {
	letter := "First block.\n\n\nSecond block\nwith two lines.\n\n"
	got := Paragraphs(letter)

	require.Len(t, got, 2)
	assert.Equal(t, "First block.", got[0])
	assert.Equal(t, "Second block\nwith two lines.", got[1])
}
