package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
)

func formatCandidateInfoSection(record *CandidateRecord) string {
	fields := record.InfoFields()
	if len(fields) == 0 {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("# Candidate Information:\n")
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Field", "Value")
	for _, field := range fields {
		value, _ := record.Get(field)
		_ = table.Append(displayName(field), formatValue(value))
	}
	_ = table.Render()
	return buf.String()
}

func formatAnswersSection(record *CandidateRecord) string {
	fields := record.AnswerFields()
	if len(fields) == 0 {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("# Technical Responses:\n")
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Question", "Answer")
	for _, field := range fields {
		value, _ := record.Get(field)
		_ = table.Append(fmt.Sprintf("Question %d", answerIndex(field)), formatValue(value))
	}
	_ = table.Render()
	return buf.String()
}

// FormatCandidateSummary renders the record as markdown sections, used for the
// end-of-interview summary shown to recruiters.
func FormatCandidateSummary(record *CandidateRecord) string {
	sections := make([]string, 0, 2)
	if s := formatCandidateInfoSection(record); s != "" {
		sections = append(sections, s)
	}
	if s := formatAnswersSection(record); s != "" {
		sections = append(sections, s)
	}
	if len(sections) == 0 {
		return "No candidate information collected."
	}
	return strings.Join(sections, "\n")
}

func displayName(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
