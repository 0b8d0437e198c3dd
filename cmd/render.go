package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"recapper/recap"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

const sentenceWidth = 72

func summarizeAndPrint(ctx context.Context, w io.Writer, s *recap.Summarizer, withTable bool) error {
	if err := s.Process(ctx); err != nil {
		return err
	}
	if _, err := s.Summarize(fraction); err != nil {
		return err
	}
	report, err := s.Info(topTerms, withTable)
	if err != nil {
		return err
	}
	return printReport(w, report, jsonOutput)
}

func printReport(w io.Writer, r *recap.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	var b strings.Builder
	if len(r.Authors) > 0 {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Authors:"), strings.Join(r.Authors, ", "))
	}
	if r.ReferenceSummary != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Reference summary:"), r.ReferenceSummary)
	}
	if r.Language != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Language:"), r.Language)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n%s\n\n", labelStyle.Render("Summary:"), r.Summary)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Top terms:"), strings.Join(r.TopTerms, ", "))
	fmt.Fprintf(&b, "%s %.2f%%\n", labelStyle.Render("Compression ratio:"), r.CompressionRatio)

	if len(r.Table) > 0 {
		b.WriteString("\n")
		b.WriteString(renderTable(r.Table))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderTable(rows recap.Table) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Rank", "Score", "Sentence").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 {
				return cellStyle.Width(sentenceWidth)
			}
			return cellStyle
		})

	for i, row := range rows {
		t.Row(
			strconv.Itoa(i),
			strconv.Itoa(row.Rank),
			strconv.FormatFloat(row.Score, 'f', 4, 64),
			strings.TrimSpace(row.Sentence),
		)
	}
	return t.String()
}
