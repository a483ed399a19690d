// package formatter provides functions to export reconciliation reports to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/report"
)

// ExportToCSV converts match results to CSV format with columns: Position, Status, Expected Title, Expected Artist, Effective Title, Effective Artist, File
func ExportToCSV(results []models.MatchResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "Status", "Expected Title", "Expected Artist", "Effective Title", "Effective Artist", "File"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, result := range results {
		path := ""
		if result.File != nil {
			path = result.File.Path
		}
		record := []string{
			strconv.Itoa(result.Expected.Position),
			result.Status.String(),
			result.Expected.Title,
			result.Expected.Artist,
			result.EffectiveTitle,
			result.EffectiveArtist,
			path,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts match results to a Markdown reconciliation report
func ExportToMarkdown(name string, results []models.MatchResult) ([]byte, error) {
	var buf bytes.Buffer

	summary := report.Summarize(results)

	buf.WriteString(fmt.Sprintf("# %s\n\n", name))
	buf.WriteString(fmt.Sprintf("**Matched**: %d\n", summary.Matched))
	buf.WriteString(fmt.Sprintf("**Corrected**: %d\n", summary.Corrected))
	buf.WriteString(fmt.Sprintf("**Missing**: %d\n", summary.Missing))
	buf.WriteString(fmt.Sprintf("**Total**: %d\n\n", summary.Total))

	buf.WriteString("## Tracks\n\n")
	for i, result := range results {
		switch result.Status {
		case models.StatusMissing:
			buf.WriteString(fmt.Sprintf("%d. ~~%s - %s~~ *(not downloaded)*\n", i+1, result.Expected.Artist, result.Expected.Title))
		case models.StatusCorrected:
			buf.WriteString(fmt.Sprintf("%d. %s - %s *(expected %s - %s)*\n", i+1, result.EffectiveArtist, result.EffectiveTitle, result.Expected.Artist, result.Expected.Title))
		default:
			buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, result.EffectiveArtist, result.EffectiveTitle))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts match results to plain text format
func ExportToText(name string, results []models.MatchResult) ([]byte, error) {
	var buf bytes.Buffer

	summary := report.Summarize(results)

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", name))
	buf.WriteString(fmt.Sprintf("Tracks: %d (%d matched, %d corrected, %d missing)\n\n", summary.Total, summary.Matched, summary.Corrected, summary.Missing))

	for i, result := range results {
		if result.Status == models.StatusMissing {
			buf.WriteString(fmt.Sprintf("%d. %s - %s (not downloaded)\n", i+1, result.Expected.Artist, result.Expected.Title))
			continue
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, result.EffectiveArtist, result.EffectiveTitle))
	}

	return buf.Bytes(), nil
}

// WriteReport writes a reconciliation report for a run in the requested
// format ("csv", "markdown", or "txt") and returns the file path.
func WriteReport(name string, results []models.MatchResult, format, basePath string) (string, error) {
	var data []byte
	var path string
	var err error

	switch format {
	case "csv":
		data, err = ExportToCSV(results)
		path = basePath + "_report.csv"
	case "markdown", "md":
		data, err = ExportToMarkdown(name, results)
		path = basePath + "_report.md"
	case "txt", "text":
		data, err = ExportToText(name, results)
		path = basePath + "_report.txt"
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}

	if err != nil {
		return "", fmt.Errorf("failed to generate report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return path, nil
}
