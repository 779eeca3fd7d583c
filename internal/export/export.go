// Package export writes the task collection as JSON, YAML or a PDF checklist.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"gtodo/internal/task"
	"gtodo/internal/view"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatPDF  = "pdf"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatJSON, FormatYAML, FormatPDF:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format: %s", s)
	}
}

// Write encodes tasks to w in the given format.
func Write(w io.Writer, format string, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	case FormatPDF:
		return writePDF(w, tasks, time.Now())
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

// writePDF renders one checklist section per status group.
func writePDF(w io.Writer, tasks []task.Task, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("To-Do List", true)
	pdf.SetCreationDate(now)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "To-Do List")
	pdf.Ln(14)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, g := range view.Partition(tasks) {
		if g.Key == view.KeyAll {
			continue
		}
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("%s (%d)", g.Title, len(g.Tasks)))
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "", 11)
		if len(g.Tasks) == 0 {
			pdf.Cell(0, 7, "-")
			pdf.Ln(8)
		}
		for _, t := range g.Tasks {
			box := "[ ]"
			if t.Status == task.Done {
				box = "[x]"
			}
			title := t.Title
			if strings.TrimSpace(title) == "" {
				title = "(untitled)"
			}
			pdf.CellFormat(14, 7, fmt.Sprintf("%d", t.ID), "", 0, "R", false, 0, "")
			pdf.CellFormat(10, 7, box, "", 0, "C", false, 0, "")
			pdf.MultiCell(0, 7, tr(title), "", "L", false)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}
