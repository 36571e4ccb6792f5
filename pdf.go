package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10
	pdfLineHeight = 5
	pdfFontSize   = 9
	pdfTabWidth   = 4
)

// generatePDF renders the consolidated document at docPath as a PDF, one file
// block per page, highlighted by file name. Blocks that cannot be highlighted
// are written as plain text and reported through warn.
func generatePDF(docPath string, res *RunResult, outputPath string, warn warnFunc) error {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	data, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", docPath, err)
	}
	project, blocks := ParseDocument(string(data))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	// The core fonts are cp1252; translate what they can show.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}

	pdf.SetFont("Helvetica", "B", pdfFontSize+3)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight+2, tr(headerTitle+project), "", "L", false)
	pdf.Ln(pdfLineHeight)

	for _, block := range blocks {
		pdf.SetFont("Helvetica", "B", pdfFontSize+1)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, tr("Arquivo: "+block.Path), "", "L", false)
		pdf.Ln(pdfLineHeight / 2)
		pdf.Line(pdfMargin, pdf.GetY(), pdfPageWidth-pdfMargin, pdf.GetY())
		pdf.Ln(pdfLineHeight / 2)

		if block.Failed {
			pdf.SetFont("Courier", "", pdfFontSize)
			pdf.SetTextColor(255, 0, 0)
			pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, tr(block.Content), "", "L", false)
		} else if err := writeHighlightedCode(pdf, style, block.Content, block.Path, tr); err != nil {
			warn("realce de sintaxe falhou para %s, usando texto simples: %v", block.Path, err)
			pdf.SetFont("Courier", "", pdfFontSize)
			pdf.SetTextColor(0, 0, 0)
			pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, tr(block.Content), "", "L", false)
		}
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", pdfFontSize+1)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, "--- Resumo ---", "", "L", false)
	pdf.Ln(pdfLineHeight / 2)
	pdf.SetFont("Helvetica", "", pdfFontSize)
	summary := fmt.Sprintf("Arquivos consolidados: %d\nFalhas de leitura: %d", res.Consolidated, res.Failed)
	if res.Tokens > 0 {
		summary += fmt.Sprintf("\nTokens: %d", res.Tokens)
	}
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, summary, "", "L", false)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}
	return nil
}

// writeHighlightedCode writes code to the PDF token by token with the style's colors.
func writeHighlightedCode(pdf *gofpdf.Fpdf, style *chroma.Style, code, filePath string, tr func(string) string) error {
	lexer := lexers.Match(filePath)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	pdf.SetFont("Courier", "", pdfFontSize)
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := style.Get(token.Type)
		styleStr := ""
		if entry.Bold == chroma.Yes {
			styleStr += "B"
		}
		if entry.Italic == chroma.Yes {
			styleStr += "I"
		}
		pdf.SetFontStyle(styleStr)

		if entry.Colour.IsSet() {
			pdf.SetTextColor(int(entry.Colour.Red()), int(entry.Colour.Green()), int(entry.Colour.Blue()))
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		value := strings.ReplaceAll(token.Value, "\t", strings.Repeat(" ", pdfTabWidth))
		pdf.Write(pdfLineHeight, tr(value))
	}
	pdf.Ln(-1)
	return nil
}
