package services

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"rental_quote_app_go/models"

	ledongthucpdf "github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

// Best-effort extraction only looks at the first pages of large supplier
// documents; quote data sits up front in practice.
const maxExtractedPages = 5

var nonASCII = regexp.MustCompile(`[^\x00-\x7F]+`)
var multiSpace = regexp.MustCompile(`\s+`)

// fieldPatterns matches labeled quote fields in free supplier text. Patterns
// are applied case-insensitively to the normalized document text.
var fieldPatterns = map[string]*regexp.Regexp{
	models.FieldClientName:  regexp.MustCompile(`(?i)(?:Cliente|Ragione sociale|Nome)\s*[:\-]\s*([A-Za-z0-9\s\.\,\-]+)`),
	models.FieldTaxID:       regexp.MustCompile(`(?i)(?:P\.?\s*IVA|CF|Codice fiscale)\s*[:\-]\s*([A-Za-z0-9]+)`),
	models.FieldAddress:     regexp.MustCompile(`(?i)(?:Sede|Indirizzo)\s*[:\-]\s*([A-Za-z0-9\s\.\,\-]+)`),
	models.FieldContact:     regexp.MustCompile(`(?i)(?:Referente|Contatto)\s*[:\-]\s*([A-Za-z0-9\s\.\,\-]+)`),
	models.FieldMakeModel:   regexp.MustCompile(`(?i)(?:Marca\s*\/?\s*Modello|Veicolo|Modello)\s*[:\-]\s*([A-Za-z0-9\s\.\,\-]+)`),
	models.FieldTrim:        regexp.MustCompile(`(?i)(?:Versione|Allestimento)\s*[:\-]\s*([A-Za-z0-9\s\.\,\-]+)`),
	models.FieldEngine:      regexp.MustCompile(`(?i)(?:Motore|Alimentazione|Cambio|Potenza)\s*[:\-]\s*([A-Za-z0-9\s\.\,\-\/]+)`),
	models.FieldNewDrivers:  regexp.MustCompile(`(?i)(?:Neopatentati|Idoneo neopatentati)\s*[:\-]\s*(Si|No|N\.D\.)`),
	models.FieldDelivery:    regexp.MustCompile(`(?i)(?:Consegna|Consegna stimata|Lead time)\s*[:\-]\s*([A-Za-z0-9\s\.\,\-\/]+)`),
	models.FieldDuration:    regexp.MustCompile(`(?i)(?:Durata)\s*[:\-]\s*([0-9]{1,2})`),
	models.FieldAnnualKm:    regexp.MustCompile(`(?i)(?:Km|Chilometraggio)\s*[:\-]\s*([0-9\.\,]+)`),
	models.FieldDownPayment: regexp.MustCompile(`(?i)(?:Anticipo)\s*[:\-]\s*([0-9\.\,]+)`),
	models.FieldMonthlyFee:  regexp.MustCompile(`(?i)(?:Canone|Canone mensile)\s*[:\-]\s*([0-9\.\,]+)`),
}

// ExtractQuoteFields pulls quote fields out of a supplier document (PDF,
// DOCX, XLSX or plain text) by pattern matching. Extraction is best-effort:
// any failure degrades to a partial or empty record, never an error that
// aborts the request.
func ExtractQuoteFields(path string) models.QuoteRecord {
	var text string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text = extractPDFText(path)
	case ".docx", ".doc":
		text = extractDOCXText(path)
	case ".xlsx":
		text = extractXLSXText(path)
	case ".txt":
		if content, err := os.ReadFile(path); err == nil {
			text = string(content)
		}
	}

	text = nonASCII.ReplaceAllString(text, " ")
	text = strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))

	record := models.QuoteRecord{}
	if text == "" {
		return record
	}
	for field, pattern := range fieldPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			record[field] = strings.TrimSpace(m[1])
		}
	}
	return record
}

func extractPDFText(path string) string {
	f, reader, err := ledongthucpdf.Open(path)
	if err != nil {
		log.Printf("Supplier PDF not parseable (%s): %v", filepath.Base(path), err)
		return ""
	}
	defer f.Close()

	var sb strings.Builder
	pages := reader.NumPage()
	if pages > maxExtractedPages {
		pages = maxExtractedPages
	}
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(content)
	}
	return sb.String()
}

// extractDOCXText pulls paragraph text out of the word/document.xml entry.
// Namespace prefixes are dropped by the decoder so only local names matter.
func extractDOCXText(path string) string {
	archive, err := zip.OpenReader(path)
	if err != nil {
		log.Printf("Supplier DOCX not parseable (%s): %v", filepath.Base(path), err)
		return ""
	}
	defer archive.Close()

	var doc *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return ""
	}

	rc, err := doc.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sb.String()
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String()
}

func extractXLSXText(path string) string {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		log.Printf("Supplier XLSX not parseable (%s): %v", filepath.Base(path), err)
		return ""
	}
	defer workbook.Close()

	var sb strings.Builder
	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			// Label/value cell pairs become "Label: value" lines so the same
			// patterns apply to spreadsheets and running text.
			sb.WriteString("\n")
			sb.WriteString(strings.Join(row, ": "))
		}
	}
	return sb.String()
}
