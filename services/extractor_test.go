package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"rental_quote_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

const supplierText = `Cliente: ACME Srl
P.IVA: 12345678901
Marca/Modello: Tesla Model 3
Versione: Long Range
Neopatentati: No
Durata: 36
Km: 15.000
Anticipo: 5.000
Canone: 450
`

func writeSupplierTxt(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "offerta.txt")
	assert.NoError(t, os.WriteFile(path, []byte(supplierText), 0644))
	return path
}

func TestExtractQuoteFieldsFromText(t *testing.T) {
	record := ExtractQuoteFields(writeSupplierTxt(t, t.TempDir()))

	assert.Contains(t, record[models.FieldClientName], "ACME")
	assert.Equal(t, "12345678901", record[models.FieldTaxID])
	assert.Contains(t, record[models.FieldMakeModel], "Tesla Model 3")
	assert.Equal(t, "No", record[models.FieldNewDrivers])
	assert.Equal(t, "36", record[models.FieldDuration])
	assert.Equal(t, "15.000", record[models.FieldAnnualKm])
	assert.Equal(t, "5.000", record[models.FieldDownPayment])
	assert.Equal(t, "450", record[models.FieldMonthlyFee])
}

func TestExtractQuoteFieldsFromXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "offerta.xlsx")

	workbook := excelize.NewFile()
	assert.NoError(t, workbook.SetCellValue("Sheet1", "A1", "Canone"))
	assert.NoError(t, workbook.SetCellValue("Sheet1", "B1", "450"))
	assert.NoError(t, workbook.SetCellValue("Sheet1", "A2", "Durata"))
	assert.NoError(t, workbook.SetCellValue("Sheet1", "B2", "36"))
	assert.NoError(t, workbook.SaveAs(path))
	assert.NoError(t, workbook.Close())

	record := ExtractQuoteFields(path)
	assert.Equal(t, "450", record[models.FieldMonthlyFee])
	assert.Equal(t, "36", record[models.FieldDuration])
}

func TestExtractQuoteFieldsFromDOCX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "offerta.docx")

	f, err := os.Create(path)
	assert.NoError(t, err)
	w := zip.NewWriter(f)
	entry, err := w.Create("word/document.xml")
	assert.NoError(t, err)
	_, err = entry.Write([]byte(`<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Cliente: Rossi Spa</w:t></w:r></w:p>
    <w:p><w:r><w:t>Canone: 399</w:t></w:r></w:p>
  </w:body>
</w:document>`))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, f.Close())

	record := ExtractQuoteFields(path)
	assert.Contains(t, record[models.FieldClientName], "Rossi")
	assert.Equal(t, "399", record[models.FieldMonthlyFee])
}

func TestExtractQuoteFieldsBestEffort(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		record := ExtractQuoteFields(filepath.Join(t.TempDir(), "gone.pdf"))
		assert.Empty(t, record)
	})

	t.Run("Unknown extension", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "offerta.csv")
		assert.NoError(t, os.WriteFile(path, []byte("Canone: 450"), 0644))
		assert.Empty(t, ExtractQuoteFields(path))
	})

	t.Run("Corrupt PDF", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "offerta.pdf")
		assert.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0644))
		assert.Empty(t, ExtractQuoteFields(path))
	})

	t.Run("Text with no recognizable labels", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "note.txt")
		assert.NoError(t, os.WriteFile(path, []byte("nothing useful here"), 0644))
		assert.Empty(t, ExtractQuoteFields(path))
	})
}
