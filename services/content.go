package services

import (
	"fmt"
	"os"
	"strings"

	"rental_quote_app_go/models"
)

// ContentBlock is one element of the flowing quote document. Blocks render in
// insertion order; there is no reordering or priority.
type ContentBlock interface {
	contentBlock()
}

// Paragraph is a styled run of text. Lines may wrap inside a frame but a
// paragraph is never torn across pages.
type Paragraph struct {
	Text  string
	Style Style
}

// Spacer is fixed vertical whitespace.
type Spacer struct {
	Height float64
}

// ImageBlock is a horizontally centered image bounded to MaxWidth and
// MaxHeight, aspect preserved.
type ImageBlock struct {
	Path      string
	MaxWidth  float64
	MaxHeight float64
}

func (Paragraph) contentBlock()  {}
func (Spacer) contentBlock()     {}
func (ImageBlock) contentBlock() {}

// Fixed domain copy reproduced in every quote.
var includedServices = []string{
	"RCA",
	"Kasko / Danni / Furto & Incendio",
	"Manutenzione ordinaria e straordinaria",
	"Pneumatici (premium o equivalenti)",
	"Assistenza stradale 24h",
	"Gestione sinistri e contravvenzioni",
	"Veicolo sostitutivo (se previsto)",
	"Immatricolazione e consegna",
}

var requiredDocumentation = []string{
	"SOCIETA (SRL, SAS, SPA, SRLS): documento; cod. fiscale; visura aggiornata a 6 mesi; ultimo bilancio depositato con ricevuta",
	"DITTA INDIVIDUALE / SNC / LIBERO PROFESSIONISTA: documento; cod. fiscale; visura aggiornata a 6 mesi; modello unico",
	"PRIVATI: documento; cod. fiscale; CUD anno precedente; ultime 2 buste paga",
	"PENSIONATI: documento; cod. fiscale; cedolini o estratto conto",
}

const termsAndConditions = "Offerta soggetta ad approvazione della societa di noleggio; Immagini a scopo illustrativo; Canoni IVA esclusa salvo diversa indicazione; Disponibilita e canone variabili secondo valutazione creditizia"

const contactLine = "Larini Automotive Rent | Tel. 379 2114207 | noleggio@larini.it | www.larinirent.it"

// showPriceCallout reports whether the monthly fee value earns the large
// colored callout: non-empty and not marked as unavailable.
func showPriceCallout(fee string) bool {
	trimmed := strings.TrimSpace(fee)
	if trimmed == "" {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(trimmed), "n.d")
}

// BuildContent transforms a quote record (plus optional photo) into the fixed
// document outline. Every placeholder reads record values through the N.D.
// fallback; the price callout is the only content-dependent branch. A photo
// path that does not exist is silently treated as no photo.
func BuildContent(record models.QuoteRecord, photoPath string, styles StyleSet, firstPageUsableHeight float64, cfg LayoutConfig) []ContentBlock {
	var blocks []ContentBlock

	if photoPath != "" {
		if _, err := os.Stat(photoPath); err == nil {
			blocks = append(blocks,
				Spacer{Height: cfg.VehicleGap},
				ImageBlock{
					Path:      photoPath,
					MaxWidth:  cfg.MaxVehicleWidth,
					MaxHeight: cfg.MaxVehicleRatio * firstPageUsableHeight,
				},
				Spacer{Height: cfg.VehicleGap},
			)
		}
	}

	blocks = append(blocks,
		Paragraph{"DATI CLIENTE", styles.Title},
		Paragraph{fmt.Sprintf("Ragione sociale / Nome: %s", record.Get(models.FieldClientName)), styles.Body},
		Paragraph{fmt.Sprintf("P.IVA / CF: %s", record.Get(models.FieldTaxID)), styles.Body},
		Paragraph{fmt.Sprintf("Sede: %s", record.Get(models.FieldAddress)), styles.Body},
		Paragraph{fmt.Sprintf("Referente: %s", record.Get(models.FieldContact)), styles.Body},
		Spacer{Height: 6},
		Paragraph{"VEICOLO PROPOSTO", styles.Title},
		Paragraph{fmt.Sprintf("Marca e Modello: %s", record.Get(models.FieldMakeModel)), styles.Body},
		Paragraph{fmt.Sprintf("Versione / Allestimento: %s", record.Get(models.FieldTrim)), styles.Body},
		Paragraph{fmt.Sprintf("Motore / Alimentazione / Cambio / Potenza: %s", record.Get(models.FieldEngine)), styles.Body},
		Paragraph{fmt.Sprintf("Idoneo neopatentati: %s", record.Get(models.FieldNewDrivers)), styles.Body},
		Paragraph{fmt.Sprintf("Consegna stimata: %s", record.Get(models.FieldDelivery)), styles.Body},
		Spacer{Height: 6},
		Paragraph{"CONDIZIONI ECONOMICHE", styles.Title},
		Paragraph{fmt.Sprintf("Durata: %s mesi", record.Get(models.FieldDuration)), styles.Body},
		Paragraph{fmt.Sprintf("Chilometraggio: %s km/anno", record.Get(models.FieldAnnualKm)), styles.Body},
		Paragraph{fmt.Sprintf("Anticipo: %s euro", record.Get(models.FieldDownPayment)), styles.Body},
	)

	if fee := record.Get(models.FieldMonthlyFee); showPriceCallout(fee) {
		blocks = append(blocks,
			Spacer{Height: 4},
			Paragraph{fmt.Sprintf("%s euro + IVA al mese", fee), styles.Price},
			Paragraph{"Tutto incluso - senza sorprese", styles.Italic},
		)
	} else {
		blocks = append(blocks, Paragraph{"Canone mensile: N.D.", styles.Body})
	}

	blocks = append(blocks, Spacer{Height: 6}, Paragraph{"SERVIZI INCLUSI", styles.Title})
	for _, s := range includedServices {
		blocks = append(blocks, Paragraph{fmt.Sprintf("- %s", s), styles.Body})
	}

	blocks = append(blocks, Spacer{Height: 6}, Paragraph{"DOCUMENTAZIONE RICHIESTA", styles.Title})
	for _, d := range requiredDocumentation {
		blocks = append(blocks, Paragraph{d, styles.Body})
	}

	blocks = append(blocks,
		Spacer{Height: 6},
		Paragraph{"TERMINI E CONDIZIONI", styles.Title},
		Paragraph{termsAndConditions, styles.Body},
		Spacer{Height: 6},
		Paragraph{"CONTATTI", styles.Title},
		Paragraph{contactLine, styles.Body},
	)

	return blocks
}
