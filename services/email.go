package services

import (
	"fmt"
	"log"

	"rental_quote_app_go/config"

	"github.com/resend/resend-go/v2"
)

// QuoteEmail is a rendered quote ready for delivery.
type QuoteEmail struct {
	To         string
	Subject    string
	Body       string
	PDFName    string
	PDFContent []byte
}

// BuildQuoteEmail prepares the delivery email for a rendered quote.
func BuildQuoteEmail(to, vehicleModel, outputName string, pdf []byte) *QuoteEmail {
	subject := "Preventivo Noleggio Lungo Termine"
	if vehicleModel != "" {
		subject = fmt.Sprintf("Preventivo Noleggio Lungo Termine - %s", vehicleModel)
	}
	return &QuoteEmail{
		To:      to,
		Subject: subject,
		Body: "In allegato il preventivo di noleggio lungo termine richiesto.\n\n" +
			"Larini Automotive Rent | Tel. 379 2114207 | noleggio@larini.it | www.larinirent.it",
		PDFName:    outputName,
		PDFContent: pdf,
	}
}

// SendQuoteEmail delivers a rendered quote as a PDF attachment using the
// Resend API. In test mode the email is logged instead of sent.
func SendQuoteEmail(cfg *config.Config, email *QuoteEmail) error {
	if cfg.EmailTestMode {
		log.Printf("📧 EMAIL (test mode - not actually sent) to=%s subject=%q attachment=%s (%d bytes)",
			email.To, email.Subject, email.PDFName, len(email.PDFContent))
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      []string{email.To},
		Subject: email.Subject,
		Text:    email.Body,
		Attachments: []*resend.Attachment{
			{
				Filename:    email.PDFName,
				Content:     email.PDFContent,
				ContentType: "application/pdf",
			},
		},
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Quote emailed via Resend (ID: %s) to: %s", sent.Id, email.To)
	return nil
}
