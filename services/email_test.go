package services

import (
	"testing"

	"rental_quote_app_go/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuoteEmail(t *testing.T) {
	pdf := []byte("%PDF-1.3")

	t.Run("With vehicle model", func(t *testing.T) {
		email := BuildQuoteEmail("cliente@example.com", "Model X", "quote.pdf", pdf)
		assert.Equal(t, "cliente@example.com", email.To)
		assert.Equal(t, "Preventivo Noleggio Lungo Termine - Model X", email.Subject)
		assert.Equal(t, "quote.pdf", email.PDFName)
		assert.Equal(t, pdf, email.PDFContent)
		assert.Contains(t, email.Body, "Larini Automotive Rent")
	})

	t.Run("Without vehicle model", func(t *testing.T) {
		email := BuildQuoteEmail("cliente@example.com", "", "quote.pdf", pdf)
		assert.Equal(t, "Preventivo Noleggio Lungo Termine", email.Subject)
	})
}

func TestSendQuoteEmail(t *testing.T) {
	t.Run("Test mode logs instead of sending", func(t *testing.T) {
		cfg := &config.Config{EmailTestMode: true}
		email := BuildQuoteEmail("cliente@example.com", "Model X", "quote.pdf", []byte("%PDF"))
		assert.NoError(t, SendQuoteEmail(cfg, email))
	})

	t.Run("Missing API key outside test mode", func(t *testing.T) {
		cfg := &config.Config{EmailTestMode: false}
		email := BuildQuoteEmail("cliente@example.com", "Model X", "quote.pdf", []byte("%PDF"))
		err := SendQuoteEmail(cfg, email)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "RESEND_API_KEY")
	})
}
