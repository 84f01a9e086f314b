package models

import (
	"time"

	"gorm.io/gorm"
)

// NotAvailable is the sentinel rendered for any quote field the caller did not
// supply. It is applied at substitution time only; a QuoteRecord itself may be
// partial.
const NotAvailable = "N.D."

// Quote field keys. These match the form keys accepted by the generate
// endpoint and the patterns the supplier-file extractor produces.
const (
	FieldClientName  = "cliente_nome"
	FieldTaxID       = "piva_cf"
	FieldAddress     = "sede"
	FieldContact     = "referente"
	FieldMakeModel   = "marca_modello"
	FieldTrim        = "versione"
	FieldEngine      = "motore"
	FieldNewDrivers  = "neopatentati"
	FieldDelivery    = "consegna"
	FieldDuration    = "durata"
	FieldAnnualKm    = "km_annui"
	FieldDownPayment = "anticipo"
	FieldMonthlyFee  = "canone"
)

// QuoteRecord maps quote field keys to their string values. It may be
// partial; unknown keys are ignored by the renderer.
type QuoteRecord map[string]string

// Get returns the value for key, or the NotAvailable sentinel when the key is
// missing. A lookup never fails.
func (r QuoteRecord) Get(key string) string {
	if v, ok := r[key]; ok {
		return v
	}
	return NotAvailable
}

// Merge copies values from other into r for keys r does not already have.
// Used to let extracted supplier-file fields fill gaps without overriding
// caller-provided data.
func (r QuoteRecord) Merge(other QuoteRecord) {
	for k, v := range other {
		if _, ok := r[k]; !ok {
			r[k] = v
		}
	}
}

// FieldKeys returns all known quote field keys in document order.
func FieldKeys() []string {
	return []string{
		FieldClientName, FieldTaxID, FieldAddress, FieldContact,
		FieldMakeModel, FieldTrim, FieldEngine, FieldNewDrivers, FieldDelivery,
		FieldDuration, FieldAnnualKm, FieldDownPayment, FieldMonthlyFee,
	}
}

// Render status for QuoteDocument rows
const (
	QuoteStatusRendered = "rendered"
	QuoteStatusArchived = "archived"
	QuoteStatusEmailed  = "emailed"
)

// QuoteDocument is the audit row persisted for every rendered quote.
type QuoteDocument struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Quote details
	VehicleModel string `gorm:"index" json:"vehicle_model"`
	OutputName   string `gorm:"not null" json:"output_name"`
	FileSize     int64  `json:"file_size"`

	// Delivery/archival metadata
	Status     string `gorm:"not null;default:rendered;index" json:"status"`
	StorageKey string `json:"storage_key,omitempty"`
	EmailedTo  string `json:"emailed_to,omitempty"`
}
