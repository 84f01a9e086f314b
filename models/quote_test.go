package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteRecordGet(t *testing.T) {
	record := QuoteRecord{FieldMakeModel: "Model X", FieldMonthlyFee: ""}

	t.Run("Present key", func(t *testing.T) {
		assert.Equal(t, "Model X", record.Get(FieldMakeModel))
	})

	t.Run("Empty value is returned as-is", func(t *testing.T) {
		assert.Equal(t, "", record.Get(FieldMonthlyFee))
	})

	t.Run("Missing key falls back to sentinel", func(t *testing.T) {
		assert.Equal(t, NotAvailable, record.Get(FieldClientName))
	})
}

func TestQuoteRecordMerge(t *testing.T) {
	record := QuoteRecord{FieldMakeModel: "Model X"}
	record.Merge(QuoteRecord{
		FieldMakeModel:  "Extracted Model",
		FieldMonthlyFee: "450",
	})

	assert.Equal(t, "Model X", record[FieldMakeModel], "existing values must win over merged ones")
	assert.Equal(t, "450", record[FieldMonthlyFee])
}

func TestFieldKeys(t *testing.T) {
	keys := FieldKeys()
	assert.Len(t, keys, 13)
	assert.Equal(t, FieldClientName, keys[0])
	assert.Equal(t, FieldMonthlyFee, keys[len(keys)-1])

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}
