package documents_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/documents"
)

func TestRenderReceipt(t *testing.T) {

	t.Run("produces a PDF document", func(t *testing.T) {
		items := []documents.ReceiptItem{
			{Name: "Completo", Quantity: 2, UnitPrice: 1800, Subtotal: 3600},
			{Name: "Pepsi", Quantity: 1, UnitPrice: 1100, Subtotal: 1100},
		}
		placedAt := time.Date(2025, 3, 1, 13, 30, 0, 0, time.UTC)

		pdf, err := documents.RenderReceipt(items, placedAt)

		assert.NoError(t, err)
		assert.True(t, len(pdf) > 4)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("renders an order with no items", func(t *testing.T) {
		pdf, err := documents.RenderReceipt(nil, time.Now())

		assert.NoError(t, err)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})
}

func TestRenderMenuCard(t *testing.T) {
	entries := []documents.MenuEntry{
		{Name: "Completo", Price: 1800},
		{Name: "Hamburguesa", Price: 3500},
	}

	pdf, err := documents.RenderMenuCard(entries)

	assert.NoError(t, err)
	assert.True(t, len(pdf) > 4)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
