package charts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/charts"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestSalesByDate(t *testing.T) {

	t.Run("renders a PNG time series", func(t *testing.T) {
		points := []charts.DailySales{
			{Day: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Total: 5400},
			{Day: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Total: 3300},
		}

		png, err := charts.SalesByDate(points)

		assert.NoError(t, err)
		assert.True(t, len(png) > 4)
		assert.Equal(t, pngMagic, png[:4])
	})

	t.Run("renders a single day", func(t *testing.T) {
		points := []charts.DailySales{
			{Day: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Total: 5400},
		}

		png, err := charts.SalesByDate(points)

		assert.NoError(t, err)
		assert.Equal(t, pngMagic, png[:4])
	})
}

func TestBars(t *testing.T) {
	values := []charts.NamedValue{
		{Name: "Completo", Value: 12},
		{Name: "Pepsi", Value: 7},
	}

	png, err := charts.Bars("Menús más vendidos", values)

	assert.NoError(t, err)
	assert.True(t, len(png) > 4)
	assert.Equal(t, pngMagic, png[:4])
}
