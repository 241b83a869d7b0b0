package repository

import (
	"math"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"github.com/shopspring/decimal"
)

// roundMoney rounds half away from zero to cents on the decimal value: 49.995 -> 50.00.
func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// normalizePrice maps NaN, infinities and negatives to zero and rounds to cents.
func normalizePrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return roundMoney(v)
}

func sumItems(items []models.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2).InexactFloat64()
}
