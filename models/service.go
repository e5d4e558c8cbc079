package models

// Service is one entry of the salon's service catalog. The catalog is
// read-only from the booking engine's perspective.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	DurationMin int     `bson:"durationMin" json:"durationMin"`
	CategoryID  string  `bson:"categoryId" json:"categoryId"`
	PriceRSD    float64 `bson:"priceRsd" json:"priceRsd"`
}

// CartDuration sums the durations of the requested services.
func CartDuration(cart []Service) int {
	total := 0
	for _, svc := range cart {
		total += svc.DurationMin
	}
	return total
}

// CartPrice sums the prices of the requested services.
func CartPrice(cart []Service) float64 {
	total := 0.0
	for _, svc := range cart {
		total += svc.PriceRSD
	}
	return total
}
