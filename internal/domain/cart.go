package domain

// CartLine is one staged line of a not-yet-submitted sale. Name, price
// and stock are snapshotted from the product at selection time and are
// not re-fetched; KnownStock is therefore a best-effort value.
type CartLine struct {
	ProductID      int64  `json:"productId"`
	ProductName    string `json:"productName"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	KnownStock     int    `json:"knownStock"`
	Quantity       int    `json:"quantity"`
}

// TotalCents is the line total, quantity times unit price.
func (l CartLine) TotalCents() int64 {
	return int64(l.Quantity) * l.UnitPriceCents
}
