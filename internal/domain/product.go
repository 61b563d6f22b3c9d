package domain

// Product is one inventory row as known by the remote data service.
// Prices are integer cents; the decimal conversion happens at the
// backend wire boundary.
type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Stock      int    `json:"stock"`
	Category   string `json:"category,omitempty"`
	PictureURL string `json:"pictureUrl,omitempty"`
}

// TopProduct is one row of the best-sellers ranking kept by the data
// service, ordered by units sold.
type TopProduct struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitsSold int    `json:"unitsSold"`
}

// Profile is the authenticated user as the data service knows them.
type Profile struct {
	Username   string `json:"username"`
	PictureURL string `json:"pictureUrl,omitempty"`
}
