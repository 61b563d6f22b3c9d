package domain

type Customer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PictureURL string `json:"pictureUrl,omitempty"`
}
