package entity

// Product mirrors the backend's product record. The image URL is a
// backend-derived field; this side never computes it.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}
