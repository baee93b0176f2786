package entity

// TopSeller is one row of the backend's best-selling menu report.
type TopSeller struct {
	ProductName string `json:"product_name"`
	TotalSold   int    `json:"total_sold"`
}
