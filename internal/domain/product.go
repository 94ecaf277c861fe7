package domain

type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	Rating             float64  `json:"rating"`
	ReviewCount        int64    `json:"reviewCount"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	StockQuantity      int64    `json:"stockQuantity"`
	ImageURL           string   `json:"imageUrl"`
}

// DisplayPrice is the price after applying the discount percentage, if any.
func (p Product) DisplayPrice() float64 {
	if p.DiscountPercentage == nil {
		return p.Price
	}

	return p.Price * (1 - *p.DiscountPercentage/100)
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
