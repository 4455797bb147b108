package models

// OwnerReservations is the number of reservations made on an owner's apartments
type OwnerReservations struct {
	OwnerName string `json:"owner_name" gorm:"column:name"`
	Count     int    `json:"reservations" gorm:"column:reservation_count"`
}

type MonthProfit struct {
	Month  int     `json:"month" gorm:"column:month"`
	Profit float64 `json:"profit" gorm:"column:profit"`
}

// Recommendation is an apartment with the rating a customer is expected to give it
type Recommendation struct {
	Apartment      Apartment `json:"apartment" gorm:"embedded"`
	ExpectedRating float64   `json:"expected_rating" gorm:"column:expected_rating"`
}
