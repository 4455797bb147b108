package models

import "time"

// DateLayout is the format every date parameter is bound with
const DateLayout = "2006-01-02"

// Reservation is a customer's booking of an apartment for an inclusive date range
type Reservation struct {
	CustomerID  int       `json:"customer_id" validate:"gt=0"`
	ApartmentID int       `json:"apartment_id" validate:"gt=0"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	TotalPrice  float64   `json:"total_price" validate:"gt=0"`
}

// Review is a customer's rating of an apartment they stayed in
type Review struct {
	CustomerID  int       `json:"customer_id" validate:"gt=0"`
	ApartmentID int       `json:"apartment_id" validate:"gt=0"`
	ReviewDate  time.Time `json:"review_date" validate:"required"`
	Rating      int       `json:"rating" validate:"min=1,max=10"`
	Text        string    `json:"review_text" validate:"required"`
}

// Ownership links an apartment to its single owner
type Ownership struct {
	OwnerID     int `json:"owner_id" validate:"gt=0"`
	ApartmentID int `json:"apartment_id" validate:"gt=0"`
}
