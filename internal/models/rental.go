package models

// Owner is a person who owns one or more apartments
type Owner struct {
	ID   int    `json:"owner_id" gorm:"column:owner_id" validate:"gt=0"`
	Name string `json:"name" gorm:"column:name" validate:"required"`
}

// BadOwner is returned by lookups that found nothing
func BadOwner() Owner {
	return Owner{}
}

func (o Owner) IsBad() bool {
	return o.ID <= 0
}

// Apartment is a rentable unit. (City, Address) is unique.
type Apartment struct {
	ID      int    `json:"apartment_id" gorm:"column:apartment_id" validate:"gt=0"`
	Address string `json:"address" gorm:"column:address" validate:"required"`
	City    string `json:"city" gorm:"column:city" validate:"required"`
	Country string `json:"country" gorm:"column:country" validate:"required"`
	Size    int    `json:"size" gorm:"column:size" validate:"gt=0"`
}

// BadApartment is returned by lookups that found nothing
func BadApartment() Apartment {
	return Apartment{}
}

func (a Apartment) IsBad() bool {
	return a.ID <= 0
}

type Customer struct {
	ID   int    `json:"customer_id" gorm:"column:customer_id" validate:"gt=0"`
	Name string `json:"name" gorm:"column:name" validate:"required"`
}

// BadCustomer is returned by lookups that found nothing
func BadCustomer() Customer {
	return Customer{}
}

func (c Customer) IsBad() bool {
	return c.ID <= 0
}
