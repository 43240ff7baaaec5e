package domain

// RentalCompany is one entry of the company registry, fetched once and
// consulted to decide whether a typed-in company name needs to be created.
type RentalCompany struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
