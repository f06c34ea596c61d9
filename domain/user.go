// Package domain holds the value objects shown by the user screens.
//
// Values are constructed fresh from every response and are never mutated afterwards.
package domain

// User is a person listed by the users API.
type User struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"   mask:"true"`
	Phone   string  `json:"phone"   mask:"true"`
	Website string  `json:"website"`
	Company Company `json:"company"`
	Address Address `json:"address"`
}

// Company is the employer of a user.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catch_phrase"`
}

// Address is the postal address of a user.
type Address struct {
	Street  string `json:"street"  mask:"true"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode" mask:"true"`
}
