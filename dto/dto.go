// Package dto describes the wire records of the users API and maps them to domain values.
//
// Every field is a pointer so that a missing key can be told apart from an empty
// value. The yaml tags let fixture files use the same keys as the wire format. Records are validated by the transport before they reach the mapper; the
// mapper itself only copies.
package dto

// UserDTO is a user record as received from GET /users and GET /users/{id}.
type UserDTO struct {
	ID      *int        `json:"id"      yaml:"id"      validate:"required"`
	Name    *string     `json:"name"    yaml:"name"    validate:"required"`
	Email   *string     `json:"email"   yaml:"email"   validate:"required"`
	Phone   *string     `json:"phone"   yaml:"phone"   validate:"required"`
	Website *string     `json:"website" yaml:"website" validate:"required"`
	Company *CompanyDTO `json:"company" yaml:"company" validate:"required"`
	Address *AddressDTO `json:"address" yaml:"address" validate:"required"`
}

// CompanyDTO is the nested company record.
type CompanyDTO struct {
	Name        *string `json:"name"        yaml:"name"        validate:"required"`
	CatchPhrase *string `json:"catchPhrase" yaml:"catchPhrase" validate:"required"`
}

// AddressDTO is the nested address record. Keys the API sends beyond these are ignored.
type AddressDTO struct {
	Street  *string `json:"street"  yaml:"street"  validate:"required"`
	City    *string `json:"city"    yaml:"city"    validate:"required"`
	Zipcode *string `json:"zipcode" yaml:"zipcode" validate:"required"`
}
