package dto

import (
	"github.com/rise-and-shine/userbook/domain"
	"github.com/samber/lo"
)

// ToDomain copies a validated record into a domain.User.
// It panics on a nil field; callers must validate the record first.
func (d UserDTO) ToDomain() domain.User {
	return domain.User{
		ID:      *d.ID,
		Name:    *d.Name,
		Email:   *d.Email,
		Phone:   *d.Phone,
		Website: *d.Website,
		Company: d.Company.ToDomain(),
		Address: d.Address.ToDomain(),
	}
}

// ToDomain copies the company record.
func (d CompanyDTO) ToDomain() domain.Company {
	return domain.Company{
		Name:        *d.Name,
		CatchPhrase: *d.CatchPhrase,
	}
}

// ToDomain copies the address record.
func (d AddressDTO) ToDomain() domain.Address {
	return domain.Address{
		Street:  *d.Street,
		City:    *d.City,
		Zipcode: *d.Zipcode,
	}
}

// ToDomainList maps every record, preserving order.
func ToDomainList(records []UserDTO) []domain.User {
	return lo.Map(records, func(d UserDTO, _ int) domain.User {
		return d.ToDomain()
	})
}
