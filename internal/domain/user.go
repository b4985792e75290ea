package domain

import (
	"fmt"
	"strings"
)

// Address is a postal address. It is display-only here; validation belongs to
// the profile service that issues it.
type Address struct {
	Street  string `json:"street"`
	Number  int    `json:"number"`
	ZipCode string `json:"zip_code"`
	City    string `json:"city"`
}

func (a Address) String() string {
	return fmt.Sprintf("%s %d, %s %s", a.Street, a.Number, a.ZipCode, a.City)
}

// User is the customer placing an order. Users are identified by email.
type User struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Address *Address `json:"address,omitempty"`
}

// Equal reports whether u and other are the same customer.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return strings.EqualFold(u.Email, other.Email)
}
