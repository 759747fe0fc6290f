package request

import "shiv_accounts/internal/domain/entities"

// ContactRequest is the create/edit payload of a contact. Absent fields keep
// the value already in the form (defaults on create, stored value on edit).
type ContactRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Email     *string `json:"email"`
	Mobile    *string `json:"mobile"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Address   *string `json:"address"`
	GSTNumber *string `json:"gstNumber"`
}

func (r ContactRequest) ApplyTo(c entities.Contact) entities.Contact {
	setString(&c.Name, r.Name)
	if r.Type != nil {
		c.Kind = entities.ContactKind(*r.Type)
	}
	setString(&c.Email, r.Email)
	setString(&c.Mobile, r.Mobile)
	setString(&c.City, r.City)
	setString(&c.State, r.State)
	setString(&c.Address, r.Address)
	setString(&c.TaxID, r.GSTNumber)
	return c
}
