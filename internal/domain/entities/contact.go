package entities

import "strings"

type ContactKind string

const (
	ContactKindCustomer ContactKind = "Customer"
	ContactKindVendor   ContactKind = "Vendor"
	ContactKindBoth     ContactKind = "Both"
)

// IsCustomer reports whether the contact can be sold to. Both counts as either role.
func (k ContactKind) IsCustomer() bool {
	return k == ContactKindCustomer || k == ContactKindBoth
}

func (k ContactKind) IsVendor() bool {
	return k == ContactKindVendor || k == ContactKindBoth
}

// Contact is a customer and/or vendor. Email and tax id are not unique.
type Contact struct {
	Record
	Name    string
	Kind    ContactKind
	Email   string
	Mobile  string
	City    string
	State   string
	Address string
	TaxID   string
}

// NewContactDraft returns the defaults of an empty contact form.
func NewContactDraft() Contact {
	return Contact{Kind: ContactKindCustomer}
}

func (c Contact) WithMeta(r Record) Contact {
	c.Record = r
	return c
}

func (c Contact) Validate() error {
	var v validator
	v.required("name", c.Name)
	v.oneOf("type", string(c.Kind), string(ContactKindCustomer), string(ContactKindVendor), string(ContactKindBoth))
	v.required("email", c.Email)
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		v.add("email", "must be a valid email address")
	}
	v.required("mobile", c.Mobile)
	v.required("city", c.City)
	v.required("state", c.State)
	return v.err()
}

func (c Contact) SearchFields() []string {
	return []string{c.Name, c.Email, string(c.Kind)}
}
