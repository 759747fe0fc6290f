package repository

import (
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"
)

const DefaultContactsTableName = "contacts"

type contactItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Kind      string `dynamodbav:"type"`
	Email     string `dynamodbav:"email"`
	Mobile    string `dynamodbav:"mobile"`
	City      string `dynamodbav:"city"`
	State     string `dynamodbav:"state"`
	Address   string `dynamodbav:"address,omitempty"`
	TaxID     string `dynamodbav:"gst_number,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContactDynamoRepository persists contacts in DynamoDB.
type ContactDynamoRepository struct {
	*dynamoRepository[entities.Contact, contactItem]
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb DynamoAPI, tableName string) *ContactDynamoRepository {
	if tableName == "" {
		tableName = DefaultContactsTableName
	}
	return &ContactDynamoRepository{&dynamoRepository[entities.Contact, contactItem]{
		ddb:       ddb,
		tableName: tableName,
		encode:    toContactItem,
		decode:    fromContactItem,
	}}
}

func toContactItem(c entities.Contact) contactItem {
	return contactItem{
		ID:        c.ID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		Email:     c.Email,
		Mobile:    c.Mobile,
		City:      c.City,
		State:     c.State,
		Address:   c.Address,
		TaxID:     c.TaxID,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromContactItem(it contactItem) (entities.Contact, error) {
	rec, err := parseRecord(it.ID, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return entities.Contact{}, err
	}
	return entities.Contact{
		Record:  rec,
		Name:    it.Name,
		Kind:    entities.ContactKind(it.Kind),
		Email:   it.Email,
		Mobile:  it.Mobile,
		City:    it.City,
		State:   it.State,
		Address: it.Address,
		TaxID:   it.TaxID,
	}, nil
}
