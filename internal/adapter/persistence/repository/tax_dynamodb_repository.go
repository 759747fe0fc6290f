package repository

import (
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"
)

const DefaultTaxesTableName = "taxes"

type taxItem struct {
	ID                string `dynamodbav:"id"`
	Name              string `dynamodbav:"name"`
	Rate              string `dynamodbav:"rate"`
	ComputationMethod string `dynamodbav:"computation_method"`
	AppliesOn         string `dynamodbav:"applies_on"`
	Description       string `dynamodbav:"description,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

type TaxDynamoRepository struct {
	*dynamoRepository[entities.Tax, taxItem]
}

var _ interfaces.ITaxRepository = (*TaxDynamoRepository)(nil)

func NewTaxDynamoRepository(ddb DynamoAPI, tableName string) *TaxDynamoRepository {
	if tableName == "" {
		tableName = DefaultTaxesTableName
	}
	return &TaxDynamoRepository{&dynamoRepository[entities.Tax, taxItem]{
		ddb:       ddb,
		tableName: tableName,
		encode:    toTaxItem,
		decode:    fromTaxItem,
	}}
}

func toTaxItem(t entities.Tax) taxItem {
	return taxItem{
		ID:                t.ID,
		Name:              t.Name,
		Rate:              formatDecimal(t.Rate),
		ComputationMethod: string(t.ComputationMethod),
		AppliesOn:         string(t.AppliesOn),
		Description:       t.Description,
		CreatedAt:         formatTime(t.CreatedAt),
		UpdatedAt:         formatTime(t.UpdatedAt),
	}
}

func fromTaxItem(it taxItem) (entities.Tax, error) {
	rec, err := parseRecord(it.ID, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return entities.Tax{}, err
	}
	rate, err := parseDecimal("rate", it.Rate)
	if err != nil {
		return entities.Tax{}, err
	}
	return entities.Tax{
		Record:            rec,
		Name:              it.Name,
		Rate:              rate,
		ComputationMethod: entities.TaxComputation(it.ComputationMethod),
		AppliesOn:         entities.TaxScope(it.AppliesOn),
		Description:       it.Description,
	}, nil
}
