package repository

import (
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"
)

const DefaultAccountsTableName = "accounts"

type accountItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Type      string `dynamodbav:"type"`
	Code      string `dynamodbav:"code"`
	Balance   string `dynamodbav:"balance"`
	ParentID  string `dynamodbav:"parent_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type AccountDynamoRepository struct {
	*dynamoRepository[entities.Account, accountItem]
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb DynamoAPI, tableName string) *AccountDynamoRepository {
	if tableName == "" {
		tableName = DefaultAccountsTableName
	}
	return &AccountDynamoRepository{&dynamoRepository[entities.Account, accountItem]{
		ddb:       ddb,
		tableName: tableName,
		encode:    toAccountItem,
		decode:    fromAccountItem,
	}}
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		Code:      a.Code,
		Balance:   formatDecimal(a.Balance),
		ParentID:  a.ParentID,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
}

func fromAccountItem(it accountItem) (entities.Account, error) {
	rec, err := parseRecord(it.ID, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return entities.Account{}, err
	}
	balance, err := parseDecimal("balance", it.Balance)
	if err != nil {
		return entities.Account{}, err
	}
	return entities.Account{
		Record:   rec,
		Name:     it.Name,
		Type:     entities.AccountType(it.Type),
		Code:     it.Code,
		Balance:  balance,
		ParentID: it.ParentID,
	}, nil
}
