package transactionRepo

import (
	"context"

	"github.com/xtharshh/kwick-backend/database"
	"github.com/xtharshh/kwick-backend/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionRepository is the durable ledger of wallet credits and debits.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	GetByMobileNumber(ctx context.Context, mobileNumber string) ([]models.Transaction, error)
}

type mongoTransactionRepo struct {
	coll *mongo.Collection
}

// NewMongoTransactionRepo returns a TransactionRepository backed by MongoDB.
func NewMongoTransactionRepo() TransactionRepository {
	return &mongoTransactionRepo{coll: database.DB().Collection("transactions")}
}
