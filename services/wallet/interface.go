package wallet

import (
	"context"

	transactionRepo "github.com/xtharshh/kwick-backend/database/repository/transaction"
	userRepo "github.com/xtharshh/kwick-backend/database/repository/user"
	workerRepo "github.com/xtharshh/kwick-backend/database/repository/worker"
	"github.com/xtharshh/kwick-backend/models"
)

// WalletService performs balance arithmetic for users and workers and
// records each movement as a transaction.
type WalletService interface {
	// CreateTransaction applies a credit or debit to the user's wallet.
	CreateTransaction(ctx context.Context, mobileNumber, txnType string, amount float64, description string) (*models.Transaction, error)
	GetTransactions(ctx context.Context, mobileNumber string) ([]models.Transaction, error)
	GetWorkerTransactions(ctx context.Context, mobileNumber string) ([]models.Transaction, error)
	AddWorkerMoney(ctx context.Context, mobileNumber string, amount float64) (*models.Transaction, error)
	WithdrawWorkerMoney(ctx context.Context, mobileNumber string, amount float64) (*models.Transaction, error)
}

// DefaultWalletService implements WalletService.
type DefaultWalletService struct {
	Users   userRepo.UserRepository
	Workers workerRepo.WorkerRepository
	Txns    transactionRepo.TransactionRepository
}
