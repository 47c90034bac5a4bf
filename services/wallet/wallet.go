package wallet

import (
	"context"
	"errors"

	"github.com/xtharshh/kwick-backend/models"
)

var (
	// ErrInsufficientBalance rejects a debit larger than the wallet holds.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidType rejects transaction types other than credit/debit.
	ErrInvalidType = errors.New("invalid transaction type")
)

// CreateTransaction applies a credit or debit to the user's wallet and
// records it. The read-modify-write on the balance is not atomic across
// concurrent transactions for the same wallet; the transaction ledger is
// the audit trail.
func (s *DefaultWalletService) CreateTransaction(ctx context.Context, mobileNumber, txnType string, amount float64, description string) (*models.Transaction, error) {
	u, err := s.Users.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, err
	}

	var balance float64
	switch txnType {
	case models.TransactionCredit:
		balance = u.Balance + amount
	case models.TransactionDebit:
		if u.Balance < amount {
			return nil, ErrInsufficientBalance
		}
		balance = u.Balance - amount
	default:
		return nil, ErrInvalidType
	}

	txn := &models.Transaction{
		MobileNumber: mobileNumber,
		Type:         txnType,
		Amount:       amount,
		Description:  description,
	}
	if err := s.Txns.Create(ctx, txn); err != nil {
		return nil, err
	}
	if _, err := s.Users.SetBalance(ctx, mobileNumber, balance); err != nil {
		return nil, err
	}
	return txn, nil
}

// GetTransactions returns the user's transactions, newest first.
func (s *DefaultWalletService) GetTransactions(ctx context.Context, mobileNumber string) ([]models.Transaction, error) {
	if _, err := s.Users.GetByMobileNumber(ctx, mobileNumber); err != nil {
		return nil, err
	}
	return s.Txns.GetByMobileNumber(ctx, mobileNumber)
}

// GetWorkerTransactions returns a worker's transactions, newest first.
func (s *DefaultWalletService) GetWorkerTransactions(ctx context.Context, mobileNumber string) ([]models.Transaction, error) {
	if _, err := s.Workers.GetByMobileNumber(ctx, mobileNumber); err != nil {
		return nil, err
	}
	return s.Txns.GetByMobileNumber(ctx, mobileNumber)
}

// AddWorkerMoney credits a worker's wallet.
func (s *DefaultWalletService) AddWorkerMoney(ctx context.Context, mobileNumber string, amount float64) (*models.Transaction, error) {
	w, err := s.Workers.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, err
	}

	if _, err := s.Workers.SetBalance(ctx, mobileNumber, w.Balance+amount); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		MobileNumber: mobileNumber,
		Type:         models.TransactionCredit,
		Amount:       amount,
		Description:  "Money added to wallet",
	}
	if err := s.Txns.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// WithdrawWorkerMoney debits a worker's wallet.
func (s *DefaultWalletService) WithdrawWorkerMoney(ctx context.Context, mobileNumber string, amount float64) (*models.Transaction, error) {
	w, err := s.Workers.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, err
	}
	if w.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	if _, err := s.Workers.SetBalance(ctx, mobileNumber, w.Balance-amount); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		MobileNumber: mobileNumber,
		Type:         models.TransactionDebit,
		Amount:       amount,
		Description:  "Money withdrawn from wallet",
	}
	if err := s.Txns.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}
