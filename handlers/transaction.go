package handlers

import (
	"errors"
	"net/http"

	"github.com/xtharshh/kwick-backend/services/wallet"
	"github.com/xtharshh/kwick-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionHandler serves the wallet transaction endpoints.
type TransactionHandler struct {
	Wallet wallet.WalletService
}

func NewTransactionHandler(walletSvc wallet.WalletService) *TransactionHandler {
	return &TransactionHandler{Wallet: walletSvc}
}

// CreateTransactionHandler handles POST /transactions.
func (h *TransactionHandler) CreateTransactionHandler(c *gin.Context) {
	var body struct {
		MobileNumber string  `json:"mobileNumber"`
		Type         string  `json:"type"`
		Amount       float64 `json:"amount"`
		Description  string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if body.MobileNumber == "" || body.Type == "" || body.Amount == 0 || body.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	txn, err := h.Wallet.CreateTransaction(c.Request.Context(), body.MobileNumber, body.Type, body.Amount, body.Description)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, wallet.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient balance"})
		case errors.Is(err, wallet.ErrInvalidType):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid transaction type"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// GetWorkerTransactionsHandler handles GET /workerTransactions/:mobileNumber.
func (h *TransactionHandler) GetWorkerTransactionsHandler(c *gin.Context) {
	txns, err := h.Wallet.GetWorkerTransactions(c.Request.Context(), c.Param("mobileNumber"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Worker not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, txns)
}

// GetTransactionsHandler handles GET /transactions/:mobileNumber.
func (h *TransactionHandler) GetTransactionsHandler(c *gin.Context) {
	txns, err := h.Wallet.GetTransactions(c.Request.Context(), c.Param("mobileNumber"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, txns)
}
