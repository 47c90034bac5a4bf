package handlers

import (
	"errors"
	"net/http"

	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/services/wallet"
	"github.com/xtharshh/kwick-backend/services/worker"
	"github.com/xtharshh/kwick-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// WorkerHandler serves worker registration, profile and wallet endpoints.
type WorkerHandler struct {
	Service worker.WorkerService
	Wallet  wallet.WalletService
}

func NewWorkerHandler(svc worker.WorkerService, walletSvc wallet.WalletService) *WorkerHandler {
	return &WorkerHandler{Service: svc, Wallet: walletSvc}
}

// RegisterWorkerHandler handles POST /workers/register.
func (h *WorkerHandler) RegisterWorkerHandler(c *gin.Context) {
	var w models.Worker
	if err := c.ShouldBindJSON(&w); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if w.MobileNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile number is required"})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), &w)
	if err != nil {
		if errors.Is(err, worker.ErrDuplicateMobile) {
			c.JSON(http.StatusConflict, gin.H{"message": "Worker with this mobile number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetWorkerProfileHandler handles GET /workers/profile?mobileNumber= and
// GET /workers/:mobileNumber.
func (h *WorkerHandler) GetWorkerProfileHandler(c *gin.Context) {
	mobileNumber := c.Param("mobileNumber")
	if mobileNumber == "" {
		mobileNumber = c.Query("mobileNumber")
	}
	if mobileNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile number is required"})
		return
	}

	w, err := h.Service.GetByMobileNumber(c.Request.Context(), mobileNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, w)
}

// UpdateWorkerProfileHandler handles PUT /workers/profile and
// PUT /workers/profile/:mobileNumber.
func (h *WorkerHandler) UpdateWorkerProfileHandler(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	mobileNumber := c.Param("mobileNumber")
	if mobileNumber == "" {
		mobileNumber, _ = body["mobileNumber"].(string)
	}
	if mobileNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile number is required"})
		return
	}

	updated, err := h.Service.UpdateProfile(c.Request.Context(), mobileNumber, body)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetWorkerBalanceHandler handles GET /workers/balance/:mobileNumber.
func (h *WorkerHandler) GetWorkerBalanceHandler(c *gin.Context) {
	w, err := h.Service.GetByMobileNumber(c.Request.Context(), c.Param("mobileNumber"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Worker not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": w.Balance})
}

// AddMoneyHandler handles POST /workers/addMoney.
func (h *WorkerHandler) AddMoneyHandler(c *gin.Context) {
	var body struct {
		MobileNumber string  `json:"mobileNumber"`
		Amount       float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	txn, err := h.Wallet.AddWorkerMoney(c.Request.Context(), body.MobileNumber, body.Amount)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Worker not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, txn)
}

// WithdrawMoneyHandler handles POST /workers/withdrawMoney.
func (h *WorkerHandler) WithdrawMoneyHandler(c *gin.Context) {
	var body struct {
		MobileNumber string  `json:"mobileNumber"`
		Amount       float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	txn, err := h.Wallet.WithdrawWorkerMoney(c.Request.Context(), body.MobileNumber, body.Amount)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"message": "Worker not found"})
		case errors.Is(err, wallet.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient balance"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, txn)
}
