package handlers

import (
	"errors"
	"net/http"

	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/services/user"
	"github.com/xtharshh/kwick-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserHandler serves customer registration and profile endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if u.MobileNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile number is required"})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), &u)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateMobile) {
			c.JSON(http.StatusConflict, gin.H{"message": "User with this mobile number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetUserProfileHandler handles GET /users/profile?mobileNumber= and
// GET /users/profile/:mobileNumber.
func (h *UserHandler) GetUserProfileHandler(c *gin.Context) {
	mobileNumber := c.Param("mobileNumber")
	if mobileNumber == "" {
		mobileNumber = c.Query("mobileNumber")
	}
	if mobileNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile number is required"})
		return
	}

	u, err := h.Service.GetByMobileNumber(c.Request.Context(), mobileNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateUserProfileHandler handles PUT /users/profile and
// PUT /users/profile/:mobileNumber.
func (h *UserHandler) UpdateUserProfileHandler(c *gin.Context) {
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
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListUsersHandler handles GET /users.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserBalanceHandler handles GET /users/:mobileNumber/balance.
func (h *UserHandler) GetUserBalanceHandler(c *gin.Context) {
	u, err := h.Service.GetByMobileNumber(c.Request.Context(), c.Param("mobileNumber"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": u.Balance})
}

// UpdateUserBalanceHandler handles POST /user/update-balance.
func (h *UserHandler) UpdateUserBalanceHandler(c *gin.Context) {
	var body struct {
		Phone   string  `json:"phone"`
		Balance float64 `json:"balance"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Service.SetBalance(c.Request.Context(), body.Phone, body.Balance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}
