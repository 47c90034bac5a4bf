package handlers

import (
	"net/http"

	requestRepo "github.com/xtharshh/kwick-backend/database/repository/request"
	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/realtime"
	"github.com/xtharshh/kwick-backend/utils"

	"github.com/gin-gonic/gin"
)

// ServiceRequestHandler persists ad-hoc service requests and pushes them
// to every connected worker.
type ServiceRequestHandler struct {
	Repo requestRepo.ServiceRequestRepository
	Hub  *realtime.Hub
}

func NewServiceRequestHandler(repo requestRepo.ServiceRequestRepository, hub *realtime.Hub) *ServiceRequestHandler {
	return &ServiceRequestHandler{Repo: repo, Hub: hub}
}

// CreateServiceRequestHandler handles POST /service-request.
func (h *ServiceRequestHandler) CreateServiceRequestHandler(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.CustomerID == "" || req.Description == "" || req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "customerId, description and location are required"})
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	h.Hub.SendToRole(realtime.RoleWorker, realtime.EventNewServiceRequest, req)
	c.JSON(http.StatusCreated, req)
}
