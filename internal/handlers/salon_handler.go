package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

type SalonHandler struct {
	listApproved *ucSalon.ListApprovedSalons
	get          *ucSalon.GetSalon
	register     *ucSalon.RegisterSalon
}

func NewSalonHandler(
	listApproved *ucSalon.ListApprovedSalons,
	get *ucSalon.GetSalon,
	register *ucSalon.RegisterSalon,
) *SalonHandler {
	return &SalonHandler{
		listApproved: listApproved,
		get:          get,
		register:     register,
	}
}

// --------- Requests ---------

type RegisterSalonRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Description string `json:"description"`
}

// --------- Public directory ---------

func (h *SalonHandler) ListApproved(c *gin.Context) {
	salons, err := h.listApproved.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, "salons", salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}

	salon, err := h.get.Execute(c.Request.Context(), salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"salon": salon})
}

// --------- Owner ---------

func (h *SalonHandler) Register(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}

	var req RegisterSalonRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.register.Execute(c.Request.Context(), ownerID, ucSalon.RegisterSalonInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"salon": dto.OwnedSalon(*s)})
}
