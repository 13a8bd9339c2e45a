package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

type BarberHandler struct {
	list   *ucSalon.ListBarbers
	add    *ucSalon.AddBarber
	update *ucSalon.UpdateBarber
	delete *ucSalon.DeleteBarber
}

func NewBarberHandler(
	list *ucSalon.ListBarbers,
	add *ucSalon.AddBarber,
	update *ucSalon.UpdateBarber,
	del *ucSalon.DeleteBarber,
) *BarberHandler {
	return &BarberHandler{
		list:   list,
		add:    add,
		update: update,
		delete: del,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type UpdateBarberRequest struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}

	barbers, err := h.list.Execute(c.Request.Context(), salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, "barbers", barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}

	var req CreateBarberRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.add.Execute(c.Request.Context(), salonID, ucSalon.AddBarberInput{
		Name:      req.Name,
		Specialty: req.Specialty,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":   "Barber added successfully",
		"barber_id": b.ID,
	})
}

func (h *BarberHandler) Update(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}
	barberID, ok := pathID(c, "barber_id")
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.update.Execute(c.Request.Context(), salonID, barberID, ucSalon.UpdateBarberInput{
		Name:      req.Name,
		Specialty: req.Specialty,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Barber updated successfully")
}

func (h *BarberHandler) Delete(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}
	barberID, ok := pathID(c, "barber_id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), salonID, barberID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Barber deleted successfully")
}
