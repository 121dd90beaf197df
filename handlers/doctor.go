package handlers

import (
	"fmt"
	"net/http"

	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/services/doctor"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the admin doctor directory.
type DoctorHandler struct {
	DoctorService doctor.DoctorService
}

func NewDoctorHandler(ds doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{DoctorService: ds}
}

func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.DoctorService.ListDoctors(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.AbortWithError(c, fmt.Errorf("%w: %v", utils.ErrBadRequest, err))
		return
	}
	result, err := h.DoctorService.AddDoctor(c.Request.Context(), doc)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	result, err := h.DoctorService.RemoveDoctor(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
