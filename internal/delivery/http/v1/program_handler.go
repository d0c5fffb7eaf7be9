package v1

import (
	"net/http"

	"go-internship-gateway/internal/delivery/http/response"
	"go-internship-gateway/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	programUC domain.ProgramUsecase
}

// NewProgramHandler registers the confirmation-view routes
func NewProgramHandler(r *gin.RouterGroup, programUC domain.ProgramUsecase) {
	handler := &ProgramHandler{programUC: programUC}

	r.GET("/program", handler.GetProgram)
}

// GetProgram godoc
// @Summary      Get program details
// @Description  Fetches program dates, stipend and group link from the application backend and derives the offer-letter window from the start date.
// @Tags         program
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ProgramDetails}
// @Failure      502  {object}  response.Response
// @Router       /program [get]
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	details, err := h.programUC.GetProgramDetails(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Program details retrieved", details)
}
