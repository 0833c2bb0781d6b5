package v1

import (
	"net/http"

	"social-workflow-web/internal/delivery/http/response"
	"social-workflow-web/internal/domain"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	healthUC domain.HealthUsecase
	version  string
}

func NewSystemHandler(r *gin.RouterGroup, healthUC domain.HealthUsecase, version string) {
	handler := &SystemHandler{healthUC: healthUC, version: version}

	r.GET("/health", handler.Health)
	r.GET("/vocabulary", handler.Vocabulary)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response{data=map[string]string}
// @Failure      503  {object}  response.Response{error=map[string]string}
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())
	status["version"] = h.version

	if status["status"] != "ok" {
		response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}

// Vocabulary godoc
// @Summary      Fixed option lists
// @Description  Business types, goals, platforms and the post creator and studio options, in display order
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Vocabulary}
// @Router       /vocabulary [get]
func (h *SystemHandler) Vocabulary(c *gin.Context) {
	response.Success(c, http.StatusOK, "Vocabulary retrieved", domain.BuildVocabulary())
}
