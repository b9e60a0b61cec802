package infos

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/devopsinfo/devops-badge-api/pkg/clients/devopsapi"
)

// NewHandler returns a new infos.Handler
func NewHandler(service Service) Handler {
	return Handler{
		service: service,
	}
}

type Handler struct {
	service Service
}

func (h *Handler) GetFieldTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetFieldTypes(c.Request.Context()))
}

func (h *Handler) GetBadge(c *gin.Context) {

	project := c.Param("project")
	if _, err := uuid.Parse(project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusText(http.StatusBadRequest), "message": "Project id is not a valid uuid"})
		return
	}

	definitionID, err := strconv.Atoi(c.Param("definition"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusText(http.StatusBadRequest), "message": "Build definition id is not a number"})
		return
	}

	params := BadgeParams{
		Project:         project,
		DefinitionID:    definitionID,
		FieldType:       c.Param("type"),
		SubType:         c.Query("subType"),
		Title:           c.Query("title"),
		TitleColor:      c.Query("titlefg"),
		TitleBackground: c.Query("titlebg"),
		Value:           c.Query("value"),
		ValueColor:      c.Query("valuefg"),
		ValueBackground: c.Query("valuebg"),
		ToolTip:         c.Query("toolTip"),
		Href:            c.Query("href"),
	}

	markup, err := h.service.GetBadge(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, devopsapi.ErrBuildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusText(http.StatusNotFound), "message": fmt.Sprintf("Build definition %v was not found.", definitionID)})
			return
		}

		log.Error().Err(err).Msgf("Failed rendering badge for project %v definition %v type %v", project, definitionID, params.FieldType)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusText(http.StatusInternalServerError)})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "image/svg+xml", []byte(markup))
}

func (h *Handler) ClearAgentNameCache(c *gin.Context) {
	h.service.ClearAgentNameCache(c.Request.Context())
	c.Status(http.StatusOK)
}
