package handlers

import (
	"net/http"
	"strings"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/common"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TagHandlers handles the admin tag fan-out endpoints.
type TagHandlers struct {
	tagService services.TagService
}

func NewTagHandlers(tagService services.TagService) *TagHandlers {
	return &TagHandlers{tagService: tagService}
}

// UpdateTagRequest is the rename payload.
type UpdateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// UpdateTag renames a tag across every client holding it.
func (h *TagHandlers) UpdateTag(c echo.Context) error {
	id := c.Param("id")

	var req UpdateTagRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Formato de requisição inválido")
	}

	if strings.TrimSpace(req.Name) == "" {
		return common.SendError(c, http.StatusBadRequest, "MISSING_TAG_NAME", "Nome da tag é obrigatório")
	}

	tag, err := h.tagService.Update(c.Request().Context(), id, req.Name, req.Color)
	if err != nil {
		zap.L().Error("failed to update tag", zap.String("tag_id", id), zap.Error(err))
		return common.SendError(c, http.StatusInternalServerError, "UPDATE_TAG_ERROR", "Erro ao atualizar tag")
	}

	return common.SendSuccess(c, tag, "Tag atualizada com sucesso")
}

// DeleteTag removes a tag from every client holding it. Success even when no
// client held the value.
func (h *TagHandlers) DeleteTag(c echo.Context) error {
	id := c.Param("id")

	if _, err := h.tagService.Delete(c.Request().Context(), id); err != nil {
		zap.L().Error("failed to delete tag", zap.String("tag_id", id), zap.Error(err))
		return common.SendError(c, http.StatusInternalServerError, "DELETE_TAG_ERROR", "Erro ao remover tag")
	}

	return common.SendSuccess(c, nil, "Tag removida com sucesso")
}
