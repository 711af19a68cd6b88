package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/accounts-service/internal/core/ports"
)

type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// List returns the active roles ordered by name.
//
// @Summary      List active roles
// @Tags         roles
// @Produce      json
// @Success      200  {object}  listRolesResponse
// @Failure      500  {object}  map[string]string
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.ListActive(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]roleItem, 0, len(roles))
	for _, r := range roles {
		items = append(items, roleItem{
			ID:          r.ID.String(),
			Name:        r.Name,
			Description: r.Description,
		})
	}

	return c.JSON(http.StatusOK, listRolesResponse{
		Roles:   items,
		Message: "Roles fetched successfully",
	})
}
