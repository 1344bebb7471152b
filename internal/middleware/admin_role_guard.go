package middleware

import (
	"net/http"

	"fashionretail/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextに入っているrolesにROLE_ADMINが含まれるかを確認します。

func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRoles := c.Get(CtxUserRolesKey)
			roles, ok := rawRoles.([]string)
			if !ok || len(roles) == 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//ROLE_ADMINだけ許可
			for _, r := range roles {
				if r == model.RoleAdmin {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, errorJSON("admin only"))
		}
	}
}
