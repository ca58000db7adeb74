package handler

import (
	"net/http"

	"github.com/deppfellow/listings-api/internal/model"
	"github.com/deppfellow/listings-api/internal/server"
	"github.com/deppfellow/listings-api/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	return Handle(
		func(c echo.Context, _ *model.ListUsersPayload) ([]model.User, error) {
			return h.userService.ListUsers(c.Request().Context())
		},
		http.StatusOK,
	)(c)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	return Handle(
		func(c echo.Context, payload *model.IDPayload) (*model.User, error) {
			return h.userService.GetUser(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
	)(c)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	return Handle(
		func(c echo.Context, payload *model.CreateUserPayload) (*model.User, error) {
			return h.userService.CreateUser(c.Request().Context(), payload)
		},
		http.StatusCreated,
	)(c)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	return HandleNoContent(
		func(c echo.Context, payload *model.UpdateUserPayload) error {
			return h.userService.UpdateUser(c.Request().Context(), payload)
		},
	)(c)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	return HandleNoContent(
		func(c echo.Context, payload *model.IDPayload) error {
			return h.userService.DeleteUser(c.Request().Context(), payload.ID)
		},
	)(c)
}
