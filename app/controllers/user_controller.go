package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/tokoku/app/services"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
	"github.com/shashiranjanraj/tokoku/pkg/response"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.List()
	if err != nil {
		logger.Error("users: list", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load users")
		return
	}
	response.Success(w, users)
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := c.service.Create(in)
	switch {
	case errors.Is(err, services.ErrInvalidUser):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		response.Error(w, http.StatusConflict, err.Error())
	case err != nil:
		logger.Error("users: create", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not create user")
	default:
		response.Created(w, user)
	}
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := c.service.Update(idParam(r), in)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrUsernameTaken):
		response.Error(w, http.StatusConflict, err.Error())
	case err != nil:
		logger.Error("users: update", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not update user")
	default:
		response.Success(w, user)
	}
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.service.Delete(idParam(r))
	if errors.Is(err, services.ErrUserNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		logger.Error("users: delete", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not delete user")
		return
	}
	response.Success(w, map[string]string{"status": "deleted"})
}
