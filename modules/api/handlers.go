package api

import (
	"log"
	"strings"

	domain "github.com/example/task-manager-api/domain/task"
	"github.com/example/task-manager-api/modules/auth"
	"github.com/example/task-manager-api/modules/task"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	auth  auth.AuthPort
	tasks task.TaskPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authPort auth.AuthPort, taskPort task.TaskPort) *Handlers {
	return &Handlers{
		auth:  authPort,
		tasks: taskPort,
	}
}

// Login handles user login. Bad credentials answer a generic 401 that never
// distinguishes an unknown email from a wrong password.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Email and password are required",
		})
	}

	token, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "invalid email or password") {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid email or password",
			})
		}
		return h.internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(TokenResponse{
		Token: token,
	})
}

// Register handles user registration.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Email and password are required",
		})
	}

	user, err := h.auth.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return h.handleRegisterError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// ListTareas returns every task owned by the authenticated caller.
func (h *Handlers) ListTareas(c *fiber.Ctx) error {
	email, ok := identityFromContext(c)
	if !ok {
		return h.accessDenied(c)
	}

	tasks, err := h.tasks.List(c.UserContext(), email)
	if err != nil {
		return h.handleTaskError(c, err)
	}

	resp := make([]TareaResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toTareaResponse(t))
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// CreateTarea creates a task owned by the caller. The created task is always
// Pendiente with a server-assigned id and creation timestamp.
func (h *Handlers) CreateTarea(c *fiber.Ctx) error {
	email, ok := identityFromContext(c)
	if !ok {
		return h.accessDenied(c)
	}

	var req TareaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	created, err := h.tasks.Create(c.UserContext(), email, task.TaskInput{
		Title:       req.Titulo,
		Description: req.Descripcion,
		DueAt:       req.FechaVencimiento,
	})
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toTareaResponse(created))
}

// UpdateTarea rewrites the editable fields of one of the caller's tasks.
func (h *Handlers) UpdateTarea(c *fiber.Ctx) error {
	email, ok := identityFromContext(c)
	if !ok {
		return h.accessDenied(c)
	}

	var req TareaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	updated, err := h.tasks.Update(c.UserContext(), email, c.Params("id"), task.TaskInput{
		Title:       req.Titulo,
		Description: req.Descripcion,
		DueAt:       req.FechaVencimiento,
	})
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toTareaResponse(updated))
}

// DeleteTarea removes one of the caller's tasks permanently.
func (h *Handlers) DeleteTarea(c *fiber.Ctx) error {
	email, ok := identityFromContext(c)
	if !ok {
		return h.accessDenied(c)
	}

	if err := h.tasks.Delete(c.UserContext(), email, c.Params("id")); err != nil {
		return h.handleTaskError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// accessDenied is the uniform 403 for unauthenticated callers, identities
// mapping to no user, and tasks the caller does not own. One status for all
// three cases, so a probing client learns nothing about what exists.
func (h *Handlers) accessDenied(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
		Error:   "forbidden",
		Message: "Access denied",
	})
}

func (h *Handlers) internalError(c *fiber.Ctx, err error) error {
	log.Printf("[api] Internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// handleRegisterError maps registration errors to responses by matching the
// known error messages, since errors may have crossed the service container.
func (h *Handlers) handleRegisterError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "already exists"):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: "User with this email already exists",
		})
	case strings.Contains(errStr, "invalid email format"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid email format",
		})
	case strings.Contains(errStr, "password must be at least"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Password must be at least 8 characters",
		})
	case strings.Contains(errStr, "password must be at most"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Password must be at most 72 characters",
		})
	default:
		return h.internalError(c, err)
	}
}

// handleTaskError maps task service errors to responses. Access denial stays
// a bare 403; everything unexpected collapses into a generic 500 with no
// internals leaked.
func (h *Handlers) handleTaskError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "access denied"):
		return h.accessDenied(c)
	case strings.Contains(errStr, "title is required"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Title is required",
		})
	default:
		return h.internalError(c, err)
	}
}

// toTareaResponse converts a task entity to its wire representation.
func toTareaResponse(t *domain.Task) TareaResponse {
	return TareaResponse{
		ID:               t.ID,
		Titulo:           t.Title,
		Descripcion:      t.Description,
		FechaCreacion:    t.CreatedAt,
		FechaVencimiento: t.DueAt,
		Estado:           t.State.Name,
	}
}
