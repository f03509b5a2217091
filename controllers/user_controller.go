package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/freelance-api/models"
	"github.com/kendall-kelly/freelance-api/store"
)

// CreateUserRequest represents the request body for creating a user.
// Every field is optional; omitted fields are stored as zero values.
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

// UpdateUserRequest represents the request body for replacing a user.
// Pointers distinguish a missing field from a zero value.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"required"`
	LastName  *string `json:"last_name" binding:"required"`
	Age       *int    `json:"age" binding:"required"`
	Email     *string `json:"email" binding:"required"`
	Role      *string `json:"role" binding:"required"`
	Phone     *string `json:"phone" binding:"required"`
}

func (r *UpdateUserRequest) apply(u *models.User) {
	u.FirstName = *r.FirstName
	u.LastName = *r.LastName
	u.Age = *r.Age
	u.Email = *r.Email
	u.Role = *r.Role
	u.Phone = *r.Phone
}

// UserController serves the /users resource
type UserController struct {
	users *store.Repository[models.User]
}

// NewUserController creates a controller backed by st
func NewUserController(st *store.Store) *UserController {
	return &UserController{users: st.Users}
}

// ListUsers handles GET /users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		storeErrorResponse(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users
func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Email:     req.Email,
		Role:      req.Role,
		Phone:     req.Phone,
	}
	if err := uc.users.Create(c.Request.Context(), &user); err != nil {
		storeErrorResponse(c, err, "user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := uc.users.Get(c.Request.Context(), id)
	if err != nil {
		storeErrorResponse(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id - replaces every field of the user
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Validate the whole body before touching the store
	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.users.Update(c.Request.Context(), id, req.apply)
	if err != nil {
		storeErrorResponse(c, err, "user")
		return
	}
	messageResponse(c, "user_changed", user)
}

// DeleteUser handles DELETE /users/:id
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := uc.users.Delete(c.Request.Context(), id); err != nil {
		storeErrorResponse(c, err, "user")
		return
	}
	messageResponse(c, "user_deleted", nil)
}
