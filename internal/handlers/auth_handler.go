package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/store"
	"github.com/mindease/mindease-api/internal/utils"
)

type SignupRequest struct {
	Role     models.Role `json:"role" binding:"required"`
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	College  string      `json:"college"`
	Gender   string      `json:"gender"`
	DOB      string      `json:"dob"`
	Language string      `json:"language"`

	// Counsellor-only fields.
	License        string `json:"license"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
}

// Signup creates a User and, for counsellors, the linked credential record.
// Both inserts run in one transaction so a failed counsellor insert never
// leaves a half-registered account.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	license := strings.TrimSpace(req.License)
	specialization := strings.TrimSpace(req.Specialization)
	if req.Role == models.RoleCounsellor && (license == "" || specialization == "") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "License and specialization are required for counsellors"})
		return
	}

	existing, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		serverError(c, "Signup lookup failed", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		serverError(c, "Password hashing failed", err)
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	user := models.User{
		Role:         req.Role,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Language:     language,
	}
	// College, gender and dob are student profile fields.
	if req.Role == models.RoleStudent {
		user.College = req.College
		user.Gender = req.Gender
		user.DOB = req.DOB
	}

	if req.Role == models.RoleCounsellor {
		counsellor := models.Counsellor{
			License:        license,
			Specialization: specialization,
			Experience:     req.Experience,
		}
		err = h.Users.CreateWithCounsellor(c.Request.Context(), &user, &counsellor)
	} else {
		err = h.Users.Create(c.Request.Context(), &user)
	}
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}
	if err != nil {
		serverError(c, "Signup insert failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "userId": user.ID})
}

// Signin checks credentials and returns the profile the client stores. The
// token is additive: only the mood and chat routes require it.
func (h *Handler) Signin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		serverError(c, "Signin lookup failed", err)
		return
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), string(user.Role))
	if err != nil {
		serverError(c, "Token generation failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.AsProfile(),
		"token":   token,
	})
}

// serverError hides internal detail from clients and logs it instead.
func serverError(c *gin.Context, msg string, err error) {
	log.Printf("%s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
