package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/middlewares"
	"github.com/themut001/timecard-web-v3/models"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthHandler struct {
	DB            *gorm.DB
	Secret        string
	RefreshSecret string
}

func NewAuthHandler(db *gorm.DB, secret, refreshSecret string) *AuthHandler {
	return &AuthHandler{DB: db, Secret: secret, RefreshSecret: refreshSecret}
}

func (h *AuthHandler) sign(u *models.User, secret string, ttl time.Duration) (string, error) {
	claims := middlewares.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var user models.User
	if err := h.DB.Preload("Department").Where("email = ?", req.Email).First(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := h.sign(&user, h.Secret, accessTokenTTL)
	if err != nil {
		return err
	}
	refresh, err := h.sign(&user, h.RefreshSecret, refreshTokenTTL)
	if err != nil {
		return err
	}

	return respondMsg(c, http.StatusOK, map[string]any{
		"user":         user,
		"token":        token,
		"refreshToken": refresh,
	}, "logged in")
}

// POST /api/auth/logout
// Tokens are stateless; the client drops them. Kept so the frontend has a
// single logout call.
func (h *AuthHandler) Logout(c echo.Context) error {
	return respondMsg(c, http.StatusOK, nil, "logged out")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims, err := middlewares.ParseToken(req.RefreshToken, h.RefreshSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	token, err := h.sign(&user, h.Secret, accessTokenTTL)
	if err != nil {
		return err
	}
	return respondMsg(c, http.StatusOK, map[string]any{"token": token}, "token refreshed")
}

// GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	var user models.User
	if err := h.DB.Preload("Department").First(&user, "id = ?", userID(c)).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return respond(c, http.StatusOK, user)
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// POST /api/auth/forgot-password
// Always answers success so the endpoint cannot be used to probe for accounts.
// TODO: issue a reset token and send mail once an outbound mail service is provisioned.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return respondMsg(c, http.StatusOK, nil, "password reset instructions have been sent if the address exists")
}
