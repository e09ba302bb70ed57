package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecomplaint/internal/application/user/usecases"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
	"ecomplaint/internal/shared/utils"
)

type Handler struct {
	registerUC       usecases.RegisterExecutor
	loginUC          usecases.LoginExecutor
	accessExpMinutes int
	logger           logger.Interface
}

func NewHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	accessExpMinutes int,
) *Handler {
	return &Handler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		accessExpMinutes: accessExpMinutes,
		logger:           logger.NewLogger(),
	}
}

// Register handles POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.ErrorResponseWithError(c, errors.NewValidationError("passwords do not match"))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Registration successful")
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   h.accessExpMinutes * 60,
		Email:       result.User.Email().String(),
		Name:        result.User.Name(),
		IsAdmin:     result.User.IsAdmin(),
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout is
// a client-side discard; the endpoint exists so clients have a uniform flow.
func (h *Handler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
