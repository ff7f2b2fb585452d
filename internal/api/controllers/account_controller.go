package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"postpulse/internal/models/request_models"
	"postpulse/internal/models/response_models"
	"postpulse/internal/services"
	"postpulse/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// AuthStatus godoc
// @Summary Authentication status
// @Description Whether the caller is signed in, and under which name
// @Tags Accounts
// @Produce json
// @Success 200 {object} response_models.AuthStatusResponse
// @Router /auth/status [get]
func (a *AccountController) AuthStatus(c *gin.Context) {
	status := response_models.AuthStatusResponse{}

	if viewerID := c.GetString("user_id"); viewerID != "" {
		account, err := a.accountService.GetProfile(c.Request.Context(), viewerID)
		if err != nil {
			// Stale token; report as signed out rather than failing.
			log.Printf("auth status: resolving account %s: %v", viewerID, err)
		} else {
			status.IsAuthenticated = true
			status.UserName = account.Name
		}
	}

	c.JSON(http.StatusOK, status)
}
