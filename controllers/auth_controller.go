package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/stormbless/foodprint-backend/services"
	"github.com/stormbless/foodprint-backend/utils"
)

type LoginInput struct {
	UserEmail    string `json:"userEmail" binding:"required"`
	UserPassword string `json:"userPassword" binding:"required"`
}

type AuthController struct {
	Foods   *services.FoodService
	Entries *services.FoodEntryService
}

func NewAuthController(foods *services.FoodService, entries *services.FoodEntryService) *AuthController {
	return &AuthController{Foods: foods, Entries: entries}
}

// Login forwards the user's tracker credentials to the fetch script, rebuilds
// their stored food entries from the result, and issues the session cookies.
// The response carries the full per-kg food impact list for the frontend's
// substitution page.
func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.UserDetailsValid(input.UserEmail, input.UserPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user details invalid"})
		return
	}

	result := services.FetchServings(c.Request.Context(), input.UserEmail, input.UserPassword)
	if result.Outcome != services.FetchSucceeded {
		// a timeout or scripting error lands here too; the frontend only
		// ever sees "authentication failed"
		c.JSON(http.StatusForbidden, gin.H{"error": "authentication failed"})
		return
	}

	foodEntries := services.TransformServingsToFoodEntries(input.UserEmail, result.Servings, h.Foods)

	if err := h.Entries.ReplaceFoodEntries(c.Request.Context(), input.UserEmail, foodEntries); err != nil {
		log.Error().Err(err).Str("userEmail", input.UserEmail).Msg("replacing food entries failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	foodImpactsPerKg, err := h.Foods.AllFoodsImpactPerKg()
	if err != nil {
		log.Error().Err(err).Msg("loading food impacts per kg failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := setSessionCookies(c, input.UserEmail); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userEmail":        input.UserEmail,
		"foodImpactsPerKg": foodImpactsPerKg,
	})
}

// RefreshToken rotates both session cookies. The refresh-token middleware
// has already verified the caller.
func (h *AuthController) RefreshToken(c *gin.Context) {
	if err := setSessionCookies(c, c.GetString("userEmail")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.Status(http.StatusOK)
}

func (h *AuthController) Logout(c *gin.Context) {
	clearSessionCookies(c)
	c.Status(http.StatusOK)
}

func setSessionCookies(c *gin.Context, userEmail string) error {
	accessToken, err := utils.GenerateAccessToken(userEmail)
	if err != nil {
		return err
	}
	refreshToken, err := utils.GenerateRefreshToken(userEmail)
	if err != nil {
		return err
	}

	// cross-site frontend needs SameSite=None, which browsers only accept
	// with Secure
	secure := os.Getenv("ENV") == "production"
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}

	c.SetCookie("access_token", accessToken, utils.AccessTokenMaxAge(), "/", "", secure, true)
	c.SetCookie("refresh_token", refreshToken, utils.RefreshTokenMaxAge(), "/", "", secure, true)
	return nil
}

func clearSessionCookies(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
}
