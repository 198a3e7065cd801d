package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bellanote/backend/internal/httputil"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Budget       string `json:"budget" example:"https://example.com/api/v1/budget"`
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`
	Vendors      string `json:"vendors" example:"https://example.com/api/v1/vendors"`
	Guests       string `json:"guests" example:"https://example.com/api/v1/guests"`
	GuestGroups  string `json:"guestGroups" example:"https://example.com/api/v1/guest-groups"`
	Tasks        string `json:"tasks" example:"https://example.com/api/v1/tasks"`
	Gifts        string `json:"gifts" example:"https://example.com/api/v1/gifts"`
	Profile      string `json:"profile" example:"https://example.com/api/v1/profile"`
	Wedding      string `json:"wedding" example:"https://example.com/api/v1/wedding"`
	Dashboard    string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`
	Setup        string `json:"setup" example:"https://example.com/api/v1/setup"`
	Assistant    string `json:"assistant" example:"https://example.com/api/v1/assistant"`
	Export       string `json:"export" example:"https://example.com/api/v1/export"`
}

// RegisterRootRoutes registers the root endpoints of v1.
func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetDelete)
	r.GET("", co.GetRoot)
	r.DELETE("", co.Cleanup)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func (co Controller) GetRoot(c *gin.Context) {
	base := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Budget:       base + "/budget",
			Transactions: base + "/transactions",
			Vendors:      base + "/vendors",
			Guests:       base + "/guests",
			GuestGroups:  base + "/guest-groups",
			Tasks:        base + "/tasks",
			Gifts:        base + "/gifts",
			Profile:      base + "/profile",
			Wedding:      base + "/wedding",
			Dashboard:    base + "/dashboard",
			Setup:        base + "/setup",
			Assistant:    base + "/assistant",
			Export:       base + "/export",
		},
	})
}

// @Summary		Delete everything
// @Description	Permanently deletes all planning data and restores the defaults
// @Tags			v1
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			confirm	query	string	false	"Confirmation to delete all data. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	if c.Query("confirm") != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{Error: errCleanupConfirmation.Error()})
		return
	}

	if err := co.Store.Reset(); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
