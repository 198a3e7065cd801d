package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"

	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
)

type GuestResponse struct {
	Data  *models.Guest `json:"data"`
	Error *string       `json:"error"`
}

type GuestListResponse struct {
	Data  []models.Guest `json:"data"`
	Error *string        `json:"error"`
}

type GuestGroupListResponse struct {
	Data  []string `json:"data"`
	Error *string  `json:"error"`
}

// GuestEditable are the fields of a guest that can be set from requests.
type GuestEditable struct {
	Name        string `json:"name" binding:"required" example:"Maria Silva"`
	Group       string `json:"group" example:"Família da Noiva"`
	Contact     string `json:"contact" example:"(11) 91234-5678"`
	IsConfirmed bool   `json:"isConfirmed" example:"false"`
	Note        string `json:"note" example:"Vegetariana"`
}

func (editable GuestEditable) model() models.Guest {
	return models.Guest{
		Name:        editable.Name,
		Group:       editable.Group,
		Contact:     editable.Contact,
		IsConfirmed: editable.IsConfirmed,
		Note:        editable.Note,
	}
}

// GuestQueryFilter narrows down the guest list.
type GuestQueryFilter struct {
	Name        string `form:"name"`  // glob pattern
	Group       string `form:"group"` // exact match
	IsConfirmed *bool  `form:"isConfirmed"`
}

// RegisterGuestRoutes registers the routes for guests.
func (co Controller) RegisterGuestRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetGuests)
	r.POST("", co.CreateGuest)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", co.GetGuest)
	r.PATCH("/:id", co.UpdateGuest)
	r.DELETE("/:id", co.DeleteGuest)
}

// RegisterGuestGroupRoutes registers the routes for the guest groups.
func (co Controller) RegisterGuestGroupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPut)
	r.GET("", co.GetGuestGroups)
	r.PUT("", co.UpdateGuestGroups)
}

// @Summary		List guests
// @Description	Returns a list of guests
// @Tags			Guests
// @Produce		json
// @Success		200	{object}	GuestListResponse
// @Failure		400	{object}	GuestListResponse
// @Param			name		query	string	false	"Filter by name, supports the * wildcard"
// @Param			group		query	string	false	"Filter by group"
// @Param			isConfirmed	query	bool	false	"Filter by confirmation state"
// @Router			/v1/guests [get]
func (co Controller) GetGuests(c *gin.Context) {
	var filter GuestQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, GuestListResponse{Error: &s})
		return
	}

	data := co.Store.Data()

	guests := make([]models.Guest, 0, len(data.Guests))
	for _, guest := range data.Guests {
		if filter.Name != "" && !glob.Glob(filter.Name, guest.Name) {
			continue
		}
		if filter.Group != "" && guest.Group != filter.Group {
			continue
		}
		if filter.IsConfirmed != nil && guest.IsConfirmed != *filter.IsConfirmed {
			continue
		}

		guests = append(guests, guest)
	}

	c.JSON(http.StatusOK, GuestListResponse{Data: guests})
}

// @Summary		Create guest
// @Description	Creates a new guest
// @Tags			Guests
// @Accept			json
// @Produce		json
// @Success		201	{object}	GuestResponse
// @Failure		400	{object}	GuestResponse
// @Failure		500	{object}	GuestResponse
// @Param			guest	body	GuestEditable	true	"Guest"
// @Router			/v1/guests [post]
func (co Controller) CreateGuest(c *gin.Context) {
	editable, err := httputil.BindData[GuestEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuestResponse{Error: &s})
		return
	}

	guest, err := co.Store.AddGuest(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuestResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, GuestResponse{Data: &guest})
}

// @Summary		Get guest
// @Description	Returns a specific guest
// @Tags			Guests
// @Produce		json
// @Success		200	{object}	GuestResponse
// @Failure		400	{object}	GuestResponse
// @Failure		404	{object}	GuestResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/guests/{id} [get]
func (co Controller) GetGuest(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, GuestResponse{Error: &s})
		return
	}

	data := co.Store.Data()
	for _, guest := range data.Guests {
		if guest.ID == uri.ID.UUID {
			c.JSON(http.StatusOK, GuestResponse{Data: &guest})
			return
		}
	}

	err := errNotFound("guest")
	s := err.Error()
	c.JSON(status(err), GuestResponse{Error: &s})
}

// @Summary		Update guest
// @Description	Replaces the guest with the submitted data
// @Tags			Guests
// @Accept			json
// @Produce		json
// @Success		200	{object}	GuestResponse
// @Failure		400	{object}	GuestResponse
// @Failure		404	{object}	GuestResponse
// @Failure		500	{object}	GuestResponse
// @Param			id		path	string			true	"ID formatted as string"
// @Param			guest	body	GuestEditable	true	"Guest"
// @Router			/v1/guests/{id} [patch]
func (co Controller) UpdateGuest(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, GuestResponse{Error: &s})
		return
	}

	editable, err := httputil.BindData[GuestEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuestResponse{Error: &s})
		return
	}

	guest := editable.model()
	guest.ID = uri.ID.UUID

	if err := co.Store.UpdateGuest(guest); err != nil {
		s := err.Error()
		c.JSON(status(err), GuestResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GuestResponse{Data: &guest})
}

// @Summary		Delete guest
// @Description	Deletes a guest
// @Tags			Guests
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/guests/{id} [delete]
func (co Controller) DeleteGuest(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if err := co.Store.DeleteGuest(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		List guest groups
// @Description	Returns the guest groups
// @Tags			Guests
// @Produce		json
// @Success		200	{object}	GuestGroupListResponse
// @Router			/v1/guest-groups [get]
func (co Controller) GetGuestGroups(c *gin.Context) {
	data := co.Store.Data()
	c.JSON(http.StatusOK, GuestGroupListResponse{Data: data.GuestGroups})
}

// @Summary		Replace guest groups
// @Description	Replaces the guest groups. Guests keep the group name they were assigned
// @Tags			Guests
// @Accept			json
// @Produce		json
// @Success		200	{object}	GuestGroupListResponse
// @Failure		400	{object}	GuestGroupListResponse
// @Failure		500	{object}	GuestGroupListResponse
// @Param			groups	body	[]string	true	"Guest groups"
// @Router			/v1/guest-groups [put]
func (co Controller) UpdateGuestGroups(c *gin.Context) {
	groups, err := httputil.BindData[[]string](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuestGroupListResponse{Error: &s})
		return
	}

	if err := co.Store.UpdateGuestGroups(groups); err != nil {
		s := err.Error()
		c.JSON(status(err), GuestGroupListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GuestGroupListResponse{Data: groups})
}
