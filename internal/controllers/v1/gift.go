package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"

	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
)

type GiftResponse struct {
	Data  *models.GiftItem `json:"data"`
	Error *string          `json:"error"`
}

type GiftListResponse struct {
	Data  []models.GiftItem `json:"data"`
	Error *string           `json:"error"`
}

// GiftEditable are the fields of a gift that can be set from requests.
type GiftEditable struct {
	Name       string          `json:"name" binding:"required" example:"Jogo de panelas"`
	Room       string          `json:"room" example:"Cozinha"`
	Price      decimal.Decimal `json:"price" example:"450.00"`
	IsReceived bool            `json:"isReceived" example:"false"`
	Note       string          `json:"note" example:"Preferência pela cor preta"`
}

func (editable GiftEditable) model() models.GiftItem {
	return models.GiftItem{
		Name:       editable.Name,
		Room:       editable.Room,
		Price:      editable.Price,
		IsReceived: editable.IsReceived,
		Note:       editable.Note,
	}
}

// GiftQueryFilter narrows down the gift list.
type GiftQueryFilter struct {
	Name       string `form:"name"` // glob pattern
	Room       string `form:"room"`
	IsReceived *bool  `form:"isReceived"`
}

// RegisterGiftRoutes registers the routes for gifts.
func (co Controller) RegisterGiftRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetGifts)
	r.POST("", co.CreateGift)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", co.GetGift)
	r.PATCH("/:id", co.UpdateGift)
	r.DELETE("/:id", co.DeleteGift)
}

// @Summary		List gifts
// @Description	Returns a list of gifts
// @Tags			Gifts
// @Produce		json
// @Success		200	{object}	GiftListResponse
// @Failure		400	{object}	GiftListResponse
// @Param			name		query	string	false	"Filter by name, supports the * wildcard"
// @Param			room		query	string	false	"Filter by room"
// @Param			isReceived	query	bool	false	"Filter by received state"
// @Router			/v1/gifts [get]
func (co Controller) GetGifts(c *gin.Context) {
	var filter GiftQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, GiftListResponse{Error: &s})
		return
	}

	data := co.Store.Data()

	gifts := make([]models.GiftItem, 0, len(data.Gifts))
	for _, gift := range data.Gifts {
		if filter.Name != "" && !glob.Glob(filter.Name, gift.Name) {
			continue
		}
		if filter.Room != "" && gift.Room != filter.Room {
			continue
		}
		if filter.IsReceived != nil && gift.IsReceived != *filter.IsReceived {
			continue
		}

		gifts = append(gifts, gift)
	}

	c.JSON(http.StatusOK, GiftListResponse{Data: gifts})
}

// @Summary		Create gift
// @Description	Creates a new gift on the registry
// @Tags			Gifts
// @Accept			json
// @Produce		json
// @Success		201	{object}	GiftResponse
// @Failure		400	{object}	GiftResponse
// @Failure		500	{object}	GiftResponse
// @Param			gift	body	GiftEditable	true	"Gift"
// @Router			/v1/gifts [post]
func (co Controller) CreateGift(c *gin.Context) {
	editable, err := httputil.BindData[GiftEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GiftResponse{Error: &s})
		return
	}

	gift, err := co.Store.AddGift(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GiftResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, GiftResponse{Data: &gift})
}

// @Summary		Get gift
// @Description	Returns a specific gift
// @Tags			Gifts
// @Produce		json
// @Success		200	{object}	GiftResponse
// @Failure		400	{object}	GiftResponse
// @Failure		404	{object}	GiftResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/gifts/{id} [get]
func (co Controller) GetGift(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, GiftResponse{Error: &s})
		return
	}

	data := co.Store.Data()
	for _, gift := range data.Gifts {
		if gift.ID == uri.ID.UUID {
			c.JSON(http.StatusOK, GiftResponse{Data: &gift})
			return
		}
	}

	err := errNotFound("gift")
	s := err.Error()
	c.JSON(status(err), GiftResponse{Error: &s})
}

// @Summary		Update gift
// @Description	Replaces the gift with the submitted data
// @Tags			Gifts
// @Accept			json
// @Produce		json
// @Success		200	{object}	GiftResponse
// @Failure		400	{object}	GiftResponse
// @Failure		404	{object}	GiftResponse
// @Failure		500	{object}	GiftResponse
// @Param			id		path	string			true	"ID formatted as string"
// @Param			gift	body	GiftEditable	true	"Gift"
// @Router			/v1/gifts/{id} [patch]
func (co Controller) UpdateGift(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, GiftResponse{Error: &s})
		return
	}

	editable, err := httputil.BindData[GiftEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GiftResponse{Error: &s})
		return
	}

	gift := editable.model()
	gift.ID = uri.ID.UUID

	if err := co.Store.UpdateGift(gift); err != nil {
		s := err.Error()
		c.JSON(status(err), GiftResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GiftResponse{Data: &gift})
}

// @Summary		Delete gift
// @Description	Deletes a gift
// @Tags			Gifts
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/gifts/{id} [delete]
func (co Controller) DeleteGift(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if err := co.Store.DeleteGift(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
