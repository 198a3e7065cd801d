package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/types"
)

type VendorResponse struct {
	Data  *models.Vendor `json:"data"`
	Error *string        `json:"error"`
}

type VendorListResponse struct {
	Data  []models.Vendor `json:"data"`
	Error *string         `json:"error"`
}

// VendorEditable are the fields of a vendor that can be set from
// requests. The contract state is managed by the contract endpoints.
type VendorEditable struct {
	Name        string                    `json:"name" binding:"required" example:"Buffet Sabor e Festa"`
	Category    string                    `json:"category" example:"Buffet (Comidas e Bebidas)"`
	Description string                    `json:"description" example:"Buffet completo com estações de massas"`
	Contact     string                    `json:"contact" example:"(11) 98765-4321"`
	Price       decimal.Decimal           `json:"price" example:"25000"`
	Rating      float64                   `json:"rating" example:"4.5"`
	Attachments []models.VendorAttachment `json:"attachments"`
}

func (editable VendorEditable) model() models.Vendor {
	attachments := make([]models.VendorAttachment, len(editable.Attachments))
	for i, attachment := range editable.Attachments {
		if attachment.ID == uuid.Nil {
			attachment.ID = uuid.New()
		}
		if attachment.UploadedAt.IsZero() {
			attachment.UploadedAt = time.Now()
		}

		attachments[i] = attachment
	}

	return models.Vendor{
		Name:        editable.Name,
		Category:    editable.Category,
		Description: editable.Description,
		Contact:     editable.Contact,
		Price:       editable.Price,
		Rating:      editable.Rating,
		Attachments: attachments,
	}
}

// ContractEditable is the contract data submitted when hiring a vendor.
type ContractEditable struct {
	Amount       decimal.Decimal    `json:"amount" example:"24000"`
	PaymentType  models.PaymentType `json:"paymentType" binding:"required" example:"installment"`
	Installments int                `json:"installments" example:"6"`
	FirstDueDate types.Date         `json:"firstDueDate" example:"2026-10-05"`
}

// PaymentStatusEditable sets the paid flag of a scheduled payment.
type PaymentStatusEditable struct {
	IsPaid bool `json:"isPaid" example:"true"`
}

// VendorQueryFilter narrows down the vendor list.
type VendorQueryFilter struct {
	Name         string `form:"name"`     // glob pattern
	Category     string `form:"category"` // glob pattern
	IsContracted *bool  `form:"isContracted"`
}

// RegisterVendorRoutes registers the routes for vendors.
func (co Controller) RegisterVendorRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetVendors)
	r.POST("", co.CreateVendor)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", co.GetVendor)
	r.PATCH("/:id", co.UpdateVendor)
	r.DELETE("/:id", co.DeleteVendor)

	r.OPTIONS("/:id/contract", httputil.OptionsPostDelete)
	r.POST("/:id/contract", co.ContractVendor)
	r.DELETE("/:id/contract", co.CancelContract)

	r.OPTIONS("/:id/payments/:paymentId", httputil.OptionsPatch)
	r.PATCH("/:id/payments/:paymentId", co.SetPaymentPaid)
}

// @Summary		List vendors
// @Description	Returns a list of vendors
// @Tags			Vendors
// @Produce		json
// @Success		200	{object}	VendorListResponse
// @Failure		400	{object}	VendorListResponse
// @Param			name			query	string	false	"Filter by name, supports the * wildcard"
// @Param			category		query	string	false	"Filter by category, supports the * wildcard"
// @Param			isContracted	query	bool	false	"Filter by contract state"
// @Router			/v1/vendors [get]
func (co Controller) GetVendors(c *gin.Context) {
	var filter VendorQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, VendorListResponse{Error: &s})
		return
	}

	data := co.Store.Data()

	vendors := make([]models.Vendor, 0, len(data.Vendors))
	for _, vendor := range data.Vendors {
		if filter.Name != "" && !glob.Glob(filter.Name, vendor.Name) {
			continue
		}
		if filter.Category != "" && !glob.Glob(filter.Category, vendor.Category) {
			continue
		}
		if filter.IsContracted != nil && vendor.IsContracted != *filter.IsContracted {
			continue
		}

		vendors = append(vendors, vendor)
	}

	c.JSON(http.StatusOK, VendorListResponse{Data: vendors})
}

// @Summary		Create vendor
// @Description	Creates a new vendor as an uncontracted candidate
// @Tags			Vendors
// @Accept			json
// @Produce		json
// @Success		201	{object}	VendorResponse
// @Failure		400	{object}	VendorResponse
// @Failure		500	{object}	VendorResponse
// @Param			vendor	body	VendorEditable	true	"Vendor"
// @Router			/v1/vendors [post]
func (co Controller) CreateVendor(c *gin.Context) {
	editable, err := httputil.BindData[VendorEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	vendor, err := co.Store.AddVendor(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, VendorResponse{Data: &vendor})
}

// @Summary		Get vendor
// @Description	Returns a specific vendor
// @Tags			Vendors
// @Produce		json
// @Success		200	{object}	VendorResponse
// @Failure		400	{object}	VendorResponse
// @Failure		404	{object}	VendorResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/vendors/{id} [get]
func (co Controller) GetVendor(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, VendorResponse{Error: &s})
		return
	}

	data := co.Store.Data()
	for _, vendor := range data.Vendors {
		if vendor.ID == uri.ID.UUID {
			c.JSON(http.StatusOK, VendorResponse{Data: &vendor})
			return
		}
	}

	err := errNotFound("vendor")
	s := err.Error()
	c.JSON(status(err), VendorResponse{Error: &s})
}

// @Summary		Update vendor
// @Description	Replaces the vendor's base data. The contract state is not touched
// @Tags			Vendors
// @Accept			json
// @Produce		json
// @Success		200	{object}	VendorResponse
// @Failure		400	{object}	VendorResponse
// @Failure		404	{object}	VendorResponse
// @Failure		500	{object}	VendorResponse
// @Param			id		path	string			true	"ID formatted as string"
// @Param			vendor	body	VendorEditable	true	"Vendor"
// @Router			/v1/vendors/{id} [patch]
func (co Controller) UpdateVendor(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, VendorResponse{Error: &s})
		return
	}

	editable, err := httputil.BindData[VendorEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	data := co.Store.Data()
	idx := slices.IndexFunc(data.Vendors, func(v models.Vendor) bool { return v.ID == uri.ID.UUID })
	if idx < 0 {
		err := errNotFound("vendor")
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	existing := data.Vendors[idx]

	vendor := editable.model()
	vendor.ID = existing.ID
	vendor.IsContracted = existing.IsContracted
	vendor.TotalContractAmount = existing.TotalContractAmount
	vendor.PaymentType = existing.PaymentType
	vendor.PaidAmount = existing.PaidAmount
	vendor.Payments = existing.Payments

	if err := co.Store.UpdateVendor(vendor); err != nil {
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, VendorResponse{Data: &vendor})
}

// @Summary		Delete vendor
// @Description	Deletes a vendor and all transactions referencing it
// @Tags			Vendors
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/vendors/{id} [delete]
func (co Controller) DeleteVendor(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if err := co.Store.DeleteVendor(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Contract vendor
// @Description	Marks the vendor as contracted and generates its payment schedule and the matching planned transactions
// @Tags			Vendors
// @Accept			json
// @Produce		json
// @Success		201	{object}	VendorResponse
// @Failure		400	{object}	VendorResponse
// @Failure		404	{object}	VendorResponse
// @Failure		500	{object}	VendorResponse
// @Param			id			path	string				true	"ID formatted as string"
// @Param			contract	body	ContractEditable	true	"Contract"
// @Router			/v1/vendors/{id}/contract [post]
func (co Controller) ContractVendor(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, VendorResponse{Error: &s})
		return
	}

	editable, err := httputil.BindData[ContractEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	if !slices.Contains(models.PaymentTypes(), editable.PaymentType) {
		s := errPaymentTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, VendorResponse{Error: &s})
		return
	}

	vendor, err := co.Store.ContractVendor(uri.ID.UUID, editable.Amount, editable.PaymentType, editable.Installments, editable.FirstDueDate)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, VendorResponse{Data: &vendor})
}

// @Summary		Cancel contract
// @Description	Reverts the vendor to an uncontracted candidate. The payment history is kept
// @Tags			Vendors
// @Produce		json
// @Success		200	{object}	VendorResponse
// @Failure		400	{object}	VendorResponse
// @Failure		404	{object}	VendorResponse
// @Failure		500	{object}	VendorResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/vendors/{id}/contract [delete]
func (co Controller) CancelContract(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, VendorResponse{Error: &s})
		return
	}

	vendor, err := co.Store.CancelContract(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, VendorResponse{Data: &vendor})
}

// @Summary		Set payment paid
// @Description	Sets the paid flag of one scheduled payment and syncs the matching transaction
// @Tags			Vendors
// @Accept			json
// @Produce		json
// @Success		200	{object}	VendorResponse
// @Failure		400	{object}	VendorResponse
// @Failure		404	{object}	VendorResponse
// @Failure		500	{object}	VendorResponse
// @Param			id			path	string					true	"ID formatted as string"
// @Param			paymentId	path	string					true	"ID of the payment"
// @Param			payment		body	PaymentStatusEditable	true	"Payment status"
// @Router			/v1/vendors/{id}/payments/{paymentId} [patch]
func (co Controller) SetPaymentPaid(c *gin.Context) {
	var uri URIPayment
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, VendorResponse{Error: &s})
		return
	}

	editable, err := httputil.BindData[PaymentStatusEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	vendor, err := co.Store.SetPaymentPaid(uri.ID.UUID, uri.PaymentID, editable.IsPaid)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, VendorResponse{Data: &vendor})
}
