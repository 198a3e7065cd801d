package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bellanote/backend/internal/export"
	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
)

// RegisterExportRoutes registers the routes for CSV downloads.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/transactions", httputil.OptionsGet)
	r.GET("/transactions", co.ExportTransactions)

	r.OPTIONS("/guests", httputil.OptionsGet)
	r.GET("/guests", co.ExportGuests)

	r.OPTIONS("/gifts", httputil.OptionsGet)
	r.GET("/gifts", co.ExportGifts)
}

func writeCSV(c *gin.Context, filename string, headers []string, rows [][]any) {
	c.Header("content-type", "text/csv; charset=utf-8")
	c.Header("content-disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := export.CSV(c.Writer, headers, rows); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
	}
}

// @Summary		Export transactions
// @Description	Downloads all transactions as CSV
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Router			/v1/export/transactions [get]
func (co Controller) ExportTransactions(c *gin.Context) {
	data := co.Store.Data()

	rows := make([][]any, 0, len(data.Transactions))
	for _, transaction := range data.Transactions {
		var date any
		if !transaction.Date.IsZero() {
			date = transaction.Date.String()
		}

		var category any
		if match, ok := categoryName(data, transaction); ok {
			category = match
		}

		var vendor any
		for _, v := range data.Vendors {
			if v.ID == transaction.VendorID {
				vendor = v.Name
				break
			}
		}

		rows = append(rows, []any{
			transaction.ID.String(),
			date,
			transaction.Description,
			category,
			vendor,
			transaction.Amount,
			transaction.IsPaid,
		})
	}

	writeCSV(c, "transacoes.csv", []string{"id", "date", "description", "category", "vendor", "amount", "isPaid"}, rows)
}

// @Summary		Export guests
// @Description	Downloads the guest list as CSV
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Router			/v1/export/guests [get]
func (co Controller) ExportGuests(c *gin.Context) {
	data := co.Store.Data()

	rows := make([][]any, 0, len(data.Guests))
	for _, guest := range data.Guests {
		rows = append(rows, []any{
			guest.ID.String(),
			guest.Name,
			guest.Group,
			guest.Contact,
			guest.IsConfirmed,
			guest.Note,
		})
	}

	writeCSV(c, "convidados.csv", []string{"id", "name", "group", "contact", "isConfirmed", "note"}, rows)
}

// @Summary		Export gifts
// @Description	Downloads the gift registry as CSV
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Router			/v1/export/gifts [get]
func (co Controller) ExportGifts(c *gin.Context) {
	data := co.Store.Data()

	rows := make([][]any, 0, len(data.Gifts))
	for _, gift := range data.Gifts {
		var price any
		if !gift.Price.IsZero() {
			price = gift.Price
		}

		rows = append(rows, []any{
			gift.ID.String(),
			gift.Name,
			gift.Room,
			price,
			gift.IsReceived,
			gift.Note,
		})
	}

	writeCSV(c, "presentes.csv", []string{"id", "name", "room", "price", "isReceived", "note"}, rows)
}

func categoryName(data models.AppData, transaction models.Transaction) (string, bool) {
	category, err := data.CategoryByID(transaction.CategoryID)
	if err != nil {
		return "", false
	}

	return category.Name, true
}
