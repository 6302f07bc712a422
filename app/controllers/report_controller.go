package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shashiranjanraj/tokoku/app/services"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
	"github.com/shashiranjanraj/tokoku/pkg/response"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// List returns the order history. ?export=csv switches to the CSV
// download instead.
func (c *ReportController) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("export") == "csv" {
		c.exportCSV(w)
		return
	}

	orders, err := c.service.ListOrders()
	if err != nil {
		logger.Error("report: list", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load orders")
		return
	}
	response.Success(w, orders)
}

func (c *ReportController) Show(w http.ResponseWriter, r *http.Request) {
	order, err := c.service.OrderDetail(idParam(r))
	if errors.Is(err, services.ErrOrderNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		logger.Error("report: detail", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load order")
		return
	}
	response.Success(w, order)
}

func (c *ReportController) exportCSV(w http.ResponseWriter) {
	filename := "sales_" + time.Now().Format("2006-01-02_150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := c.service.WriteCSV(w); err != nil {
		logger.Error("report: csv export", "error", err)
	}
}
