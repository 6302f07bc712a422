package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/app/repositories"
)

var ErrOrderNotFound = errors.New("order not found")

// ReportService provides read-only views over persisted orders.
type ReportService struct {
	orders *repositories.OrderRepository
}

func NewReportService(orders *repositories.OrderRepository) *ReportService {
	return &ReportService{orders: orders}
}

// ListOrders returns the full order history, newest first.
func (s *ReportService) ListOrders() ([]models.Order, error) {
	return s.orders.AllNewestFirst()
}

// OrderDetail returns one order with its items.
func (s *ReportService) OrderDetail(id uint) (models.Order, error) {
	order, err := s.orders.FindWithItems(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrOrderNotFound
	}
	return order, err
}

// csvHeader is the fixed export layout: one row per order, items excluded.
var csvHeader = []string{"Order ID", "Date", "Name", "Contact", "Address", "Payment", "Total"}

// WriteCSV streams the whole order history as CSV, newest first. Quoting
// and escaping are left to encoding/csv, so commas and quotes in names or
// addresses survive a round trip through any standard reader.
func (s *ReportService) WriteCSV(w io.Writer) error {
	orders, err := s.orders.AllNewestFirst()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range orders {
		row := []string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
			o.CustName,
			o.CustWA,
			o.Address,
			o.Payment,
			strconv.FormatInt(o.Total, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
