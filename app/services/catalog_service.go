package services

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/app/repositories"
	"github.com/shashiranjanraj/tokoku/internal/whatsapp"
	"github.com/shashiranjanraj/tokoku/pkg/storage"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("product name is required and price must not be negative")
)

// ProductInput carries the admin-submitted product fields. Image arrives
// separately as a multipart upload.
type ProductInput struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
	Image string `json:"image"`
}

// CatalogService exposes the public product list and the admin CRUD
// around it.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService(products *repositories.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// List returns the catalog for the storefront, newest first.
func (s *CatalogService) List() ([]models.Product, error) {
	return s.products.All()
}

// FindByIDs bulk-resolves products for cart pricing. Stale ids just
// come back absent.
func (s *CatalogService) FindByIDs(ids []uint) ([]models.Product, error) {
	return s.products.FindByIDs(ids)
}

// Find returns a single product.
func (s *CatalogService) Find(id uint) (models.Product, error) {
	p, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// Create validates and stores a new product. A provided image file wins
// over any image URL in the input.
func (s *CatalogService) Create(in ProductInput, image *multipart.FileHeader) (models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Price < 0 {
		return models.Product{}, ErrInvalidProduct
	}
	if in.Stock < 0 {
		in.Stock = 0
	}

	if image != nil {
		path, err := storage.SaveUpload("products", image)
		if err != nil {
			return models.Product{}, err
		}
		in.Image = path
	}

	p := models.Product{Name: in.Name, Price: in.Price, Stock: in.Stock, Image: in.Image}
	if err := s.products.Create(&p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Update applies new fields to an existing product. An empty input image
// keeps the current one.
func (s *CatalogService) Update(id uint, in ProductInput, image *multipart.FileHeader) (models.Product, error) {
	p, err := s.Find(id)
	if err != nil {
		return models.Product{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Price < 0 {
		return models.Product{}, ErrInvalidProduct
	}

	p.Name = in.Name
	p.Price = in.Price
	if in.Stock >= 0 {
		p.Stock = in.Stock
	}
	if image != nil {
		path, err := storage.SaveUpload("products", image)
		if err != nil {
			return models.Product{}, err
		}
		p.Image = path
	} else if in.Image != "" {
		p.Image = in.Image
	}

	if err := s.products.Update(&p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Delete removes a product from the catalog. Past order items keep their
// own copy of name and price, so reports stay intact.
func (s *CatalogService) Delete(id uint) error {
	if _, err := s.Find(id); err != nil {
		return err
	}
	return s.products.Delete(id)
}

// WriteXLSX streams the catalog as an Excel workbook for offline stock
// taking.
func (s *CatalogService) WriteXLSX(w io.Writer) error {
	products, err := s.products.All()
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Price", "Stock", "Image"} {
		header.AddCell().Value = h
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt64(int64(p.ID))
		row.AddCell().Value = p.Name
		row.AddCell().Value = "Rp " + whatsapp.FormatRupiah(p.Price)
		row.AddCell().SetInt(p.Stock)
		row.AddCell().Value = p.Image
	}

	return file.Write(w)
}
