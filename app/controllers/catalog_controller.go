package controllers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/tokoku/app/services"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
	"github.com/shashiranjanraj/tokoku/pkg/response"
)

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

// List is the public storefront catalog.
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List()
	if err != nil {
		logger.Error("catalog: list", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load products")
		return
	}
	response.Success(w, products)
}

func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.Find(idParam(r))
	if errors.Is(err, services.ErrProductNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load product")
		return
	}
	response.Success(w, product)
}

func (c *CatalogController) Create(w http.ResponseWriter, r *http.Request) {
	in, image, err := productForm(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.service.Create(in, image)
	if errors.Is(err, services.ErrInvalidProduct) {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		logger.Error("catalog: create", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not create product")
		return
	}
	response.Created(w, product)
}

func (c *CatalogController) Update(w http.ResponseWriter, r *http.Request) {
	in, image, err := productForm(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.service.Update(idParam(r), in, image)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrInvalidProduct):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		logger.Error("catalog: update", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not update product")
	default:
		response.Success(w, product)
	}
}

func (c *CatalogController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.service.Delete(idParam(r))
	if errors.Is(err, services.ErrProductNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		logger.Error("catalog: delete", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not delete product")
		return
	}
	response.Success(w, map[string]string{"status": "deleted"})
}

// Export streams the catalog as an .xlsx workbook.
func (c *CatalogController) Export(w http.ResponseWriter, r *http.Request) {
	filename := "products_" + time.Now().Format("2006-01-02_150405") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := c.service.WriteXLSX(w); err != nil {
		logger.Error("catalog: xlsx export", "error", err)
	}
}

// productForm accepts either multipart (with an optional image file) or
// plain JSON.
func productForm(r *http.Request) (services.ProductInput, *multipart.FileHeader, error) {
	var in services.ProductInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(8 << 20); err != nil {
			return in, nil, errors.New("invalid multipart form")
		}
		in.Name = r.FormValue("name")
		in.Price, _ = strconv.ParseInt(r.FormValue("price"), 10, 64)
		in.Stock, _ = strconv.Atoi(r.FormValue("stock"))
		in.Image = r.FormValue("image")

		var image *multipart.FileHeader
		if files := r.MultipartForm.File["image_file"]; len(files) > 0 {
			image = files[0]
		}
		return in, image, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, nil, errors.New("invalid request body")
	}
	return in, nil, nil
}
