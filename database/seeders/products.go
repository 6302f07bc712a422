package seeders

import (
	"net/url"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/config"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
)

func init() {
	Register("sample_products", SampleProducts)
}

const defaultSampleStock = 99

// sampleCatalog is the starter drink catalog a fresh install gets, so the
// shop front is not an empty page on first run. Prices in whole Rupiah.
var sampleCatalog = []struct {
	name  string
	price int64
}{
	{"Air Mineral 600ml", 4000},
	{"Air Mineral 1.5L", 7000},
	{"Galon Isi Ulang", 20000},
	{"Galon Baru", 45000},
	{"Teh Botol 450ml", 6000},
	{"Teh Pucuk 250ml", 5000},
	{"Es Teh Manis Cup", 5500},
	{"Jeruk Nipis Madu", 6500},
	{"Kopi Susu Botol", 9000},
	{"Susu UHT Cokelat", 7500},
	{"Air Soda 330ml", 8000},
	{"Isotonik 500ml", 8500},
}

// SampleProducts inserts the starter catalog. Each row gets a placeholder
// image built by templating the product name into an image-search URL.
// Individual insert failures are logged and skipped; a partially seeded or
// even empty catalog is not worth failing startup over.
func SampleProducts(db *gorm.DB) error {
	if !config.SeedSampleProducts() {
		return nil
	}

	for _, s := range sampleCatalog {
		p := models.Product{
			Name:  s.name,
			Price: s.price,
			Image: "https://source.unsplash.com/800x600/?drink," + url.QueryEscape(s.name),
			Stock: defaultSampleStock,
		}
		if err := db.Create(&p).Error; err != nil {
			logger.Warn("seeders: sample product insert failed", "name", s.name, "error", err)
		}
	}
	return nil
}
