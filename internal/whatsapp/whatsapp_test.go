package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/internal/whatsapp"
)

func TestFormatRupiah(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1.000",
		15000:    "15.000",
		1250000:  "1.250.000",
		-7000:    "-7.000",
		10000000: "10.000.000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, whatsapp.FormatRupiah(amount))
	}
}

func TestBuildMessage(t *testing.T) {
	order := models.Order{
		CustName: "Budi",
		CustWA:   "08123456789",
		Address:  "Jl. Melati 5",
		Payment:  "Transfer",
		Total:    19000,
	}
	items := []models.OrderItem{
		{Name: "Teh Botol 450ml", Qty: 2, SubTotal: 12000},
		{Name: "Es Teh Manis Cup", Qty: 1, SubTotal: 7000},
	}

	msg := whatsapp.BuildMessage(order, items)
	lines := strings.Split(msg, "\n")

	require.Len(t, lines, 9)
	assert.Equal(t, "Hubungi Kami", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "Teh Botol 450ml x2 - Rp 12.000", lines[2])
	assert.Equal(t, "Es Teh Manis Cup x1 - Rp 7.000", lines[3])
	assert.Equal(t, "Total: Rp 19.000", lines[4])
	assert.Equal(t, "Nama: Budi", lines[5])
	assert.Equal(t, "No WA: 08123456789", lines[6])
	assert.Equal(t, "Alamat: Jl. Melati 5", lines[7])
	assert.Equal(t, "Pembayaran: Transfer", lines[8])
}

func TestRedirectURL(t *testing.T) {
	link := whatsapp.RedirectURL("628123", "Hubungi Kami\n\nTotal: Rp 5.000")

	require.True(t, strings.HasPrefix(link, "https://wa.me/628123?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hubungi Kami\n\nTotal: Rp 5.000", u.Query().Get("text"))
}
