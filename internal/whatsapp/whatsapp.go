// Package whatsapp builds the checkout hand-off: a pre-filled order
// message and the wa.me link that opens it in the customer's WhatsApp.
package whatsapp

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/tokoku/app/models"
)

// FormatRupiah renders an amount with dot thousands separators, the way
// Indonesian receipts print prices: 1250000 -> "1.250.000".
func FormatRupiah(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// BuildMessage renders the plain-text order summary the customer sends
// to the shop: a greeting line, one line per item, then total and
// customer details.
func BuildMessage(order models.Order, items []models.OrderItem) string {
	lines := []string{"Hubungi Kami", ""}
	for _, it := range items {
		lines = append(lines, it.Name+" x"+strconv.Itoa(it.Qty)+" - Rp "+FormatRupiah(it.SubTotal))
	}
	lines = append(lines,
		"Total: Rp "+FormatRupiah(order.Total),
		"Nama: "+order.CustName,
		"No WA: "+order.CustWA,
		"Alamat: "+order.Address,
		"Pembayaran: "+order.Payment,
	)
	return strings.Join(lines, "\n")
}

// RedirectURL builds the wa.me deep link that opens a chat with the shop
// number, message pre-filled.
func RedirectURL(shopPhone, message string) string {
	return "https://wa.me/" + shopPhone + "?text=" + url.QueryEscape(message)
}
