package domain

import "github.com/shopspring/decimal"

// Format is the delivery format of a digital book.
type Format string

const (
	FormatEPUB Format = "EPUB"
	FormatPDF  Format = "PDF"
	FormatMOBI Format = "MOBI"
)

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	switch f {
	case FormatEPUB, FormatPDF, FormatMOBI:
		return true
	}
	return false
}

type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Genre       string          `json:"genre"`
	Description string          `json:"description,omitempty"`
	CoverImage  string          `json:"coverImage,omitempty"`
	Format      Format          `json:"format"`
	Rating      float64         `json:"rating"`
	Pages       int             `json:"pages"`
	Language    string          `json:"language,omitempty"`
	ReleaseDate string          `json:"releaseDate,omitempty"`
}

// EffectivePrice is the unit price after the discount fraction is applied.
func (p Product) EffectivePrice() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(1).Sub(p.Discount))
}
