package models

import (
	"net/url"
	"time"
)

// Variant is the mutually exclusive display mode of a shoe card.
type Variant string

const (
	VariantNewRelease Variant = "new-release"
	VariantOnSale     Variant = "on-sale"
	VariantDefault    Variant = "default"
)

// Shoe is a single catalog entry as supplied by a catalog source.
type Shoe struct {
	Slug        string    `bson:"slug" json:"slug"`
	Name        string    `bson:"name" json:"name"`
	ImageSrc    string    `bson:"image_src" json:"imageSrc"`
	Price       Money     `bson:"price" json:"price"`
	SalePrice   *Money    `bson:"sale_price,omitempty" json:"salePrice,omitempty"`
	ReleaseDate time.Time `bson:"release_date" json:"releaseDate"`
	NumOfColors int       `bson:"num_of_colors" json:"numOfColors"`
}

// Href is the navigable reference for the shoe's detail page.
func (s Shoe) Href() string {
	return "/shoe/" + url.PathEscape(s.Slug)
}

// EffectivePrice is what a customer pays today.
func (s Shoe) EffectivePrice() Money {
	if s.SalePrice != nil {
		return *s.SalePrice
	}
	return s.Price
}
