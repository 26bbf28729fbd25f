// Package card builds the visual tree of a shoe product card and writes it
// out as HTML.
package card

import (
	"github.com/mamadbah2/shoecard/internal/domain/models"
	"github.com/mamadbah2/shoecard/internal/format"
	"github.com/mamadbah2/shoecard/internal/render/theme"
)

// Render builds the card for shoe. The variant decides the badge, the price
// treatment and whether the sale price is shown; shoe.SalePrice is only read
// for its amount, falling back to the base price when absent.
func Render(shoe models.Shoe, variant models.Variant) *Node {
	imageWrapper := el(KindImageWrapper, imageWrapperStyle)
	if b, ok := badges[variant]; ok {
		imageWrapper.Children = append(imageWrapper.Children, text(KindBadge, b.style, b.label))
	}
	imageWrapper.Children = append(imageWrapper.Children, &Node{
		Kind:  KindImage,
		Style: imageStyle,
		Attrs: []Attr{{"alt", ""}, {"src", shoe.ImageSrc}},
	})

	colorRow := el(KindRow, rowStyle,
		text(KindColorInfo, colorInfoStyle, format.Pluralize("Color", shoe.NumOfColors)),
	)
	if variant == models.VariantOnSale {
		colorRow.Children = append(colorRow.Children,
			text(KindSalePrice, salePriceStyle, format.FormatPrice(shoe.EffectivePrice())))
	}

	article := el(KindArticle, articleStyle,
		imageWrapper,
		spacer(theme.SpaceAfterImage),
		el(KindRow, rowStyle,
			text(KindName, nameStyle, shoe.Name),
			text(KindPrice, priceStyle(variant), format.FormatPrice(shoe.Price)),
		),
		colorRow,
		spacer(theme.SpaceAfterCard),
	)
	article.Attrs = []Attr{{"data-variant", string(variant)}}

	link := el(KindLink, linkStyle, article)
	link.Attrs = []Attr{{"href", shoe.Href()}}
	return link
}
