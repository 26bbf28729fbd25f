package card

import (
	"slices"

	"github.com/mamadbah2/shoecard/internal/domain/models"
	"github.com/mamadbah2/shoecard/internal/render/theme"
)

var (
	linkStyle = Style{Layout: []Decl{
		{"text-decoration", "none"},
		{"color", "inherit"},
		{"flex", "1 1 340px"},
		{"max-width", "500px"},
	}}
	articleStyle      = Style{Layout: []Decl{{"width", "100%"}}}
	imageWrapperStyle = Style{Layout: []Decl{{"position", "relative"}}}
	imageStyle        = Style{Layout: []Decl{
		{"width", "100%"},
		{"border-radius", "16px 16px 4px 4px"},
	}}
	rowStyle = Style{Layout: []Decl{
		{"font-size", "1rem"},
		{"display", "flex"},
		{"justify-content", "space-between"},
		{"align-items", "baseline"},
	}}
	nameStyle      = Style{Color: theme.Gray900, FontWeight: theme.WeightMedium}
	colorInfoStyle = Style{Color: theme.Gray700}
	salePriceStyle = Style{Color: theme.Primary, FontWeight: theme.WeightMedium}

	badgeBase = Style{
		Layout: []Decl{
			{"position", "absolute"},
			{"top", "12px"},
			{"right", "-4px"},
			{"border-radius", "2px"},
			{"padding", "6px 12px"},
		},
		Color:      theme.White,
		FontSize:   "0.875rem",
		FontWeight: 700,
	}
)

type badge struct {
	label string
	style Style
}

// badges holds the only badge each variant may show. Variants without an
// entry render no badge.
var badges = map[models.Variant]badge{
	models.VariantNewRelease: {label: "Just Released!", style: withBackground(badgeBase, theme.Secondary)},
	models.VariantOnSale:     {label: "Sale", style: withBackground(badgeBase, theme.Primary)},
}

var priceStyles = map[models.Variant]Style{
	models.VariantOnSale: {Color: theme.Gray700, Strikethrough: true},
}

func priceStyle(v models.Variant) Style {
	return priceStyles[v]
}

func withBackground(base Style, bg theme.Color) Style {
	base.Layout = slices.Clone(base.Layout)
	base.Background = bg
	return base
}

func spacer(size int) *Node {
	return &Node{Kind: KindSpacer, Style: Style{Size: size}}
}
