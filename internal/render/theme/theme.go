// Package theme is the read-only palette, weight and spacing table shared by
// the HTML and terminal card renderers.
package theme

// Color carries the CSS value used in HTML and its closest hex for terminals.
type Color struct {
	CSS string
	Hex string
}

// Palette entries.
var (
	White     = Color{CSS: "hsl(0deg 0% 100%)", Hex: "#FFFFFF"}
	Gray300   = Color{CSS: "hsl(40deg 12% 88%)", Hex: "#E5E1DB"}
	Gray500   = Color{CSS: "hsl(196deg 4% 60%)", Hex: "#959B9E"}
	Gray700   = Color{CSS: "hsl(220deg 5% 40%)", Hex: "#61646B"}
	Gray900   = Color{CSS: "hsl(220deg 3% 20%)", Hex: "#323234"}
	Primary   = Color{CSS: "hsl(340deg 65% 47%)", Hex: "#C62A5E"}
	Secondary = Color{CSS: "hsl(240deg 60% 63%)", Hex: "#6868D9"}
)

// Font weights.
const (
	WeightNormal = 500
	WeightMedium = 600
	WeightBold   = 800
)

// Vertical gaps used by the card, in pixels.
const (
	SpaceAfterImage = 12
	SpaceAfterCard  = 26
)
