package catalog

import (
	"time"

	"github.com/mamadbah2/shoecard/internal/domain/models"
)

// DefaultRecencyWindow is how long after release a shoe counts as new.
const DefaultRecencyWindow = 30 * 24 * time.Hour

// IsNewShoe reports whether releaseDate falls inside the window ending at now.
// The boundary is inclusive. Zero and future dates are never new.
func IsNewShoe(releaseDate, now time.Time, window time.Duration) bool {
	if releaseDate.IsZero() || releaseDate.After(now) {
		return false
	}
	if window <= 0 {
		window = DefaultRecencyWindow
	}
	return now.Sub(releaseDate) <= window
}

// Classify picks the display variant. A sale always wins over a recent
// release, even when the sale price is zero.
func Classify(salePrice *models.Money, releaseDate, now time.Time, window time.Duration) models.Variant {
	switch {
	case salePrice != nil:
		return models.VariantOnSale
	case IsNewShoe(releaseDate, now, window):
		return models.VariantNewRelease
	default:
		return models.VariantDefault
	}
}

// Classifier applies Classify with a fixed window and an injectable clock.
type Classifier struct {
	Window time.Duration
	Now    func() time.Time
}

// NewClassifier returns a classifier using the wall clock.
func NewClassifier(window time.Duration) Classifier {
	return Classifier{Window: window, Now: time.Now}
}

// Variant classifies shoe against the classifier's current time.
func (c Classifier) Variant(shoe models.Shoe) models.Variant {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return Classify(shoe.SalePrice, shoe.ReleaseDate, now(), c.Window)
}
