package listsync

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/megamix/internal/storefront"
)

// FormatDate renders a wire date for display. Values that do not parse are
// returned unchanged.
func FormatDate(raw string, tag language.Tag) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	parsed, ok := parseWireDate(trimmed)
	if !ok {
		return raw
	}
	return parsed.Format(dateLayout(tag))
}

func parseWireDate(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, storefront.DateLayout} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func dateLayout(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == "en" {
		return "01/02/2006"
	}
	return "02/01/2006"
}

// FormatPrice renders amount in unit for the locale. A zero unit falls back
// to a plain two-decimal number.
func FormatPrice(amount float64, unit currency.Unit, tag language.Tag) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	p := message.NewPrinter(tag)
	if unit == (currency.Unit{}) {
		return p.Sprintf("%.2f", amount)
	}
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}

// FormatRating renders a rating rate and count.
func FormatRating(r storefront.Rating, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%.1f (%d)", r.Rate, r.Count)
}
