package listsync

import (
	"strings"
	"testing"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/louisbranch/megamix/internal/storefront"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		tag  language.Tag
		want string
	}{
		{name: "english wire date", raw: "2020-03-02", tag: language.AmericanEnglish, want: "03/02/2020"},
		{name: "portuguese wire date", raw: "2020-03-02", tag: language.BrazilianPortuguese, want: "02/03/2020"},
		{name: "rfc3339", raw: "2020-03-02T00:00:00.000Z", tag: language.English, want: "03/02/2020"},
		{name: "unparsable kept", raw: "yesterday", tag: language.English, want: "yesterday"},
		{name: "empty", raw: "  ", tag: language.English, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDate(tc.raw, tc.tag); got != tc.want {
				t.Fatalf("FormatDate(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	if got := FormatPrice(109.95, currency.Unit{}, language.English); got != "109.95" {
		t.Fatalf("plain price = %q", got)
	}
	if got := FormatPrice(5, currency.BRL, language.BrazilianPortuguese); !strings.Contains(got, "5") {
		t.Fatalf("currency price = %q", got)
	}
}

func TestFormatRating(t *testing.T) {
	t.Parallel()

	got := FormatRating(storefront.Rating{Rate: 3.9, Count: 120}, language.English)
	if got != "3.9 (120)" {
		t.Fatalf("FormatRating() = %q", got)
	}
}
