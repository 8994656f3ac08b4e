// Package localex maps an account's BCP-47 locale tag to the short date and
// date-time layouts the display surface uses. Only the day/month order
// differs between the supported regions, so a full CLDR pattern lookup is
// not warranted.
package localex

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	layoutDMY = "2/1/2006"
	layoutMDY = "1/2/2006"
)

var titleCaser = cases.Title(language.Und)

// DateLayout returns the calendar-date layout for the given locale tag.
// Unparseable tags fall back to day-first order.
func DateLayout(locale string) string {
	if monthFirst(locale) {
		return layoutMDY
	}
	return layoutDMY
}

// DateTimeLayout is DateLayout with a 24-hour clock appended, used for the
// "as of" line shown at login.
func DateTimeLayout(locale string) string {
	return DateLayout(locale) + ", 15:04"
}

// Title upper-cases the first letter of each word, locale-neutrally. Used to
// normalize owner names coming from seed files.
func Title(s string) string {
	return titleCaser.String(s)
}

func monthFirst(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	region, _ := tag.Region()
	// The US is the lone month-first holdout among the seeded locales.
	return region.String() == "US"
}
