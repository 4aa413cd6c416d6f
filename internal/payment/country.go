package payment

import "strings"

// defaultCountry is used when the stored country cannot be mapped.
const defaultCountry = "IN"

// Stripe only accepts ISO 3166-1 alpha-2 codes in addresses, while stored
// addresses carry whatever the client typed.
var countryNames = map[string]string{
	"india":                    "IN",
	"bharat":                   "IN",
	"usa":                      "US",
	"united states":            "US",
	"united states of america": "US",
	"america":                  "US",
	"uk":                       "GB",
	"united kingdom":           "GB",
	"great britain":            "GB",
	"england":                  "GB",
	"canada":                   "CA",
	"australia":                "AU",
	"germany":                  "DE",
	"france":                   "FR",
	"singapore":                "SG",
	"nepal":                    "NP",
	"sri lanka":                "LK",
	"bangladesh":               "BD",
	"united arab emirates":     "AE",
	"uae":                      "AE",
}

func countryCode(country string) string {
	c := strings.TrimSpace(country)
	if code, ok := countryNames[strings.ToLower(c)]; ok {
		return code
	}
	if len(c) == 2 && isASCIILetters(c) {
		return strings.ToUpper(c)
	}
	return defaultCountry
}

func isASCIILetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
