package generator

// Base exchange rates expressed as currency units per USD. Approximate,
// used as anchors for the randomized fluctuation.
var baseRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.85,
	"GBP": 0.75,
	"JPY": 110.0,
	"THB": 35.0,
	"SGD": 1.35,
	"AUD": 1.45,
	"CAD": 1.25,
}

var currencies = []string{"USD", "EUR", "GBP", "JPY", "THB", "SGD", "AUD", "CAD"}

var countries = []string{"US", "UK", "Germany", "Japan", "Thailand", "Singapore", "Australia", "Canada"}
