package model

// CountryOption is one entry of the country drop-down.
type CountryOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var countryOptions = []CountryOption{
	{Code: "BR", Name: "Brazil"},
	{Code: "FR", Name: "France"},
	{Code: "DE", Name: "Germany"},
	{Code: "IN", Name: "India"},
}

// CountryOptions returns the selectable countries in display order.
// The slice is a copy; callers may modify it freely.
func CountryOptions() []CountryOption {
	out := make([]CountryOption, len(countryOptions))
	copy(out, countryOptions)
	return out
}

// CountryName resolves a country code to its display name.
// Unknown codes are returned unchanged; the country is never validated.
func CountryName(code string) string {
	for _, opt := range countryOptions {
		if opt.Code == code {
			return opt.Name
		}
	}
	return code
}
