package utils

import (
	"context"
	"fmt"
	"strings"
)

// StaticAirport is a built-in airport catalog entry.
type StaticAirport struct {
	Name    string
	City    string
	Country string
}

var staticAirlines = map[string]string{
	"AF": "Air France",
	"TP": "TAP Air Portugal",
	"UX": "Air Europa",
	"IB": "Iberia",
	"LA": "LATAM Airlines",
	"AA": "American Airlines",
	"AZ": "ITA Airways",
	"KL": "KLM Royal Dutch Airlines",
	"LH": "Lufthansa",
	"TK": "Turkish Airlines",
}

var staticAirports = map[string]StaticAirport{
	"GRU": {"Guarulhos International Airport", "São Paulo", "Brazil"},
	"CDG": {"Charles de Gaulle Airport", "Paris", "France"},
	"HND": {"Haneda Airport", "Tokyo", "Japan"},
	"LIS": {"Humberto Delgado Airport", "Lisbon", "Portugal"},
	"FCO": {"Leonardo da Vinci–Fiumicino Airport", "Rome", "Italy"},
	"MIA": {"Miami International Airport", "Miami", "USA"},
	"MAD": {"Adolfo Suárez Madrid–Barajas Airport", "Madrid", "Spain"},
	"BCN": {"Barcelona–El Prat Airport", "Barcelona", "Spain"},
	"SCL": {"Arturo Merino Benítez Intl", "Santiago", "Chile"},
	"GVA": {"Geneva Airport", "Geneva", "Switzerland"},
	"ATL": {"Hartsfield–Jackson Atlanta International Airport", "Atlanta", "USA"},
	"BOS": {"Logan International Airport", "Boston", "USA"},
}

// NormalizeCode upper-cases and trims an IATA code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LookupStaticAirline returns the built-in airline name for code.
func LookupStaticAirline(code string) (string, bool) {
	name, ok := staticAirlines[NormalizeCode(code)]
	return name, ok
}

// LookupStaticAirport returns the built-in airport entry for code.
func LookupStaticAirport(code string) (StaticAirport, bool) {
	a, ok := staticAirports[NormalizeCode(code)]
	return a, ok
}

// AirportDescription formats "Name (CODE), City, Country", leaving out the
// parts that are empty.
func AirportDescription(code, name, city, country string) string {
	if name == "" {
		return code
	}
	desc := fmt.Sprintf("%s (%s)", name, code)
	for _, part := range []string{city, country} {
		if part != "" {
			desc += ", " + part
		}
	}
	return desc
}

// StaticNameResolver resolves names from the built-in catalog only.
type StaticNameResolver struct{}

// AirlineName returns the airline name or the code itself.
func (StaticNameResolver) AirlineName(_ context.Context, code string) string {
	if name, ok := LookupStaticAirline(code); ok {
		return name
	}
	return NormalizeCode(code)
}

// AirportName returns the airport description or the code itself.
func (StaticNameResolver) AirportName(_ context.Context, code string) string {
	code = NormalizeCode(code)
	if a, ok := LookupStaticAirport(code); ok {
		return AirportDescription(code, a.Name, a.City, a.Country)
	}
	return code
}
