package utils

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"pnr-quote-service/pkg/logger"
)

// Ex.: "AF 459 14APR GRUCDG HS2 1915 #1115"
//
//	"AF 293 05MAY HNDCDG HS2 0005 0800"
var segmentRe = regexp.MustCompile(`(?i)^\s*([A-Z0-9]{2})\s+(\d{2,4})\s+(\d{2})([A-Z]{3})\s+([A-Z]{3})([A-Z]{3})\s+([A-Z]{1,2}\d?)\s+(\d{3,4})\s+(#?\d{3,4})\s*$`)

const overnightMarker = "#"

var monthMap = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// NameResolver maps airline and airport codes to display names. It must be
// total: an unknown code resolves to itself.
type NameResolver interface {
	AirlineName(ctx context.Context, code string) string
	AirportName(ctx context.Context, code string) string
}

// legTimes carries one leg's reconstructed clock times before rollover.
type legTimes struct {
	departure time.Time
	arrival   time.Time
	marked    bool
}

// overnightRules are evaluated in order; the first match decides that the
// leg lands the next calendar day. No match means same-day arrival.
var overnightRules = []struct {
	name    string
	applies func(legTimes) bool
}{
	{"marker", func(t legTimes) bool { return t.marked }},
	// Arrival clock earlier than departure. Kept as strict less-than; a
	// difference of exactly -12h is negative and therefore overnight too.
	{"clock-rollback", func(t legTimes) bool {
		return t.arrival.Before(t.departure)
	}},
}

// FlightSegmentDecoder decodes itinerary lines into dated flight legs
type FlightSegmentDecoder struct {
	resolver NameResolver
	logger   logger.Logger
}

// NewFlightSegmentDecoder creates a decoder. A nil resolver uses the
// built-in static catalog.
func NewFlightSegmentDecoder(resolver NameResolver, logger logger.Logger) *FlightSegmentDecoder {
	if resolver == nil {
		resolver = StaticNameResolver{}
	}
	return &FlightSegmentDecoder{
		resolver: resolver,
		logger:   logger,
	}
}

// Decode turns lines into flight legs dated in year. Lines outside the
// segment grammar are skipped. It returns nil when no line decodes.
func (d *FlightSegmentDecoder) Decode(ctx context.Context, lines []string, year int) (*DecodedItinerary, error) {
	var legs []FlightSegment
	overnights := 0

	for _, raw := range lines {
		match := segmentRe.FindStringSubmatch(raw)
		if len(match) != 10 {
			continue
		}

		carrier := strings.ToUpper(match[1])
		flightNo := match[2]
		dayStr := match[3]
		monStr := strings.ToUpper(match[4])
		origin := strings.ToUpper(match[5])
		dest := strings.ToUpper(match[6])
		class := strings.ToUpper(match[7])
		depStr := match[8]
		arrStr := match[9]

		times, err := reconstructTimes(year, dayStr, monStr, depStr, arrStr)
		if err != nil {
			d.logger.Warn("Skipping segment line", "line", raw, "error", err)
			continue
		}

		arrival := times.arrival
		overnight := false
		for _, rule := range overnightRules {
			if rule.applies(times) {
				overnight = true
				arrival = arrival.AddDate(0, 0, 1)
				d.logger.Debug("Overnight leg", "flight", carrier+flightNo, "rule", rule.name)
				break
			}
		}
		if overnight {
			overnights++
		}

		legs = append(legs, FlightSegment{
			SegNo:            len(legs) + 1,
			CarrierCode:      carrier,
			CarrierName:      d.resolver.AirlineName(ctx, carrier),
			FlightNumber:     flightNo,
			Class:            class,
			DepartureAirport: origin,
			DepartureName:    d.resolver.AirportName(ctx, origin),
			ArrivalAirport:   dest,
			ArrivalName:      d.resolver.AirportName(ctx, dest),
			DepartureTime:    times.departure,
			ArrivalTime:      arrival,
			Overnight:        overnight,
		})
	}

	if len(legs) == 0 {
		d.logger.Debug("No segment line decoded", "lines", len(lines))
		return nil, nil
	}

	d.logger.Info("Decoded segments", "legs", len(legs), "overnights", overnights)
	return &DecodedItinerary{
		Source:         SourceInternal,
		OvernightCount: overnights,
		Legs:           legs,
	}, nil
}

func reconstructTimes(year int, dayStr, monStr, depStr, arrStr string) (legTimes, error) {
	month, ok := monthMap[monStr]
	if !ok {
		return legTimes{}, fmt.Errorf("invalid month: %s", monStr)
	}

	marked := strings.HasPrefix(arrStr, overnightMarker)
	arrStr = strings.TrimPrefix(arrStr, overnightMarker)

	day := ParseInt(dayStr)
	dep, err := clockOn(year, month, day, depStr)
	if err != nil {
		return legTimes{}, fmt.Errorf("departure: %w", err)
	}
	arr, err := clockOn(year, month, day, arrStr)
	if err != nil {
		return legTimes{}, fmt.Errorf("arrival: %w", err)
	}

	return legTimes{departure: dep, arrival: arr, marked: marked}, nil
}

// clockOn pads hm to four digits, reads HHMM and rejects dates and clock
// values that do not exist instead of letting time.Date normalize them.
func clockOn(year int, month time.Month, day int, hm string) (time.Time, error) {
	if len(hm) < 4 {
		hm = strings.Repeat("0", 4-len(hm)) + hm
	}
	hour := ParseInt(hm[:2])
	minute := ParseInt(hm[2:])
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid time: %s", hm)
	}

	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, fmt.Errorf("invalid date: %02d %s %d", day, month, year)
	}
	return t, nil
}
