package decoder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/utils"
)

// SourcePnrsh tags itineraries produced by the external pnrsh binary
const SourcePnrsh = "pnrsh"

// ErrDecoderUnavailable is returned when the external binary is not
// configured or cannot be found.
var ErrDecoderUnavailable = errors.New("external segment decoder unavailable")

// pnrshSchema is the subset of the pnrsh output the mapper relies on
const pnrshSchema = `{
  "type": "object",
  "required": ["flightInfo"],
  "properties": {
    "overnights": {"type": "integer", "minimum": 0},
    "flightInfo": {
      "type": "object",
      "required": ["flights"],
      "properties": {
        "flights": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["company", "flight", "departureTime", "landingTime", "departureAirport", "landingAirport"],
            "properties": {
              "company": {"$ref": "#/$defs/coded"},
              "flight": {"type": "string", "minLength": 1},
              "departureTime": {"type": "string", "minLength": 1},
              "landingTime": {"type": "string", "minLength": 1},
              "departureAirport": {"$ref": "#/$defs/coded"},
              "landingAirport": {"$ref": "#/$defs/coded"},
              "overnight": {"type": "boolean"}
            }
          }
        }
      }
    }
  },
  "$defs": {
    "coded": {
      "type": "object",
      "required": ["iataCode"],
      "properties": {
        "iataCode": {"type": "string", "minLength": 2},
        "description": {"type": "string"}
      }
    }
  }
}`

type pnrshCoded struct {
	IataCode    string `json:"iataCode"`
	Description string `json:"description"`
}

type pnrshFlight struct {
	Company          pnrshCoded `json:"company"`
	Flight           string     `json:"flight"`
	DepartureTime    string     `json:"departureTime"`
	LandingTime      string     `json:"landingTime"`
	DepartureAirport pnrshCoded `json:"departureAirport"`
	LandingAirport   pnrshCoded `json:"landingAirport"`
	Overnight        bool       `json:"overnight"`
}

type pnrshOutput struct {
	Overnights int `json:"overnights"`
	FlightInfo struct {
		Flights []pnrshFlight `json:"flights"`
	} `json:"flightInfo"`
}

// CommandRunner runs the binary at path with stdin and returns its stdout
type CommandRunner func(ctx context.Context, path string, stdin []byte) ([]byte, error)

// ProcessDecoder decodes segment lines by piping them through the pnrsh
// binary and mapping its JSON output.
type ProcessDecoder struct {
	path    string
	timeout time.Duration
	schema  *jsonschema.Schema
	run     CommandRunner
	logger  logger.Logger
}

// Option configures a ProcessDecoder
type Option func(*ProcessDecoder)

// WithRunner replaces the process runner
func WithRunner(run CommandRunner) Option {
	return func(d *ProcessDecoder) {
		d.run = run
	}
}

// NewProcessDecoder creates a decoder for the binary at path. Each call is
// bounded by timeout when it is positive.
func NewProcessDecoder(path string, timeout time.Duration, logger logger.Logger, opts ...Option) (*ProcessDecoder, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("pnrsh.json", strings.NewReader(pnrshSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("pnrsh.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	d := &ProcessDecoder{
		path:    path,
		timeout: timeout,
		schema:  schema,
		run:     runCommand,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Decode runs the binary over lines. The binary resolves dates on its own,
// so year is not forwarded.
func (d *ProcessDecoder) Decode(ctx context.Context, lines []string, _ int) (*utils.DecodedItinerary, error) {
	if d.path == "" {
		return nil, ErrDecoderUnavailable
	}
	if _, err := os.Stat(d.path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoderUnavailable, err)
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	out, err := d.run(ctx, d.path, []byte(strings.Join(lines, "\n")))
	if err != nil {
		return nil, fmt.Errorf("run pnrsh: %w", err)
	}

	return d.decodeOutput(out)
}

func (d *ProcessDecoder) decodeOutput(out []byte) (*utils.DecodedItinerary, error) {
	var raw any
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal pnrsh output: %w", err)
	}
	if err := d.schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("pnrsh output does not match schema: %w", err)
	}

	var parsed pnrshOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal pnrsh output: %w", err)
	}

	flights := parsed.FlightInfo.Flights
	if len(flights) == 0 {
		return nil, nil
	}

	it := &utils.DecodedItinerary{
		Source:         SourcePnrsh,
		OvernightCount: parsed.Overnights,
		Legs:           make([]utils.FlightSegment, 0, len(flights)),
	}
	for i, f := range flights {
		dep, err := time.Parse(utils.SEGMENT_TIME_LAYOUT, f.DepartureTime)
		if err != nil {
			return nil, fmt.Errorf("flight %d departure time: %w", i+1, err)
		}
		arr, err := time.Parse(utils.SEGMENT_TIME_LAYOUT, f.LandingTime)
		if err != nil {
			return nil, fmt.Errorf("flight %d landing time: %w", i+1, err)
		}

		it.Legs = append(it.Legs, utils.FlightSegment{
			SegNo:            i + 1,
			CarrierCode:      utils.NormalizeCode(f.Company.IataCode),
			CarrierName:      describe(f.Company),
			FlightNumber:     f.Flight,
			DepartureAirport: utils.NormalizeCode(f.DepartureAirport.IataCode),
			DepartureName:    describe(f.DepartureAirport),
			ArrivalAirport:   utils.NormalizeCode(f.LandingAirport.IataCode),
			ArrivalName:      describe(f.LandingAirport),
			DepartureTime:    dep,
			ArrivalTime:      arr,
			Overnight:        f.Overnight,
		})
	}

	if it.OvernightCount == 0 {
		for _, leg := range it.Legs {
			if leg.Overnight {
				it.OvernightCount++
			}
		}
	}

	d.logger.Debug("pnrsh decoded segments", "legs", len(it.Legs), "overnights", it.OvernightCount)
	return it, nil
}

func describe(c pnrshCoded) string {
	if c.Description != "" {
		return c.Description
	}
	return utils.NormalizeCode(c.IataCode)
}

func runCommand(ctx context.Context, path string, stdin []byte) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path)
	cmd.Stdin = bytes.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
