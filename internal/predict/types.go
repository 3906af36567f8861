// Package predict is the boundary to the crime prediction service: request
// validation, the HTTP client used by the map view, and a development server
// that answers with synthesised payloads.
package predict

import (
	"fmt"
	"strings"
)

// Request is the prediction query.
type Request struct {
	Location  string `json:"location"`
	State     string `json:"state"`
	CrimeType string `json:"crimeType"`
	Timeframe string `json:"timeframe"`
}

// Missing lists the JSON names of empty fields in request order.
func (r Request) Missing() []string {
	var out []string
	if strings.TrimSpace(r.Location) == "" {
		out = append(out, "location")
	}
	if strings.TrimSpace(r.State) == "" {
		out = append(out, "state")
	}
	if strings.TrimSpace(r.CrimeType) == "" {
		out = append(out, "crimeType")
	}
	if strings.TrimSpace(r.Timeframe) == "" {
		out = append(out, "timeframe")
	}
	return out
}

// MissingError reports absent request fields.
type MissingError struct {
	Fields []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("Missing required parameters: %s", strings.Join(e.Fields, ", "))
}

// Validate returns a *MissingError when any field is empty.
func (r Request) Validate() error {
	if m := r.Missing(); len(m) > 0 {
		return &MissingError{Fields: m}
	}
	return nil
}

// CrimeShare is one slice of the crime breakdown, in percent.
type CrimeShare struct {
	Type       string  `json:"type"`
	Percentage float64 `json:"percentage"`
}

// TimePattern is the share of incidents per part of the day, in percent.
type TimePattern struct {
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Night     float64 `json:"night"`
}

// Factor is a socioeconomic factor and its impact score.
type Factor struct {
	Factor string  `json:"factor"`
	Impact float64 `json:"impact"`
}

// Prediction is the service response.
type Prediction struct {
	RiskLevel            float64      `json:"riskLevel"`
	CrimeBreakdown       []CrimeShare `json:"crimeBreakdown"`
	TimePattern          TimePattern  `json:"timePattern"`
	SocioeconomicFactors []Factor     `json:"socioeconomicFactors"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Known crime types and timeframes offered by the prediction form.
var (
	CrimeTypes = []string{"violent", "theft", "cyber", "other"}
	Timeframes = []string{"week", "month", "quarter", "year"}
)
