package service

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	cropMaxTokens    = 400
	climateMaxTokens = 600
)

const cropSystemPrompt = `
You are a helpful agricultural assistant. When asked about a crop, provide a concise factual JSON only (no surrounding text).
Return fields exactly as in the schema described and valid JSON. If uncertain, provide best guess and set "confidence" to "low" or "medium".

If you cannot find relevant data, return empty strings for dates and color_hex, and "low" confidence with explanation. Do not invent data.

Schema (JSON keys):
{
  "culture": "<original input>",
  "region": "<region or empty string>",
  "average_sowing_date": "MM-DD",
  "end_of_season": "MM-DD",
  "color_hex": "#RRGGBB",
  "confidence": "low|medium|high",
  "source_explanation": "short plain text justification (<= 30 words)"
}

Field meaning:
- average_sowing_date: the typical time of year this crop is sown.
- end_of_season: the typical time of year this crop is harvested.
- color_hex: a web color representing the crop.

Important:
- RETURN ONLY JSON, no markdown, no backticks, no commentary.
- Dates MUST be in zero-padded two-digit month/day format MM-DD (e.g. 03-15 for 15 March).
- If only month-level known, pick the 15th of that month as the average (e.g. May => 05-15).
- color_hex must be a valid web hex (# followed by 6 hex digits). Prefer colors that intuitively match the crop.
- Keep source_explanation short (<= 30 words) and factual (e.g. "Typical temperate sowing window; crop matures ~90 days").

Answer strictly in JSON following the schema.
`

const climateSystemPrompt = `
You are a climate data assistant. When given an address or location, provide monthly temperature and rainfall data.
Return fields exactly as in the schema and valid JSON only (no surrounding text).

Schema (JSON keys):
{
  "address": "<original input>",
  "latitude": <number or null>,
  "longitude": <number or null>,
  "postalCode": <string or null>,
  "monthly_temperatures": [<12 numbers in Celsius, Jan-Dec>],
  "monthly_rainfall": [<12 numbers in mm, Jan-Dec>],
  "confidence": "low|medium|high",
  "source_explanation": "short explanation (<= 50 words)"
}

Important:
- RETURN ONLY JSON, no markdown, no backticks, no commentary.
- monthly_temperatures and monthly_rainfall MUST be arrays of exactly 12 numbers.
- If postal code is provided, use it; otherwise estimate based on the address.
- Provide typical/average climate data for the location.
`

func cropUserPrompt(culture, region string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Crop: %q", culture)
	if region != "" {
		fmt.Fprintf(&b, "; Region: %q", region)
	}
	b.WriteString(". Provide the JSON as requested.")
	return b.String()
}

// climateUserPrompt only mentions what the geocoder actually found.
func climateUserPrompt(address, postalCode string, lat, lon *float64) string {
	var parts []string
	if postalCode != "" {
		parts = append(parts, "Postal code: "+postalCode)
	}
	parts = append(parts, fmt.Sprintf("Address: %q", address))
	if lat != nil && lon != nil {
		parts = append(parts, fmt.Sprintf("Latitude: %s, Longitude: %s", formatCoord(*lat), formatCoord(*lon)))
	}
	return strings.Join(parts, "; ") + ". Provide monthly climate data as JSON."
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
