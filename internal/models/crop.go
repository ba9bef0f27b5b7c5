package models

// CropQuery is the body of POST /api/culture.
type CropQuery struct {
	Culture string `json:"culture" example:"maïs"`
	Region  string `json:"region,omitempty" example:"France"`
}

// CropResult describes the typical sowing and harvest window of a crop.
// Every field is always present; unknown values are empty strings.
type CropResult struct {
	Culture           string `json:"culture"`
	Region            string `json:"region"`
	AverageSowingDate string `json:"average_sowing_date" example:"04-15"`
	EndOfSeason       string `json:"end_of_season" example:"10-15"`
	ColorHex          string `json:"color_hex" example:"#F4C430"`
	Confidence        string `json:"confidence" enums:"low,medium,high"`
	SourceExplanation string `json:"source_explanation"`
}
