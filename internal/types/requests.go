package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultHoursPerWeek is used when the caller does not specify a study pace.
const DefaultHoursPerWeek = 10

// AnalyzeRequest represents the validated inputs to a gap analysis.
// The resume arrives as an uploaded document; JDText or JDURL supplies the
// job description (exactly one is required).
type AnalyzeRequest struct {
	JDText       string `json:"jd_text" validate:"required_without=JDURL"`
	JDURL        string `json:"jd_url,omitempty" validate:"omitempty,url"`
	HoursPerWeek int    `json:"hours_per_week" validate:"min=1,max=80"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
