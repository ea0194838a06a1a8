package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// VerificationLabel is the coarse outcome of an image assessment.
type VerificationLabel string

// Verification labels.
const (
	LabelAuthentic   VerificationLabel = "authentic"
	LabelManipulated VerificationLabel = "manipulated"
	LabelUncertain   VerificationLabel = "uncertain"
)

// ImageVerificationPrompt is sent to the vision model with the image.
const ImageVerificationPrompt = "Analyze the image at this URL. Is it a real photo of a disaster scene, " +
	"such as a flood, fire, or earthquake? Is it likely manipulated or AI-generated? Give a brief assessment."

// DefaultImageMIMEType is assumed when the image host sends no content type.
const DefaultImageMIMEType = "image/jpeg"

var (
	authenticWords   = regexp.MustCompile(`(?i)\b(authentic|genuine|real)\b`)
	manipulatedWords = regexp.MustCompile(`(?i)\b(manipulated|fake|ai-generated)\b`)
)

// Image is a downloaded image ready for inline submission to a model.
type Image struct {
	Data     []byte
	MIMEType string
}

// ImageAssessment is the model's free-text verdict on an image.
type ImageAssessment struct {
	Text string
}

// Label classifies the assessment. Authentic wording is checked first.
func (a ImageAssessment) Label() VerificationLabel {
	switch {
	case authenticWords.MatchString(a.Text):
		return LabelAuthentic
	case manipulatedWords.MatchString(a.Text):
		return LabelManipulated
	default:
		return LabelUncertain
	}
}

// VerifyImageRequest asks for a report's image to be assessed.
type VerifyImageRequest struct {
	DisasterID string
	ReportID   string
	ImageURL   string
	UserID     string
}

// Validate requires both identifiers and an absolute http(s) image URL.
func (r VerifyImageRequest) Validate() error {
	if strings.TrimSpace(r.ImageURL) == "" || strings.TrimSpace(r.ReportID) == "" {
		return NewValidationError("", "Image URL and report_id are required.")
	}
	u, err := url.Parse(r.ImageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewValidationErrorWithValue("image_url", "must be an absolute http(s) URL", r.ImageURL)
	}
	return nil
}
