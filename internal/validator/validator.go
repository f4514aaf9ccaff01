package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/youtube"
)

var validOrders = []interface{}{"time", "relevance"}

// FetchInput carries the user-supplied fields of a fetch request.
type FetchInput struct {
	Video      string
	MaxResults int
	Order      string
}

// QuestionInput carries the user-supplied fields of a question request.
type QuestionInput struct {
	Question string
}

// Validator provides validation methods for incoming requests.
type Validator struct {
	maxResultsCap int
}

// NewValidator creates a new Validator instance. maxResultsCap bounds
// how many comments a single fetch may request.
func NewValidator(maxResultsCap int) *Validator {
	return &Validator{maxResultsCap: maxResultsCap}
}

// ValidateFetch validates a fetch request.
func (v *Validator) ValidateFetch(in *FetchInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Video,
			validation.Required.Error("video_required"),
			validation.By(videoReferenceRule),
		),
		validation.Field(&in.MaxResults,
			validation.Min(0).Error("max_results_negative"),
			validation.Max(v.maxResultsCap).Error("max_results_too_large"),
		),
		validation.Field(&in.Order,
			validation.In(validOrders...).Error("invalid_order"),
		),
	)
}

// ValidateQuestion validates a question request.
func (v *Validator) ValidateQuestion(in *QuestionInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Question,
			validation.Required.Error("question_required"),
			validation.By(notBlankRule),
			validation.By(wordCountRule(300)),
		),
	)
}

// videoReferenceRule rejects references that cannot resolve to a video
// id, so obviously malformed input fails before any network call.
func videoReferenceRule(value interface{}) error {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}
	if _, err := youtube.ExtractVideoID(s); err != nil {
		return validation.NewError("invalid_video_reference", "not a YouTube video URL or id")
	}
	return nil
}

// notBlankRule rejects strings that are only whitespace, which pass
// the plain Required rule.
func notBlankRule(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	if s != "" && strings.TrimSpace(s) == "" {
		return validation.NewError("question_blank", "question is blank")
	}
	return nil
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if len(strings.Fields(strings.TrimSpace(s))) > maxWords {
			return validation.NewError("question_too_long", "question exceeds 300 words")
		}
		return nil
	}
}

// FieldErrors flattens ozzo validation errors into a field to reason
// map for the error response body.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
	} else if err != nil {
		out["request"] = err.Error()
	}
	return out
}
