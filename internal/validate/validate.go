// Package validate decodes and checks bookmark creation payloads.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"reflect"
	"strings"

	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/go-playground/validator/v10"
)

const (
	MinRating = 0
	MaxRating = 5
)

const (
	MsgInvalidBody = "invalid request body"
	MsgInvalidURL  = "url must be a valid URL"
)

var MsgRating = fmt.Sprintf("rating must be a number between %d and %d", MinRating, MaxRating)

// ValidationError reports the first problem found in a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func requiredError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("'%s' is required", field)}
}

// Rating keeps the raw JSON of the rating field so that a value of the wrong
// type is reported as a rating error rather than a body decoding error.
type Rating []byte

func (r *Rating) UnmarshalJSON(b []byte) error {
	*r = append((*r)[:0], b...)
	return nil
}

// Present reports whether the field was sent with a non-null value.
func (r Rating) Present() bool {
	return len(r) > 0 && string(r) != "null"
}

// Int returns the rating when it is a JSON integer within bounds.
func (r Rating) Int() (int, bool) {
	var f float64
	if err := json.Unmarshal(r, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f < MinRating || f > MaxRating {
		return 0, false
	}
	return int(f), true
}

// CreateBookmarkRequest is the body of POST /bookmarks.
// Field order is the order in which fields are checked.
type CreateBookmarkRequest struct {
	Title       string `json:"title" validate:"required"`
	URL         string `json:"url" validate:"required,absurl"`
	Description string `json:"description"`
	Rating      Rating `json:"rating" validate:"present,stars"`
}

// Bookmark converts a validated request into a bookmark without an id.
func (r CreateBookmarkRequest) Bookmark() model.Bookmark {
	rating, _ := r.Rating.Int()
	return model.Bookmark{
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
		Rating:      rating,
	}
}

// Validator checks bookmark payloads.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the bookmark-specific rules registered.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("absurl", isAbsoluteURL)
	_ = v.RegisterValidation("present", isRatingPresent)
	_ = v.RegisterValidation("stars", isRatingInRange)

	return &Validator{validate: v}
}

// Decode reads a CreateBookmarkRequest from body and validates it.
func (v *Validator) Decode(body io.Reader) (CreateBookmarkRequest, error) {
	var req CreateBookmarkRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return CreateBookmarkRequest{}, &ValidationError{Message: MsgInvalidBody}
	}

	if err := v.Validate(req); err != nil {
		return CreateBookmarkRequest{}, err
	}

	return req, nil
}

// Validate returns a *ValidationError for the first failing field, or nil.
func (v *Validator) Validate(req CreateBookmarkRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validating bookmark request: %w", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required", "present":
		return requiredError(fe.Field())
	case "absurl":
		return &ValidationError{Field: fe.Field(), Message: MsgInvalidURL}
	case "stars":
		return &ValidationError{Field: fe.Field(), Message: MsgRating}
	default:
		return &ValidationError{Field: fe.Field(), Message: MsgInvalidBody}
	}
}

// IsAbsoluteURL reports whether raw has both a scheme and a host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func isAbsoluteURL(fl validator.FieldLevel) bool {
	return IsAbsoluteURL(fl.Field().String())
}

func ratingOf(fl validator.FieldLevel) (Rating, bool) {
	r, ok := fl.Field().Interface().(Rating)
	return r, ok
}

func isRatingPresent(fl validator.FieldLevel) bool {
	r, ok := ratingOf(fl)
	return ok && r.Present()
}

func isRatingInRange(fl validator.FieldLevel) bool {
	r, ok := ratingOf(fl)
	if !ok {
		return false
	}
	_, valid := r.Int()
	return valid
}
