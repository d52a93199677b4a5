package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail describes a single violated constraint.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

type ValidationErrorData struct {
	Errors []ValidationErrorDetail `json:"errors"`
}

// BindAndValidate binds the request body into obj and validates it.
// On failure it writes a 411 listing every violated field and returns false.
// Invalid input never reaches the store or the inference gateway.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrors []ValidationErrorDetail

		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range errs {
				detail := ValidationErrorDetail{
					Field:    e.Field(),
					Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag()),
					Expected: e.Param(),
					Received: e.Value(),
				}

				if detail.Expected == "" {
					detail.Expected = e.Tag()
				}

				switch e.Tag() {
				case "required":
					detail.Message = fmt.Sprintf("Field '%s' is required", e.Field())
					detail.Expected = "not null"
				case "oneof":
					detail.Message = fmt.Sprintf("Field '%s' must be one of: %s", e.Field(), e.Param())
				case "min":
					detail.Message = fmt.Sprintf("Field '%s' must be at least %s", e.Field(), e.Param())
					detail.Expected = fmt.Sprintf("min %s", e.Param())
				case "max":
					detail.Message = fmt.Sprintf("Field '%s' must be at most %s", e.Field(), e.Param())
					detail.Expected = fmt.Sprintf("max %s", e.Param())
				case "gt":
					detail.Message = fmt.Sprintf("Field '%s' must be greater than %s", e.Field(), e.Param())
					detail.Expected = fmt.Sprintf("> %s", e.Param())
				}

				validationErrors = append(validationErrors, detail)
			}
		} else if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
			validationErrors = append(validationErrors, ValidationErrorDetail{
				Field:    jsonErr.Field,
				Message:  fmt.Sprintf("Field '%s' has invalid type", jsonErr.Field),
				Expected: jsonErr.Type.String(),
				Received: jsonErr.Value,
			})
		} else {
			validationErrors = append(validationErrors, ValidationErrorDetail{
				Field:    "body",
				Message:  "Malformed JSON or invalid request body",
				Expected: "valid JSON",
				Received: "invalid",
			})
		}

		c.JSON(http.StatusLengthRequired, Response{
			Status:  http.StatusLengthRequired,
			Message: "Input incorrect",
			Data: ValidationErrorData{
				Errors: validationErrors,
			},
		})
		return false
	}
	return true
}
