package handlers

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"pillowstat/models"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator engine:
// isodate, bookingstatus, paymentstatus, inquirystatus and messagesender.
// Field names in errors follow the json (or form) tag.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, key := range []string{"json", "form"} {
				name, _, _ := strings.Cut(f.Tag.Get(key), ",")
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := models.ParseDate(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("bookingstatus", func(fl validator.FieldLevel) bool {
			return models.BookingStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("paymentstatus", func(fl validator.FieldLevel) bool {
			return models.PaymentStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("inquirystatus", func(fl validator.FieldLevel) bool {
			return models.InquiryStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("messagesender", func(fl validator.FieldLevel) bool {
			s := models.MessageSender(fl.Field().String())
			return s == models.SenderGuest || s == models.SenderHost
		})
	})
}

func joinValues[T ~string](values []T) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}

// bindError turns a gin binding failure into the InvalidInput the services would return.
// Only the first failing field is reported.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return utils.NewInvalidInput("", "Invalid request body")
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return utils.NewInvalidInput(field, "Missing required field: "+field)
	case "isodate":
		return utils.NewInvalidInput(field, "Invalid date for "+field+": use YYYY-MM-DD")
	case "bookingstatus":
		return utils.NewInvalidInput(field, "Invalid status. Must be one of: "+joinValues(models.BookingStatuses))
	case "paymentstatus":
		return utils.NewInvalidInput(field, "Invalid payment status. Must be one of: "+joinValues(models.PaymentStatuses))
	case "inquirystatus":
		return utils.NewInvalidInput(field, "Invalid status. Must be one of: new, contacted, approved, booked, declined")
	case "messagesender":
		return utils.NewInvalidInput(field, `Sender must be either "guest" or "host"`)
	case "gt", "gte", "min":
		return utils.NewInvalidInput(field, field+" must be greater than "+fe.Param())
	default:
		return utils.NewInvalidInput(field, "Invalid value for "+field)
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.RespondError(c, getLogger(c), bindError(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		utils.RespondError(c, getLogger(c), bindError(err))
		return false
	}
	return true
}

// parseDate maps an already validated date string; empty means unset.
func parseDate(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}
	}
	return d
}

func parseDatePtr(s *string) *models.Date {
	if s == nil {
		return nil
	}
	d := parseDate(*s)
	return &d
}
