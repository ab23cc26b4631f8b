package ticket

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

// RegisterValidators installs the enum validators used by the ticket
// form bindings on gin's shared validator engine.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("ticketpriority", func(fl validator.FieldLevel) bool {
		return vo.Priority(fl.Field().String()).IsValid()
	})

	_ = v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
		return vo.TicketStatus(fl.Field().String()).IsValid()
	})
}
