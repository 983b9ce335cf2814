package handlers

import (
	"errors"
	"net/http"

	"service_engine_x/internal/usecase"
	"service_engine_x/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse is the envelope for binding failures:
// {"message": "...", "errors": {"field": ["msg"]}}.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// bindJSON binds and validates a request body, writing the validation
// envelope on failure. Returns false when the request was rejected.
func bindJSON(c *gin.Context, payload any) bool {
	err := c.ShouldBindJSON(payload)
	if err == nil {
		return true
	}

	fields := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := fe.Field()
			fields[field] = append(fields[field], validationMessage(fe))
		}
	}
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Message: "The given data was invalid.",
		Errors:  fields,
	})
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "min":
		return "Value is below the allowed minimum."
	case "max":
		return "Value is above the allowed maximum."
	default:
		return "Invalid value."
	}
}

// mapUseCaseError translates use case sentinels into transport errors.
// Cross-tenant access surfaces as not found, never as forbidden.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProposalNotFound),
		errors.Is(err, usecase.ErrClientNotFound),
		errors.Is(err, usecase.ErrEngagementNotFound),
		errors.Is(err, usecase.ErrProjectNotFound),
		errors.Is(err, usecase.ErrOrderNotFound),
		errors.Is(err, usecase.ErrOrderTaskNotFound),
		errors.Is(err, usecase.ErrOrderMessageNotFound),
		errors.Is(err, usecase.ErrInvoiceNotFound),
		errors.Is(err, usecase.ErrServiceNotFound),
		errors.Is(err, usecase.ErrTicketNotFound),
		errors.Is(err, usecase.ErrConversationNotFound),
		errors.Is(err, usecase.ErrAccountNotFound),
		errors.Is(err, usecase.ErrContactNotFound),
		errors.Is(err, usecase.ErrOrgNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrProposalStatusConflict),
		errors.Is(err, usecase.ErrProposalAlreadySigned),
		errors.Is(err, usecase.ErrInvoiceStatusTransition),
		errors.Is(err, usecase.ErrProjectPhaseTransition):
		return pkg.NewDomainError("STATUS_CONFLICT", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrClientEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already in use", http.StatusConflict)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid credentials", http.StatusUnauthorized)

	case errors.Is(err, usecase.ErrProposalNoItems),
		errors.Is(err, usecase.ErrInvalidContactEmail),
		errors.Is(err, usecase.ErrInvalidItemPrice),
		errors.Is(err, usecase.ErrUnknownService),
		errors.Is(err, usecase.ErrInvoiceNoItems),
		errors.Is(err, usecase.ErrInvalidInvoiceStatus),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrInvalidOrderPrice),
		errors.Is(err, usecase.ErrEmptyOrderMessage),
		errors.Is(err, usecase.ErrInvalidClientData),
		errors.Is(err, usecase.ErrInvalidProjectStatus),
		errors.Is(err, usecase.ErrInvalidProjectPhase),
		errors.Is(err, usecase.ErrInvalidEngagementStatus),
		errors.Is(err, usecase.ErrInvalidServiceData),
		errors.Is(err, usecase.ErrInvalidTicketStatus),
		errors.Is(err, usecase.ErrEmptyTicketSubject),
		errors.Is(err, usecase.ErrInvalidConversationStatus),
		errors.Is(err, usecase.ErrEmptyConversationSubject),
		errors.Is(err, usecase.ErrInvalidAccountData),
		errors.Is(err, usecase.ErrInvalidContactData),
		errors.Is(err, usecase.ErrInvalidOrgData),
		errors.Is(err, usecase.ErrTokenNameRequired):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapUseCaseError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
