package handlers

import (
	"errors"
	"net/http"

	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/contact"
	"github.com/fikanova/portfolio/internal/content"
	"github.com/fikanova/portfolio/internal/domain"
	"github.com/fikanova/portfolio/internal/middleware"
	"github.com/fikanova/portfolio/internal/view"
	"github.com/fikanova/portfolio/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// User-facing messages for the send pipeline's failure modes. The
// domain-verification one is deliberately actionable: it tells the sender
// how to still get through while the operator fixes the email setup.
const (
	msgDomainNotVerified = "The contact form cannot deliver messages right now because the sending domain is not verified. Please reach out by email directly."
	msgSendFailed        = "Something went wrong sending your message. Please try again later."
	msgInvalidBody       = "Invalid request body."
)

// ContactHandler handles the contact page and both submission paths: the
// JSON API and the progressive-enhancement form.
type ContactHandler struct {
	service  *contact.Service
	resolver *content.Resolver
	site     *config.Site
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(service *contact.Service, resolver *content.Resolver, site *config.Site) *ContactHandler {
	return &ContactHandler{
		service:  service,
		resolver: resolver,
		site:     site,
	}
}

// ContactGet renders the contact page (GET /contact). A service query
// parameter pre-selects the matching service in the form.
func (h *ContactHandler) ContactGet(c echo.Context) error {
	form := pages.ContactFormData{}
	if svc := c.QueryParam("service"); domain.IsServiceCategory(svc) {
		form.ServiceType = svc
	}

	data := pages.ContactData{
		Settings: h.resolver.ContactSettings(c.Request().Context()),
		Form:     form,
	}
	return renderPage(c, http.StatusOK, "Contact", h.site, pages.Contact(data))
}

// ContactPostAPI handles JSON submissions (POST /api/contact).
func (h *ContactHandler) ContactPostAPI(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required and must be valid."})
	}

	ref, err := h.service.Submit(c.Request().Context(), contact.Submission{
		Name:        req.Name,
		Email:       req.Email,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDomainNotVerified):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: msgDomainNotVerified})
		case errors.Is(err, domain.ErrEmailRejected):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			middleware.FromContext(c.Request().Context()).Error("Contact submission failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgSendFailed})
		}
	}

	return c.JSON(http.StatusOK, ContactResponse{Success: true, Reference: ref})
}

// ContactPostForm handles form submissions (POST /contact). An htmx request
// gets the form panel swapped in place; a plain browser post gets flash
// messages and a redirect.
func (h *ContactHandler) ContactPostForm(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return h.formFailure(c, pages.ContactFormData{FormError: msgInvalidBody})
	}

	form := pages.ContactFormData{
		Name:        req.Name,
		Email:       req.Email,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	}

	if err := c.Validate(&req); err != nil {
		form.FieldErrors = fieldMessages(err)
		return h.formFailure(c, form)
	}

	_, err := h.service.Submit(c.Request().Context(), contact.Submission{
		Name:        req.Name,
		Email:       req.Email,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDomainNotVerified):
			form.FormError = msgDomainNotVerified
		case errors.Is(err, domain.ErrEmailRejected):
			form.FormError = err.Error()
		default:
			middleware.FromContext(c.Request().Context()).Error("Contact submission failed", "error", err)
			form.FormError = msgSendFailed
		}
		return h.formFailure(c, form)
	}

	if isHTMX(c) {
		return renderPartial(c, http.StatusOK, pages.ContactFormPanel(pages.ContactFormData{Submitted: true}))
	}
	view.SetFlashSuccess(c, "Message sent. You will hear back within two working days.")
	return c.Redirect(http.StatusSeeOther, "/contact")
}

// formFailure re-renders the form with its errors for htmx, or falls back
// to a flash message and redirect for plain browsers.
func (h *ContactHandler) formFailure(c echo.Context, form pages.ContactFormData) error {
	if isHTMX(c) {
		return renderPartial(c, http.StatusOK, pages.ContactFormPanel(form))
	}

	message := form.FormError
	if message == "" {
		message = "Please correct the highlighted fields and try again."
	}
	view.SetFlashError(c, message)
	return c.Redirect(http.StatusSeeOther, "/contact")
}
