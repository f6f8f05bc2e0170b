package pages

import (
	"github.com/fikanova/portfolio/internal/domain"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ContactFormData carries the form's render state across submissions:
// previously-entered values, per-field validation messages and a top-level
// error from the send pipeline.
type ContactFormData struct {
	Name        string
	Email       string
	ServiceType string
	Message     string
	FieldErrors map[string]string
	FormError   string
	Submitted   bool
}

// ContactData feeds the contact page.
type ContactData struct {
	Settings domain.ContactSettings
	Form     ContactFormData
}

// Contact renders the contact page: reach-out details on one side, the
// enquiry form on the other.
func Contact(data ContactData) cmp.Node {
	return g.Div(
		g.Class("pt-24 pb-16 bg-black min-h-screen"),
		g.Div(
			g.Class("container mx-auto px-6 py-16"),
			g.H1(
				g.Class("text-4xl font-light tracking-[0.15em] uppercase mb-16"),
				cmp.Text("Contact"),
			),
			g.Div(
				g.Class("grid grid-cols-1 lg:grid-cols-2 gap-16"),
				contactDetails(data.Settings),
				ContactFormPanel(data.Form),
			),
		),
	)
}

func contactDetails(settings domain.ContactSettings) cmp.Node {
	detail := func(label, value string) cmp.Node {
		if value == "" {
			return nil
		}
		return g.Div(
			g.P(
				g.Class("text-xs tracking-[0.2em] text-white/40 uppercase mb-1"),
				cmp.Text(label),
			),
			g.P(
				g.Class("text-white/80"),
				cmp.Text(value),
			),
		)
	}

	return g.Div(
		g.Class("space-y-8"),
		g.P(
			g.Class("text-white/60 leading-relaxed max-w-md"),
			cmp.Text("Have a project in mind? Send the details and I will get back to you within two working days."),
		),
		detail("Email", settings.Email),
		detail("Phone", settings.Phone),
		detail("Location", settings.Location),
		detail("Availability", settings.AvailabilityStatus),
	)
}

// ContactFormPanel renders the enquiry form. It is also the target of the
// htmx swap, so after a submission the whole panel re-renders in place as
// either the confirmation state or the form with inline errors.
func ContactFormPanel(form ContactFormData) cmp.Node {
	if form.Submitted {
		return contactConfirmation()
	}

	return g.Div(
		g.ID("contact-form-panel"),
		formError(form.FormError),
		g.Form(
			g.Method("post"),
			g.Action("/contact"),
			hx.Post("/contact"),
			hx.Target("#contact-form-panel"),
			hx.Swap("outerHTML"),
			hx.Indicator("#contact-submit"),
			g.Class("space-y-6"),
			textField("name", "Name", "text", form.Name, form.FieldErrors),
			textField("email", "Email", "email", form.Email, form.FieldErrors),
			serviceField(form.ServiceType, form.FieldErrors),
			messageField(form.Message, form.FieldErrors),
			g.Button(
				g.Type("submit"),
				g.ID("contact-submit"),
				g.Class("px-8 py-3 bg-amber-400 text-black text-sm tracking-[0.15em] uppercase hover:bg-amber-300 transition-colors"),
				cmp.Text("Send Message"),
			),
		),
	)
}

func contactConfirmation() cmp.Node {
	return g.Div(
		g.ID("contact-form-panel"),
		g.Class("p-12 border border-amber-400/40 bg-white/[0.02] text-center"),
		g.H2(
			g.Class("text-2xl font-light tracking-wide mb-3"),
			cmp.Text("Message Sent"),
		),
		g.P(
			g.Class("text-white/60 mb-8"),
			cmp.Text("Thanks for reaching out. You will hear back within two working days."),
		),
		g.A(
			g.Href("/contact"),
			g.Class("text-sm tracking-[0.1em] text-amber-400 hover:text-amber-300 uppercase transition-colors"),
			cmp.Text("Send Another Message"),
		),
	)
}

func formError(message string) cmp.Node {
	if message == "" {
		return nil
	}
	return g.Div(
		g.Class("mb-6 p-4 border border-red-500/40 bg-red-500/10 text-red-300 text-sm"),
		cmp.Text(message),
	)
}

func textField(name, label, inputType, value string, errs map[string]string) cmp.Node {
	return g.Div(
		fieldLabel(name, label),
		g.Input(
			g.Type(inputType),
			g.ID(name),
			g.Name(name),
			g.Value(value),
			g.Class(inputClass(name, errs)),
		),
		fieldError(name, errs),
	)
}

func serviceField(selected string, errs map[string]string) cmp.Node {
	options := []cmp.Node{
		g.Option(
			g.Value(""),
			cmp.Text("Select a service"),
			cmp.If(selected == "", g.Selected()),
		),
	}
	for _, category := range domain.ServiceCategories {
		options = append(options, g.Option(
			g.Value(category),
			cmp.Text(domain.CategoryTitle(category)),
			cmp.If(category == selected, g.Selected()),
		))
	}

	return g.Div(
		fieldLabel("serviceType", "Service"),
		g.Select(
			g.ID("serviceType"),
			g.Name("serviceType"),
			g.Class(inputClass("serviceType", errs)),
			cmp.Group(options),
		),
		fieldError("serviceType", errs),
	)
}

func messageField(value string, errs map[string]string) cmp.Node {
	return g.Div(
		fieldLabel("message", "Message"),
		g.Textarea(
			g.ID("message"),
			g.Name("message"),
			g.Rows("6"),
			g.Class(inputClass("message", errs)),
			cmp.Text(value),
		),
		fieldError("message", errs),
	)
}

func fieldLabel(name, label string) cmp.Node {
	return g.Label(
		g.For(name),
		g.Class("block text-xs tracking-[0.2em] text-white/40 uppercase mb-2"),
		cmp.Text(label),
	)
}

func fieldError(name string, errs map[string]string) cmp.Node {
	message, ok := errs[name]
	if !ok {
		return nil
	}
	return g.P(
		g.Class("mt-2 text-sm text-red-400"),
		cmp.Text(message),
	)
}

func inputClass(name string, errs map[string]string) string {
	base := "w-full bg-white/5 border px-4 py-3 text-white focus:outline-none focus:border-amber-400 transition-colors"
	if _, bad := errs[name]; bad {
		return base + " border-red-500/60"
	}
	return base + " border-white/15"
}
