package mailer

import (
	"html/template"
	"strings"
)

// Placeholder text for optional fields the submitter left empty. Gendered to
// match the Spanish field names (empresa vs. teléfono/servicio).
const (
	notSpecifiedF = "No especificada"
	notSpecifiedM = "No especificado"
)

var contactTemplate = template.Must(template.New("contact").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #1A3C34; border-bottom: 2px solid #C06E52; padding-bottom: 10px;">
        Nuevo Mensaje de Contacto - CAOJAMBO
    </h2>
    <table style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8; font-weight: bold; color: #1A3C34;">Nombre:</td>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8;">{{.Name}}</td>
        </tr>
        <tr>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8; font-weight: bold; color: #1A3C34;">Empresa:</td>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8;">{{.Company}}</td>
        </tr>
        <tr>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8; font-weight: bold; color: #1A3C34;">Email:</td>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8;"><a href="mailto:{{.Email}}" style="color: #C06E52;">{{.Email}}</a></td>
        </tr>
        <tr>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8; font-weight: bold; color: #1A3C34;">Teléfono:</td>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8;">{{.Phone}}</td>
        </tr>
        <tr>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8; font-weight: bold; color: #1A3C34;">Servicio de Interés:</td>
            <td style="padding: 10px 0; border-bottom: 1px solid #E5E0D8;">{{.ServiceInterest}}</td>
        </tr>
    </table>
    <div style="margin-top: 20px; padding: 15px; background-color: #FDFBF7; border-left: 4px solid #C06E52;">
        <h3 style="color: #1A3C34; margin-top: 0;">Mensaje:</h3>
        <p style="color: #5C5C5C; line-height: 1.6;">{{.Message}}</p>
    </div>
    <p style="margin-top: 20px; font-size: 12px; color: #5C5C5C;">
        Este mensaje fue enviado desde el formulario de contacto de la web De Origen Natural Company.
    </p>
</div>
`))

// renderContactNotification produces the HTML body for a contact notification.
// Submitted fields are escaped by html/template; empty optional fields render
// as a human-readable placeholder.
func renderContactNotification(n ContactNotification) (string, error) {
	if n.Company == "" {
		n.Company = notSpecifiedF
	}
	if n.Phone == "" {
		n.Phone = notSpecifiedM
	}
	if n.ServiceInterest == "" {
		n.ServiceInterest = notSpecifiedM
	}

	var b strings.Builder
	if err := contactTemplate.Execute(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
