package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailTemplatesParse(t *testing.T) {
	templates, err := ParseMailTemplates()
	require.NoError(t, err)

	for _, name := range []string{
		"test.html",
		"appointment_confirmation.html",
		"appointment_reminder.html",
		"invoice_alert.html",
		"welcome.html",
		"password_reset.html",
		"user_to_admin.html",
	} {
		assert.NotNil(t, templates.Lookup(name), "missing template %s", name)
	}
}

func TestRenderAppointmentConfirmation(t *testing.T) {
	templates, err := ParseMailTemplates()
	require.NoError(t, err)

	data := AppointmentMailData{
		OwnerName:  "Jordan Reyes",
		PetName:    "Milo",
		DoctorName: "Dr. Patel",
		Date:       "2025-06-15",
		Time:       "10:00",
		Type:       "Vaccination",
		ClinicName: "Pet Clinic Management System",
	}

	body, err := RenderMailTemplate(templates, "appointment_confirmation.html", data)
	require.NoError(t, err)

	assert.Contains(t, body, "Jordan Reyes")
	assert.Contains(t, body, "Milo")
	assert.Contains(t, body, "Dr. Patel")
	assert.Contains(t, body, "2025-06-15")
	assert.Contains(t, body, "Vaccination")
}

func TestRenderInvoiceAlert(t *testing.T) {
	templates, err := ParseMailTemplates()
	require.NoError(t, err)

	data := InvoiceMailData{
		OwnerName:     "Jordan Reyes",
		InvoiceNumber: "INV-20250615-001",
		TotalAmount:   "151.90",
		DueDate:       "2025-06-30",
		ClinicName:    "Pet Clinic Management System",
	}

	body, err := RenderMailTemplate(templates, "invoice_alert.html", data)
	require.NoError(t, err)

	assert.Contains(t, body, "INV-20250615-001")
	assert.Contains(t, body, "151.90")
}

func TestRenderUserToAdminEscapesContent(t *testing.T) {
	templates, err := ParseMailTemplates()
	require.NoError(t, err)

	data := ContactMailData{
		UserName:    "Sam Okafor",
		UserEmail:   "sam@example.com",
		Subject:     "Boarding",
		UserMessage: "<script>alert(1)</script>",
		ClinicName:  "Pet Clinic Management System",
	}

	body, err := RenderMailTemplate(templates, "user_to_admin.html", data)
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "sam@example.com")
}
