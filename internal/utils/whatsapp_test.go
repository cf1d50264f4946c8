package utils

import (
	"strings"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	got := WhatsAppLink("50240337845", "Hola")
	want := "https://wa.me/50240337845?text=Hola"
	if got != want {
		t.Errorf("WhatsAppLink = %q, want %q", got, want)
	}
}

func TestWhatsAppLinkEncodesSpacesAsPercent20(t *testing.T) {
	got := WhatsAppLink("50240337845", "Hola, quisiera cotizar un mueble")
	if strings.Contains(got, "+") {
		t.Errorf("link %q must not contain '+' for spaces", got)
	}
	if !strings.Contains(got, "Hola%2C%20quisiera%20cotizar%20un%20mueble") {
		t.Errorf("unexpected encoding in %q", got)
	}
}

func TestWhatsAppLinkEmptyMessage(t *testing.T) {
	got := WhatsAppLink("50240337845", "")
	want := "https://wa.me/50240337845"
	if got != want {
		t.Errorf("WhatsAppLink = %q, want %q", got, want)
	}
}

func TestInquiryMessagesByLanguage(t *testing.T) {
	if msg := GeneralInquiryMessage("es"); !strings.HasPrefix(msg, "Hola") {
		t.Errorf("spanish general message = %q", msg)
	}
	if msg := GeneralInquiryMessage("en"); !strings.HasPrefix(msg, "Hello") {
		t.Errorf("english general message = %q", msg)
	}
	if msg := ProductInquiryMessage("es", "Ropero Clásico"); !strings.Contains(msg, "Ropero Clásico") {
		t.Errorf("product message %q must carry the product name", msg)
	}
	if msg := CustomOrderMessage("fr"); !strings.HasPrefix(msg, "Hola") {
		t.Errorf("unknown language must fall back to spanish, got %q", msg)
	}
}
