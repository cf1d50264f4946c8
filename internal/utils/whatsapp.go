package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link with an optional pre-filled message.
// The message is percent-encoded (a space becomes %20, never +). An empty
// message yields the bare chat link.
func WhatsAppLink(phone, message string) string {
	base := "https://wa.me/" + phone
	if message == "" {
		return base
	}
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return base + "?text=" + encoded
}

// GeneralInquiryMessage is the pre-filled message for the generic contact CTA.
func GeneralInquiryMessage(lang string) string {
	if lang == "en" {
		return "Hello, I would like a quote for a piece of furniture. Can you help me?"
	}
	return "Hola, quisiera cotizar un mueble. ¿Me pueden ayudar?"
}

// ProductInquiryMessage is the pre-filled message for a per-product CTA.
func ProductInquiryMessage(lang, productName string) string {
	if lang == "en" {
		return fmt.Sprintf("Hello, I am interested in this product: %s. Could you share the price and delivery time?", productName)
	}
	return fmt.Sprintf("Hola, me interesa este producto: %s. ¿Me pueden dar precio y tiempo de entrega?", productName)
}

// CustomOrderMessage is the pre-filled message for the custom-order CTA.
func CustomOrderMessage(lang string) string {
	if lang == "en" {
		return "Hello, I am interested in a custom order. Can you help me?"
	}
	return "Hola, me interesa hacer un pedido personalizado. ¿Me pueden ayudar?"
}
