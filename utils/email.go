package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds the order confirmation template.
type OrderConfirmationData struct {
	OrderCode       string
	Username        string
	Items           string
	Total           string
	TotalAfterBonus string
	BonusUsed       string
	Tip             string
}

// SendOrderConfirmationEmail sends the checkout confirmation (async so the
// response is not delayed).
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() {
		if to == "" {
			return
		}
		tmplPath := "templates/order_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Order confirmed - "+data.OrderCode)
		m.SetBody("text/html", body.String())

		port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if err != nil {
			port = 587
		}
		d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email to %s: %v", to, err)
		}
	}()
}
