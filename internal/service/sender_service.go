package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"

	"hotelbooking/internal/db"
	"hotelbooking/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendBookingEmail(guest db.Guest, booking db.Booking, data entities.BookingEmailData) {
	emailSubject := fmt.Sprintf("Your booking at %s is confirmed - Reference: %s", data.Hotel, data.BookingReference)
	plainTextBody := fmt.Sprintf(
		"Dear %s,\n\nYour booking at %s is confirmed.\n\n"+
			"Booking Details:\n"+
			"Booking Reference: %s\n"+
			"Room: %s (No. %s)\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Nights: %d\n"+
			"Amount Paid: Rs. %d (%s)\n\n"+
			"We look forward to welcoming you.\n\n"+
			"%d Taj Hotels. All rights reserved.",
		data.GuestName, data.Hotel, data.BookingReference, data.RoomName, booking.RoomNumber,
		data.CheckInFormatted, data.CheckOutFormatted, data.Nights,
		data.PaymentAmount, data.PaymentMethodLabel, data.CurrentYear,
	)

	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: Error parsing HTML email template (%s): %v", tmplPath, err)
		tmpl = template.New("empty")
	}

	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, data); err != nil {
		log.Printf("ALERT: Error executing HTML email template for booking %s: %v", data.BookingReference, err)
	}
	htmlBody := htmlBodyBuffer.String()

	if err := SendEmailWithSendGrid(guest.Email, data.GuestName, emailSubject, plainTextBody, htmlBody); err != nil {
		log.Printf("ALERT: Booking %s was saved, but the confirmation email failed: %v", data.BookingReference, err)
	}
}

func (s *SenderService) SendBookingSMS(guest db.Guest, booking db.Booking) {
	smsMessage := fmt.Sprintf("Taj Hotels: Your booking %s is confirmed!\nRoom %s, paid on %s.\nMore details in your email.",
		booking.BookingReference, booking.RoomNumber, booking.PaymentDate,
	)

	// Indian mobile numbers are collected without a country code.
	toNumber := guest.Phone
	if len(toNumber) == 10 {
		toNumber = "+91" + toNumber
	}

	if err := SendSMS(toNumber, smsMessage); err != nil {
		log.Printf("ALERT: Booking %s was saved, but the confirmation SMS to %s failed: %v",
			booking.BookingReference, toNumber, err)
	}
}
