package services

import (
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"salonshop-backend/models"
)

// TwilioNotifier delivers booking events as SMS messages. It satisfies the
// Notifier contract: every failure is logged and swallowed, never surfaced
// to the operation that emitted the event.
type TwilioNotifier struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(db *gorm.DB) *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioNotifier{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (n *TwilioNotifier) BookingCreated(booking *models.Booking) {
	n.send(booking, fmt.Sprintf(
		"Hi %s, your %s appointment on %s at %s is received and pending confirmation. Total: $%.2f.",
		booking.CustomerName, booking.ServiceTitle, booking.Date, booking.TimeSlot, booking.FinalPrice))
}

func (n *TwilioNotifier) BookingCancelled(booking *models.Booking, cancelledBy string) {
	message := fmt.Sprintf("Hi %s, your %s booking on %s at %s has been cancelled",
		booking.CustomerName, booking.ServiceTitle, booking.Date, booking.TimeSlot)
	if cancelledBy == "admin" {
		message += " by the salon."
	} else {
		message += " as requested."
	}
	n.send(booking, message)
}

func (n *TwilioNotifier) BookingStatusChanged(booking *models.Booking, oldStatus, newStatus string) {
	n.send(booking, fmt.Sprintf("Hi %s, your %s booking on %s at %s is now %s.",
		booking.CustomerName, booking.ServiceTitle, booking.Date, booking.TimeSlot, newStatus))
}

func (n *TwilioNotifier) BookingReminder(booking *models.Booking) {
	n.send(booking, fmt.Sprintf("Hi %s, a reminder for your %s appointment tomorrow at %s. See you then!",
		booking.CustomerName, booking.ServiceTitle, booking.TimeSlot))
}

func (n *TwilioNotifier) send(booking *models.Booking, message string) {
	// The booking snapshot has no phone number; look up the customer record.
	var customer models.User
	if err := n.db.First(&customer, "id = ?", booking.CustomerID).Error; err != nil {
		log.Printf("Booking %s: failed to load customer for notification: %v", booking.ID, err)
		return
	}
	if customer.Phone == "" {
		log.Printf("Booking %s: customer has no phone number, skipping notification", booking.ID)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Phone)
	params.SetFrom(n.from)
	params.SetBody(message)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send message to %s: %v", customer.Phone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", customer.Phone)
	}
}
