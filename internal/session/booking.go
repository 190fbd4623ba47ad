package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResetDelay is how long the confirmation stays up before the session resets.
const ResetDelay = 5 * time.Second

const missingFieldsMessage = "Please fill in your Name and Email."

// ValidationError names the first required booking field that was blank.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// BookingForm is the booking section: the chosen destination, the two
// required fields and the outcome of the last submission.
type BookingForm struct {
	Destination  string
	Name         string
	Email        string
	Error        string
	Confirmation string
	Reference    string
}

func ValidateBooking(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email"}
	}
	return nil
}

// NewReference returns a booking reference for a confirmation message.
func NewReference() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

func ConfirmationMessage(name, reference string) string {
	msg := fmt.Sprintf("Request Sent! Thank you, %s. We will contact you shortly!", strings.TrimSpace(name))
	if reference != "" {
		msg += fmt.Sprintf(" Reference %s.", reference)
	}
	return msg
}
