package entities

// BookingRequest is the body of POST /create-booking.
type BookingRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Guests    int    `json:"guests" validate:"required,gt=0"`
	Table     string `json:"table" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,basicemail"`
	Phone     string `json:"phone" validate:"required"`
	Notes     string `json:"notes,omitempty"`
}

func (r BookingRequest) FullName() string {
	return r.FirstName + " " + r.LastName
}

// BookingResponse is returned by POST /create-booking on success.
type BookingResponse struct {
	Success          bool   `json:"success"`
	ConfirmationCode string `json:"confirmationCode"`
	Message          string `json:"message,omitempty"`
}
