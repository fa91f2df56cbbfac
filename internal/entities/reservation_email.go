package entities

type ReservationEmailData struct {
	RestaurantName   string
	RestaurantEmail  string
	ConfirmationCode string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Guests           int
	Table            string
	TableCapacity    int
	DateFormatted    string
	Time             string
	Notes            string
	CurrentYear      int
}
