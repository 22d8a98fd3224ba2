package entities

const (
	DefaultHotel       = "Taj Cidade de Goa Heritage"
	DefaultGuestsCount = 2
	DefaultRoomsCount  = 1
)

// MaxStayNights caps how long a single stay may be.
const MaxStayNights = 10

type SearchCriteria struct {
	Hotel        string `json:"hotel"`
	CheckInDate  string `json:"checkIn"`
	CheckOutDate string `json:"checkOut"`
	Nights       int    `json:"nights"`
	GuestsCount  int    `json:"guests"`
	RoomsCount   int    `json:"rooms"`
	SpecialCode  string `json:"specialCode"`
}

// ApplyDefaults fills the fields the search bar pre-selects when the user
// leaves them untouched.
func (s *SearchCriteria) ApplyDefaults() {
	if s.Hotel == "" {
		s.Hotel = DefaultHotel
	}
	if s.GuestsCount < 1 {
		s.GuestsCount = DefaultGuestsCount
	}
	if s.RoomsCount < 1 {
		s.RoomsCount = DefaultRoomsCount
	}
}
