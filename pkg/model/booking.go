package model

import "encoding/json"

type Booking struct {
	ID    string `json:"id,omitempty" bson:"_id,omitempty"`
	Email string `json:"email" bson:"email"`

	// Room snapshot embedded at booking time, not joined on read.
	RoomID        string  `json:"room_id" bson:"room_id"`
	Title         string  `json:"title" bson:"title"`
	PricePerNight float64 `json:"price_per_night" bson:"price_per_night"`
	Image         string  `json:"image,omitempty" bson:"image,omitempty"`

	BookingDate string `json:"booking_date" bson:"booking_date"`

	// Extra holds any client fields outside the enumerated set; they are
	// stored inline and returned verbatim.
	Extra map[string]any `json:"-" bson:",inline"`
}

type bookingFields Booking

var bookingKnownKeys = []string{
	"id", "email", "room_id", "title", "price_per_night", "image", "booking_date",
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var typed bookingFields
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	extra, err := extraFields(data, bookingKnownKeys)
	if err != nil {
		return err
	}
	typed.Extra = extra

	*b = Booking(typed)
	return nil
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(bookingFields(b), b.Extra)
}
