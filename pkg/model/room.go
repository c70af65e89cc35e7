package model

type Room struct {
	ID            string  `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string  `json:"title" bson:"title"`
	Location      string  `json:"location" bson:"location"`
	Category      string  `json:"category" bson:"category"`
	Description   string  `json:"description" bson:"description"`
	Image         string  `json:"image" bson:"image"`
	Size          int     `json:"size" bson:"size"`
	TotalSleeps   int     `json:"total_sleeps" bson:"total_sleeps"`
	PricePerNight float64 `json:"price_per_night" bson:"price_per_night"`
	Availability  bool    `json:"availability" bson:"availability"`
}

// RoomAvailabilityUpdate is the only mutation the API performs on a room.
type RoomAvailabilityUpdate struct {
	Availability bool `json:"availability"`
}

// PriceRange is an inclusive price_per_night filter. A nil range lists
// every room.
type PriceRange struct {
	Low  float64
	High float64
}
