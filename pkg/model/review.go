package model

import "encoding/json"

type Review struct {
	ID       string  `json:"id,omitempty" bson:"_id,omitempty"`
	RoomID   string  `json:"room_id" bson:"room_id"`
	Username string  `json:"username" bson:"username"`
	Avatar   string  `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Rating   float64 `json:"rating" bson:"rating"`
	Comment  string  `json:"comment" bson:"comment"`

	// Client-supplied Unix milliseconds, sort key for the global feed.
	Timestamp int64 `json:"timestamp" bson:"timestamp"`

	// Extra holds any client fields outside the enumerated set; they are
	// stored inline and returned verbatim.
	Extra map[string]any `json:"-" bson:",inline"`
}

type reviewFields Review

var reviewKnownKeys = []string{
	"id", "room_id", "username", "avatar", "rating", "comment", "timestamp",
}

func (rv *Review) UnmarshalJSON(data []byte) error {
	var typed reviewFields
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	extra, err := extraFields(data, reviewKnownKeys)
	if err != nil {
		return err
	}
	typed.Extra = extra

	*rv = Review(typed)
	return nil
}

func (rv Review) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(reviewFields(rv), rv.Extra)
}
