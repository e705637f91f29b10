package models

import "time"

// Card is the unit of study material. ID is assigned by the store, is
// never reused, and increases monotonically across the store's lifetime.
// Interval is the number of rotations to wait after a correct answer;
// DueIn is the number of rotations remaining before the card is eligible
// for presentation (0 means due now).
type Card struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
	Interval int      `json:"interval"`
	DueIn    int      `json:"due_in"`
}

// ReviewRecord is one graded presentation of a card, as persisted in the
// review history log. Interval and DueIn are the card's values after the
// verdict was applied.
type ReviewRecord struct {
	ID         int64     `json:"id"`
	CardID     int       `json:"card_id"`
	Verdict    string    `json:"verdict"`
	Interval   int       `json:"interval"`
	DueIn      int       `json:"due_in"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// HistoryStat summarizes the review history, overall or filtered.
type HistoryStat struct {
	Reviews   int `json:"reviews"`
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}
