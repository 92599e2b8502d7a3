package types

// Reading is the raw state of one tap as stored in the data file.
type Reading struct {
	Name  string  `json:"name"`
	State float64 `json:"state"`
}

// Readings holds the three taps of the kegerator. The tap count is fixed by
// the hardware, so the slots are named fields rather than a slice.
type Readings struct {
	TapOne   Reading `json:"tap_one"`
	TapTwo   Reading `json:"tap_two"`
	TapThree Reading `json:"tap_three"`
}

// DisplayReading is the view model for one tap.
type DisplayReading struct {
	Name    string
	Percent float64
	Volume  float64
}

// DisplaySet holds the display form of all three taps.
type DisplaySet struct {
	TapOne   DisplayReading
	TapTwo   DisplayReading
	TapThree DisplayReading
}
