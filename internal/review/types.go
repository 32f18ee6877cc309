package review

// Question is a single rating question presented by the wizard
type Question struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Status is the eligibility answer for the current user
type Status struct {
	ReviewAlreadyGiven bool `json:"reviewAlreadyGiven"`
}

// TrackResult is the outcome of recording a completed review
type TrackResult struct {
	Success bool
	Message string
}

// Score is the user's weighted review score
type Score struct {
	TotalScore int `json:"totalScore"`
}

// MinRating and MaxRating bound a star rating. Zero means unset.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether v is a selectable star rating
func ValidRating(v int) bool {
	return v >= MinRating && v <= MaxRating
}

// Destination is a terminal navigation target of the wizard
type Destination int

const (
	// DestinationNone means the wizard has not navigated away
	DestinationNone Destination = iota
	// DestinationAlreadyReviewed is reached when the user already reviewed
	DestinationAlreadyReviewed
	// DestinationThankYou is reached after a tracked completion
	DestinationThankYou
)

// Route returns the logical route of the destination
func (d Destination) Route() string {
	switch d {
	case DestinationAlreadyReviewed:
		return "/review-already-given"
	case DestinationThankYou:
		return "/thank-you"
	default:
		return ""
	}
}

// Message returns the text shown when the destination is reached
func (d Destination) Message() string {
	switch d {
	case DestinationAlreadyReviewed:
		return "Hai già inviato la tua recensione."
	case DestinationThankYou:
		return "Grazie per la tua recensione!"
	default:
		return ""
	}
}

// Terminal reports whether the destination ends the session
func (d Destination) Terminal() bool {
	return d != DestinationNone
}
