package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating is a self-assessed implementation maturity on a 0–5 scale.
type Rating int

const (
	MinRating Rating = 0
	MaxRating Rating = 5
)

// ParseRating parses a decimal rating and checks it is within range.
func ParseRating(s string) (Rating, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q", s)
	}
	r := Rating(n)
	if !r.Valid() {
		return 0, fmt.Errorf("rating %d out of range %d-%d", n, MinRating, MaxRating)
	}
	return r, nil
}

// Valid reports whether r is within the 0–5 scale.
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// AllRatings returns every rating from 0 to 5.
func AllRatings() []Rating {
	out := make([]Rating, 0, MaxRating-MinRating+1)
	for r := MinRating; r <= MaxRating; r++ {
		out = append(out, r)
	}
	return out
}

// RatingLevel describes one step of the self-rating guide.
type RatingLevel struct {
	Rating Rating
	Title  string
	Points []string
}

// RatingLevels returns the self-rating scale guide.
func RatingLevels() []RatingLevel {
	return []RatingLevel{
		{0, "Not Implemented", []string{"No work started", "No documentation exists", "No processes in place"}},
		{1, "Initial Planning", []string{"Basic planning started", "Some documentation drafted", "Initial discussions held"}},
		{2, "Partial Implementation", []string{"Some work completed", "Basic documentation exists", "Some processes established"}},
		{3, "Mostly Implemented", []string{"Most work completed", "Most documentation ready", "Most processes working"}},
		{4, "Fully Implemented", []string{"All requirements met", "All documentation complete", "All processes functioning"}},
		{5, "Exceeds Requirements", []string{"Goes beyond requirements", "Extra documentation provided", "Advanced processes in place"}},
	}
}

// Title returns the guide title for r, or an empty string when out of range.
func (r Rating) Title() string {
	for _, l := range RatingLevels() {
		if l.Rating == r {
			return l.Title
		}
	}
	return ""
}
