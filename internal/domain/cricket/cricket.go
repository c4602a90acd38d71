package cricket

import (
	"errors"
	"fmt"
	"math"
)

const (
	BallsPerOver     = 6
	WicketsPerInning = 10
)

var ErrInvalidOvers = errors.New("invalid overs")

// NormalizeOvers converts a reported overs value in overs.balls form
// (12.3 means 12 overs and 3 balls) into decimal overs. An all-out
// innings is credited with the full match quota, which is the standard
// convention for net run rate.
func NormalizeOvers(oversPlayed float64, maxOvers, wicketsFallen int) float64 {
	if wicketsFallen == WicketsPerInning {
		return float64(maxOvers)
	}

	overs := math.Floor(oversPlayed)
	balls := math.Round((oversPlayed - overs) * 10)

	return (overs*BallsPerOver + balls) / BallsPerOver
}

// NetRunRate computes (runs scored / overs faced) - (runs conceded / overs bowled)
// from cumulative figures. Overs must already be in decimal form.
func NetRunRate(runsScored, oversFaced, runsConceded, oversBowled float64) (float64, error) {
	if oversFaced <= 0 || oversBowled <= 0 {
		return 0, fmt.Errorf("%w: overs faced %v and overs bowled %v must be positive", ErrInvalidOvers, oversFaced, oversBowled)
	}

	return (runsScored / oversFaced) - (runsConceded / oversBowled), nil
}

// ValidOversBallsForm reports whether a raw overs value carries a legal
// balls digit, i.e. the decimal part encodes 0-5 balls.
func ValidOversBallsForm(oversPlayed float64) bool {
	if oversPlayed < 0 {
		return false
	}
	overs := math.Floor(oversPlayed)
	balls := math.Round((oversPlayed - overs) * 10)
	return balls >= 0 && balls <= 5
}
