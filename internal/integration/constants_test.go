package integration_test

const (
	// Movie related constants
	TestMovieTitle       = "Inception"
	TestMovieDescription = "A thief who steals corporate secrets through dream-sharing technology."
	TestMovieGenre       = "Sci-Fi"
	TestMovieDuration    = 148
	TestMovieReleaseDate = "2010-07-16"
	TestMovieAgeRating   = "AGE_12"

	// Cinema hall related constants
	TestHallName        = "Sala 1"
	TestHallRows        = 2
	TestHallSeatsPerRow = 3

	// Screening related constants
	TestScreeningStartTime = "2030-01-01T14:00:00Z"
	TestScreeningEndTime   = "2030-01-01T16:28:00Z"
	TestScreeningPrice     = "25.00"
)
