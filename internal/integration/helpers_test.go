package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// compareResponse diffs the response body against the expected JSON, ignoring
// nondeterministic fields wherever they appear.
func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "uuid" || k == "createdAt"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

// truncateAll resets every table between scenarios so generated ids stay
// predictable.
func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(),
		"TRUNCATE TABLE screenings, seats, cinema_halls, movies RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO movies (uuid, title, description, genre, duration_minutes, release_date, age_rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		uuid.New(), TestMovieTitle, TestMovieDescription, TestMovieGenre,
		TestMovieDuration, TestMovieReleaseDate, TestMovieAgeRating,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestHall(t testing.TB, db *pgxpool.Pool) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO cinema_halls (uuid, name, row_count, seats_per_row)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		uuid.New(), TestHallName, TestHallRows, TestHallSeatsPerRow,
	).Scan(&id)
	require.NoError(t, err)

	for row := 1; row <= TestHallRows; row++ {
		for seat := 1; seat <= TestHallSeatsPerRow; seat++ {
			_, err := db.Exec(context.Background(), `
				INSERT INTO seats (hall_id, row_number, seat_number)
				VALUES ($1, $2, $3)`,
				id, row, seat,
			)
			require.NoError(t, err)
		}
	}

	return id
}

func insertTestScreening(t testing.TB, db *pgxpool.Pool, movieId, hallId int, startTime, endTime string) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO screenings (uuid, movie_id, hall_id, start_time, end_time, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		uuid.New(), movieId, hallId, startTime, endTime, TestScreeningPrice,
	).Scan(&id)
	require.NoError(t, err)

	return id
}
