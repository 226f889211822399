package app

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cinechain/schedule-service/internal/domain"
	"github.com/cinechain/schedule-service/internal/mocks"
	"github.com/cinechain/schedule-service/internal/scheduler"
	appvalidator "github.com/cinechain/schedule-service/internal/validator"
)

// newTestApplication wires an application against happy-path mocks.
// Individual tests override the mock funcs they care about.
func newTestApplication(t *testing.T) (*application, *mocks.MockMovieRepo, *mocks.MockTheaterRepo, *mocks.MockShowtimeRepo) {
	t.Helper()

	movieRepo := &mocks.MockMovieRepo{
		GetByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
			return &domain.Movie{ID: 7, Title: "Interstellar", Duration: 120}, nil
		},
	}

	theaterRepo := &mocks.MockTheaterRepo{
		GetRoomsByTheaterFunc: func(ctx context.Context, theaterId int) ([]domain.Room, error) {
			return []domain.Room{
				{ID: 1, TheaterName: "Grand Plaza", RoomName: "Salon 1", RoomType: "2D"},
				{ID: 2, TheaterName: "Grand Plaza", RoomName: "Salon 2", RoomType: "2D"},
			}, nil
		},
	}

	nextID := 0
	showtimeRepo := &mocks.MockShowtimeRepo{
		HasOverlapFunc: func(ctx context.Context, roomId int, date, start, end time.Time) (bool, error) {
			return false, nil
		},
		ExistsDuplicateFunc: func(ctx context.Context, key domain.DuplicateKey) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, showtime *domain.Showtime) error {
			nextID++
			showtime.ID = nextID
			return nil
		},
		GetByTheaterAndDateFunc: func(ctx context.Context, theaterId int, date time.Time) ([]domain.Showtime, error) {
			return nil, nil
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &application{
		logger:       logger,
		validator:    appvalidator.NewValidator(),
		location:     time.UTC,
		movieRepo:    movieRepo,
		theaterRepo:  theaterRepo,
		showtimeRepo: showtimeRepo,
		scheduler:    scheduler.New(movieRepo, theaterRepo, showtimeRepo, time.UTC, logger),
	}

	return app, movieRepo, theaterRepo, showtimeRepo
}

func executeRequest(app *application, method, url, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	app.routes().ServeHTTP(rr, req)

	return rr
}
