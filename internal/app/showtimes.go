package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cinechain/schedule-service/internal/domain"
	"github.com/cinechain/schedule-service/internal/scheduler"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CreateShowtimeRequest struct {
	TheaterID    int      `json:"theaterId" validate:"required"`
	RoomID       int      `json:"roomId" validate:"required"`
	MovieID      int      `json:"movieId" validate:"required"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string   `json:"startTime" validate:"required,datetime=15:04"`
	PriceRegular *float64 `json:"priceRegular" validate:"required,gte=0"`
	PriceVip     *float64 `json:"priceVip" validate:"required,gte=0"`
	ShowtimeType string   `json:"showtimeType" validate:"required,oneof=2D 3D IMAX 4DX"`
}

type GenerateScheduleRequest struct {
	TheaterID           int      `json:"theaterId" validate:"required"`
	MovieID             int      `json:"movieId" validate:"required"`
	StartDate           string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate             string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	ShowtimesPerDay     []string `json:"showtimesPerDay" validate:"required,min=1,dive,datetime=15:04"`
	PriceRegular        *float64 `json:"priceRegular" validate:"required,gte=0"`
	PriceVip            *float64 `json:"priceVip" validate:"required,gte=0"`
	PriceRegularWeekend *float64 `json:"priceRegularWeekend" validate:"omitempty,gte=0"`
	PriceVipWeekend     *float64 `json:"priceVipWeekend" validate:"omitempty,gte=0"`
	ShowtimeType        string   `json:"showtimeType" validate:"required,oneof=2D 3D IMAX 4DX"`
}

type ShowtimeResponse struct {
	Id           int             `json:"id"`
	MovieId      int             `json:"movieId"`
	MovieTitle   string          `json:"movieTitle"`
	Duration     int             `json:"durationMinutes"`
	TheaterId    int             `json:"theaterId"`
	TheaterName  string          `json:"theaterName"`
	RoomId       int             `json:"roomId"`
	RoomName     string          `json:"roomName"`
	Date         string          `json:"date"`
	StartTime    time.Time       `json:"startTime"`
	EndTime      time.Time       `json:"endTime"`
	PriceRegular decimal.Decimal `json:"priceRegular"`
	PriceVip     decimal.Decimal `json:"priceVip"`
	ShowtimeType string          `json:"showtimeType"`
}

type CreateShowtimeResponse struct {
	Showtime ShowtimeResponse `json:"showtime"`
}

type GenerateScheduleResponse struct {
	CreatedShowtimes []ShowtimeResponse `json:"createdShowtimes"`
}

type TheaterShowtimesResponse struct {
	Showtimes []ShowtimeResponse `json:"showtimes"`
}

func (app *application) CreateShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	var input CreateShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	date, err := time.ParseInLocation(dateLayout, input.Date, app.location)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := scheduler.CreateShowtimeParams{
		TheaterID:    input.TheaterID,
		RoomID:       input.RoomID,
		MovieID:      input.MovieID,
		Date:         date,
		StartTime:    input.StartTime,
		PriceRegular: decimal.NewFromFloat(*input.PriceRegular),
		PriceVip:     decimal.NewFromFloat(*input.PriceVip),
		Type:         domain.Format(input.ShowtimeType),
	}

	showtime, err := app.scheduler.CreateShowtime(r.Context(), params)
	if err != nil {
		app.schedulingErrorResponse(w, r, err, false)
		return
	}

	resp := CreateShowtimeResponse{Showtime: toShowtimeResponse(showtime)}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GenerateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var input GenerateScheduleRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	startDate, err := time.ParseInLocation(dateLayout, input.StartDate, app.location)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	endDate, err := time.ParseInLocation(dateLayout, input.EndDate, app.location)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if endDate.Before(startDate) {
		app.badRequestResponse(w, r, errors.New("endDate must not be before startDate"))
		return
	}

	params := scheduler.GenerateScheduleParams{
		TheaterID:       input.TheaterID,
		MovieID:         input.MovieID,
		StartDate:       startDate,
		EndDate:         endDate,
		ShowtimesPerDay: input.ShowtimesPerDay,
		Prices: scheduler.PriceSet{
			Regular:        decimal.NewFromFloat(*input.PriceRegular),
			Vip:            decimal.NewFromFloat(*input.PriceVip),
			WeekendRegular: decimalFromPtr(input.PriceRegularWeekend),
			WeekendVip:     decimalFromPtr(input.PriceVipWeekend),
		},
		Type: domain.Format(input.ShowtimeType),
	}

	showtimes, err := app.scheduler.GenerateSchedule(r.Context(), params)
	if err != nil {
		app.schedulingErrorResponse(w, r, err, true)
		return
	}

	resp := GenerateScheduleResponse{CreatedShowtimes: toShowtimeResponses(showtimes)}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTheaterShowtimesHandler(w http.ResponseWriter, r *http.Request) {
	theaterId, err := strconv.Atoi(chi.URLParam(r, "theaterId"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid theater ID"))
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		app.badRequestResponse(w, r, errors.New("date query parameter is required"))
		return
	}

	date, err := time.ParseInLocation(dateLayout, dateParam, app.location)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("date must be in YYYY-MM-DD format"))
		return
	}

	showtimes, err := app.showtimeRepo.GetByTheaterAndDate(r.Context(), theaterId, date)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := TheaterShowtimesResponse{Showtimes: toShowtimeResponses(showtimes)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// schedulingErrorResponse translates engine errors into the HTTP contract
// of the scheduling endpoints. Movie and room lookups that fail on the
// bulk path report 404, on the single path 400.
func (app *application) schedulingErrorResponse(w http.ResponseWriter, r *http.Request, err error, bulk bool) {
	var slotErr *domain.SlotError

	switch {
	case errors.As(err, &slotErr):
		message := fmt.Sprintf("Could not schedule the %s showtime on %s: %v",
			slotErr.TimeOfDay, slotErr.Date.Format(dateLayout), slotErr.Err)
		app.errorResponse(w, r, http.StatusConflict, message)

	case errors.Is(err, domain.ErrMovieNotFound):
		status := http.StatusBadRequest
		if bulk {
			status = http.StatusNotFound
		}
		app.errorResponse(w, r, status, "Movie not found")

	case errors.Is(err, domain.ErrNoRoomsInTheater):
		app.errorResponse(w, r, http.StatusNotFound, "Theater has no rooms")

	case errors.Is(err, domain.ErrRoomNotInTheater):
		app.errorResponse(w, r, http.StatusBadRequest, "Room does not belong to the theater")

	case errors.Is(err, domain.ErrNoMatchingRoomFormat):
		app.errorResponse(w, r, http.StatusBadRequest, "No room matches the requested format")

	case errors.Is(err, domain.ErrScheduleConflict):
		app.errorResponse(w, r, http.StatusConflict, "The room is already booked for this time")

	case errors.Is(err, domain.ErrDuplicateShowtime):
		app.errorResponse(w, r, http.StatusConflict, "An identical showtime already exists")

	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toShowtimeResponse(showtime *domain.Showtime) ShowtimeResponse {
	if showtime == nil {
		return ShowtimeResponse{}
	}

	return ShowtimeResponse{
		Id:           showtime.ID,
		MovieId:      showtime.Movie.MovieID,
		MovieTitle:   showtime.Movie.Title,
		Duration:     showtime.Movie.Duration,
		TheaterId:    showtime.Theater.TheaterID,
		TheaterName:  showtime.Theater.Name,
		RoomId:       showtime.Room.RoomID,
		RoomName:     showtime.Room.Name,
		Date:         showtime.Date.Format(dateLayout),
		StartTime:    showtime.StartTime,
		EndTime:      showtime.EndTime,
		PriceRegular: showtime.PriceRegular,
		PriceVip:     showtime.PriceVip,
		ShowtimeType: string(showtime.Type),
	}
}

func toShowtimeResponses(showtimes []domain.Showtime) []ShowtimeResponse {
	responses := make([]ShowtimeResponse, len(showtimes))

	for i := range showtimes {
		responses[i] = toShowtimeResponse(&showtimes[i])
	}

	return responses
}

func decimalFromPtr(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}

	return decimal.NewFromFloat(*v)
}
