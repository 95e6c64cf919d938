package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tartampluch/go-bikram-sambat/internal/bikram"
	"github.com/tartampluch/go-bikram-sambat/internal/calendar"
	"github.com/tartampluch/go-bikram-sambat/internal/config"
	"github.com/tartampluch/go-bikram-sambat/internal/locale"
)

// DateResponse describes one BS date and its Gregorian equivalent.
type DateResponse struct {
	BS        bikram.Date `json:"bs"`
	AD        string      `json:"ad"`
	Year      int         `json:"year"`
	Month     int         `json:"month"`
	Day       int         `json:"day"`
	MonthName string      `json:"month_name"`
	Weekday   string      `json:"weekday"`
	DayOfYear int         `json:"day_of_year"`
	Formatted string      `json:"formatted,omitempty"`
}

// MonthResponse lists the days of one BS month.
type MonthResponse struct {
	Year     int            `json:"year"`
	Month    int            `json:"month"`
	Name     string         `json:"name"`
	Previous string         `json:"previous"`
	Next     string         `json:"next"`
	Days     []DateResponse `json:"days"`
}

// ErrorResponse is the body of every API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error(config.ErrWriteResp, config.LogKeyComponent, config.CompServer, config.LogKeyError, err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// statusFor maps a conversion failure to 422 when the date is well formed
// but outside the table, 400 otherwise.
func statusFor(err error) (int, string) {
	if errors.Is(err, calendar.ErrOutOfRange) {
		return http.StatusUnprocessableEntity, config.ResultOutOfRange
	}
	return http.StatusBadRequest, config.ResultInvalid
}

func describe(d bikram.Date, r *http.Request) (DateResponse, error) {
	ad, err := d.ToGregorianDate()
	if err != nil {
		return DateResponse{}, err
	}
	lang := locale.Resolve(r.URL.Query().Get(config.QueryLang))

	resp := DateResponse{
		BS:        d,
		AD:        ad.String(),
		Year:      d.Year(),
		Month:     d.Month(),
		Day:       d.Day(),
		MonthName: locale.MonthAt(d.Month()).Name(lang),
		Weekday:   locale.WeekdayAt(ad.Weekday()).Name(lang),
		DayOfYear: d.DayOfYear(),
	}
	if tmpl := r.URL.Query().Get(config.QueryFormat); tmpl != "" {
		resp.Formatted = d.FormatLang(tmpl, lang)
	}
	return resp, nil
}

// handleToBS converts a Gregorian date to BS.
func (s *CalendarServer) handleToBS(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, config.ParamDate)
	d := bikram.ToBikramSambat(bikram.ADText(input))
	if !d.IsValid() {
		err := d.Err()
		if err == nil {
			err = errors.New(config.ErrDateParse)
		}
		s.fail(w, config.DirToBS, input, err)
		return
	}
	s.succeed(w, r, config.DirToBS, input, d)
}

// handleToAD converts a BS date to Gregorian.
func (s *CalendarServer) handleToAD(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, config.ParamDate)
	d, err := bikram.ParseStrict(input)
	if err != nil {
		s.fail(w, config.DirToAD, input, err)
		return
	}
	s.succeed(w, r, config.DirToAD, input, d)
}

// handleToday returns the current BS date in the server's zone.
func (s *CalendarServer) handleToday(w http.ResponseWriter, r *http.Request) {
	d := bikram.FromTime(s.now())
	if !d.IsValid() {
		s.fail(w, config.DirToBS, "", d.Err())
		return
	}
	s.succeed(w, r, config.DirToBS, "", d)
}

// handleMonth lists every day of a BS month.
func (s *CalendarServer) handleMonth(w http.ResponseWriter, r *http.Request) {
	year, errY := strconv.Atoi(chi.URLParam(r, config.ParamYear))
	month, errM := strconv.Atoi(chi.URLParam(r, config.ParamMonth))
	if errY != nil || errM != nil {
		respondError(w, http.StatusBadRequest, config.HTTPMsgBadNumber)
		return
	}

	days, err := bikram.MonthDays(year, month)
	if err != nil {
		status, _ := statusFor(err)
		respondError(w, status, err.Error())
		return
	}

	lang := locale.Resolve(r.URL.Query().Get(config.QueryLang))
	resp := MonthResponse{
		Year:     year,
		Month:    month,
		Name:     locale.MonthAt(month).Name(lang),
		Previous: days[0].PreviousMonth().Name(lang),
		Next:     days[0].NextMonth().Name(lang),
		Days:     make([]DateResponse, 0, len(days)),
	}
	for _, d := range days {
		dr, err := describe(d, r)
		if err != nil {
			respondError(w, http.StatusInternalServerError, config.HTTPMsgInternalErr)
			return
		}
		resp.Days = append(resp.Days, dr)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *CalendarServer) succeed(w http.ResponseWriter, r *http.Request, direction, input string, d bikram.Date) {
	resp, err := describe(d, r)
	if err != nil {
		s.fail(w, direction, input, err)
		return
	}
	s.metrics.conversion(direction, config.ResultOK)
	slog.Debug(config.MsgConverted,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyInput, input,
		config.LogKeyResult, d.String(),
	)
	respondJSON(w, http.StatusOK, resp)
}

func (s *CalendarServer) fail(w http.ResponseWriter, direction, input string, err error) {
	status, result := statusFor(err)
	s.metrics.conversion(direction, result)
	slog.Debug(config.MsgConverted,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyInput, input,
		config.LogKeyError, err,
	)
	respondError(w, status, err.Error())
}
