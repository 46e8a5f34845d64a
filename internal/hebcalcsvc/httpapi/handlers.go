package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/dailystudy"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/events"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
	svccache "github.com/jcom-dev/hebcal-engine/internal/hebcalcsvc/cache"
	svcdb "github.com/jcom-dev/hebcal-engine/internal/hebcalcsvc/db"
)

// Service holds the dependencies the HTTP handlers need: the schedule
// cache and the audit logger are both optional (nil disables them), so
// the server still serves requests if Redis or Postgres are unreachable
// at startup. generation coalesces concurrent cache-miss requests for the
// same (kind, year, location, categories) key so a burst of requests for a
// year that just fell out of cache runs the generator once, not N times.
type Service struct {
	Cache *svccache.Cache
	Audit *svcdb.AuditLogger

	generation singleflight.Group
}

// parseYear extracts and validates the {year} path parameter.
func parseYear(r *http.Request) (uint32, error) {
	raw := chi.URLParam(r, "year")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

func parseLocation(r *http.Request) events.Location {
	if strings.EqualFold(r.URL.Query().Get("location"), "israel") {
		return events.Israel
	}
	return events.Diaspora
}

// Convert handles GET /api/v1/convert?date=YYYY-MM-DD&type=gregorian. Only
// type=gregorian (the default) is accepted; any other type is a 400.
func (s *Service) Convert(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		respondBadRequest(w, "missing date query parameter")
		return
	}
	kind := r.URL.Query().Get("type")
	if kind == "" {
		kind = "gregorian"
	}

	var hd hebrew.Date
	var err error

	switch strings.ToLower(kind) {
	case "gregorian":
		parts := strings.Split(raw, "-")
		if len(parts) != 3 {
			respondBadRequest(w, "date must be YYYY-MM-DD for type=gregorian")
			return
		}
		y, yErr := strconv.Atoi(parts[0])
		m, mErr := strconv.Atoi(parts[1])
		d, dErr := strconv.Atoi(parts[2])
		if yErr != nil || mErr != nil || dErr != nil {
			respondBadRequest(w, "invalid date")
			return
		}
		cd, cErr := civil.FromYMD(y, m, d)
		if cErr != nil {
			respondDomainError(w, cErr)
			return
		}
		hd, err = hebrew.FromCivil(cd)
	default:
		respondBadRequest(w, "unsupported type (expected gregorian)")
		return
	}

	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, convertResponse{
		Hebrew:  newHebrewDayDTO(hd),
		Civil:   newCivilDayDTO(hd.ToCivil()),
		Weekday: hd.Weekday().String(),
	})
}

// Schedule handles GET /api/v1/years/{year}/schedule.
func (s *Service) Schedule(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondBadRequest(w, "invalid year")
		return
	}
	location := parseLocation(r)
	locationName := "diaspora"
	if location == events.Israel {
		locationName = "israel"
	}

	cats, err := parseEventCategories(r.URL.Query().Get("categories"))
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	catNames := make([]string, len(cats))
	for i, c := range cats {
		catNames[i] = categoryKey(c)
	}

	cacheHit := false
	if s.Cache != nil {
		if entry, err := s.Cache.GetSchedule(r.Context(), year, locationName, catNames); err == nil && entry != nil {
			cacheHit = true
			w.Header().Set("Content-Type", "application/json")
			w.Write(entry.Data)
			s.logRun(year, locationName, catNames, cacheHit, 0, start)
			return
		}
	}

	sfKey := "schedule:" + strings.Join(catNames, ",") + ":" + locationName + ":" + strconv.FormatUint(uint64(year), 10)
	respAny, err, _ := s.generation.Do(sfKey, func() (interface{}, error) {
		y, err := hebrew.NewYear(year)
		if err != nil {
			return nil, err
		}

		out := events.NewBuffer[struct{}](256)
		if err := events.Generate[struct{}](y, events.Options{Categories: cats, Location: location}, out, nil, nil); err != nil {
			return nil, err
		}

		resp := scheduleResponse{Year: year}
		for _, e := range out.Events() {
			resp.Events = append(resp.Events, newEventDTO(e))
		}

		if s.Cache != nil {
			_ = s.Cache.SetSchedule(r.Context(), year, locationName, catNames, resp)
		}
		return resp, nil
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := respAny.(scheduleResponse)
	respondJSON(w, http.StatusOK, resp)
	s.logRun(year, locationName, catNames, cacheHit, len(resp.Events), start)
}

// DailyStudy handles GET /api/v1/years/{year}/daily-study.
func (s *Service) DailyStudy(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		respondBadRequest(w, "invalid year")
		return
	}

	cats, err := parseDailyStudyCategories(r.URL.Query().Get("categories"))
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	catNames := make([]string, len(cats))
	for i, c := range cats {
		catNames[i] = studyCategoryKey(c)
	}

	if s.Cache != nil {
		if entry, err := s.Cache.GetDailyStudy(r.Context(), year, catNames); err == nil && entry != nil {
			w.Header().Set("Content-Type", "application/json")
			w.Write(entry.Data)
			return
		}
	}

	sfKey := "dailystudy:" + strings.Join(catNames, ",") + ":" + strconv.FormatUint(uint64(year), 10)
	respAny, err, _ := s.generation.Do(sfKey, func() (interface{}, error) {
		y, err := hebrew.NewYear(year)
		if err != nil {
			return nil, err
		}

		out := dailystudy.NewBuffer(256)
		if err := dailystudy.Generate(y, dailystudy.Options{Categories: cats}, out); err != nil {
			return nil, err
		}

		resp := dailyStudyResponse{Year: year}
		for _, e := range out.Entries() {
			resp.Entries = append(resp.Entries, newStudyEntryDTO(e))
		}

		if s.Cache != nil {
			_ = s.Cache.SetDailyStudy(r.Context(), year, catNames, resp)
		}
		return resp, nil
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, respAny.(dailyStudyResponse))
}

func studyCategoryKey(c dailystudy.Category) string {
	for k, v := range dailyStudyCategoryByName {
		if v == c {
			return k
		}
	}
	return "unknown"
}

func (s *Service) logRun(year uint32, location string, categories []string, cacheHit bool, eventCount int, start time.Time) {
	if s.Audit == nil {
		return
	}
	s.Audit.Log(svcdb.RunEntry{
		Year:           int32(year),
		Location:       location,
		Categories:     strings.Join(categories, ","),
		CacheHit:       cacheHit,
		EventCount:     int32(eventCount),
		ResponseTimeMs: int32(time.Since(start).Milliseconds()),
	})
}

func categoryKey(c events.Category) string {
	for k, v := range eventCategoryByName {
		if v == c {
			return k
		}
	}
	return "unknown"
}
