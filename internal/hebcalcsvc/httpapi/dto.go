package httpapi

import (
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/dailystudy"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/events"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// hebrewDayDTO is a Hebrew calendar date on the wire.
type hebrewDayDTO struct {
	Year  uint32 `json:"year"`
	Month string `json:"month"`
	Day   uint8  `json:"day"`
}

func newHebrewDayDTO(d hebrew.Date) hebrewDayDTO {
	return hebrewDayDTO{Year: d.YearNumber(), Month: d.Month().String(), Day: d.Day()}
}

// civilDayDTO is a proleptic-Gregorian date on the wire.
type civilDayDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func newCivilDayDTO(d civil.Date) civilDayDTO {
	return civilDayDTO{Year: d.Year(), Month: d.Month(), Day: d.Day()}
}

// convertResponse is the /convert endpoint's payload.
type convertResponse struct {
	Hebrew  hebrewDayDTO `json:"hebrew"`
	Civil   civilDayDTO  `json:"civil"`
	Weekday string       `json:"weekday"`
}

// eventDTO is one calendar event on the wire.
type eventDTO struct {
	Day  hebrewDayDTO `json:"day"`
	Name string       `json:"name"`
}

func newEventDTO(e events.Event[struct{}]) eventDTO {
	return eventDTO{Day: newHebrewDayDTO(e.Day), Name: e.Name.String()}
}

// scheduleResponse is the /years/{year}/schedule payload.
type scheduleResponse struct {
	Year   uint32     `json:"year"`
	Events []eventDTO `json:"events"`
}

// studyEntryDTO is one daily-study resolution on the wire.
type studyEntryDTO struct {
	Day  hebrewDayDTO `json:"day"`
	Name string       `json:"name"`
}

func newStudyEntryDTO(e dailystudy.Entry) studyEntryDTO {
	return studyEntryDTO{Day: newHebrewDayDTO(e.Day), Name: e.Name.String()}
}

// dailyStudyResponse is the /years/{year}/daily-study payload.
type dailyStudyResponse struct {
	Year    uint32          `json:"year"`
	Entries []studyEntryDTO `json:"entries"`
}
