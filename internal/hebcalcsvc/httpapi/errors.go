package httpapi

import (
	"errors"
	"net/http"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// domainErrors are input-domain failures that map to 400 rather than 500 —
// the caller asked for something invalid, not something the service
// failed to produce.
var domainErrors = []error{
	hebrew.ErrYearTooSmall,
	hebrew.ErrIsLeapYear,
	hebrew.ErrIsNotLeapYear,
	hebrew.ErrTooManyDaysInWeek,
	hebrew.ErrTooManyHebrewMonths,
	civil.ErrMonthOutOfRange,
	civil.ErrDayOutOfRange,
}

// respondDomainError maps a core-package error to its HTTP status and
// writes the response; everything not recognized as a domain error falls
// through to a 500.
func respondDomainError(w http.ResponseWriter, err error) {
	var tooMany *hebrew.ErrTooManyDaysInMonth
	if errors.As(err, &tooMany) {
		respondBadRequest(w, err.Error())
		return
	}
	for _, sentinel := range domainErrors {
		if errors.Is(err, sentinel) {
			respondBadRequest(w, err.Error())
			return
		}
	}
	respondInternalError(w, err)
}
