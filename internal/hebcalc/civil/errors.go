package civil

import "errors"

// ErrMonthOutOfRange is returned when a civil month is not in 1..12.
var ErrMonthOutOfRange = errors.New("civil: month out of range")

// ErrDayOutOfRange is returned when a civil day exceeds the length of its month.
var ErrDayOutOfRange = errors.New("civil: day out of range")
