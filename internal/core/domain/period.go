package domain

import "time"

// FiscalPeriod is a calendar-month sub-division of a fiscal year used to
// bucket turnover and enforce period-lock boundaries.
type FiscalPeriod string

const (
	January   FiscalPeriod = "JANUARY"
	February  FiscalPeriod = "FEBRUARY"
	March     FiscalPeriod = "MARCH"
	April     FiscalPeriod = "APRIL"
	May       FiscalPeriod = "MAY"
	June      FiscalPeriod = "JUNE"
	July      FiscalPeriod = "JULY"
	August    FiscalPeriod = "AUGUST"
	September FiscalPeriod = "SEPTEMBER"
	October   FiscalPeriod = "OCTOBER"
	November  FiscalPeriod = "NOVEMBER"
	December  FiscalPeriod = "DECEMBER"
)

var fiscalPeriods = [12]FiscalPeriod{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// FiscalPeriodFromDate maps a date to its calendar-month fiscal period.
func FiscalPeriodFromDate(date time.Time) FiscalPeriod {
	return fiscalPeriods[date.Month()-1]
}

// Valid reports whether the value is one of the twelve fiscal periods.
func (p FiscalPeriod) Valid() bool {
	for _, fp := range fiscalPeriods {
		if p == fp {
			return true
		}
	}
	return false
}

// FiscalPeriodLock marks a (company, fiscal year, fiscal period) tuple as
// closed against posting. Written by administrative action, read as a
// point lookup by every create/post attempt.
type FiscalPeriodLock struct {
	LockID       string       `json:"lockID"` // Primary key (UUID)
	CompanyID    string       `json:"companyID"`
	FiscalYear   int          `json:"fiscalYear"`
	FiscalPeriod FiscalPeriod `json:"fiscalPeriod"`
	IsLocked     bool         `json:"isLocked"`
	LockedAt     *time.Time   `json:"lockedAt,omitempty"`
	LockedBy     *string      `json:"lockedBy,omitempty"` // UserID reference
}
