// ABOUTME: Weekday-from-date computation via Zeller's congruence
// ABOUTME: Validates calendar dates (month ranges, leap years) and normalizes two-digit years

package calendar

import "errors"

// ErrInvalidDate is returned for dates that do not exist on the calendar.
var ErrInvalidDate = errors.New("invalid date")

// Days and Months carry the Indonesian names used in display text.
// Days[0] is the day Zeller's congruence (with the -1 offset below)
// assigns to Sunday.
var (
	Days = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

	Months = [12]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// WeekdayName returns the Indonesian weekday name for the given date.
// Two-digit years are normalized: < 50 means 2000+year, >= 50 means 1900+year.
func WeekdayName(day, month, year int) (string, error) {
	year = NormalizeYear(year)
	if !ValidDate(day, month, year) {
		return "", ErrInvalidDate
	}

	// Zeller's congruence, with January and February counted as months 13
	// and 14 of the previous year.
	q := day
	m := month
	if m < 3 {
		m += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (q + (13*(m+1))/5 + k + k/4 + j/4 + 5*j - 1) % 7

	return Days[h], nil
}

// NormalizeYear expands a two-digit year around the 1950/2049 pivot.
func NormalizeYear(year int) int {
	if year >= 100 {
		return year
	}
	if year < 50 {
		return 2000 + year
	}
	return 1900 + year
}

// ValidDate reports whether the given day/month/year names a real calendar
// date. year must already be normalized.
func ValidDate(day, month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > daysInMonth(month, year) {
		return false
	}
	return true
}

func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
