//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package warehouse builds the dimension and fact tables of the star
// schema from the staged intermediate tables.
package warehouse

import "time"

const (
	// dateLayout is the date portion of invoice dates in staged data.
	dateLayout = "2006-01-02"

	// stampLayout is the format of audit timestamps and of the time
	// dimension's date key.
	stampLayout = "2006-01-02 15:04:05"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// weekdayNames is indexed Monday=0 through Sunday=6.
var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func monthName(m time.Month) string {
	return monthNames[int(m)-1]
}

func weekdayName(d time.Weekday) string {
	// time.Weekday counts Sunday=0; the dimension uses Monday=0.
	return weekdayNames[(int(d)+6)%7]
}

// semester is 1 for January through June, 2 otherwise.
func semester(m time.Month) int {
	if m < time.July {
		return 1
	}
	return 2
}

// quarter maps a month to its calendar quarter, 1 through 4.
func quarter(m time.Month) int {
	return (int(m)-1)/3 + 1
}

// hour12 is |h-12|. This is the upstream pipeline's transform, kept
// verbatim: it maps 0 to 12 and 12 to 0, which is not a standard
// 12-hour clock.
func hour12(h int) int {
	if h < 12 {
		return 12 - h
	}
	return h - 12
}
