package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dmyRe = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	ymdRe = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
)

// Spreadsheet serials count days since 1899-12-30; 25569 is the offset to
// the Unix epoch.
const serialEpochOffset = 25569

// ParseDate converts a cell into a YYYY-MM-DD string, or "" when the value
// is absent or not one of the accepted shapes. Numeric cells are treated as
// spreadsheet date serials; DD-MM-YYYY and YYYY-MM-DD (with - or /) are
// reassembled with zero padding. Ambiguous formats are deliberately not
// guessed. Never errors, date-only, no timezone beyond the serial math.
func ParseDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		secs := (serial - serialEpochOffset) * 86400
		return time.Unix(int64(secs), 0).UTC().Format("2006-01-02")
	}
	if m := dmyRe.FindStringSubmatch(s); m != nil {
		return assemble(m[3], m[2], m[1])
	}
	if m := ymdRe.FindStringSubmatch(s); m != nil {
		return assemble(m[1], m[2], m[3])
	}
	return ""
}

func assemble(year, month, day string) string {
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, mo, d)
}
