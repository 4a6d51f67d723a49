package gedcom

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	qualifierPattern = regexp.MustCompile(`(?i)^(?:ABT|ABOUT|EST|ESTIMATED|CAL|CALCULATED|BEF|BEFORE|AFT|AFTER)\b\.?\s*`)
	dayMonthYear     = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3})\s+(\d{4})$`)
	monthYear        = regexp.MustCompile(`^([A-Za-z]{3})\s+(\d{4})$`)
	yearOnly         = regexp.MustCompile(`^(\d{4})$`)
)

var monthNumbers = map[string]string{
	"JAN": "01",
	"FEB": "02",
	"MAR": "03",
	"APR": "04",
	"MAY": "05",
	"JUN": "06",
	"JUL": "07",
	"AUG": "08",
	"SEP": "09",
	"OCT": "10",
	"NOV": "11",
	"DEC": "12",
}

// NormalizeDate converts a GEDCOM date to YYYY-MM-DD. Approximation
// qualifiers (ABT, EST, CAL, BEF, AFT and their long forms) are dropped.
// Missing month or day default to 01. Unrecognized values yield "".
// The day is taken as written and not checked against the month, so
// "31 FEB 1900" becomes "1900-02-31" and "99 JAN 1990" becomes "1990-01-99".
func NormalizeDate(value string) string {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimSpace(qualifierPattern.ReplaceAllString(cleaned, ""))
	if cleaned == "" {
		return ""
	}

	if m := dayMonthYear.FindStringSubmatch(cleaned); m != nil {
		month, ok := lookupMonth(m[2])
		if !ok {
			return ""
		}
		day, err := strconv.Atoi(m[1])
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%s-%s-%02d", m[3], month, day)
	}
	if m := monthYear.FindStringSubmatch(cleaned); m != nil {
		if month, ok := lookupMonth(m[1]); ok {
			return m[2] + "-" + month + "-01"
		}
		return ""
	}
	if m := yearOnly.FindStringSubmatch(cleaned); m != nil {
		return m[1] + "-01-01"
	}
	return ""
}

func lookupMonth(abbrev string) (string, bool) {
	month, ok := monthNumbers[strings.ToUpper(abbrev)]
	return month, ok
}
