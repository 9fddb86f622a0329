package validators

import "regexp"

var (
	dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	hourRE = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	zipRE  = regexp.MustCompile(`^\d{5}-?\d{3}$`)
)

// IsDate valida o formato YYYY-MM-DD; a existência da data em si é
// checada no parse.
func IsDate(s string) bool {
	return dateRE.MatchString(s)
}

// IsHourMinute valida HH:MM em relógio de 24 horas.
func IsHourMinute(s string) bool {
	return hourRE.MatchString(s)
}

// IsZipCode valida CEP com ou sem hífen.
func IsZipCode(s string) bool {
	return zipRE.MatchString(s)
}
