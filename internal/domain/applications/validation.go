package applications

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Nombres de campo del formulario. Coinciden con los tags JSON del draft
// para que la UI pueda mapear errores a inputs sin tabla intermedia.
const (
	FieldOwnerName       = "owner_name"
	FieldAddress         = "address"
	FieldPhone           = "phone"
	FieldDogName         = "dog_name"
	FieldBreed           = "breed"
	FieldAge             = "age"
	FieldVaccinationDate = "vaccination_date"
)

const (
	dateLayout = "2006-01-02"

	phoneDigits    = 10
	maxDogAgeYears = 30

	// Ventana de vigencia de la vacuna antirrábica.
	vaccinationWindowYears = 3
)

// FieldError es una falla de validación acotada a un campo.
// El mensaje está pensado para mostrarse inline junto al input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError agrupa las fallas por campo de un envío rechazado.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}

// NormalizePhone sanitiza un teléfono de EEUU y lo lleva a la forma
// canónica "(XXX) XXX-XXXX". Acepta cualquier puntuación de entrada
// (guiones, espacios, paréntesis): solo cuentan los dígitos.
// Nunca entra en pánico; entrada inválida devuelve error con mensaje
// apto para el usuario.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) != phoneDigits {
		return "", fmt.Errorf("phone must have exactly %d digits", phoneDigits)
	}
	// Área code no puede arrancar en 0 ni 1 (plan de numeración NANP).
	if digits[0] == '0' || digits[0] == '1' {
		return "", fmt.Errorf("area code cannot start with %c", digits[0])
	}

	return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10]), nil
}

// CheckVaccinationDate valida la fecha de vacunación contra "hoy":
// tiene que parsear como YYYY-MM-DD, no puede ser futura y no puede
// tener más de 3 años. Los tres chequeos son independientes y se
// comparan a granularidad de día.
func CheckVaccinationDate(raw string, now time.Time) error {
	d, err := parseDate(raw)
	if err != nil {
		return fmt.Errorf("vaccination date must be a valid date (YYYY-MM-DD)")
	}

	today := dateOnly(now)
	if d.After(today) {
		return fmt.Errorf("vaccination date cannot be in the future")
	}
	if d.Before(today.AddDate(-vaccinationWindowYears, 0, 0)) {
		return fmt.Errorf("vaccination must be within the last %d years", vaccinationWindowYears)
	}
	return nil
}

// CheckAge valida la edad como entero en (0, 30].
func CheckAge(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("age must be a number")
	}
	if n <= 0 || n > maxDogAgeYears {
		return fmt.Errorf("age must be between 1 and %d", maxDogAgeYears)
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(raw))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Límites de longitud (en runas) de los campos de texto libre.
var textBounds = map[string]struct{ min, max int }{
	FieldOwnerName: {2, 100},
	FieldAddress:   {5, 200},
	FieldDogName:   {1, 50},
	FieldBreed:     {2, 50},
}

func checkText(field, value string) error {
	b := textBounds[field]
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n < b.min {
		return fmt.Errorf("must have at least %d characters", b.min)
	}
	if n > b.max {
		return fmt.Errorf("must have at most %d characters", b.max)
	}
	return nil
}

// checkField despacha la validación por campo. Devuelve nil si pasa.
func checkField(field string, d Draft, now time.Time) *FieldError {
	var err error
	switch field {
	case FieldOwnerName:
		err = checkText(field, d.OwnerName)
	case FieldAddress:
		err = checkText(field, d.Address)
	case FieldPhone:
		_, err = NormalizePhone(d.Phone)
	case FieldDogName:
		err = checkText(field, d.DogName)
	case FieldBreed:
		err = checkText(field, d.Breed)
	case FieldAge:
		err = CheckAge(d.Age)
	case FieldVaccinationDate:
		err = CheckVaccinationDate(d.VaccinationDate, now)
	default:
		err = fmt.Errorf("unknown field")
	}

	if err != nil {
		return &FieldError{Field: field, Message: err.Error()}
	}
	return nil
}

func checkFields(fields []string, d Draft, now time.Time) []FieldError {
	var out []FieldError
	for _, f := range fields {
		if fe := checkField(f, d, now); fe != nil {
			out = append(out, *fe)
		}
	}
	return out
}

// ValidateDraft corre el predicado de cada campo del draft completo.
// Un draft es enviable solo si esto devuelve vacío; no hay invariantes
// cruzadas entre campos.
func ValidateDraft(d Draft, now time.Time) []FieldError {
	return checkFields(FieldOrder, d, now)
}
