package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Constructores para las clases de predicado soportadas. Todos devuelven Rule
// con el mensaje fijo que el cliente verá; los textos internos de ozzo nunca
// llegan a la respuesta.

var errRuleFailed = errors.New("validate: regla no cumplida")

// phoneShape forma genérica de teléfono: dígitos, con + opcional y separadores comunes.
var phoneShape = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,19}$`)

// Required valor presente y no vacío, de cualquier tipo.
func Required(message string) Rule {
	return NewRule(validation.By(func(v interface{}) error {
		if isEmpty(v) {
			return errRuleFailed
		}
		return nil
	}), message)
}

// RequiredString string presente y no vacío después de trim.
// nil, no-string o solo espacios fallan.
func RequiredString(message string) Rule {
	return NewRule(validation.By(func(v interface{}) error {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return errRuleFailed
		}
		return nil
	}), message)
}

// MinLen longitud mínima de string. Valores ausentes se saltan (eso lo decide
// RequiredString u Optional en el esquema, no esta regla).
func MinLen(min int, message string) Rule {
	return NewRule(validation.Length(min, 0), message)
}

// MaxLen longitud máxima de string.
func MaxLen(max int, message string) Rule {
	return NewRule(validation.Length(0, max), message)
}

// OneOf pertenencia a un conjunto cerrado de valores.
func OneOf(message string, values ...string) Rule {
	in := make([]interface{}, len(values))
	for i, v := range values {
		in[i] = v
	}
	return NewRule(validation.In(in...), message)
}

// Numeric formato numérico: acepta números JSON y strings parseables como número.
func Numeric(message string) Rule {
	return NewRule(validation.By(func(v interface{}) error {
		switch t := v.(type) {
		case nil:
			return nil
		case float64, float32, int, int32, int64:
			return nil
		case string:
			return validation.Validate(t, is.Float)
		}
		return errRuleFailed
	}), message)
}

// IntRange entero dentro de [min, max], ambos inclusive. Coerciona números JSON
// (float64 sin parte decimal) y strings con dígitos; cualquier otra cosa falla.
func IntRange(min, max int64, message string) Rule {
	return NewRule(validation.By(func(v interface{}) error {
		n, ok := coerceInt(v)
		if !ok {
			return errRuleFailed
		}
		if n < min || n > max {
			return fmt.Errorf("validate: %d fuera de [%d, %d]", n, min, max)
		}
		return nil
	}), message)
}

func coerceInt(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case float64:
		n := int64(t)
		if float64(n) != t {
			return 0, false // tiene parte decimal
		}
		return n, true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// DateISO fecha bien formada en el layout dado (ej. "2006-01-02" o time.RFC3339).
func DateISO(layout, message string) Rule {
	return NewRule(validation.Date(layout), message)
}

// Email forma de correo electrónico.
func Email(message string) Rule {
	return NewRule(is.Email, message)
}

// Phone forma genérica de número telefónico.
func Phone(message string) Rule {
	return NewRule(validation.Match(phoneShape), message)
}
