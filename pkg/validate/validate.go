// Package validate implementa la capa de validación declarativa de requests.
//
// Cada endpoint protegido declara un esquema con nombre: una lista ORDENADA de
// campos, y por campo una lista de reglas tipadas (predicado ozzo + mensaje
// fijo). Las reglas son datos explícitos, no tags de reflexión: el router las
// registra en el arranque y el middleware las evalúa por request.
//
// Semántica de evaluación:
//   - todas las reglas corren siempre; los errores se ACUMULAN en orden de
//     declaración (una regla fallida no corta a las siguientes, ni siquiera
//     dentro del mismo campo);
//   - un campo Optional ausente o vacío se salta completo, sin error;
//   - el path del campo (notación con puntos y corchetes: "contact.email",
//     "items[0].name") se devuelve tal cual en el error — el frontend lo usa
//     para mapear errores a campos del formulario.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// FieldError un error de validación de un campo. Field repite el path declarado.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result resultado de evaluar un esquema: válido, o la lista completa de errores.
// Es un valor por request; no guarda estado entre evaluaciones.
type Result struct {
	Errors []FieldError
}

// Valid indica si el payload pasó todas las reglas.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Rule un predicado con su mensaje. El mensaje siempre es el declarado aquí,
// nunca el texto interno de la librería de validación.
type Rule struct {
	check   validation.Rule
	message string
}

// NewRule envuelve un predicado ozzo arbitrario con un mensaje propio.
func NewRule(check validation.Rule, message string) Rule {
	return Rule{check: check, message: message}
}

// Field las reglas de un path del payload.
type Field struct {
	Path     string
	Optional bool
	Rules    []Rule
}

// NewField campo obligatorio (las reglas deciden qué significa "obligatorio").
func NewField(path string, rules ...Rule) Field {
	return Field{Path: path, Rules: rules}
}

// OptionalField campo opcional: ausente o vacío se salta sin error.
func OptionalField(path string, rules ...Rule) Field {
	return Field{Path: path, Optional: true, Rules: rules}
}

// Schema lista ordenada de campos para la forma de un endpoint.
type Schema struct {
	Name   string
	Fields []Field
}

// NewSchema construye un esquema con nombre.
func NewSchema(name string, fields ...Field) Schema {
	return Schema{Name: name, Fields: fields}
}

// Evaluate corre el esquema contra el payload. Sin efectos: el mismo payload
// contra el mismo esquema produce siempre el mismo conjunto de errores.
func (s Schema) Evaluate(payload map[string]interface{}) Result {
	var errs []FieldError
	for _, f := range s.Fields {
		value, found := Lookup(payload, f.Path)
		if f.Optional && (!found || isEmpty(value)) {
			continue
		}
		for _, r := range f.Rules {
			if err := validation.Validate(value, r.check); err != nil {
				errs = append(errs, FieldError{Field: f.Path, Message: r.message})
			}
		}
	}
	return Result{Errors: errs}
}

// isEmpty considera vacío: nil, string en blanco, slice/map sin elementos.
func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	}
	return false
}

// Lookup resuelve un path con puntos y corchetes dentro de un payload JSON
// decodificado a map[string]interface{}. Devuelve (valor, true) si el path
// existe, (nil, false) si algún segmento falta o el índice está fuera de rango.
func Lookup(payload map[string]interface{}, path string) (interface{}, bool) {
	var cur interface{} = payload
	for _, seg := range strings.Split(path, ".") {
		name, idxs, ok := splitSegment(seg)
		if !ok {
			return nil, false
		}
		if name != "" {
			m, isMap := cur.(map[string]interface{})
			if !isMap {
				return nil, false
			}
			v, found := m[name]
			if !found {
				return nil, false
			}
			cur = v
		}
		for _, i := range idxs {
			arr, isArr := cur.([]interface{})
			if !isArr || i < 0 || i >= len(arr) {
				return nil, false
			}
			cur = arr[i]
		}
	}
	return cur, true
}

// splitSegment separa "items[0]" en ("items", [0]). Un segmento puede traer
// varios índices encadenados ("matrix[1][2]").
func splitSegment(seg string) (name string, idxs []int, ok bool) {
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return seg, nil, seg != ""
	}
	name = seg[:open]
	rest := seg[open:]
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		close := strings.IndexByte(rest, ']')
		if close < 0 {
			return "", nil, false
		}
		n, err := strconv.Atoi(rest[1:close])
		if err != nil {
			return "", nil, false
		}
		idxs = append(idxs, n)
		rest = rest[close+1:]
	}
	return name, idxs, true
}

// Registry mapa nombre -> esquema. Se llena en el arranque (wiring estático de
// rutas) y después solo se lee, por eso no lleva lock.
type Registry struct {
	schemas map[string]Schema
}

// NewRegistry crea un registro vacío.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]Schema)}
}

// Register agrega un esquema. Nombre duplicado o vacío es un error de wiring: panic.
func (r *Registry) Register(s Schema) {
	if s.Name == "" {
		panic("validate: esquema sin nombre")
	}
	if _, dup := r.schemas[s.Name]; dup {
		panic(fmt.Sprintf("validate: esquema %q registrado dos veces", s.Name))
	}
	r.schemas[s.Name] = s
}

// Get devuelve el esquema si existe.
func (r *Registry) Get(name string) (Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// MustGet devuelve el esquema o hace panic. Para el wiring de rutas, donde un
// nombre inexistente es un error de configuración, no una condición de runtime.
func (r *Registry) MustGet(name string) Schema {
	s, ok := r.schemas[name]
	if !ok {
		panic(fmt.Sprintf("validate: esquema %q no registrado", name))
	}
	return s
}
