package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Kind identifica cada regla del vocabulario de validación.
type Kind int

const (
	Required Kind = iota
	Str
	Max
	Integer
	Numeric
	Date
	Email
	Boolean
	Unique
	// UniqueLower compara en minúsculas (unicidad sin distinguir mayúsculas)
	UniqueLower
	Exists
	Confirmed
)

// Rule es un descriptor estático: el campo selecciona su lista ordenada de
// reglas en un Schema y el evaluador las recorre de forma genérica.
type Rule struct {
	Kind    Kind
	Max     int
	Table   string
	Column  string
	Message string
}

// Schema asocia cada campo de un recurso con sus reglas declaradas.
type Schema map[string][]Rule

// Errors acumula un mensaje por campo inválido.
type Errors map[string]string

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Validator struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Validator {
	return &Validator{db: db}
}

// Check evalúa todos los campos del esquema contra los valores recibidos.
// Para cada campo gana la primera regla que falla; si el mapa devuelto está
// vacío la entrada es válida. Nunca escribe en la base.
func (v *Validator) Check(schema Schema, values map[string]interface{}, excludeID *int) Errors {
	errs := Errors{}
	for field, rules := range schema {
		if ok, msg := v.checkField(rules, values, field, excludeID); !ok {
			errs[field] = msg
		}
	}
	return errs
}

// Field valida un único campo en modo incremental (por ejemplo al perder el
// foco en un formulario). El veredicto coincide con el de Check para ese
// campo dado el mismo valor y el mismo id excluido.
func (v *Validator) Field(schema Schema, field string, value interface{}, excludeID *int) (bool, string) {
	rules, ok := schema[field]
	if !ok {
		return false, "Campo desconocido"
	}
	return v.checkField(rules, map[string]interface{}{field: value}, field, excludeID)
}

func (v *Validator) checkField(rules []Rule, values map[string]interface{}, field string, excludeID *int) (bool, string) {
	value := deref(values[field])
	present := !isEmpty(value)

	for _, r := range rules {
		if r.Kind == Required {
			if !present {
				return false, message(r, "Este campo es obligatorio")
			}
			continue
		}
		// Las demás reglas solo aplican cuando hay un valor presente
		if !present {
			continue
		}
		if ok, msg := v.apply(r, value, values, field, excludeID); !ok {
			return false, msg
		}
	}
	return true, ""
}

func (v *Validator) apply(r Rule, value interface{}, values map[string]interface{}, field string, excludeID *int) (bool, string) {
	switch r.Kind {
	case Str:
		if _, ok := value.(string); !ok {
			return false, message(r, "Debe ser una cadena de texto")
		}
	case Max:
		s, ok := value.(string)
		if ok && len([]rune(s)) > r.Max {
			return false, message(r, fmt.Sprintf("No debe superar los %d caracteres", r.Max))
		}
	case Integer:
		if !isInteger(value) {
			return false, message(r, "Debe ser un número entero")
		}
	case Numeric:
		if _, ok := asFloat(value); !ok {
			return false, message(r, "Debe ser un valor numérico")
		}
	case Date:
		if !isDate(value) {
			return false, message(r, "Debe ser una fecha válida (AAAA-MM-DD)")
		}
	case Email:
		s, ok := value.(string)
		if !ok || !emailPattern.MatchString(s) {
			return false, message(r, "Debe ser un correo electrónico válido")
		}
	case Boolean:
		if !isBoolean(value) {
			return false, message(r, "Debe ser verdadero o falso")
		}
	case Unique, UniqueLower:
		count, err := v.countMatches(r, value, excludeID)
		if err != nil {
			return false, message(r, "No se pudo verificar la unicidad del valor")
		}
		if count > 0 {
			return false, message(r, "Este valor ya está registrado")
		}
	case Exists:
		count, err := v.countByID(r, value)
		if err != nil {
			return false, message(r, "No se pudo verificar la referencia")
		}
		if count == 0 {
			return false, message(r, "La referencia seleccionada no existe")
		}
	case Confirmed:
		confirmation := deref(values[field+"_confirmation"])
		// En modo incremental no hay campo de confirmación que comparar
		if _, present := values[field+"_confirmation"]; present && value != confirmation {
			return false, message(r, "La confirmación no coincide")
		}
	}
	return true, ""
}

func (v *Validator) countMatches(r Rule, value interface{}, excludeID *int) (int64, error) {
	query := v.db.Table(r.Table)
	if r.Kind == UniqueLower {
		query = query.Where("LOWER("+r.Column+") = LOWER(?)", fmt.Sprint(value))
	} else {
		query = query.Where(r.Column+" = ?", value)
	}
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (v *Validator) countByID(r Rule, value interface{}) (int64, error) {
	var count int64
	err := v.db.Table(r.Table).Where("id = ?", value).Count(&count).Error
	return count, err
}

func message(r Rule, fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	return fallback
}

// deref aplana los punteros que usan los modelos para columnas anulables.
func deref(value interface{}) interface{} {
	switch t := value.(type) {
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case *int:
		if t == nil {
			return nil
		}
		return *t
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	case *bool:
		if t == nil {
			return nil
		}
		return *t
	case *time.Time:
		if t == nil {
			return nil
		}
		return *t
	}
	return value
}

func isEmpty(value interface{}) bool {
	switch t := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case time.Time:
		return t.IsZero()
	}
	return false
}

func isInteger(value interface{}) bool {
	switch t := value.(type) {
	case int, int32, int64:
		return true
	case float64:
		return t == float64(int64(t))
	case string:
		_, err := strconv.Atoi(strings.TrimSpace(t))
		return err == nil
	}
	return false
}

func asFloat(value interface{}) (float64, bool) {
	switch t := value.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func isDate(value interface{}) bool {
	switch t := value.(type) {
	case time.Time:
		return !t.IsZero()
	case string:
		if _, err := time.Parse("2006-01-02", t); err == nil {
			return true
		}
		_, err := time.Parse(time.RFC3339, t)
		return err == nil
	}
	return false
}

func isBoolean(value interface{}) bool {
	switch t := value.(type) {
	case bool:
		return true
	case string:
		_, err := strconv.ParseBool(t)
		return err == nil
	}
	return false
}
