package services

import (
	"errors"

	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

var (
	// ErrNotFound indica que el id referenciado no resuelve a un registro.
	ErrNotFound = errors.New("registro no encontrado")
	// ErrConflict indica un borrado bloqueado por registros dependientes.
	ErrConflict = errors.New("el registro tiene dependencias asociadas")
	// ErrNoRoles indica una base sin roles cargados: es un error de
	// configuración, no se registra un usuario con un rol inexistente.
	ErrNoRoles = errors.New("no hay roles configurados en el sistema")
)

// ValidationError agrupa los mensajes por campo de un envío inválido.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return "validación fallida"
}

// translateWriteError convierte una violación de unicidad detectada por la
// base al mismo formato de error por campo que produce la validación. La
// validación previa es chequeo-y-acción: dos escrituras concurrentes pueden
// pasar la validación y una perder la carrera contra la restricción única.
func translateWriteError(err error, uniqueField string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ValidationError{Fields: validation.Errors{
			uniqueField: "Este valor ya está registrado",
		}}
	}
	return err
}
