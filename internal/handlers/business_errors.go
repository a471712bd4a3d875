package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/timeclock/internal/httperr"
)

var businessMessages = map[string]string{
	"already_open":     "Ya tienes un registro abierto.",
	"no_open_record":   "No tienes ningún fichaje abierto.",
	"non_working_day":  "No puedes fichar en un día no trabajable.",
	"invalid_range":    "La salida no puede ser anterior a la entrada.",
	"inactive_user":    "Usuario desactivado.",
	"user_not_found":   "Usuario no encontrado.",
	"record_not_found": "Registro no encontrado.",
	"invalid_status":   "Estado de día no válido.",
	"invalid_category": "Categoría no válida.",
}

// writeBusinessError traduce errores de negocio a HTTP. Devuelve
// false si el error no es de negocio (fallo de almacenamiento):
// el llamante responde 500 genérico y el usuario reintenta.
func writeBusinessError(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return false
	}

	msg := be.Message
	if msg == "" {
		msg = businessMessages[be.Code]
	}

	switch be.Code {
	case "already_open", "no_open_record":
		httperr.Conflict(c, be.Code, msg)
	case "non_working_day", "inactive_user":
		httperr.Forbidden(c, be.Code, msg)
	case "user_not_found", "record_not_found":
		httperr.NotFound(c, be.Code, msg)
	default:
		httperr.BadRequest(c, be.Code, msg)
	}
	return true
}

func writeStorageError(c *gin.Context) {
	httperr.Internal(c, "storage_failure", "Error de almacenamiento. Intenta de nuevo.")
}
