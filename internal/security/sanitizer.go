package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict elimina todo markup; el contenido de la app es texto plano
// (notas, leyendas, instrucciones) y se renderiza tal cual en el cliente.
var strict = bluemonday.StrictPolicy()

// Clean sanitiza texto ingresado por el usuario: quita HTML y recorta espacios.
func Clean(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
