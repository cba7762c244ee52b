package validation

import (
	"strings"
)

// valuePlaceholder is replaced with the rejected value in messages.
const valuePlaceholder = "{{ value }}"

// messages maps "<Struct>.<field>" to the message of each rule tag. The
// texts are the ones API clients of the directory have always received.
var messages = map[string]map[string]string{
	"Province.name": {
		"required": "El Campo Nombre No Puede Estar En Blanco",
		"min":      "El Nombre Tiene un Minimo de 2 Caracteres",
		"max":      "El Nombre Tiene un Maximo de 45 Caracteres",
	},

	"Employee.name": {
		"required": "El Campo Nombre No Puede Estar En Blanco",
		"min":      "El Nombre Tiene un Minimo de 2 Caracteres",
		"max":      "El Nombre Tiene un Maximo de 45 Caracteres",
	},
	"Employee.firstSurname": {
		"required": "El Campo Apellido 1 No Puede Estar En Blanco",
		"min":      "El Apellido Tiene un Minimo de 2 Caracteres",
		"max":      "El Apellido Tiene un Maximo de 45 Caracteres",
	},
	"Employee.secondSurname": {
		"min": "El Segundo Apellido Tiene un Minimo de 2 Caracteres",
		"max": "El Segundo Apellido Tiene un Maximo de 45 Caracteres",
	},
	"Employee.nationalId": {
		"required": "El Campo dni No Puede Estar En Blanco",
	},
	"Employee.address": {
		"required": "El Campo Direccion No Puede Estar En Blanco",
		"min":      "La Direccion Tiene un Minimo de 2 Caracteres",
		"max":      "La Direccion Tiene un Maximo de 45 Caracteres",
	},
	"Employee.city": {
		"required": "El Campo Ciudad No Puede Estar En Blanco",
		"min":      "La Ciudad Tiene un Minimo de 2 Caracteres",
		"max":      "La Ciudad Tiene un Maximo de 45 Caracteres",
	},
	"Employee.postalCode": {
		"required": "El Campo Codigo Postal No Puede Estar En Blanco",
		"min":      "El Codigo Postal Tiene un Minimo de 4 Caracteres",
		"max":      "El Codigo Postal Tiene un Maximo de 5 Caracteres",
	},
	"Employee.province": {
		ReferenceTag: "El Campo Provincia No Puede Estar En Blanco",
	},

	"WorkCenter.name": {
		"required": "El Campo Nombre No Puede Estar En Blanco",
		"min":      "El Nombre Tiene un Minimo de 2 Caracteres",
		"max":      "El Nombre Tiene un Maximo de 45 Caracteres",
	},
	"WorkCenter.address": {
		"required": "El Campo Direccion No Puede Estar En Blanco",
		"min":      "La Direccion Tiene un Minimo de 2 Caracteres",
		"max":      "La Direccion Tiene un Maximo de 45 Caracteres",
	},
	"WorkCenter.city": {
		"required": "El Campo Ciudad No Puede Estar En Blanco",
		"min":      "La Ciudad Tiene un Minimo de 2 Caracteres",
		"max":      "La Ciudad Tiene un Maximo de 45 Caracteres",
	},
	"WorkCenter.postalCode": {
		"required": "El Campo Codigo Postal No Puede Estar En Blanco",
		"min":      "El Codigo Postal Tiene un Minimo de 4 Caracteres",
		"max":      "El Codigo Postal Tiene un Maximo de 5 Caracteres",
	},
	"WorkCenter.phone": {
		"required": "El Campo Telefono No Puede Estar En Blanco",
		PhoneTag:   `El Telefono "{{ value }}" No Es Valido`,
	},
	"WorkCenter.province": {
		ReferenceTag: "El Campo Provincia No Puede Estar En Blanco",
	},
}

// Messages for references that are set but point at nothing.
const (
	MsgProvinceNotFound   = "La Provincia Indicada No Existe"
	MsgWorkCenterNotFound = "El Centro de Trabajo Indicado No Existe"
	MsgEmployeeNotFound   = "El Empleado Indicado No Existe"
)

func messageFor(namespace, tag, field, value string) string {
	if byTag, ok := messages[namespace]; ok {
		if msg, ok := byTag[tag]; ok {
			return strings.ReplaceAll(msg, valuePlaceholder, value)
		}
	}
	return "El Campo " + field + " No Es Valido"
}
