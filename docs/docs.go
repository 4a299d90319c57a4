// Package docs registers the OpenAPI document served by the swagger UI.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json.tmpl
var template string

// SwaggerInfo is read by the swagger UI handler through swag.ReadDoc.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Airport Operations API",
	Description:      "Flights, gates, employees, passengers and dashboard statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  template,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
