// Package oapi holds the OpenAPI documents the HTTP adapters are generated
// from and validated against.
package oapi

import "embed"

//go:embed *.yaml
var Specs embed.FS

// ContactSpec is the path of the contact API document inside Specs.
const ContactSpec = "openapi-contact.yaml"
