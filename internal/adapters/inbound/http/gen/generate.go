// Package gen holds the REST types and std-http server glue generated from api/openapi.yaml.
package gen

//go:generate go tool oapi-codegen -config cfg.yaml ../../../../../api/openapi.yaml
