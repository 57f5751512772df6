// Package docs registers the API description served under /swagger.
// Regenerate with: swag init -g cmd/arcdata/main.go --parseInternal
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/readyz": {"get": {"tags": ["health"], "summary": "Readiness check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/version": {"get": {"tags": ["health"], "summary": "Build information", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/items": {"get": {"tags": ["dataset"], "summary": "List items", "produces": ["application/json"],
            "parameters": [
                {"type": "string", "description": "comma separated categories", "name": "category", "in": "query"},
                {"type": "string", "description": "case-insensitive match on id or name", "name": "q", "in": "query"}
            ],
            "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/api/v1/items/{id}": {"get": {"tags": ["dataset"], "summary": "Get item", "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "item id or slug", "name": "id", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/quests": {"get": {"tags": ["dataset"], "summary": "List quests", "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "only quests of this chain", "name": "chain", "in": "query"}],
            "responses": {"200": {"description": "OK"}}}},
        "/api/v1/chains": {"get": {"tags": ["dataset"], "summary": "List quest chains", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/chains/{id}": {"get": {"tags": ["dataset"], "summary": "Get quest chain", "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "chain id", "name": "id", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/upgrades": {"get": {"tags": ["dataset"], "summary": "List workshop upgrades", "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "only upgrades of this bench (case-insensitive)", "name": "bench", "in": "query"}],
            "responses": {"200": {"description": "OK"}}}},
        "/api/v1/projects": {"get": {"tags": ["dataset"], "summary": "List projects", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/diagnostics": {"get": {"tags": ["dataset"], "summary": "List diagnostics", "produces": ["application/json"],
            "parameters": [
                {"type": "string", "description": "info, warning or error", "name": "severity", "in": "query"},
                {"type": "string", "description": "diagnostic code", "name": "code", "in": "query"}
            ],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/admin/reload": {"post": {"tags": ["admin"], "summary": "Rebuild the dataset in memory", "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}}},
        "/api/v1/wantlist": {
            "get": {"tags": ["wantlist"], "summary": "List want-list entries", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["wantlist"], "summary": "Add or update a want-list entry", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "entry", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AddWantListRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/wantlist/{id}": {"delete": {"tags": ["wantlist"], "summary": "Remove a want-list entry", "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "entry id", "name": "id", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/wantlist/resolved": {"get": {"tags": ["wantlist"], "summary": "Expand the stored want-list", "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "comma separated ignored categories; omit for the configured defaults, pass empty to ignore none", "name": "ignore", "in": "query"}],
            "responses": {"200": {"description": "OK"}}}},
        "/api/v1/wantlist/expand": {"post": {"tags": ["wantlist"], "summary": "Expand entries without storing them", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "entries", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ExpandRequest"}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}}
    },
    "definitions": {
        "handler.AddWantListRequest": {"type": "object", "properties": {
            "item": {"type": "string"}, "qty": {"type": "integer"}, "reason": {"type": "string"}}},
        "handler.ExpandEntry": {"type": "object", "properties": {
            "itemId": {"type": "string"}, "qty": {"type": "integer"}}},
        "handler.ExpandRequest": {"type": "object", "properties": {
            "entries": {"type": "array", "items": {"$ref": "#/definitions/handler.ExpandEntry"}},
            "ignore": {"type": "array", "items": {"type": "string"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "arcdata API",
	Description:      "Canonical game dataset and want-list expansion.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
