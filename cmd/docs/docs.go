// Package docs is regenerated by swaggo/swag (`swag init -g cmd/finances_backend/main.go -o cmd/docs`).
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
        "/accounts": {
            "get": {"tags": ["accounts"], "summary": "List accounts", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["accounts"], "summary": "Open a new account", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}}}
        },
        "/accounts/active": {
            "get": {"tags": ["accounts"], "summary": "List active accounts", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/accounts/{id}": {
            "get": {"tags": ["accounts"], "summary": "Get an account by ID", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["accounts"], "summary": "Delete an account", "responses": {"204": {"description": "No Content"}}}
        },
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["users"], "summary": "Register a user", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}}}
        },
        "/credentials": {
            "post": {"tags": ["credentials"], "summary": "Create a login for a user", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}}}
        },
        "/credentials/verify": {
            "post": {"tags": ["credentials"], "summary": "Check a login and password", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Finances Backend API",
	Description:      "Accounts, users and credentials for the personal finances backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
