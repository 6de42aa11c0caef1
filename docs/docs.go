// Package docs holds the OpenAPI document served under /swagger.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "parameters": [
                    {
                        "description": "Email and password",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.Credentials"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/tournaments/{tournamentID}/standings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["standings"],
                "summary": "League table of a tournament",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "boolean", "description": "Include yellow/red card counts", "name": "discipline", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"standings": {"type": "array", "items": {"$ref": "#/definitions/models.StandingRow"}}}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/tournaments/{tournamentID}/standings/groups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["standings"],
                "summary": "Per-group tables of a tournament",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/tournaments/{tournamentID}/standings/snapshot": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["standings"],
                "summary": "Persist and publish the current table",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Snapshot storage not configured", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/tournaments/{tournamentID}/scorers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["standings"],
                "summary": "Top scorers of a tournament",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum rows (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"scorers": {"type": "array", "items": {"$ref": "#/definitions/models.ScorerRow"}}}}}
                }
            }
        },
        "/tournaments/{tournamentID}/players/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["standings"],
                "summary": "Per-player goals, assists, cards and appearances",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/tournaments/{tournamentID}/teams": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Teams of a tournament, optionally fuzzy searched by name",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "string", "description": "Fuzzy name search", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/tournaments/{tournamentID}/matches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "Matches of a tournament",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "string", "description": "Comma separated statuses", "name": "status", "in": "query"},
                    {"type": "string", "description": "grupos, eliminatoria, semifinal, final", "name": "phase", "in": "query"},
                    {"type": "string", "description": "Round label", "name": "round", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/tournaments/{tournamentID}/knockout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["brackets"],
                "summary": "Pair group qualifiers for the first knockout round",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {
                        "description": "Qualifiers per group, pairing mode, optional seed",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/services.KnockoutInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "Preview", "schema": {"type": "object", "additionalProperties": true}},
                    "201": {"description": "Matches created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/matches/{matchID}/result": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "Record the final score of a match",
                "parameters": [
                    {"type": "string", "description": "Match ID", "name": "matchID", "in": "path", "required": true},
                    {
                        "description": "Final score",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.Score"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Database unavailable"}
                }
            }
        }
    },
    "definitions": {
        "handlers.errorEnvelope": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.Credentials": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "models.Score": {
            "type": "object",
            "properties": {"home": {"type": "integer"}, "away": {"type": "integer"}}
        },
        "models.StandingRow": {
            "type": "object",
            "properties": {
                "teamId": {"type": "string"},
                "teamName": {"type": "string"},
                "group": {"type": "string"},
                "played": {"type": "integer"},
                "won": {"type": "integer"},
                "draw": {"type": "integer"},
                "lost": {"type": "integer"},
                "goalsFor": {"type": "integer"},
                "goalsAgainst": {"type": "integer"},
                "goalDiff": {"type": "integer"},
                "points": {"type": "integer"},
                "yellow": {"type": "integer"},
                "red": {"type": "integer"}
            }
        },
        "models.ScorerRow": {
            "type": "object",
            "properties": {
                "playerId": {"type": "string"},
                "playerName": {"type": "string"},
                "teamId": {"type": "string"},
                "goals": {"type": "integer"}
            }
        },
        "services.KnockoutInput": {
            "type": "object",
            "properties": {
                "qualifiers_per_group": {"type": "integer"},
                "mode": {"type": "string", "enum": ["seeded", "random"]},
                "seed": {"type": "integer"},
                "persist": {"type": "boolean"},
                "date": {"type": "string", "format": "date-time"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "League Standings API",
	Description:      "Standings tables, scorers and knockout pairings for tournaments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
