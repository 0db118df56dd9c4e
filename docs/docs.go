// Package docs registers the OpenAPI description served under /swagger.
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
        "/mistral/ask": {
            "get": {
                "description": "Builds a teacher prompt for subject/topic, or a rewrite prompt for a previous answer, and relays it to the completion API.",
                "produces": ["application/json"],
                "tags": ["mistral"],
                "summary": "Ask the tutor",
                "parameters": [
                    {"type": "string", "description": "School subject", "name": "subject", "in": "query"},
                    {"type": "string", "description": "Topic to explain", "name": "topic", "in": "query"},
                    {"type": "string", "description": "Follow-up rewrite request", "name": "modificationRequest", "in": "query"},
                    {"type": "string", "description": "Answer to rewrite", "name": "previousAnswer", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tutor.CompletionResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/mistral/subjects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["mistral"],
                "summary": "List subjects with a dedicated teacher persona",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tutor.SubjectsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "config.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "statusCode": {"type": "integer"}
            }
        },
        "tutor.Choice": {
            "type": "object",
            "properties": {
                "finish_reason": {"type": "string"},
                "index": {"type": "integer"},
                "message": {"$ref": "#/definitions/tutor.Message"}
            }
        },
        "tutor.CompletionResult": {
            "type": "object",
            "properties": {
                "choices": {"type": "array", "items": {"$ref": "#/definitions/tutor.Choice"}},
                "created": {"type": "integer"},
                "id": {"type": "string"},
                "model": {"type": "string"},
                "object": {"type": "string"},
                "usage": {"$ref": "#/definitions/tutor.Usage"}
            }
        },
        "tutor.Message": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "tutor.SubjectsResponse": {
            "type": "object",
            "properties": {
                "subjects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "tutor.Usage": {
            "type": "object",
            "properties": {
                "completion_tokens": {"type": "integer"},
                "prompt_tokens": {"type": "integer"},
                "total_tokens": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tutor API",
	Description:      "Relays teacher-persona prompts to an LLM completion API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
