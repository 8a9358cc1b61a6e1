// Package docs holds the OpenAPI document served under /swagger. It mirrors
// the swag annotations on the handlers; rerun
// `swag init -g internal/api/handler/user_handler.go` after changing them.
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
        "/admin/stats": {
            "get": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Service statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.StatsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/admin/users": {
            "get": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "description": "Newest first, cursor paginated.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List users",
                "parameters": [
                    {
                        "default": 20,
                        "minimum": 1,
                        "maximum": 100,
                        "type": "integer",
                        "description": "Results per page (1-100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Cursor from previous response's next_cursor",
                        "name": "cursor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.UserListResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/admin/users/{userId}": {
            "patch": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Change membership or role",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.UpdateMembershipRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/chakras": {
            "get": {
                "description": "Names, elements, symptoms, healing practices and affirmations for all seven chakras, root to crown.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chakras"
                ],
                "summary": "List chakra reference data",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/chakra.Info"
                            }
                        }
                    }
                }
            }
        },
        "/users": {
            "post": {
                "description": "Register a free member with email, display name and timezone",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Create a new user",
                "parameters": [
                    {
                        "description": "User creation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "409": {
                        "description": "Email already registered",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}": {
            "get": {
                "description": "Get a user's details by their UUID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get user by ID",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/chakras": {
            "get": {
                "description": "Current ratings with per-chakra status and overall balance. A user without an assessment gets assessed=false and the \"Not assessed\" balance.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chakras"
                ],
                "summary": "Get the chakra profile",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ChakraProfileResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            },
            "put": {
                "description": "Replace the user's assessment with all seven ratings (1-10). Statuses and overall balance are computed from the stored values.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chakras"
                ],
                "summary": "Submit a chakra assessment",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "All seven chakra ratings",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.AssessmentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ChakraProfileResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/coach/feedback": {
            "post": {
                "description": "Submit a 1-5 rating and optional comment for a reply, identified by its trace id.",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "coach"
                ],
                "summary": "Rate a coach reply",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Feedback",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.FeedbackRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Feedback submitted"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "User or trace not found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/coach/messages": {
            "get": {
                "description": "Latest chat turns, oldest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "coach"
                ],
                "summary": "Get chat history",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "default": 12,
                        "minimum": 1,
                        "maximum": 100,
                        "type": "integer",
                        "description": "Number of turns",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ChatHistoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            },
            "post": {
                "description": "Send a message to the coach chosen from the user's primary focus chakra (or the requested coach). Free members are limited per UTC day.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "coach"
                ],
                "summary": "Talk to a coach",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Chat message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.SendMessageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SendMessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "429": {
                        "description": "Daily free limit reached",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "502": {
                        "description": "LLM request failed",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "503": {
                        "description": "LLM not configured",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/journal": {
            "get": {
                "description": "Newest first, cursor paginated, optionally filtered by creation time.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "List journal entries",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "format": "date-time",
                        "type": "string",
                        "description": "Only entries created at or after (RFC3339)",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "format": "date-time",
                        "type": "string",
                        "description": "Only entries created at or before (RFC3339)",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "default": 20,
                        "minimum": 1,
                        "maximum": 100,
                        "type": "integer",
                        "description": "Results per page (1-100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Cursor from previous response's next_cursor",
                        "name": "cursor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.JournalListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            },
            "post": {
                "description": "Store an entry tagged with sentiment (label and score in [-1, 1]) and detected emotions.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "journal"
                ],
                "summary": "Write a journal entry",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Journal entry",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CreateJournalEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.JournalEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        },
        "/users/{userId}/rituals": {
            "get": {
                "description": "Focus areas, practices and insights for the most imbalanced chakras, with the recommended coach and affirmations.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rituals"
                ],
                "summary": "Get healing rituals",
                "parameters": [
                    {
                        "format": "uuid",
                        "type": "string",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.RitualsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/problem.Problem"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "chakra.Balance": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "score": {
                    "type": "number"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "chakra.CoachType": {
            "type": "string",
            "enum": [
                "inner_child",
                "shadow_self",
                "higher_self",
                "integration"
            ],
            "x-enum-varnames": [
                "CoachInnerChild",
                "CoachShadowSelf",
                "CoachHigherSelf",
                "CoachIntegration"
            ]
        },
        "chakra.Info": {
            "type": "object",
            "properties": {
                "affirmations": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "color": {
                    "type": "string"
                },
                "element": {
                    "type": "string"
                },
                "focus": {
                    "description": "Focus is the life theme used in coaching prompts.",
                    "type": "string"
                },
                "healing_practices": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "key": {
                    "$ref": "#/definitions/chakra.Key"
                },
                "location": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "overactive_symptoms": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "sanskrit": {
                    "type": "string"
                },
                "underactive_symptoms": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            }
        },
        "chakra.Key": {
            "type": "string",
            "enum": [
                "root",
                "sacral",
                "solarPlexus",
                "heart",
                "throat",
                "thirdEye",
                "crown"
            ],
            "x-enum-varnames": [
                "Root",
                "Sacral",
                "SolarPlexus",
                "Heart",
                "Throat",
                "ThirdEye",
                "Crown"
            ]
        },
        "chakra.Level": {
            "type": "string",
            "enum": [
                "blocked",
                "underactive",
                "balanced",
                "overactive"
            ],
            "x-enum-varnames": [
                "LevelBlocked",
                "LevelUnderactive",
                "LevelBalanced",
                "LevelOveractive"
            ]
        },
        "chakra.Reading": {
            "type": "object",
            "properties": {
                "key": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/chakra.Key"
                        }
                    ],
                    "example": "heart"
                },
                "name": {
                    "example": "Heart Chakra",
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/chakra.Status"
                },
                "value": {
                    "example": 6,
                    "type": "integer"
                }
            }
        },
        "chakra.Recommendations": {
            "type": "object",
            "properties": {
                "focus_areas": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "insights": {
                    "type": "string"
                },
                "practices": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            }
        },
        "chakra.Status": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "level": {
                    "$ref": "#/definitions/chakra.Level"
                }
            }
        },
        "domain.AssessmentRequest": {
            "type": "object",
            "description": "All seven ratings, each from 1 (depleted) to 10 (excessive).",
            "required": [
                "crown",
                "heart",
                "root",
                "sacral",
                "solar_plexus",
                "third_eye",
                "throat"
            ],
            "properties": {
                "crown": {
                    "example": 5,
                    "maximum": 10,
                    "minimum": 1,
                    "type": "integer"
                },
                "heart": {
                    "example": 9,
                    "maximum": 10,
                    "minimum": 1,
                    "type": "integer"
                },
                "root": {
                    "example": 4,
                    "maximum": 10,
                    "minimum": 1,
                    "type": "integer"
                },
                "sacral": {
                    "example": 6,
                    "maximum": 10,
                    "minimum": 1,
                    "type": "integer"
                },
                "solar_plexus": {
                    "example": 7,
                    "maximum": 10,
                    "minimum": 1,
                    "type": "integer"
                },
                "third_eye": {
                    "example": 6,
                    "maximum": 10,
                    "minimum": 1,
                    "type": "integer"
                },
                "throat": {
                    "example": 3,
                    "maximum": 10,
                    "minimum": 1,
                    "type": "integer"
                }
            }
        },
        "domain.ChakraProfileResponse": {
            "type": "object",
            "description": "Chakra assessment with derived statuses and overall balance.",
            "properties": {
                "assessed": {
                    "example": true,
                    "type": "boolean"
                },
                "assessed_at": {
                    "type": "string"
                },
                "balance": {
                    "$ref": "#/definitions/chakra.Balance"
                },
                "chakras": {
                    "items": {
                        "$ref": "#/definitions/chakra.Reading"
                    },
                    "type": "array"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "domain.ChatHistoryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/domain.ChatMessageResponse"
                    },
                    "type": "array"
                }
            }
        },
        "domain.ChatMessageResponse": {
            "type": "object",
            "properties": {
                "coach_type": {
                    "$ref": "#/definitions/chakra.CoachType"
                },
                "content": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "role": {
                    "$ref": "#/definitions/domain.ChatRole"
                }
            }
        },
        "domain.ChatRole": {
            "type": "string",
            "enum": [
                "user",
                "assistant"
            ],
            "x-enum-varnames": [
                "ChatRoleUser",
                "ChatRoleAssistant"
            ]
        },
        "domain.CoachReply": {
            "type": "object",
            "properties": {
                "reflection_question": {
                    "type": "string"
                },
                "reply": {
                    "type": "string"
                },
                "suggested_practices": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            }
        },
        "domain.CreateJournalEntryRequest": {
            "type": "object",
            "required": [
                "content",
                "title"
            ],
            "properties": {
                "content": {
                    "example": "Woke up calm and grateful for the quiet.",
                    "maxLength": 10000,
                    "type": "string"
                },
                "mood": {
                    "description": "Optional self-reported mood word",
                    "example": "hopeful",
                    "maxLength": 32,
                    "type": "string"
                },
                "title": {
                    "example": "Morning pages",
                    "maxLength": 200,
                    "type": "string"
                }
            }
        },
        "domain.CreateUserRequest": {
            "type": "object",
            "required": [
                "display_name",
                "email",
                "timezone"
            ],
            "properties": {
                "display_name": {
                    "description": "Name shown in the app",
                    "example": "Maya",
                    "maxLength": 100,
                    "minLength": 1,
                    "type": "string"
                },
                "email": {
                    "description": "Contact email, unique per user",
                    "example": "maya@example.com",
                    "maxLength": 255,
                    "type": "string"
                },
                "timezone": {
                    "description": "IANA timezone used for daily limits and local times",
                    "example": "Europe/Prague",
                    "type": "string"
                }
            }
        },
        "domain.FeedbackRequest": {
            "type": "object",
            "required": [
                "score",
                "trace_id"
            ],
            "properties": {
                "comment": {
                    "maxLength": 1000,
                    "type": "string"
                },
                "score": {
                    "maximum": 5,
                    "minimum": 1,
                    "type": "integer"
                },
                "trace_id": {
                    "maxLength": 64,
                    "type": "string"
                }
            }
        },
        "domain.FocusAffirmations": {
            "type": "object",
            "properties": {
                "affirmations": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "key": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/chakra.Key"
                        }
                    ],
                    "example": "throat"
                },
                "name": {
                    "example": "Throat Chakra",
                    "type": "string"
                }
            }
        },
        "domain.JournalEntryResponse": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "emotions": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "id": {
                    "type": "string"
                },
                "mood": {
                    "type": "string"
                },
                "sentiment_label": {
                    "example": "positive",
                    "type": "string"
                },
                "sentiment_score": {
                    "example": 0.62,
                    "type": "number"
                },
                "title": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "domain.JournalListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/domain.JournalEntryResponse"
                    },
                    "type": "array"
                },
                "pagination": {
                    "$ref": "#/definitions/domain.PaginationResponse"
                }
            }
        },
        "domain.Membership": {
            "type": "string",
            "enum": [
                "free",
                "premium"
            ],
            "x-enum-varnames": [
                "MembershipFree",
                "MembershipPremium"
            ]
        },
        "domain.PaginationResponse": {
            "type": "object",
            "description": "Cursor-based pagination info.",
            "properties": {
                "has_more": {
                    "description": "True if more results are available",
                    "example": true,
                    "type": "boolean"
                },
                "next_cursor": {
                    "description": "Cursor for fetching the next page (empty if no more pages)",
                    "example": "eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9",
                    "type": "string"
                }
            }
        },
        "domain.RitualsResponse": {
            "type": "object",
            "description": "Personalized focus areas, practices and affirmations.",
            "properties": {
                "affirmations": {
                    "items": {
                        "$ref": "#/definitions/domain.FocusAffirmations"
                    },
                    "type": "array"
                },
                "balance": {
                    "$ref": "#/definitions/chakra.Balance"
                },
                "coach_label": {
                    "example": "Higher Self Coach",
                    "type": "string"
                },
                "coach_type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/chakra.CoachType"
                        }
                    ],
                    "example": "higher_self"
                },
                "recommendations": {
                    "$ref": "#/definitions/chakra.Recommendations"
                }
            }
        },
        "domain.Role": {
            "type": "string",
            "enum": [
                "member",
                "admin"
            ],
            "x-enum-varnames": [
                "RoleMember",
                "RoleAdmin"
            ]
        },
        "domain.SendMessageRequest": {
            "type": "object",
            "required": [
                "message"
            ],
            "properties": {
                "coach_type": {
                    "description": "Optional coach override; defaults to the coach for the primary focus chakra",
                    "enum": [
                        "inner_child",
                        "shadow_self",
                        "higher_self",
                        "integration"
                    ],
                    "type": "string"
                },
                "message": {
                    "example": "I keep putting everyone else first.",
                    "maxLength": 4000,
                    "type": "string"
                }
            }
        },
        "domain.SendMessageResponse": {
            "type": "object",
            "description": "Coach reply with the persona used and a trace id for feedback.",
            "properties": {
                "coach_label": {
                    "example": "Shadow Self Coach",
                    "type": "string"
                },
                "coach_type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/chakra.CoachType"
                        }
                    ],
                    "example": "shadow_self"
                },
                "remaining_today": {
                    "description": "Remaining free-tier messages today; omitted for premium members",
                    "example": 7,
                    "type": "integer"
                },
                "reply": {
                    "$ref": "#/definitions/domain.CoachReply"
                },
                "trace_id": {
                    "description": "Trace ID for feedback (only present when Langfuse is enabled)",
                    "type": "string"
                }
            }
        },
        "domain.StatsResponse": {
            "type": "object",
            "description": "Aggregate counts across the service.",
            "properties": {
                "assessments": {
                    "example": 97,
                    "type": "integer"
                },
                "chat_messages": {
                    "example": 2200,
                    "type": "integer"
                },
                "journal_entries": {
                    "example": 640,
                    "type": "integer"
                },
                "premium_members": {
                    "example": 18,
                    "type": "integer"
                },
                "users": {
                    "example": 120,
                    "type": "integer"
                }
            }
        },
        "domain.UpdateMembershipRequest": {
            "type": "object",
            "properties": {
                "membership": {
                    "enum": [
                        "free",
                        "premium"
                    ],
                    "example": "premium",
                    "type": "string"
                },
                "role": {
                    "enum": [
                        "member",
                        "admin"
                    ],
                    "example": "member",
                    "type": "string"
                }
            }
        },
        "domain.UserListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/domain.UserResponse"
                    },
                    "type": "array"
                },
                "pagination": {
                    "$ref": "#/definitions/domain.PaginationResponse"
                }
            }
        },
        "domain.UserResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "display_name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "membership": {
                    "$ref": "#/definitions/domain.Membership"
                },
                "role": {
                    "$ref": "#/definitions/domain.Role"
                },
                "timezone": {
                    "type": "string"
                }
            }
        },
        "problem.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "problem.Problem": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                },
                "errors": {
                    "items": {
                        "$ref": "#/definitions/problem.FieldError"
                    },
                    "type": "array"
                },
                "status": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "AdminToken": {
            "type": "apiKey",
            "name": "X-Admin-Token",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "SoulSync API",
	Description:      "Chakra assessments, healing rituals, journaling and AI coaching.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
