// Package docs holds the swagger document served at /swagger. It follows the
// layout swag init emits and is kept in step with the controller annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/answers": {
            "post": {
                "description": "Accepts one answer, an array of answers, or {\"answers\": [...]}. Each entry is upserted by (user_id, question_id, attempt_id) and the attempt tallies are recomputed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["answers"],
                "summary": "Record answers",
                "parameters": [
                    {
                        "description": "answers",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/service.AnswerInput"}
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AnswerBatchResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/comments": {
            "post": {
                "description": "is_insert=true upserts the comment for (question_id, attempt_id, student_id); is_insert=false returns the stored comments.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Save or fetch a question comment",
                "parameters": [
                    {
                        "description": "comment",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CommentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/documents/exam": {
            "post": {
                "description": "Returns a link to the quiz's .docx exam paper, generating and storing it on first request.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Exam paper",
                "parameters": [
                    {
                        "description": "{\"quiz_id\": 1}",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/exams/generate": {
            "post": {
                "description": "Creates the quiz, generates its questions through the exam-authoring API, stores them and notifies the workflow.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exams"],
                "summary": "Generate an exam",
                "parameters": [
                    {
                        "description": "generation parameters",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.ExamRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports service and database status",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/results": {
            "post": {
                "description": "Counts correct, wrong and unanswered questions for an attempt without changing anything.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Attempt results",
                "parameters": [
                    {
                        "description": "attempt",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.ResultRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/v2/exams/generate": {
            "post": {
                "description": "mode=test proxies to the sandbox without persisting; mode=live (default) runs the full pipeline. language is ar or en (default en).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exams"],
                "summary": "Generate an exam (mode and language aware)",
                "parameters": [
                    {
                        "description": "generation parameters",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.ExamV2Request"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        }
    },
    "definitions": {
        "service.AnswerInput": {
            "type": "object",
            "properties": {
                "answer_text": {"type": "string"},
                "attempt_id": {"type": "integer"},
                "comment": {"type": "string"},
                "option_id": {"type": "integer"},
                "question_id": {"type": "integer"},
                "quiz_id": {"type": "integer"},
                "score": {"type": "number"},
                "user_id": {"type": "integer"}
            }
        },
        "service.AnswerBatchResult": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"type": "object"}},
                "summary": {"type": "object"}
            }
        },
        "service.CommentRequest": {
            "type": "object",
            "properties": {
                "attempt_id": {"type": "integer"},
                "comment_text": {"type": "string"},
                "is_insert": {"type": "boolean"},
                "question_id": {"type": "integer"},
                "student_id": {"type": "integer"}
            }
        },
        "service.ExamRequest": {
            "type": "object",
            "properties": {
                "academic_year": {"type": "string"},
                "attempt": {"type": "string"},
                "bubble_quiz_id": {"type": "string"},
                "chapter": {"type": "array", "items": {"type": "string"}},
                "class": {"type": "string"},
                "class_id": {"type": "integer"},
                "code": {"type": "string"},
                "created_by": {"type": "integer"},
                "difficulty": {"type": "string"},
                "duration": {"type": "integer"},
                "educational_system": {"type": "string"},
                "exam_difficulty_level": {"type": "string"},
                "is_active": {"type": "boolean"},
                "number_of_mcq_questions": {"type": "integer"},
                "number_of_true_false_questions": {"type": "integer"},
                "questions_types": {"type": "string"},
                "semester": {"type": "string"},
                "subject": {"type": "string"},
                "subject_id": {"type": "integer"},
                "term_id": {"type": "integer"},
                "version_test": {"type": "string"}
            }
        },
        "service.ExamV2Request": {
            "type": "object",
            "properties": {
                "attempt_id": {"type": "string"},
                "language": {"type": "string", "enum": ["ar", "en"]},
                "mode": {"type": "string", "enum": ["test", "live"]}
            }
        },
        "service.ResultRequest": {
            "type": "object",
            "properties": {
                "attempt_id": {"type": "integer"},
                "quiz_id": {"type": "integer"},
                "user_id": {"type": "integer"}
            }
        },
        "util.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "details": {},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Exam Backend API",
	Description:      "Answer recording, comments, AI exam generation, results and exam documents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
