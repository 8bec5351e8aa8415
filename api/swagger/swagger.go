package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Bushido Bootcamp Enrollment API",
        "description": "Course enrollment backend: classes, students, taken courses, payments.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Token issuance"},
        {"name": "Students", "description": "Registration, roster, roles"},
        {"name": "Classes", "description": "Catalog, instructor classes, moderation"},
        {"name": "TakenCourses", "description": "Pending enrollment list"},
        {"name": "Payments", "description": "Payment intents, checkout, history"}
    ],
    "paths": {
        "/": {
            "get": {
                "summary": "Liveness banner",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/jwt": {
            "post": {
                "tags": ["Auth"],
                "summary": "Issue an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/payment-intent": {
            "post": {
                "tags": ["Payments"],
                "summary": "Pre-authorize a charge",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PaymentIntentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Client secret"}
                }
            }
        },
        "/payments": {
            "get": {
                "tags": ["Payments"],
                "summary": "List own payments",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Payments"],
                "summary": "Checkout: record payment and finalize enrollment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CheckoutRequest"}}
                ],
                "responses": {
                    "200": {"description": "Checkout result"},
                    "409": {"description": "Already enrolled or sold out", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments/export": {
            "get": {
                "tags": ["Payments"],
                "summary": "Download own payment history",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "CSV or PDF document"}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List approved classes",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Post a new class (instructor)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}
                ],
                "responses": {
                    "200": {"description": "Insert result"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/classes/top-six": {
            "get": {
                "tags": ["Classes"],
                "summary": "Six most enrolled classes",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/classes/myClasses": {
            "get": {
                "tags": ["Classes"],
                "summary": "List own classes (instructor)",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/classes/myClasses/{id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "Get one own class (instructor)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "email", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "put": {
                "tags": ["Classes"],
                "summary": "Update own class (instructor)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "email", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateClassRequest"}}
                ],
                "responses": {
                    "200": {"description": "Update result"}
                }
            }
        },
        "/classes/manageClasses/{id}": {
            "put": {
                "tags": ["Classes"],
                "summary": "Moderate a class (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "email", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ModerateClassRequest"}}
                ],
                "responses": {
                    "200": {"description": "Update result"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List all students (admin)",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Register a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Insert result or duplicate message"}
                }
            }
        },
        "/students/{id}": {
            "put": {
                "tags": ["Students"],
                "summary": "Set a student role (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "email", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "Update result"}
                }
            }
        },
        "/students/admin/{email}": {
            "get": {
                "tags": ["Students"],
                "summary": "Check admin role",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Flag"}
                }
            }
        },
        "/students/instructor/{email}": {
            "get": {
                "tags": ["Students"],
                "summary": "Check instructor role",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Flag"}
                }
            }
        },
        "/taken-courses": {
            "get": {
                "tags": ["TakenCourses"],
                "summary": "List own pending rows",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["TakenCourses"],
                "summary": "Add a class to the pending list",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddTakenCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "Insert result or duplicate message"}
                }
            }
        },
        "/taken-courses/{id}": {
            "delete": {
                "tags": ["TakenCourses"],
                "summary": "Remove a pending row",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Delete result"}
                }
            }
        },
        "/taken-courses/enrolled": {
            "get": {
                "tags": ["TakenCourses"],
                "summary": "List own confirmed rows",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/taken-courses/single/{id}": {
            "get": {
                "tags": ["TakenCourses"],
                "summary": "Get one own row",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "email", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "TokenRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "RegisterStudentRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "photoURL": {"type": "string"}
            }
        },
        "UpdateRoleRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "role": {"type": "string", "enum": ["none", "admin", "instructor"]}
            }
        },
        "CreateClassRequest": {
            "type": "object",
            "required": ["name", "email"],
            "properties": {
                "name": {"type": "string"},
                "image": {"type": "string"},
                "instructorName": {"type": "string"},
                "email": {"type": "string"},
                "price": {"type": "number"},
                "seats": {"type": "integer"}
            }
        },
        "UpdateClassRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "image": {"type": "string"},
                "price": {"type": "number"},
                "seats": {"type": "integer"}
            }
        },
        "ModerateClassRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["pending", "approved", "rejected"]},
                "feedback": {"type": "string"}
            }
        },
        "AddTakenCourseRequest": {
            "type": "object",
            "required": ["courseId", "email"],
            "properties": {
                "courseId": {"type": "string"},
                "email": {"type": "string"},
                "className": {"type": "string"},
                "image": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "PaymentIntentRequest": {
            "type": "object",
            "properties": {
                "price": {"type": "number"}
            }
        },
        "CheckoutRequest": {
            "type": "object",
            "required": ["email", "courseId", "takenCourse"],
            "properties": {
                "email": {"type": "string"},
                "amount": {"type": "number"},
                "price": {"type": "number"},
                "transactionId": {"type": "string"},
                "date": {"type": "string"},
                "courseId": {"type": "string"},
                "takenCourse": {"type": "string"},
                "className": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "boolean"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
