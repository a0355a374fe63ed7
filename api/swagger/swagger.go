package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduSphere API",
        "description": "Educational and clinical records backend",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Authentication", "description": "Signup, login, and student roster"},
        {"name": "Catalog", "description": "Topics, courses, overviews, and cases"},
        {"name": "Assignments", "description": "Assignment publishing and student traversals"},
        {"name": "Patients", "description": "Registrations, consent forms, analyses, and scans"},
        {"name": "Reports", "description": "Report PDF storage and registry exports"},
        {"name": "Dashboard", "description": "Per-user landing page counters"}
    ],
    "paths": {
        "/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation or duplicate", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Unknown user", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Authentication"],
                "summary": "List students by academic year",
                "parameters": [
                    {"name": "year", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing or invalid year", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/topics": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List all topics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/courses/{topicId}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List courses under a topic",
                "parameters": [
                    {"name": "topicId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/module-courses/{moduleId}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List courses with topic fields for a module",
                "parameters": [
                    {"name": "moduleId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/course-overview/{courseId}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Fetch the overview for one course",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No overview", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/cases": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List all clinical cases",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/assignments": {
            "post": {
                "tags": ["Assignments"],
                "summary": "Publish an assignment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PublishAssignmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/assignments/topic/{topicId}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List assignments under a module",
                "parameters": [
                    {"name": "topicId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/student/topics/{studentId}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List topics assigned to a student",
                "parameters": [
                    {"name": "studentId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/student/courses/{topicId}/{studentId}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List courses assigned to a student within a module",
                "parameters": [
                    {"name": "topicId", "in": "path", "required": true, "type": "integer"},
                    {"name": "studentId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/patient-registration": {
            "post": {
                "tags": ["Patients"],
                "summary": "Register a patient",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PatientRegistrationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/patient-registrations": {
            "get": {
                "tags": ["Patients"],
                "summary": "List registrations created by a user",
                "parameters": [
                    {"name": "userId", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing userId", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/patient-registration/{registration_id}": {
            "get": {
                "tags": ["Patients"],
                "summary": "Fetch one registration",
                "parameters": [
                    {"name": "registration_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No registration", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/consent-form": {
            "post": {
                "tags": ["Patients"],
                "summary": "Submit a CT consent form",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ConsentFormRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/image-analysis": {
            "post": {
                "tags": ["Patients"],
                "summary": "Submit an image analysis",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImageAnalysisRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/image-analysis/{registration_id}": {
            "get": {
                "tags": ["Patients"],
                "summary": "Fetch the image analysis for a registration",
                "parameters": [
                    {"name": "registration_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No analysis", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/patient-scan-images/{patient_id}": {
            "get": {
                "tags": ["Patients"],
                "summary": "List a patient's scans as data URIs",
                "parameters": [
                    {"name": "patient_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No scans", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/patient-scan-images": {
            "post": {
                "tags": ["Patients"],
                "summary": "Store a scan image for a patient",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddScanImageRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/save-report-pdf": {
            "post": {
                "tags": ["Reports"],
                "summary": "Store a report PDF",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveReportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/get-all-report-pdfs": {
            "get": {
                "tags": ["Reports"],
                "summary": "List every stored report",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/reports/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export the report registry",
                "parameters": [
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reports/download": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a generated export",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Invalid token", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Export gone", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/dashboard-stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard counters for one user",
                "parameters": [
                    {"name": "username", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing username", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "SignupRequest": {
            "type": "object",
            "required": ["username", "name", "email", "password", "role"],
            "properties": {
                "username": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "teacher", "student"]},
                "academic_year": {"type": "integer"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password", "role"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "PublishAssignmentRequest": {
            "type": "object",
            "required": ["moduleId", "selectedCourses", "selectedStudents"],
            "properties": {
                "moduleId": {"type": "integer"},
                "selectedCourses": {"type": "array", "items": {"type": "integer"}},
                "selectedStudents": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "PatientRegistrationRequest": {
            "type": "object",
            "required": ["registration_id", "user_id", "courseId", "name"],
            "properties": {
                "registration_id": {"type": "string"},
                "user_id": {"type": "integer"},
                "courseId": {"type": "integer"},
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "emergencyContact": {"type": "string"},
                "kinName": {"type": "string"},
                "kinRelation": {"type": "string"},
                "kinPhone": {"type": "string"},
                "agreement": {"type": "boolean"}
            }
        },
        "ConsentFormRequest": {
            "type": "object",
            "required": ["patientName", "registration_id"],
            "properties": {
                "patientName": {"type": "string"},
                "age": {"type": "integer"},
                "sex": {"type": "string"},
                "registration_id": {"type": "string"}
            }
        },
        "ImageAnalysisRequest": {
            "type": "object",
            "required": ["user_id", "registration_id", "finding", "impression"],
            "properties": {
                "user_id": {"type": "integer"},
                "registration_id": {"type": "string"},
                "finding": {"type": "string"},
                "impression": {"type": "string"},
                "selected_images": {"type": "array", "items": {"type": "string"}}
            }
        },
        "AddScanImageRequest": {
            "type": "object",
            "required": ["patient_id", "image"],
            "properties": {
                "patient_id": {"type": "string"},
                "image": {"type": "string"}
            }
        },
        "SaveReportRequest": {
            "type": "object",
            "required": ["registration_id", "pdf_data"],
            "properties": {
                "registration_id": {"type": "string"},
                "pdf_data": {"type": "string"},
                "reported_at": {"type": "string"},
                "username": {"type": "string"}
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
