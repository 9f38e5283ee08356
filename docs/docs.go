// Package docs registers the Workshop Genie OpenAPI document with swag.
// It is maintained by hand; keep it in sync with the handler annotations.
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
                "description": "未知 email 與密碼錯誤都回傳 401 Invalid credentials",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/bookings": {
            "post": {
                "description": "驗證資料後檢查容量，成功時 workshop 的 enrolled 加一",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book a workshop",
                "parameters": [
                    {"description": "Booking", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateBookingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Booking"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/bookings/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Get a booking",
                "parameters": [
                    {"type": "integer", "description": "Booking ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Booking"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/bookings/{id}/status": {
            "patch": {
                "security": [{"AdminKey": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Update booking status",
                "parameters": [
                    {"type": "integer", "description": "Booking ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.UpdateBookingStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Booking"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "回傳 status ok 與目前時間",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthResponse"}}
                }
            }
        },
        "/ping": {
            "get": {
                "description": "回傳 pong，並檢查已設定的資料庫與快取連線是否正常",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.PingResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/users/{id}/bookings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List bookings of a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Booking"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/workshops": {
            "get": {
                "description": "任一篩選參數非空時進行搜尋（AND 條件），否則回傳全部 workshop",
                "produces": ["application/json"],
                "tags": ["workshops"],
                "summary": "List workshops",
                "parameters": [
                    {"type": "string", "description": "類別（不分大小寫，完全相符）", "name": "category", "in": "query"},
                    {"type": "string", "description": "地點（不分大小寫，包含即可）", "name": "location", "in": "query"},
                    {"type": "number", "description": "最低價格（含）", "name": "priceMin", "in": "query"},
                    {"type": "number", "description": "最高價格（含）", "name": "priceMax", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Workshop"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"AdminKey": []}],
                "description": "enrolled 由伺服器設為 0",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["workshops"],
                "summary": "Create a workshop",
                "parameters": [
                    {"description": "Workshop", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateWorkshopRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Workshop"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/workshops/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["workshops"],
                "summary": "Get a workshop",
                "parameters": [
                    {"type": "integer", "description": "Workshop ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Workshop"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/workshops/{id}/bookings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["workshops"],
                "summary": "List bookings of a workshop",
                "parameters": [
                    {"type": "integer", "description": "Workshop ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Booking"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.CreateBookingRequest": {
            "type": "object",
            "required": ["participantEmail", "participantName", "userId", "workshopId"],
            "properties": {
                "participantEmail": {"type": "string", "example": "alice@example.com"},
                "participantName": {"type": "string", "example": "Alice Chen"},
                "participantPhone": {"type": "string", "example": "+1 555 0100"},
                "specialRequests": {"type": "string", "example": "Vegetarian lunch"},
                "userId": {"type": "integer", "maximum": 2147483647, "example": 1},
                "workshopId": {"type": "integer", "maximum": 2147483647, "example": 3}
            }
        },
        "api.CreateUserRequest": {
            "type": "object",
            "required": ["email", "name", "password", "username"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "name": {"type": "string", "example": "Alice Chen"},
                "password": {"type": "string", "maxLength": 72, "example": "Secret123!"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "api.CreateWorkshopRequest": {
            "type": "object",
            "required": ["capacity", "category", "date", "description", "duration", "image", "instructor", "location", "price", "rating", "tags", "time", "title"],
            "properties": {
                "capacity": {"type": "integer", "example": 25},
                "category": {"type": "string", "example": "Marketing"},
                "date": {"type": "string", "example": "2025-01-15"},
                "description": {"type": "string", "example": "SEO, social media and content marketing."},
                "duration": {"type": "string", "example": "3 hours"},
                "image": {"type": "string", "example": "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400"},
                "instructor": {"type": "string", "example": "Sarah Johnson"},
                "location": {"type": "string", "example": "New York"},
                "price": {"type": "string", "example": "299.00"},
                "rating": {"type": "string", "example": "4.8"},
                "tags": {"type": "array", "items": {"type": "string"}, "example": ["SEO", "Social Media"]},
                "time": {"type": "string", "example": "10:00 AM"},
                "title": {"type": "string", "example": "Digital Marketing Mastery"}
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "array", "items": {"$ref": "#/definitions/validation.Issue"}},
                "error": {"type": "string", "example": "Workshop not found"}
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "timestamp": {"type": "string", "example": "2025-01-15T10:00:00Z"}
            }
        },
        "api.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "Secret123!"}
            }
        },
        "api.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Login successful"},
                "user": {"$ref": "#/definitions/api.UserResponse"}
            }
        },
        "api.PingResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "pong"}
            }
        },
        "api.UpdateBookingStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "example": "cancelled"}
            }
        },
        "api.UserResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Alice Chen"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "model.Booking": {
            "type": "object",
            "properties": {
                "bookingDate": {"type": "string"},
                "id": {"type": "integer"},
                "participantEmail": {"type": "string"},
                "participantName": {"type": "string"},
                "participantPhone": {"type": "string"},
                "specialRequests": {"type": "string"},
                "status": {"type": "string"},
                "userId": {"type": "integer"},
                "workshopId": {"type": "integer"}
            }
        },
        "model.Workshop": {
            "type": "object",
            "properties": {
                "capacity": {"type": "integer"},
                "category": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "string"},
                "enrolled": {"type": "integer"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "instructor": {"type": "string"},
                "location": {"type": "string"},
                "price": {"type": "string"},
                "rating": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "time": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "validation.Issue": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "participantEmail"},
                "message": {"type": "string", "example": "Required"}
            }
        }
    },
    "securityDefinitions": {
        "AdminKey": {
            "type": "apiKey",
            "name": "X-Admin-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Workshop Genie API",
	Description:      "Workshop Genie 的後端 API 文件：瀏覽與預約 workshop",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
