// Package docs registers the API description served at /swagger/*.
package docs

import "github.com/swaggo/swag"

// @title Food Delivery API
// @version 1.0
// @description Customers, restaurants, carts, couriers and the order workflow.
// @host localhost:8080
// @BasePath /
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Food Delivery API",
	Description:      "Customers, restaurants, carts, couriers and the order workflow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  swaggerTemplate,
}

const swaggerTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/customers": {
            "post": {
                "tags": ["customers"],
                "summary": "Register a customer",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/customers/{id}": {
            "get": {
                "tags": ["customers"],
                "summary": "Get a customer profile",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/customers/{id}/cart": {
            "post": {
                "tags": ["cart"],
                "summary": "Add an item to the cart",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "get": {
                "tags": ["cart"],
                "summary": "Get the cart with its running total",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["cart"],
                "summary": "Clear the cart",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/restaurants": {
            "get": {
                "tags": ["restaurants"],
                "summary": "List restaurants",
                "parameters": [
                    {"name": "cuisine", "in": "query", "type": "string"},
                    {"name": "is_active", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/restaurants/{id}": {
            "get": {
                "tags": ["restaurants"],
                "summary": "Get a restaurant",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/restaurants/{id}/menu": {
            "get": {
                "tags": ["restaurants"],
                "summary": "List a restaurant's available menu",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "category", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/menu/items/{id}": {
            "get": {
                "tags": ["restaurants"],
                "summary": "Get a menu item",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/couriers": {
            "post": {
                "tags": ["couriers"],
                "summary": "Register a courier",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            },
            "get": {
                "tags": ["couriers"],
                "summary": "List couriers",
                "parameters": [{"name": "status", "in": "query", "type": "string"}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/couriers/{id}": {
            "get": {
                "tags": ["couriers"],
                "summary": "Get a courier",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/couriers/{id}/status": {
            "put": {
                "tags": ["couriers"],
                "summary": "Set a courier's status",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/orders": {
            "post": {
                "tags": ["orders"],
                "summary": "Place an order from the customer's cart",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "get": {
                "tags": ["orders"],
                "summary": "List orders",
                "parameters": [
                    {"name": "customer_id", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "tags": ["orders"],
                "summary": "Get an order",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/orders/{id}/status": {
            "put": {
                "tags": ["orders"],
                "summary": "Advance or cancel an order",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/orders/{id}/assign-courier": {
            "put": {
                "tags": ["orders"],
                "summary": "Assign a courier to an order",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
