// Package docs holds the Swagger 2.0 document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Agri Weather Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/locations": {
            "get": {
                "description": "Locations a forecast can be requested for",
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "List locations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.LocationsResponse"}}
                }
            }
        },
        "/api/crops": {
            "get": {
                "description": "Supported crops with their optimal growing conditions",
                "produces": ["application/json"],
                "tags": ["Agriculture"],
                "summary": "List crops",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CropsResponse"}}
                }
            }
        },
        "/api/weather/{location}": {
            "get": {
                "description": "Weekly and monthly averages of the daily forecast for a location. The search is recorded in the history.",
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Get weather averages",
                "parameters": [
                    {"type": "string", "example": "kigali", "description": "Location key", "name": "location", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Successful response", "schema": {"$ref": "#/definitions/http.WeatherResponse"}},
                    "404": {"description": "Unknown location", "schema": {"$ref": "#/definitions/models.Response"}},
                    "502": {"description": "No provider returned data", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/api/forecast/{location}": {
            "get": {
                "description": "The daily forecast grouped into 7-day buckets",
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Get weekly forecast",
                "parameters": [
                    {"type": "string", "example": "kigali", "description": "Location key", "name": "location", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ForecastResponse"}},
                    "404": {"description": "Unknown location", "schema": {"$ref": "#/definitions/models.Response"}},
                    "502": {"description": "No provider returned data", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/api/agriculture/{location}/{crop}": {
            "get": {
                "description": "Classifies the forecast against a crop's optimal ranges and returns advice, alerts and a risk level",
                "produces": ["application/json"],
                "tags": ["Agriculture"],
                "summary": "Analyse conditions for a crop",
                "parameters": [
                    {"type": "string", "example": "kigali", "description": "Location key", "name": "location", "in": "path", "required": true},
                    {"type": "string", "example": "maize", "description": "Crop key", "name": "crop", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AgricultureResponse"}},
                    "400": {"description": "Unsupported crop or insufficient data", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Unknown location", "schema": {"$ref": "#/definitions/models.Response"}},
                    "502": {"description": "No provider returned data", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/api/report/{location}": {
            "get": {
                "description": "Weather averages, weekly forecast and, when a crop is given, the crop analysis from a single fetch.\nA failing analysis is reported inside the agriculture section.",
                "produces": ["application/json"],
                "tags": ["Agriculture"],
                "summary": "Get a combined report",
                "parameters": [
                    {"type": "string", "example": "kigali", "description": "Location key", "name": "location", "in": "path", "required": true},
                    {"type": "string", "example": "beans", "description": "Crop key", "name": "crop", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ReportResponse"}},
                    "404": {"description": "Unknown location", "schema": {"$ref": "#/definitions/models.Response"}},
                    "502": {"description": "No provider returned data", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/api/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "Weather search history",
                "parameters": [
                    {"minimum": 1, "type": "integer", "example": 10, "description": "Maximum number of entries, newest first", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HistoryResponse"}}
                }
            }
        },
        "/api/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "Weather search statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.StatsResponse"}}
                }
            }
        },
        "/api/ip/{ip}": {
            "get": {
                "description": "Geolocation, connection and security data from ipwho.is. The lookup is recorded in the IP history.",
                "produces": ["application/json"],
                "tags": ["IP"],
                "summary": "Look up an IPv4 address",
                "parameters": [
                    {"type": "string", "example": "8.8.8.8", "description": "IPv4 address", "name": "ip", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.IPLookupResponse"}},
                    "400": {"description": "Invalid IPv4 address", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "ipwho.is could not resolve the address", "schema": {"$ref": "#/definitions/models.Response"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/api/my-ip": {
            "get": {
                "produces": ["application/json"],
                "tags": ["IP"],
                "summary": "Look up the server's public address",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.MyIPResponse"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/api/ip/history": {
            "get": {
                "description": "Newest first. filter is a comma separated list of proxy, vpn, tor and safe; an entry matching any of them is kept.",
                "produces": ["application/json"],
                "tags": ["IP"],
                "summary": "IP lookup history",
                "parameters": [
                    {"minimum": 1, "type": "integer", "default": 10, "description": "Maximum number of entries", "name": "limit", "in": "query"},
                    {"type": "string", "example": "proxy,vpn", "description": "Security filters", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.IPHistoryResponse"}}
                }
            }
        },
        "/api/ip/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["IP"],
                "summary": "IP lookup statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.IPStatsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.LocationsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "locations": {"type": "array", "items": {"$ref": "#/definitions/models.Location"}}
            }
        },
        "http.CropsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "crops": {"type": "array", "items": {"$ref": "#/definitions/models.CropProfile"}}
            }
        },
        "http.WeatherResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "search_id": {"type": "string", "example": "6f1c7a8e-3b5d-4d0e-9a43-1b6f0f0d2c11"},
                "location": {"$ref": "#/definitions/models.Location"},
                "provider": {"type": "string", "example": "open-meteo"},
                "days": {"type": "integer", "example": 16},
                "weekly_averages": {"$ref": "#/definitions/models.PeriodAverage"},
                "monthly_averages": {"$ref": "#/definitions/models.PeriodAverage"}
            }
        },
        "http.ForecastResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "location": {"$ref": "#/definitions/models.Location"},
                "provider": {"type": "string", "example": "open-meteo"},
                "monthly_forecast": {"type": "array", "items": {"$ref": "#/definitions/models.WeeklyForecast"}}
            }
        },
        "http.AgricultureResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "location": {"$ref": "#/definitions/models.Location"},
                "provider": {"type": "string", "example": "open-meteo"},
                "analysis": {"$ref": "#/definitions/models.Analysis"},
                "crop_info": {"$ref": "#/definitions/models.CropProfile"}
            }
        },
        "http.ReportResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "location": {"$ref": "#/definitions/models.Location"},
                "provider": {"type": "string", "example": "open-meteo"},
                "weather": {"type": "object"},
                "monthly_forecast": {"type": "array", "items": {"$ref": "#/definitions/models.WeeklyForecast"}},
                "agriculture": {
                    "type": "object",
                    "properties": {
                        "analysis": {"$ref": "#/definitions/models.Analysis"},
                        "crop_info": {"$ref": "#/definitions/models.CropProfile"},
                        "error": {"$ref": "#/definitions/models.SectionError"}
                    }
                }
            }
        },
        "http.HistoryResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "history": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "integer", "example": 12}
            }
        },
        "http.StatsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "stats": {
                    "type": "object",
                    "properties": {
                        "totalSearches": {"type": "integer", "example": 12},
                        "uniqueLocations": {"type": "integer", "example": 4},
                        "recentSearches": {"type": "array", "items": {"type": "object"}}
                    }
                }
            }
        },
        "http.IPLookupResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/models.IPInfo"},
                "searchId": {"type": "string", "example": "6f1c7a8e-3b5d-4d0e-9a43-1b6f0f0d2c11"}
            }
        },
        "http.MyIPResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/models.IPInfo"},
                "clientIP": {"type": "string", "example": "203.0.113.7"}
            }
        },
        "http.IPHistoryResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "integer", "example": 4}
            }
        },
        "http.IPStatsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {
                    "type": "object",
                    "properties": {
                        "totalSearches": {"type": "integer", "example": 20},
                        "proxyCount": {"type": "integer", "example": 2},
                        "vpnCount": {"type": "integer", "example": 3},
                        "torCount": {"type": "integer", "example": 0},
                        "safeCount": {"type": "integer", "example": 15},
                        "proxyPercentage": {"type": "number", "example": 10},
                        "vpnPercentage": {"type": "number", "example": 15},
                        "torPercentage": {"type": "number", "example": 0},
                        "safePercentage": {"type": "number", "example": 75}
                    }
                }
            }
        },
        "models.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "Unsupported crop"},
                "message": {"type": "string", "example": "crop \"wheat\" is not supported"},
                "supported_crops": {"type": "array", "items": {"type": "string"}},
                "available_locations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Location": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "example": "kigali"},
                "name": {"type": "string", "example": "Kigali"},
                "latitude": {"type": "number", "example": -1.9441},
                "longitude": {"type": "number", "example": 30.0619}
            }
        },
        "models.Range": {
            "type": "object",
            "properties": {
                "min": {"type": "number"},
                "max": {"type": "number"}
            }
        },
        "models.CropProfile": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "example": "maize"},
                "name": {"type": "string", "example": "Maize"},
                "planting_season": {"type": "string"},
                "harvesting_season": {"type": "string"},
                "optimal_temp": {"$ref": "#/definitions/models.Range"},
                "optimal_rainfall": {"$ref": "#/definitions/models.Range"},
                "drought_tolerance": {"type": "string"},
                "flood_tolerance": {"type": "string"},
                "tips": {"type": "string"}
            }
        },
        "models.Temperature": {
            "type": "object",
            "properties": {
                "day": {"type": "number"},
                "min": {"type": "number"},
                "max": {"type": "number"}
            }
        },
        "models.PeriodAverage": {
            "type": "object",
            "properties": {
                "temp": {"$ref": "#/definitions/models.Temperature"},
                "humidity": {"type": "number", "example": 68.5},
                "wind_speed": {"type": "number", "example": 3.1},
                "precipitation": {"type": "number", "example": 0.38},
                "total_rainfall": {"type": "number", "example": 84.6},
                "weather_conditions": {"type": "string", "example": "Rain"},
                "days": {"type": "integer", "example": 7}
            }
        },
        "models.WeeklyForecast": {
            "type": "object",
            "properties": {
                "week_number": {"type": "integer", "example": 1},
                "start_date": {"type": "string", "example": "Jul 25"},
                "end_date": {"type": "string", "example": "Jul 31"},
                "icon": {"type": "string"},
                "averages": {"$ref": "#/definitions/models.PeriodAverage"}
            }
        },
        "models.Analysis": {
            "type": "object",
            "properties": {
                "crop": {"type": "string", "example": "Maize"},
                "weekly_average": {"$ref": "#/definitions/models.PeriodAverage"},
                "monthly_average": {"$ref": "#/definitions/models.PeriodAverage"},
                "temperature_status": {"type": "string", "example": "optimal"},
                "rainfall_status": {"type": "string", "example": "insufficient"},
                "humidity_status": {"type": "string", "example": "optimal"},
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "alerts": {"type": "array", "items": {"type": "string"}},
                "planting_advice": {"type": "string"},
                "risk_level": {"type": "string", "example": "medium"},
                "risk_description": {"type": "string"}
            }
        },
        "models.SectionError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "unsupported_crop"},
                "message": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.IPInfo": {
            "type": "object",
            "properties": {
                "ip": {"type": "string", "example": "8.8.8.8"},
                "success": {"type": "boolean", "example": true},
                "type": {"type": "string", "example": "IPv4"},
                "continent": {"type": "string"},
                "country": {"type": "string"},
                "country_code": {"type": "string"},
                "region": {"type": "string"},
                "city": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "connection": {"type": "object"},
                "timezone": {"type": "object"},
                "security": {
                    "type": "object",
                    "properties": {
                        "anonymous": {"type": "boolean"},
                        "proxy": {"type": "boolean"},
                        "vpn": {"type": "boolean"},
                        "tor": {"type": "boolean"},
                        "hosting": {"type": "boolean"}
                    }
                }
            }
        }
    },
    "tags": [
        {"description": "Location weather and forecasts", "name": "Weather"},
        {"description": "Crop profiles and agricultural analysis", "name": "Agriculture"},
        {"description": "Rolling weather search history", "name": "History"},
        {"description": "IPv4 geolocation and security lookups", "name": "IP"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Agri Weather API",
	Description:      "Weather forecasts, agricultural advisory and IP lookups for farming regions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
