// Package docs holds the swagger document served under /swagger.
// Keep it in step with the @Router annotations in internal/handlers.
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
        "/admin/cache": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Cache content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CacheStats"}}
                }
            }
        },
        "/admin/reload": {
            "post": {
                "description": "Clear every parsed table and price series; the next request re-reads the files",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Drop cached source data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CacheStats"}}
                }
            }
        },
        "/allocation": {
            "get": {
                "description": "Number of holdings per distinct category value, with summed value and stake",
                "produces": ["application/json"],
                "tags": ["holdings"],
                "summary": "Holdings per sector or industry",
                "parameters": [
                    {"type": "string", "default": "Sector", "description": "Sector or Industry", "name": "category", "in": "query"},
                    {"type": "string", "default": "none", "description": "none, count or name", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AllocationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/candlestick/{ticker}": {
            "get": {
                "description": "Prices within an inclusive date range, plus the same points on a numeric date axis (days since 1970-01-01)",
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Candlestick data for one ticker",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol", "name": "ticker", "in": "path", "required": true},
                    {"type": "string", "description": "Start date (YYYY-MM-DD), inclusive", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "End date (YYYY-MM-DD), inclusive", "name": "end_date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CandlestickResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/companies": {
            "get": {
                "description": "Complete company list, totals footer excluded",
                "produces": ["application/json"],
                "tags": ["holdings"],
                "summary": "List companies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CompanyListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/prices": {
            "get": {
                "description": "One price column for several tickers over an optional date range",
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Compare price trends",
                "parameters": [
                    {"type": "string", "description": "Comma separated tickers", "name": "tickers", "in": "query", "required": true},
                    {"type": "string", "default": "Close", "description": "Open, High, Low, Close or Adj Close", "name": "field", "in": "query"},
                    {"type": "string", "description": "Start date (YYYY-MM-DD), inclusive", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "End date (YYYY-MM-DD), inclusive", "name": "end_date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PriceTrendResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/profiles": {
            "get": {
                "description": "Company list joined with stock profiles on symbol, with numeric stake, price and value",
                "produces": ["application/json"],
                "tags": ["holdings"],
                "summary": "List merged holdings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProfilesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/tickers": {
            "get": {
                "description": "Tickers that have a price history",
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "List tickers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TickersResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/top": {
            "get": {
                "description": "Top N holdings by a numeric field, descending",
                "produces": ["application/json"],
                "tags": ["holdings"],
                "summary": "Largest holdings",
                "parameters": [
                    {"type": "string", "default": "Value", "description": "Value, Stake, Market Price or Num_Employees", "name": "field", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Number of holdings", "name": "n", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TopHoldingsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.AllocationResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "groups": {"type": "array", "items": {"$ref": "#/definitions/models.SectorGroup"}},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/models.Warning"}}
            }
        },
        "models.CacheStats": {
            "type": "object",
            "properties": {
                "cleared_at": {"type": "string"},
                "series": {"type": "integer"},
                "tables": {"type": "integer"}
            }
        },
        "models.CandlePoint": {
            "type": "object",
            "properties": {
                "close": {"type": "number"},
                "high": {"type": "number"},
                "low": {"type": "number"},
                "open": {"type": "number"},
                "x": {"type": "number"}
            }
        },
        "models.CandlestickResponse": {
            "type": "object",
            "properties": {
                "candles": {"type": "array", "items": {"$ref": "#/definitions/models.CandlePoint"}},
                "data_points": {"type": "integer"},
                "end_date": {"type": "string"},
                "prices": {"type": "array", "items": {"$ref": "#/definitions/models.PricePoint"}},
                "start_date": {"type": "string"},
                "symbol": {"type": "string"},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/models.Warning"}}
            }
        },
        "models.CompanyListResponse": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"type": "string"}},
                "companies": {"type": "array", "items": {"$ref": "#/definitions/models.CompanyRecord"}},
                "count": {"type": "integer"}
            }
        },
        "models.CompanyRecord": {
            "type": "object",
            "properties": {
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "name": {"type": "string"},
                "num_employees": {"type": "integer"},
                "symbol": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.PricePoint": {
            "type": "object",
            "properties": {
                "adj_close": {"type": "number"},
                "close": {"type": "number"},
                "date": {"type": "string"},
                "high": {"type": "number"},
                "low": {"type": "number"},
                "open": {"type": "number"},
                "volume": {"type": "integer"}
            }
        },
        "models.PriceTrendResponse": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "series": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/models.TrendPoint"}}},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/models.Warning"}}
            }
        },
        "models.ProfileDTO": {
            "type": "object",
            "properties": {
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "industry": {"type": "string"},
                "market_price": {"type": "number"},
                "market_price_display": {"type": "string"},
                "name": {"type": "string"},
                "num_employees": {"type": "integer"},
                "sector": {"type": "string"},
                "stake": {"type": "number"},
                "stake_display": {"type": "string"},
                "symbol": {"type": "string"},
                "value": {"type": "number"},
                "value_display": {"type": "string"}
            }
        },
        "models.ProfilesResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "profiles": {"type": "array", "items": {"$ref": "#/definitions/models.ProfileDTO"}},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/models.Warning"}}
            }
        },
        "models.SectorGroup": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "count": {"type": "integer"},
                "total_stake": {"type": "number"},
                "total_value": {"type": "number"}
            }
        },
        "models.TickersResponse": {
            "type": "object",
            "properties": {
                "tickers": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.TopHoldingsResponse": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "holdings": {"type": "array", "items": {"$ref": "#/definitions/models.ProfileDTO"}},
                "n": {"type": "integer"},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/models.Warning"}}
            }
        },
        "models.TrendPoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "models.Warning": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
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
	Title:            "Holdings Dashboard API",
	Description:      "Read-only portfolio data for the holdings dashboard: merged company profiles, sector allocation, top holdings and price histories.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
