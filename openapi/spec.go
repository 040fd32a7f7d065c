package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pkg/errors"
)

var swaggerSpec = `{
  "openapi": "3.0.0",
  "info": {
    "title": "Settlement math API",
    "description": "Overflow checked 256/512-bit integer and 18 decimal fixed point calculations.",
    "version": "1.0.0"
  },
  "servers": [{"url": "http://localhost:8082"}],
  "paths": {
    "/v1/health": {
      "get": {
        "operationId": "GetHealth",
        "summary": "Health of the calculator and its store",
        "responses": {
          "200": {"description": "health", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/HealthStatus"}}}}
        }
      }
    },
    "/v1/stats": {
      "get": {
        "operationId": "GetStats",
        "summary": "Counters over the recorded calculations",
        "responses": {
          "200": {"description": "stats", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Stats"}}}},
          "500": {"$ref": "#/components/responses/GeneralError"}
        }
      }
    },
    "/v1/calculations": {
      "get": {
        "operationId": "GetCalculations",
        "summary": "Latest calculations, newest first",
        "parameters": [
          {"name": "limit", "in": "query", "required": false, "schema": {"type": "integer", "minimum": 0}}
        ],
        "responses": {
          "200": {"description": "calculations", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Calculation"}}}}},
          "500": {"$ref": "#/components/responses/GeneralError"}
        }
      }
    },
    "/v1/swagger.json": {
      "get": {
        "operationId": "GetSwagger",
        "summary": "This document",
        "responses": {"200": {"description": "OpenAPI document"}}
      }
    },
    "/v1/muldiv": {
      "get": {
        "operationId": "GetMulDiv",
        "summary": "a*b/c over 256-bit operands with a 512-bit intermediate",
        "parameters": [
          {"$ref": "#/components/parameters/A"},
          {"$ref": "#/components/parameters/B"},
          {"name": "c", "in": "query", "required": true, "schema": {"type": "string"}},
          {"$ref": "#/components/parameters/Rounding"}
        ],
        "responses": {
          "200": {"$ref": "#/components/responses/Calculation"},
          "400": {"$ref": "#/components/responses/CalculationError"}
        }
      }
    },
    "/v1/div": {
      "get": {
        "operationId": "GetDiv",
        "summary": "512-bit quotient and remainder",
        "parameters": [
          {"$ref": "#/components/parameters/A"},
          {"$ref": "#/components/parameters/B"},
          {"$ref": "#/components/parameters/Rounding"}
        ],
        "responses": {
          "200": {"$ref": "#/components/responses/Calculation"},
          "400": {"$ref": "#/components/responses/CalculationError"}
        }
      }
    },
    "/v1/ln": {
      "get": {
        "operationId": "GetLn",
        "summary": "Natural logarithm for 0 < x < 2",
        "parameters": [
          {"name": "x", "in": "query", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"$ref": "#/components/responses/Calculation"},
          "400": {"$ref": "#/components/responses/CalculationError"}
        }
      }
    },
    "/v1/pow": {
      "get": {
        "operationId": "GetPow",
        "summary": "base^exp for 0 < base < 2",
        "parameters": [
          {"name": "base", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "exp", "in": "query", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"$ref": "#/components/responses/Calculation"},
          "400": {"$ref": "#/components/responses/CalculationError"}
        }
      }
    },
    "/v1/sqrt": {
      "get": {
        "operationId": "GetSqrt",
        "summary": "Integer square root of a 128-bit value",
        "parameters": [
          {"name": "n", "in": "query", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"$ref": "#/components/responses/Calculation"},
          "400": {"$ref": "#/components/responses/CalculationError"}
        }
      }
    },
    "/v1/pool/swap": {
      "get": {
        "operationId": "GetSwap",
        "summary": "Constant product or slip based swap quote",
        "parameters": [
          {"name": "base_depth", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "quote_depth", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "offer", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "to", "in": "query", "required": false, "schema": {"type": "string", "enum": ["asset", "base", "quote"]}},
          {"$ref": "#/components/parameters/FeeRate"},
          {"name": "model", "in": "query", "required": false, "schema": {"type": "string", "enum": ["constant", "slip"]}}
        ],
        "responses": {
          "200": {"$ref": "#/components/responses/Calculation"},
          "400": {"$ref": "#/components/responses/CalculationError"}
        }
      }
    },
    "/v1/pool/weighted": {
      "get": {
        "operationId": "GetWeightedSwap",
        "summary": "Weighted pool swap quote",
        "parameters": [
          {"name": "offer_depth", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "return_depth", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "offer_weight", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "return_weight", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "offer", "in": "query", "required": true, "schema": {"type": "string"}},
          {"$ref": "#/components/parameters/FeeRate"}
        ],
        "responses": {
          "200": {"$ref": "#/components/responses/Calculation"},
          "400": {"$ref": "#/components/responses/CalculationError"}
        }
      }
    },
    "/v1/pool/liquidity": {
      "get": {
        "operationId": "GetLiquidity",
        "summary": "Shares minted for a deposit",
        "parameters": [
          {"name": "base_amount", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "quote_amount", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "base_depth", "in": "query", "required": false, "schema": {"type": "string"}},
          {"name": "quote_depth", "in": "query", "required": false, "schema": {"type": "string"}},
          {"name": "total_shares", "in": "query", "required": false, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"$ref": "#/components/responses/Calculation"},
          "400": {"$ref": "#/components/responses/CalculationError"}
        }
      }
    },
    "/v1/ws": {
      "get": {
        "operationId": "GetWs",
        "summary": "Websocket channel taking {\"id\", \"op\", \"args\"} frames",
        "responses": {"101": {"description": "switching protocols"}}
      }
    }
  },
  "components": {
    "parameters": {
      "A": {"name": "a", "in": "query", "required": true, "schema": {"type": "string"}},
      "B": {"name": "b", "in": "query", "required": true, "schema": {"type": "string"}},
      "Rounding": {"name": "rounding", "in": "query", "required": false, "schema": {"type": "string", "enum": ["down", "half_up"]}},
      "FeeRate": {"name": "fee_rate", "in": "query", "required": false, "schema": {"type": "string"}}
    },
    "responses": {
      "Calculation": {"description": "calculation", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Calculation"}}}},
      "CalculationError": {"description": "rejected operands", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CalculationError"}}}},
      "GeneralError": {"description": "error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/GeneralError"}}}}
    },
    "schemas": {
      "HealthStatus": {
        "type": "object",
        "properties": {"calculator": {"type": "string"}, "database": {"type": "string"}}
      },
      "Stats": {
        "type": "object",
        "properties": {
          "calculationCount": {"type": "integer"},
          "errorCount": {"type": "integer"},
          "avgDuration": {"type": "number"},
          "ops": {"type": "object", "additionalProperties": {"type": "integer"}},
          "timeRunning": {"type": "string"}
        }
      },
      "Calculation": {
        "type": "object",
        "properties": {
          "time": {"type": "string", "format": "date-time"},
          "op": {"type": "string"},
          "inputs": {"type": "object", "additionalProperties": {"type": "string"}},
          "result": {"type": "object", "additionalProperties": {"type": "string"}},
          "error": {"type": "string"},
          "duration": {"type": "integer", "description": "nanoseconds"}
        }
      },
      "CalculationError": {
        "type": "object",
        "properties": {"error": {"type": "string"}, "calculation": {"$ref": "#/components/schemas/Calculation"}}
      },
      "GeneralError": {
        "type": "object",
        "properties": {"error": {"type": "string"}}
      }
    }
  }
}`

// GetSwagger returns the Swagger specification corresponding to the server.
func GetSwagger() (*openapi3.Swagger, error) {
	swagger, err := openapi3.NewSwaggerLoader().LoadSwaggerFromData([]byte(swaggerSpec))
	if err != nil {
		return nil, errors.Wrap(err, "error loading Swagger")
	}
	return swagger, nil
}
