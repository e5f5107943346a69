package textcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/leslieliu-cn/textcheck/internal/util"
)

// Server exposes the pipeline over HTTP.
type Server struct {
	client *Client
	logger *slog.Logger
}

// NewServer wraps a Client for serving.
func NewServer(c *Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{client: c, logger: logger}
}

// Routes returns a mux with the full API surface registered.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/check-text", s.CheckTextHandler)
	mux.HandleFunc("/health", s.HealthHandler)
	mux.HandleFunc("/openapi.json", s.OpenAPIHandler)
	mux.HandleFunc("/", s.DocsHandler)
	return mux
}

// CheckTextRequest is the HTTP request body for /v1/check-text.
type CheckTextRequest struct {
	Text    string `json:"text"`              // text to check (required)
	Ignore  []int  `json:"ignore,omitempty"`  // correction indexes to drop from the response
	Timeout int    `json:"timeout,omitempty"` // seconds, default 30 (llm: 180)
}

// CheckTextHandler handles POST /v1/check-text requests.
func (s *Server) CheckTextHandler(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set("X-Request-Id", id)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CheckTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	timeout := 30 * time.Second
	if s.client.cfg.Mode == ModeLLM {
		timeout = 3 * time.Minute
	}
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Second
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	start := time.Now()
	res, err := s.client.CheckText(ctx, req.Text)
	if err != nil {
		s.logger.Error("check cancelled", "request_id", id, "err", err)
		http.Error(w, fmt.Sprintf("Check failed: %v", err), http.StatusInternalServerError)
		return
	}
	if len(req.Ignore) > 0 {
		res = Ignore(res, req.Ignore...)
	}

	s.logger.Info("check done",
		"request_id", id,
		"chars", res.CharCount,
		"segments", res.SegmentCount,
		"corrections", res.CorrectionCount,
		"success", res.Success,
		"elapsed", time.Since(start))

	// JSON response with HTML escaping off, for CJK text
	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(res, true)
	fmt.Fprint(w, string(out))
}

// HealthHandler handles GET /health requests.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "textcheck",
		"mode":    s.client.cfg.Mode,
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json.
func (s *Server) OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /.
func (s *Server) DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "textcheck API",
    "description": "Text correction REST API: segments long documents, delegates detection to a remote correction service and merges the positioned suggestions into one corrected text.",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/check-text": {
      "post": {
        "summary": "Check Text",
        "description": "Checks a document for sensitive, incorrect or policy-violating content. Oversized input is split into bounded segments transparently; a failed segment flips success off but surviving corrections are still returned.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/CheckTextRequest" },
              "examples": {
                "basic": { "value": { "text": "今天天气很好" } },
                "with ignored corrections": { "value": { "text": "今天天气很好", "ignore": [0] } },
                "with timeout": { "value": { "text": "a long document...", "timeout": 60 } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Check result",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Result" },
                "example": {
                  "success": true,
                  "originalText": "今天天气很好",
                  "correctedText": "今天天氣很好",
                  "corrections": [
                    { "original": "天气", "corrected": "天氣", "position": 2, "type": "char", "confidence": 1.0, "description": "misused character" }
                  ],
                  "message": "found 1 issues",
                  "charCount": 6,
                  "segmentCount": 1,
                  "correctionCount": 1,
                  "editDistance": 1
                }
              }
            }
          },
          "400": { "description": "Invalid request (JSON decode error)" },
          "500": { "description": "Cancelled or timed out before a result was produced" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "Service up",
            "content": {
              "application/json": {
                "example": { "status": "ok", "service": "textcheck", "mode": "signed" }
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "CheckTextRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text":    { "type": "string", "description": "document to check (required)" },
          "ignore":  { "type": "array", "items": { "type": "integer" }, "description": "correction indexes to drop; correctedText is re-derived without them" },
          "timeout": { "type": "integer", "description": "timeout in seconds (default 30, llm mode 180)" }
        }
      },
      "Result": {
        "type": "object",
        "properties": {
          "success":         { "type": "boolean", "description": "false when any segment failed" },
          "originalText":    { "type": "string" },
          "correctedText":   { "type": "string", "description": "fully patched text; present only on success" },
          "corrections":     { "type": "array", "items": { "$ref": "#/components/schemas/Correction" } },
          "message":         { "type": "string" },
          "charCount":       { "type": "integer" },
          "segmentCount":    { "type": "integer" },
          "correctionCount": { "type": "integer" },
          "editDistance":    { "type": "integer", "description": "Levenshtein(originalText, correctedText)" }
        }
      },
      "Correction": {
        "type": "object",
        "properties": {
          "original":    { "type": "string", "description": "exact substring at position" },
          "corrected":   { "type": "string", "description": "replacement text" },
          "position":    { "type": "integer", "description": "rune offset into originalText" },
          "type":        { "type": "string", "description": "upstream category key (pol, char, punc, ...)" },
          "confidence":  { "type": "number", "description": "[0,1]; 1.0 means unscored upstream" },
          "description": { "type": "string", "description": "human-readable category label" }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>textcheck API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
