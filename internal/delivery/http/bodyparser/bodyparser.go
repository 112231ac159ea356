// Package bodyparser normalizes inbound request payloads. The SPA and its
// retry layer send the same JSON document three ways: as application/json,
// as application/octet-stream raw bytes, and as text/plain. All three decode
// into the caller's struct; anything else is treated as "no body" rather
// than rejected.
package bodyparser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"unicode/utf8"
)

// maxBodyBytes caps how much of a request body is read. Intake payloads are
// a handful of short strings.
const maxBodyBytes = 1 << 20

// Origin identifies the wire shape a malformed body arrived in, for
// diagnostic logging only. The client-facing message never varies by origin.
type Origin string

const (
	OriginJSON   Origin = "json"
	OriginBytes  Origin = "bytes"
	OriginString Origin = "string"
)

// ParseError reports a body that claimed to carry JSON but did not parse.
type ParseError struct {
	Origin Origin
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed request body (origin %s): %v", e.Origin, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Decode reads the request body and unmarshals it into out. It returns
// (false, nil) when there is no body to decode — a missing body is not an
// error here; required-field validation downstream produces the message.
func Decode(r *http.Request, out interface{}) (bool, error) {
	if r.Body == nil {
		return false, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return false, &ParseError{Origin: OriginBytes, Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}

	contentType := r.Header.Get("Content-Type")
	mediaType := ""
	if contentType != "" {
		mediaType, _, _ = mime.ParseMediaType(contentType)
	}

	switch mediaType {
	case "application/json", "":
		if err := json.Unmarshal(raw, out); err != nil {
			return false, &ParseError{Origin: OriginJSON, Err: err}
		}
		return true, nil
	case "application/octet-stream":
		if !utf8.Valid(raw) {
			return false, &ParseError{Origin: OriginBytes, Err: fmt.Errorf("body is not valid UTF-8")}
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return false, &ParseError{Origin: OriginBytes, Err: err}
		}
		return true, nil
	case "text/plain":
		if err := json.Unmarshal(raw, out); err != nil {
			return false, &ParseError{Origin: OriginString, Err: err}
		}
		return true, nil
	default:
		// Permissive fallback: an unrecognized content type is "no body",
		// not a rejection.
		return false, nil
	}
}
