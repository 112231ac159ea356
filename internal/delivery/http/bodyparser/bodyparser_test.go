package bodyparser_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"go-intake-backend/internal/delivery/http/bodyparser"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","phone":"+1"}`))
	req.Header.Set("Content-Type", "application/json")

	var out payload
	ok, err := bodyparser.Decode(req, &out)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", out.Email)
	assert.Equal(t, "+1", out.Phone)
}

func TestDecodeMissingContentTypeDefaultsToJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com"}`))

	var out payload
	ok, err := bodyparser.Decode(req, &out)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", out.Email)
}

func TestDecodeRawBytes(t *testing.T) {
	t.Run("valid JSON bytes decode", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com"}`))
		req.Header.Set("Content-Type", "application/octet-stream")

		var out payload
		ok, err := bodyparser.Decode(req, &out)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("invalid JSON bytes report the bytes origin", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email": broken`))
		req.Header.Set("Content-Type", "application/octet-stream")

		var out payload
		_, err := bodyparser.Decode(req, &out)
		assert.Error(t, err)
		var perr *bodyparser.ParseError
		assert.True(t, errors.As(err, &perr))
		assert.Equal(t, bodyparser.OriginBytes, perr.Origin)
	})

	t.Run("non-UTF-8 bytes report the bytes origin", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("\xff\xfe\xfd"))
		req.Header.Set("Content-Type", "application/octet-stream")

		var out payload
		_, err := bodyparser.Decode(req, &out)
		assert.Error(t, err)
		var perr *bodyparser.ParseError
		assert.True(t, errors.As(err, &perr))
		assert.Equal(t, bodyparser.OriginBytes, perr.Origin)
	})
}

func TestDecodeText(t *testing.T) {
	t.Run("valid JSON text decodes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"phone":"+1"}`))
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")

		var out payload
		ok, err := bodyparser.Decode(req, &out)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "+1", out.Phone)
	})

	t.Run("invalid JSON text reports the string origin", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("just some words"))
		req.Header.Set("Content-Type", "text/plain")

		var out payload
		_, err := bodyparser.Decode(req, &out)
		assert.Error(t, err)
		var perr *bodyparser.ParseError
		assert.True(t, errors.As(err, &perr))
		assert.Equal(t, bodyparser.OriginString, perr.Origin)
	})
}

func TestDecodeNoBody(t *testing.T) {
	t.Run("empty body is not an error", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/json")

		var out payload
		ok, err := bodyparser.Decode(req, &out)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("whitespace body is not an error", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("   \n"))

		var out payload
		ok, err := bodyparser.Decode(req, &out)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown content type falls back to no body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("<form>email</form>"))
		req.Header.Set("Content-Type", "application/xml")

		var out payload
		ok, err := bodyparser.Decode(req, &out)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
