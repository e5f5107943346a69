// Package sign builds the query-string authentication the correction API
// requires: an HMAC-SHA256 signature over host, date and request-line,
// delivered as URL parameters rather than HTTP headers.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DateFormat is RFC 1123 with a fixed GMT zone, the format the upstream
// signature check expects.
const DateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Signed returns rawURL with host, date and authorization appended as
// query parameters. now is supplied by the caller so signing stays a pure
// function of its inputs.
func Signed(rawURL, method, apiKey, apiSecret string, now time.Time) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("sign: parse url %q: %w", rawURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("sign: url %q has no host", rawURL)
	}
	path := u.Path
	if path == "" {
		path = "/"
	}

	date := now.UTC().Format(DateFormat)

	// Three-line canonical string; the upstream verifier is strict about it.
	base := fmt.Sprintf("host: %s\ndate: %s\n%s %s HTTP/1.1",
		u.Host, date, strings.ToUpper(method), path)

	mac := hmac.New(sha256.New, []byte(apiSecret))
	mac.Write([]byte(base))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	descriptor := fmt.Sprintf(
		`api_key="%s", algorithm="hmac-sha256", headers="host date request-line", signature="%s"`,
		apiKey, signature)
	authorization := base64.StdEncoding.EncodeToString([]byte(descriptor))

	params := url.Values{
		"host":          {u.Host},
		"date":          {date},
		"authorization": {authorization},
	}
	return rawURL + "?" + params.Encode(), nil
}
