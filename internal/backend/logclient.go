package backend

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qdm12/guestbook/internal/constants"
)

// makeLogClient returns a copy of the client given, logging each
// request it sends and each response it receives at the debug level.
func makeLogClient(client *http.Client, logger DebugLogger) (newClient *http.Client) {
	transport := client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &http.Client{
		Timeout: client.Timeout,
		Transport: &loggingRoundTripper{
			proxied: transport,
			logger:  logger,
			timeNow: time.Now,
		},
	}
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
	timeNow func() time.Time
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	suffix := ""
	if id := request.Header.Get(constants.RequestIDHeader); id != "" {
		suffix = " (request id " + id + ")"
	}

	lrt.logger.Debug(request.Method + " " + request.URL.String() + suffix)
	start := lrt.timeNow()

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	elapsed := lrt.timeNow().Sub(start).Round(time.Microsecond)
	line := response.Status + " in " + elapsed.String() + suffix
	if contentType := response.Header.Get("Content-Type"); contentType != "" {
		line += " | " + contentType
	}
	if response.Body != nil && response.Body != http.NoBody {
		var bodyString string
		response.Body, bodyString = readAndResetBody(response.Body)
		line += " | body: " + bodyString
	}
	lrt.logger.Debug(line)

	return response, nil
}

// readAndResetBody reads the body and returns a new body with the same
// content, together with a single line preview of the content.
func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, preview string) {
	defer body.Close()
	b, err := io.ReadAll(body)
	if err != nil {
		return io.NopCloser(bytes.NewReader(b)),
			fmt.Sprintf("error reading body: %s", err)
	}
	return io.NopCloser(bytes.NewReader(b)), toPreview(string(b))
}

const maxPreviewLength = 256

func toPreview(s string) (preview string) {
	preview = toSingleLine(s)
	if len(preview) > maxPreviewLength {
		preview = preview[:maxPreviewLength] + "..."
	}
	return preview
}

func toSingleLine(s string) (line string) {
	line = strings.NewReplacer("\r", "", "\n", "", "\t", " ").Replace(s)
	return strings.Join(strings.Fields(line), " ")
}
