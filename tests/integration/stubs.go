package integration

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// stubHTTPClient satisfies the provider HTTPClient interfaces and replays
// a canned response while recording every request it sees.
type stubHTTPClient struct {
	mu       sync.Mutex
	status   int
	body     string
	requests []recordedRequest
}

type recordedRequest struct {
	URL  string
	Body string
}

func newStubHTTPClient(status int, body string) *stubHTTPClient {
	return &stubHTTPClient{status: status, body: body}
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	var reqBody []byte
	if req.Body != nil {
		reqBody, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	s.mu.Lock()
	s.requests = append(s.requests, recordedRequest{URL: req.URL.String(), Body: string(reqBody)})
	s.mu.Unlock()

	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(s.body))),
		Header:     make(http.Header),
	}, nil
}

// calls returns a snapshot of the recorded requests.
func (s *stubHTTPClient) calls() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]recordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

const (
	stripeIntentBody = `{"id":"pi_test_1","client_secret":"pi_test_1_secret_abc"}`

	flutterwaveTransferBody = `{"status":"success","message":"Transfer Queued Successfully",` +
		`"data":{"id":42,"status":"NEW","reference":"flw-ref-42"}}`
)
