package api

import (
	"encoding/json"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp/fasthttputil"
)

type staticTokens struct {
	token string
}

func (s staticTokens) AccessToken() string { return s.token }

// newTestClient spins up an in-memory backend and a client dialing it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	server := &http.Server{Handler: handler}
	go server.Serve(ln)
	t.Cleanup(func() {
		server.Close()
		ln.Close()
	})

	client := NewClient("http://backend/api", staticTokens{token: "test-token"})
	client.SetDial(func(addr string) (net.Conn, error) {
		return ln.Dial()
	})
	return client
}

func TestDoDecodesResultEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"result":  map[string]string{"_id": "abc"},
		})
	})

	var out struct {
		ID string `json:"_id"`
	}
	require.NoError(t, client.do("GET", "/things/abc", "", nil, &out))
	assert.Equal(t, "abc", out.ID)
}

func TestDoDecodesDataEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   map[string]string{"_id": "def"},
		})
	})

	var out struct {
		ID string `json:"_id"`
	}
	require.NoError(t, client.do("GET", "/things/def", "", nil, &out))
	assert.Equal(t, "def", out.ID)
}

func TestDoPrefersResultOverData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"result":  map[string]string{"_id": "from-result"},
			"data":    map[string]string{"_id": "from-data"},
		})
	})

	var out struct {
		ID string `json:"_id"`
	}
	require.NoError(t, client.do("GET", "/things", "", nil, &out))
	assert.Equal(t, "from-result", out.ID)
}

func TestDoReturnsAPIErrorOnEnvelopeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// 200 with a failed envelope still counts as an error.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "call not found",
		})
	})

	err := client.do("GET", "/things/missing", "", nil, nil)
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "call not found", apiErr.Message)
}

func TestDoReturnsAPIErrorOnHTTPStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Call not found",
		})
	})

	err := client.do("GET", "/things/missing", "", nil, nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Call not found", err.Error())
}

func TestDoAppendsQueryString(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	require.NoError(t, client.do("GET", "/things", "page=2&search=demo", nil, nil))
	assert.Equal(t, "page=2&search=demo", gotQuery)
}

func TestDoWrapsTransportFailure(t *testing.T) {
	client := NewClient("http://backend/api", nil)
	client.SetDial(func(addr string) (net.Conn, error) {
		return nil, net.ErrClosed
	})

	err := client.do("GET", "/things", "", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to reach the server")
	_, isAPIErr := err.(*APIError)
	assert.False(t, isAPIErr)
}
