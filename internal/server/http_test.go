package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSecurityLayer struct {
	mock.Mock
}

func (m *mockSecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	args := m.Called(protocol, addr)
	if ln := args.Get(0); ln != nil {
		return ln.(net.Listener), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHTTPServer_Address(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer(http.NewServeMux(), ":8000")
	assert.Equal(t, ":8000", s.Address())
}

func TestHTTPServer_Start_ListenError(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer(http.NewServeMux(), ":8000")

	sec := new(mockSecurityLayer)
	sec.On("Listen", "tcp", ":8000").Return(nil, assert.AnError)

	err := s.Start(sec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestHTTPServer_StartAndStop(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewHTTPServer(mux, ln.Addr().String())

	sec := new(mockSecurityLayer)
	sec.On("Listen", "tcp", ln.Addr().String()).Return(ln, nil)

	done := make(chan error, 1)
	go func() { done <- s.Start(sec) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		var reqErr error
		resp, reqErr = http.Get("http://" + ln.Addr().String() + "/ping")
		return reqErr == nil
	}, 2*time.Second, 20*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
