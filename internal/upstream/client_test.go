package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-internship-gateway/internal/domain"
	"go-internship-gateway/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitApplicationSuccess(t *testing.T) {
	var got domain.ApplicationRecord
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/add/submit", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(domain.SubmitResponse{Success: true, Message: "stored"})
	}))
	defer server.Close()

	client := upstream.New(server.URL, 5*time.Second)
	record := &domain.ApplicationRecord{Email: "jane.doe@example.com", FullName: "Jane Doe"}

	resp, err := client.SubmitApplication(context.Background(), record)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "jane.doe@example.com", got.Email)
}

func TestSubmitApplicationRejectionIsDataNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The backend reports duplicates in the body with a non-2xx status
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(domain.SubmitResponse{Success: false, Message: "Duplicate application"})
	}))
	defer server.Close()

	client := upstream.New(server.URL, 5*time.Second)

	resp, err := client.SubmitApplication(context.Background(), &domain.ApplicationRecord{})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Duplicate application", resp.Message)
}

func TestSubmitApplicationMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer server.Close()

	client := upstream.New(server.URL, 5*time.Second)

	_, err := client.SubmitApplication(context.Background(), &domain.ApplicationRecord{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed response")
}

func TestSubmitApplicationTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := upstream.New(server.URL, time.Second)

	_, err := client.SubmitApplication(context.Background(), &domain.ApplicationRecord{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend request failed")
}

func TestSubmitApplicationHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := upstream.New(server.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.SubmitApplication(ctx, &domain.ApplicationRecord{})
	require.Error(t, err)
}

func TestFetchProgramInfoReturnsFirstEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/submitflow", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":[
			{"lastdate":"25/12/2023","startdate":"01/01/2024","examdate":"28/12/2023","stipend":"5000","grplink":"https://chat.example.com/invite"},
			{"lastdate":"ignored","startdate":"ignored","examdate":"ignored","stipend":"0"}
		],"message":"ok"}`))
	}))
	defer server.Close()

	client := upstream.New(server.URL, 5*time.Second)

	info, err := client.FetchProgramInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "01/01/2024", info.StartDate)
	assert.Equal(t, "25/12/2023", info.LastDate)
	assert.Equal(t, "5000", info.Stipend)
	assert.Equal(t, "https://chat.example.com/invite", info.GroupLink)
}

func TestFetchProgramInfoEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[],"message":"ok"}`))
	}))
	defer server.Close()

	client := upstream.New(server.URL, 5*time.Second)

	info, err := client.FetchProgramInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.ProgramInfo{}, info)
}

func TestFetchProgramInfoBackendRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"data":[],"message":"Applications are closed"}`))
	}))
	defer server.Close()

	client := upstream.New(server.URL, 5*time.Second)

	_, err := client.FetchProgramInfo(context.Background())
	var apiErr *upstream.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Applications are closed", apiErr.Message)
}

func TestFetchProgramInfoServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := upstream.New(server.URL, 5*time.Second)

	_, err := client.FetchProgramInfo(context.Background())
	require.Error(t, err)
	var apiErr *upstream.APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "500")
}
