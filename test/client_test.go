//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) newToken(ownerID string) string {
	token, err := auth.SignToken(
		auth.Config{Secret: testJWTSecret, Issuer: testJWTIssuer},
		ownerID,
		uuid.New().String(),
		time.Now().Add(time.Hour),
	)
	require.NoError(s.T(), err)
	return token
}

// doRequest sends the request and returns the status code and the full body.
func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	method, path, token string,
	body any,
	headers map[string]string,
) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	return resp.StatusCode, respBytes
}
