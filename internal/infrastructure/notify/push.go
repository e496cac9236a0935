package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var _ PushSender = (*PushClient)(nil)

// PushClient cliente del gateway HTTP de notificaciones push. La resolución
// de tokens de dispositivo vive en el gateway; aquí solo se publica el
// mensaje por principal. URL vacía = deshabilitado, no-op.
type PushClient struct {
	gatewayURL string
	apiKey     string
	httpClient *http.Client
}

// NewPushClient construye el cliente del gateway.
func NewPushClient(gatewayURL, apiKey string) *PushClient {
	return &PushClient{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type pushPayload struct {
	PrincipalID string `json:"principalId"`
	Message     string `json:"message"`
}

// Send publica el mensaje en el gateway.
func (c *PushClient) Send(principalID, message string) error {
	if c.gatewayURL == "" {
		return nil
	}
	body, err := json.Marshal(pushPayload{PrincipalID: principalID, Message: message})
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway devolvió %d", resp.StatusCode)
	}
	return nil
}
