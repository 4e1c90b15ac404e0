package ipifyclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/storymaker/tracking-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrInvalidIP = errors.New("resposta sem IP válido")

type Client interface {
	GetPublicIP(ctx context.Context) (string, error)
}

type IpifyClient struct {
	httpClient *http.Client
	url        string
}

type ipResponse struct {
	IP string `json:"ip"`
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Tracking.IPLookupTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &IpifyClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url: cfg.Tracking.IPLookupURL,
	}
}

// GetPublicIP faz um único GET não autenticado e espera {"ip": "..."}
func (c *IpifyClient) GetPublicIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if net.ParseIP(response.IP) == nil {
		return "", ErrInvalidIP
	}

	return response.IP, nil
}
