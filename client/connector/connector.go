// Package connector is an HTTP client for a remote bridge connector.  The
// connector runs the bridging protocol (approval, burn, attestation, mint)
// server-side; this client starts a transfer and translates the polled
// per-step statuses into progress events.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/client"
	"github.com/cordialsys/bridgekit/normalize"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const DefaultPollInterval = 2 * time.Second

// Client talks to a bridge connector over REST.
type Client struct {
	URL  string
	Http *http.Client

	limiter      *rate.Limiter
	pollInterval time.Duration
}

var _ client.BridgeService = &Client{}
var _ client.Catalog = &Client{}

func NewClient(url string) *Client {
	return &Client{
		URL:          url,
		Http:         &http.Client{},
		limiter:      rate.NewLimiter(rate.Inf, 0),
		pollInterval: DefaultPollInterval,
	}
}

// WithRateLimit caps outgoing requests, in requests/second.
func (c *Client) WithRateLimit(limit rate.Limit, burst int) *Client {
	c.limiter = rate.NewLimiter(limit, burst)
	return c
}

func (c *Client) WithPollInterval(interval time.Duration) *Client {
	c.pollInterval = interval
	return c
}

// apiStatus is the connector's error body on non-200 responses.
type apiStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type transferReq struct {
	FromChain   bridgekit.Chain               `json:"fromChain"`
	ToChain     bridgekit.Chain               `json:"toChain"`
	Amount      bridgekit.AmountHumanReadable `json:"amount"`
	FromAddress string                        `json:"fromAddress"`
	ToAddress   string                        `json:"toAddress"`
}

type transferStatus struct {
	ID    string              `json:"id"`
	OK    bool                `json:"ok"`
	State bridgekit.StepState `json:"state"`
	Steps []client.StepResult `json:"steps,omitempty"`
}

func (status *transferStatus) terminal() bool {
	return status.State.Terminal()
}

func (c *Client) apiCall(ctx context.Context, method string, path string, data interface{}, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	var body io.Reader
	if data != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(data); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.Http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var status apiStatus
		if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
			return fmt.Errorf("%s %s: http %d", method, path, res.StatusCode)
		}
		return fmt.Errorf("%d: %s", status.Code, status.Message)
	}
	return json.NewDecoder(res.Body).Decode(result)
}

// GetSupportedChains fetches the ledger catalog.
func (c *Client) GetSupportedChains(ctx context.Context) ([]bridgekit.ChainInfo, error) {
	chains := []bridgekit.ChainInfo{}
	if err := c.apiCall(ctx, "GET", "/v1/chains", nil, &chains); err != nil {
		return nil, errors.Wrap(err, "failed to fetch supported chains")
	}
	return chains, nil
}

// Execute starts the transfer and polls its status until a terminal state,
// emitting one event per observed step-state transition.
func (c *Client) Execute(ctx context.Context, req *bridgekit.TransferRequest, onEvent client.OnEvent) (*client.Envelope, error) {
	started := transferStatus{}
	err := c.apiCall(ctx, "POST", "/v1/transfers", &transferReq{
		FromChain:   req.From,
		ToChain:     req.To,
		Amount:      req.Amount,
		FromAddress: req.FromAdapter.Address(),
		ToAddress:   req.ToAdapter.Address(),
	}, &started)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start transfer")
	}

	seen := map[string]bridgekit.StepState{}
	emit := func(status *transferStatus) {
		for _, step := range status.Steps {
			if last, ok := seen[step.Name]; ok && last == step.State {
				continue
			}
			seen[step.Name] = step.State
			onEvent(normalize.Event{
				Method: step.Name,
				Values: map[string]any{"state": string(step.State)},
			})
		}
	}
	emit(&started)

	status := started
	for !status.terminal() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
		next := transferStatus{}
		if err := c.apiCall(ctx, "GET", "/v1/transfers/"+started.ID, nil, &next); err != nil {
			return nil, errors.Wrap(err, "failed to poll transfer")
		}
		status = next
		emit(&status)
	}

	data, err := json.Marshal(&client.Result{State: status.State, Steps: status.Steps})
	if err != nil {
		return nil, err
	}
	return &client.Envelope{OK: status.OK, Data: data}, nil
}
