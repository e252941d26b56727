package accounts

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/clubdeskhq/clubdesk/internal/domain/contribution"
	"github.com/clubdeskhq/clubdesk/internal/platform/logging"
	"github.com/clubdeskhq/clubdesk/internal/platform/resilience"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const defaultBaseURL = "http://localhost:8082/ac"

var errAccountsTransient = crerr.New("accounts transient failure")

// Alerter receives operational alerts about upstream failures.
type Alerter interface {
	Notify(ctx context.Context, message string)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Alerter        Alerter
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client consumes the club accounts service over REST.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	alerter        Alerter
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		alerter:        cfg.Alerter,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchSummary(ctx context.Context) (usecase.AccountSummary, error) {
	var content summaryContent
	if err := c.doJSON(ctx, "/reports/summary", nil, &content); err != nil {
		return usecase.AccountSummary{}, err
	}

	return usecase.AccountSummary{
		TotalCollected: content.TotalCollected,
		TotalExpenses:  content.TotalExpenses,
		Balance:        content.Balance,
		PendingPlayers: content.PendingPlayers,
	}, nil
}

func (c *Client) FetchPlayerCollectionMetrics(ctx context.Context, year int) (usecase.AccountMetricsReport, error) {
	if year <= 0 {
		return usecase.AccountMetricsReport{}, fmt.Errorf("%w: year must be greater than zero", usecase.ErrInvalidInput)
	}

	query := map[string]string{
		"year": strconv.Itoa(year),
	}

	var content metricsContent
	if err := c.doJSON(ctx, "/reports/player-collection-metrics", query, &content); err != nil {
		return usecase.AccountMetricsReport{}, err
	}

	players := make([]contribution.PlayerMetric, 0, len(content.Players))
	for _, row := range content.Players {
		players = append(players, mapPlayerRow(row))
	}

	return usecase.AccountMetricsReport{
		Players:        players,
		AvailableYears: content.AvailableYears,
	}, nil
}

type envelope struct {
	StatusCode int        `json:"statusCode"`
	Status     string     `json:"status"`
	Message    string     `json:"message"`
	Errors     []apiError `json:"errors"`
}

type apiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type summaryContent struct {
	TotalCollected float64 `json:"totalCollected"`
	TotalExpenses  float64 `json:"totalExpenses"`
	Balance        float64 `json:"balance"`
	PendingPlayers int     `json:"pendingPlayers"`
}

type metricsContent struct {
	Players        []playerRow `json:"players"`
	AvailableYears []int       `json:"availableYears"`
}

type playerRow struct {
	PlayerID      string     `json:"playerId"`
	PlayerName    string     `json:"playerName"`
	EmployeeID    string     `json:"employeeId"`
	Active        bool       `json:"active"`
	Contributions []monthRow `json:"contributions"`
}

type monthRow struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

func mapPlayerRow(row playerRow) contribution.PlayerMetric {
	amounts := make([]contribution.MonthlyAmount, 0, len(row.Contributions))
	for _, item := range row.Contributions {
		if item.Month < 1 || item.Month > 12 || item.Year <= 0 {
			continue
		}
		amounts = append(amounts, contribution.MonthlyAmount{
			Year:   item.Year,
			Month:  item.Month,
			Amount: item.Amount,
		})
	}
	return contribution.PlayerMetric{
		PlayerID:   strings.TrimSpace(row.PlayerID),
		PlayerName: strings.TrimSpace(row.PlayerName),
		EmployeeID: strings.TrimSpace(row.EmployeeID),
		Active:     row.Active,
		Amounts:    amounts,
	}
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, content any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "accounts circuit breaker rejected request", "state", c.breaker.State())
			rejected := fmt.Errorf("%w: accounts service is temporarily unavailable", usecase.ErrDependencyUnavailable)
			c.alert(ctx, rejected.Error())
			return rejected
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, path, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errAccountsTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		c.alert(ctx, err.Error())
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	var wrapped struct {
		Content json.RawMessage `json:"content"`
	}
	if err := sonic.Unmarshal(raw, &wrapped); err != nil {
		return fmt.Errorf("decode accounts payload: %w", err)
	}
	if len(wrapped.Content) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(wrapped.Content, content); err != nil {
		return fmt.Errorf("decode accounts content: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, path, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %w: send request %s: %v", usecase.ErrDependencyUnavailable, errAccountsTransient, path, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errAccountsTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				message := normalizeAPIError(path, resp.StatusCode, raw)
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: %w: %s", usecase.ErrDependencyUnavailable, errAccountsTransient, message)
				} else {
					return nil, fmt.Errorf("%w: %s", sentinelForStatus(resp.StatusCode), message)
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("accounts request failed")
	}
	c.logger.WarnContext(ctx, "accounts request failed", "path", path, "error", lastErr)
	return nil, lastErr
}

// normalizeAPIError produces the human-readable message for a non-2xx
// response. Precedence: joined field errors, then the top-level message,
// then a synthesized message for bare 500s, then the raw status text.
func normalizeAPIError(path string, statusCode int, raw []byte) string {
	var body envelope
	if len(raw) > 0 {
		_ = sonic.Unmarshal(raw, &body)
	}

	if len(body.Errors) > 0 {
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)
		for _, item := range body.Errors {
			msg := strings.TrimSpace(item.Message)
			if msg == "" {
				continue
			}
			if buf.Len() > 0 {
				_, _ = buf.WriteString(", ")
			}
			_, _ = buf.WriteString(msg)
		}
		if buf.Len() > 0 {
			return buf.String()
		}
	}

	if msg := strings.TrimSpace(body.Message); msg != "" {
		return msg
	}

	if statusCode == http.StatusInternalServerError {
		return "internal server error for API " + path
	}

	return http.StatusText(statusCode)
}

func sentinelForStatus(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return usecase.ErrUnauthorized
	case http.StatusForbidden:
		return usecase.ErrForbidden
	case http.StatusNotFound:
		return usecase.ErrNotFound
	default:
		return usecase.ErrInvalidInput
	}
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

func (c *Client) alert(ctx context.Context, message string) {
	if c.alerter == nil {
		return
	}
	c.alerter.Notify(ctx, message)
}
