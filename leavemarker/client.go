package leavemarker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultBaseURL = "http://localhost:8080/api"

// Application routes. The interceptor never redirects away from a public
// route.
const (
	RouteLanding   = "/"
	RouteLogin     = "/login"
	RouteSignup    = "/signup"
	RoutePricing   = "/pricing"
	RouteDashboard = "/dashboard"
)

// PublicRoutes lists the routes reachable without a session.
var PublicRoutes = []string{RouteLanding, RouteLogin, RouteSignup, RoutePricing}

// IsPublicRoute reports whether path is on the public allow-list.
func IsPublicRoute(path string) bool {
	for _, p := range PublicRoutes {
		if p == path {
			return true
		}
	}
	return false
}

// CredentialsMode selects how requests are authenticated. Exactly one
// strategy is chosen at construction.
type CredentialsMode int

const (
	// CredentialsCookie relies on a server-managed session cookie (primary
	// mode). No token is held client-side.
	CredentialsCookie CredentialsMode = iota
	// CredentialsBearer is the legacy fallback: a bearer token kept in a
	// TokenStore and attached to every request.
	CredentialsBearer
)

// TokenStore persists the bearer token and serialized identity in legacy
// fallback mode. Cookie mode never touches it.
type TokenStore interface {
	Save(token string, identity *Identity) error
	Load() (token string, identity *Identity, err error)
	Clear() error
}

// Navigator abstracts the navigation surface so the HTTP layer stays free of
// UI concerns; redirects happen in a subscriber, not inline.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// MemoryNavigator is a Navigator backed by a plain field. The CLI and tests
// use it directly.
type MemoryNavigator struct {
	mu   sync.Mutex
	path string
}

func NewMemoryNavigator(path string) *MemoryNavigator {
	return &MemoryNavigator{path: path}
}

func (n *MemoryNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

func (n *MemoryNavigator) Navigate(path string) {
	n.mu.Lock()
	n.path = path
	n.mu.Unlock()
}

// Config configures a Client.
type Config struct {
	// BaseURL of the backend API, e.g. http://localhost:8080/api.
	BaseURL string
	// Mode selects cookie or bearer credentials. Cookie is the default.
	Mode CredentialsMode
	// TokenStore is required in bearer mode.
	TokenStore TokenStore
	// Navigator receives the forced redirect on authentication loss. Nil
	// disables redirects (callers can still subscribe via OnAuthLost).
	Navigator Navigator
	// Timeout for each request; zero means 30s.
	Timeout time.Duration
	Logger  zerolog.Logger
	Debug   bool
}

// Client is the single choke point for outbound API calls. It owns the
// credential transport and the uniform 401 reaction; individual resource
// services hang off it.
type Client struct {
	http   *resty.Client
	log    zerolog.Logger
	mode   CredentialsMode
	tokens TokenStore
	nav    Navigator

	// loggingOut suppresses the 401 reaction while a deliberate logout is
	// underway. It clears as soon as a new session is established so a later
	// login in the same process gets 401 interception back.
	loggingOut atomic.Bool

	tokenMu sync.RWMutex
	token   string

	authLostMu sync.Mutex
	authLost   []func()

	auth          *AuthService
	employees     *EmployeeService
	leavePolicies *LeavePolicyService
	holidays      *HolidayService
	leaveApps     *LeaveApplicationService
	attendance    *AttendanceService
	leaveBalance  *LeaveBalanceService
	reports       *ReportsService
	plans         *PlanService
	subscriptions *SubscriptionService
	payments      *PaymentService
	contact       *ContactService
}

// New builds a Client. In cookie mode a cookie jar is attached so the
// server-managed session cookie rides every request.
func New(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute, got: %s", baseURL)
	}
	if cfg.Mode == CredentialsBearer && cfg.TokenStore == nil {
		return nil, fmt.Errorf("bearer mode requires a token store")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(3).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)
	httpClient.AddRetryCondition(retryCondition)
	if cfg.Debug {
		httpClient.SetDebug(true)
	}

	c := &Client{
		http:   httpClient,
		log:    cfg.Logger,
		mode:   cfg.Mode,
		tokens: cfg.TokenStore,
		nav:    cfg.Navigator,
	}

	if c.mode == CredentialsCookie {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		httpClient.SetCookieJar(jar)
	} else {
		// Rehydrate a persisted token so an existing session survives restarts.
		if token, _, err := c.tokens.Load(); err == nil && token != "" {
			c.token = token
		}
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if t := c.Token(); t != "" {
				req.SetHeader("Authorization", "Bearer "+t)
			}
			return nil
		})
	}

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	// Central 401 reaction. The rejected call still surfaces its original
	// error; this hook only publishes the authentication-lost event.
	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			c.handleUnauthorized()
		}
		return nil
	})

	if c.nav != nil {
		c.OnAuthLost(func() {
			if !IsPublicRoute(c.nav.CurrentPath()) {
				c.nav.Navigate(RouteLogin)
			}
		})
	}

	c.auth = &AuthService{client: c}
	c.employees = &EmployeeService{client: c}
	c.leavePolicies = &LeavePolicyService{client: c}
	c.holidays = &HolidayService{client: c}
	c.leaveApps = &LeaveApplicationService{client: c}
	c.attendance = &AttendanceService{client: c, now: time.Now}
	c.leaveBalance = &LeaveBalanceService{client: c}
	c.reports = &ReportsService{client: c, now: time.Now}
	c.plans = &PlanService{client: c}
	c.subscriptions = &SubscriptionService{client: c}
	c.payments = &PaymentService{client: c}
	c.contact = &ContactService{client: c}
	return c, nil
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}

// OnAuthLost registers a subscriber for the authentication-lost event. The
// event fires on any 401 outside a deliberate logout.
func (c *Client) OnAuthLost(fn func()) {
	c.authLostMu.Lock()
	c.authLost = append(c.authLost, fn)
	c.authLostMu.Unlock()
}

func (c *Client) handleUnauthorized() {
	if c.loggingOut.Load() {
		return
	}
	if c.mode == CredentialsBearer {
		c.setToken("")
		_ = c.tokens.Clear()
	}
	c.authLostMu.Lock()
	subs := make([]func(), len(c.authLost))
	copy(subs, c.authLost)
	c.authLostMu.Unlock()
	for _, fn := range subs {
		fn()
	}
	c.log.Debug().Msg("authentication lost, subscribers notified")
}

func (c *Client) beginLogout() { c.loggingOut.Store(true) }
func (c *Client) endLogout()   { c.loggingOut.Store(false) }

// Token returns the bearer token, empty in cookie mode.
func (c *Client) Token() string {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.tokenMu.Lock()
	c.token = token
	c.tokenMu.Unlock()
}

// do performs a request and decodes the envelope's data into out. A non-2xx
// status or an unsuccessful envelope becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := execute(req, method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err := c.decode(resp, out); err != nil {
		return err
	}
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode()).Msg("api request")
	return nil
}

func execute(req *resty.Request, method, path string) (*resty.Response, error) {
	switch method {
	case http.MethodGet:
		return req.Get(path)
	case http.MethodPost:
		return req.Post(path)
	case http.MethodPut:
		return req.Put(path)
	case http.MethodDelete:
		return req.Delete(path)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}
}

func (c *Client) decode(resp *resty.Response, out any) error {
	if resp.StatusCode() >= 400 {
		return newAPIError(resp.StatusCode(), resp.Body())
	}
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Message: env.Message}
		if env.Message == validationFailedMessage && len(env.Data) > 0 {
			var fields map[string]string
			if err := json.Unmarshal(env.Data, &fields); err == nil {
				apiErr.Fields = fields
			}
		}
		return apiErr
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// raw performs a GET for binary payloads (report downloads), bypassing the
// envelope.
func (c *Client) raw(ctx context.Context, path string) ([]byte, string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, "", fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode() >= 400 {
		return nil, "", newAPIError(resp.StatusCode(), resp.Body())
	}
	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

// Service accessors.

func (c *Client) Auth() *AuthService                          { return c.auth }
func (c *Client) Employees() *EmployeeService                 { return c.employees }
func (c *Client) LeavePolicies() *LeavePolicyService          { return c.leavePolicies }
func (c *Client) Holidays() *HolidayService                   { return c.holidays }
func (c *Client) LeaveApplications() *LeaveApplicationService { return c.leaveApps }
func (c *Client) Attendance() *AttendanceService              { return c.attendance }
func (c *Client) LeaveBalance() *LeaveBalanceService          { return c.leaveBalance }
func (c *Client) Reports() *ReportsService                    { return c.reports }
func (c *Client) Plans() *PlanService                         { return c.plans }
func (c *Client) Subscriptions() *SubscriptionService         { return c.subscriptions }
func (c *Client) Payments() *PaymentService                   { return c.payments }
func (c *Client) Contact() *ContactService                    { return c.contact }
