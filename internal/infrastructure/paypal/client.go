package paypal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/application/pagos"
	"github.com/ccltech/tienda-api/pkg/config"
)

var _ pagos.PayPalGateway = (*Client)(nil)

// Client gateway REST de PayPal (Orders v2). Obtiene un access token por
// client credentials y lo reutiliza hasta poco antes de su expiración.
type Client struct {
	http     *resty.Client
	clientID string
	secret   string

	mu       sync.Mutex
	token    string
	expiraEn time.Time
}

// NewClient construye el cliente contra cfg.BaseURL (sandbox o producción).
func NewClient(cfg config.PayPalConfig) *Client {
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &Client{
		http:     http,
		clientID: cfg.ClientID,
		secret:   cfg.Secret,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type ordenPayPal struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Payer  struct {
		EmailAddress string `json:"email_address"`
		Name         struct {
			GivenName string `json:"given_name"`
			Surname   string `json:"surname"`
		} `json:"name"`
	} `json:"payer"`
	PurchaseUnits []struct {
		Amount struct {
			CurrencyCode string `json:"currency_code"`
			Value        string `json:"value"`
		} `json:"amount"`
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// ObtenerCaptura consulta la orden en PayPal y devuelve el estado verificado.
func (c *Client) ObtenerCaptura(ctx context.Context, paypalOrderID string) (*pagos.CapturaVerificada, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var orden ordenPayPal
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&orden).
		Get("/v2/checkout/orders/" + paypalOrderID)
	if err != nil {
		return nil, fmt.Errorf("consultar orden paypal: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("consultar orden paypal: status %d: %s", resp.StatusCode(), resp.String())
	}

	captura := &pagos.CapturaVerificada{
		OrderID:    orden.ID,
		Status:     orden.Status,
		PayerEmail: orden.Payer.EmailAddress,
		PayerName:  orden.Payer.Name.GivenName + " " + orden.Payer.Name.Surname,
	}
	if len(orden.PurchaseUnits) > 0 {
		unidad := orden.PurchaseUnits[0]
		captura.Currency = unidad.Amount.CurrencyCode
		monto, err := decimal.NewFromString(unidad.Amount.Value)
		if err != nil {
			return nil, fmt.Errorf("monto paypal ilegible %q: %w", unidad.Amount.Value, err)
		}
		captura.Amount = monto
		if len(unidad.Payments.Captures) > 0 {
			captura.CaptureID = unidad.Payments.Captures[0].ID
		}
	}
	return captura, nil
}

// accessToken devuelve el token vigente o pide uno nuevo. El margen de un
// minuto evita usar un token a punto de expirar en medio de la consulta.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expiraEn.Add(-time.Minute)) {
		return c.token, nil
	}

	var tok tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.secret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&tok).
		Post("/v1/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("token paypal: %w", err)
	}
	if resp.IsError() || tok.AccessToken == "" {
		return "", fmt.Errorf("token paypal: status %d: %s", resp.StatusCode(), resp.String())
	}

	c.token = tok.AccessToken
	c.expiraEn = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.token, nil
}
