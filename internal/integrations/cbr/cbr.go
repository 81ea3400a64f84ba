// Package cbr fetches the central bank key rate, shown next to savings accounts
// as a reference interest rate.
package cbr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/finance-planner/internal/config"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// CBRClient handles integration with the Central Bank of Russia web service
type CBRClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
	now    func() time.Time
}

// KeyRate is one published key rate
type KeyRate struct {
	Date time.Time `json:"date"`
	Rate float64   `json:"rate"`
}

// NewCBRClient initializes a new CBR client
func NewCBRClient(cfg *config.Config, log *logrus.Logger) *CBRClient {
	return &CBRClient{
		url: cfg.CBRURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

// buildSOAPRequest creates a SOAP request for the key rates of the last 30 days
func (c *CBRClient) buildSOAPRequest() string {
	now := c.now()
	fromDate := now.AddDate(0, 0, -30).Format("2006-01-02")
	toDate := now.Format("2006-01-02")
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
			<soap12:Body>
				<KeyRate xmlns="http://web.cbr.ru/">
					<fromDate>%s</fromDate>
					<ToDate>%s</ToDate>
				</KeyRate>
			</soap12:Body>
		</soap12:Envelope>`, fromDate, toDate)
}

// sendRequest sends SOAP request to CBR
func (c *CBRClient) sendRequest(ctx context.Context, soapRequest string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBufferString(soapRequest))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "http://web.cbr.ru/KeyRate")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("CBR XML response: %s", string(body))
	return body, nil
}

// parseXMLResponse extracts the most recent key rate
func parseXMLResponse(rawBody []byte) (KeyRate, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return KeyRate{}, fmt.Errorf("failed to parse XML: %w", err)
	}

	krElements := doc.FindElements("//diffgram/KeyRate/KR")
	if len(krElements) == 0 {
		return KeyRate{}, fmt.Errorf("no key rate data found in XML")
	}

	// the service lists the newest rate first
	latest := krElements[0]
	rateElement := latest.FindElement("./Rate")
	if rateElement == nil {
		return KeyRate{}, fmt.Errorf("rate element not found in XML")
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(rateElement.Text()), 64)
	if err != nil {
		return KeyRate{}, fmt.Errorf("failed to parse rate: %w", err)
	}

	kr := KeyRate{Rate: rate}
	if dt := latest.FindElement("./DT"); dt != nil {
		if d, err := time.Parse(time.RFC3339, strings.TrimSpace(dt.Text())); err == nil {
			kr.Date = d
		}
	}
	return kr, nil
}

// GetKeyRate retrieves the current key rate in percent
func (c *CBRClient) GetKeyRate(ctx context.Context) (KeyRate, error) {
	body, err := c.sendRequest(ctx, c.buildSOAPRequest())
	if err != nil {
		return KeyRate{}, err
	}

	kr, err := parseXMLResponse(body)
	if err != nil {
		return KeyRate{}, err
	}

	c.log.Infof("Retrieved key rate: %.2f%%", kr.Rate)
	return kr, nil
}
