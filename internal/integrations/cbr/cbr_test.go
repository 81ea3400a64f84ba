package cbr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/finance-planner/internal/config"
	"github.com/sirupsen/logrus"
)

const keyRateResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body>
    <KeyRateResponse xmlns="http://web.cbr.ru/">
      <KeyRateResult>
        <diffgr:diffgram xmlns:diffgr="urn:schemas-microsoft-com:xml-diffgram-v1">
          <KeyRate xmlns="">
            <KR diffgr:id="KR1">
              <DT>2026-10-17T00:00:00+03:00</DT>
              <Rate>16.50</Rate>
            </KR>
            <KR diffgr:id="KR2">
              <DT>2026-10-16T00:00:00+03:00</DT>
              <Rate>17.00</Rate>
            </KR>
          </KeyRate>
        </diffgr:diffgram>
      </KeyRateResult>
    </KeyRateResponse>
  </soap:Body>
</soap:Envelope>`

func testClient(url string) *CBRClient {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	c := NewCBRClient(&config.Config{CBRURL: url}, logger)
	c.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestGetKeyRate(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		if r.Header.Get("SOAPAction") != "http://web.cbr.ru/KeyRate" {
			t.Errorf("SOAPAction = %q", r.Header.Get("SOAPAction"))
		}
		w.Write([]byte(keyRateResponse))
	}))
	defer srv.Close()

	kr, err := testClient(srv.URL).GetKeyRate(context.Background())
	if err != nil {
		t.Fatalf("GetKeyRate: %v", err)
	}
	if kr.Rate != 16.5 {
		t.Fatalf("Rate = %.2f, want 16.50", kr.Rate)
	}
	if kr.Date.Day() != 17 {
		t.Fatalf("Date = %v, want 17th", kr.Date)
	}
	if !strings.Contains(gotBody, "<fromDate>2026-09-19</fromDate>") || !strings.Contains(gotBody, "<ToDate>2026-10-19</ToDate>") {
		t.Fatalf("request body missing date range: %s", gotBody)
	}
}

func TestGetKeyRateBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).GetKeyRate(context.Background()); err == nil {
		t.Fatal("expected error for 503")
	}
}

func TestParseXMLResponseNoRates(t *testing.T) {
	if _, err := parseXMLResponse([]byte(`<Envelope><Body/></Envelope>`)); err == nil {
		t.Fatal("expected error when no KR elements")
	}
}
