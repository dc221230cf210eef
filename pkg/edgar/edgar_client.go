package edgar

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"smartmoney/internal/domain"

	"github.com/shopspring/decimal"
)

// Client pulls institutional 13F filings from SEC EDGAR. EDGAR has no
// API key but requires a descriptive User-Agent and rate limits hard.
type Client struct {
	HttpClient *http.Client
	UserAgent  string
}

type Filing struct {
	AccessionNumber string
	Form            string
	FilingDate      string
	PrimaryDocument string
}

type submissionsResponse struct {
	Name    string `json:"name"`
	Filings struct {
		Recent struct {
			AccessionNumber []string `json:"accessionNumber"`
			Form            []string `json:"form"`
			FilingDate      []string `json:"filingDate"`
			PrimaryDocument []string `json:"primaryDocument"`
		} `json:"recent"`
	} `json:"filings"`
}

// GetRecent13FFilings lists recent 13F-HR filings for an institution.
// cik must be the zero-padded 10 digit CIK.
func (c Client) GetRecent13FFilings(cik string) ([]Filing, error) {
	url := fmt.Sprintf("https://data.sec.gov/submissions/CIK%s.json", cik)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode == 429 {
		time.Sleep(10 * time.Second)
		return c.GetRecent13FFilings(cik)
	} else if response.StatusCode != 200 {
		return nil, fmt.Errorf("edgar submissions request failed with status code %d", response.StatusCode)
	}

	parsed := submissionsResponse{}
	err = json.Unmarshal(responseBytes, &parsed)
	if err != nil {
		return nil, err
	}

	recent := parsed.Filings.Recent
	out := []Filing{}
	for i, form := range recent.Form {
		if form != "13F-HR" {
			continue
		}
		out = append(out, Filing{
			AccessionNumber: recent.AccessionNumber[i],
			Form:            form,
			FilingDate:      recent.FilingDate[i],
			PrimaryDocument: recent.PrimaryDocument[i],
		})
	}

	return out, nil
}

// InfoTableURL builds the archive URL for a filing's primary document.
// EDGAR keys archives by unpadded CIK and dashless accession number.
func InfoTableURL(cik string, f Filing) string {
	return fmt.Sprintf(
		"https://www.sec.gov/Archives/edgar/data/%s/%s/%s",
		strings.TrimLeft(cik, "0"),
		strings.ReplaceAll(f.AccessionNumber, "-", ""),
		f.PrimaryDocument,
	)
}

type InfoTableEntry struct {
	NameOfIssuer string `xml:"nameOfIssuer"`
	Cusip        string `xml:"cusip"`
	Value        int64  `xml:"value"`
	Shares       int64  `xml:"shrsOrPrnAmt>sshPrnamt"`
}

type informationTable struct {
	Entries []InfoTableEntry `xml:"infoTable"`
}

// ParseInfoTable parses the holdings XML attached to a 13F-HR filing.
// Value is reported in dollars.
func ParseInfoTable(contents []byte) ([]InfoTableEntry, error) {
	parsed := informationTable{}
	err := xml.Unmarshal(contents, &parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse 13F info table: %w", err)
	}

	return parsed.Entries, nil
}

// GetInfoTable downloads and parses a filing's holdings table.
func (c Client) GetInfoTable(url string) ([]InfoTableEntry, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("edgar info table request failed with status code %d", response.StatusCode)
	}

	return ParseInfoTable(responseBytes)
}

// DiffHoldings compares two consecutive quarters of holdings and emits
// quarterly-filing signals for changed positions. New or increased
// positions are buys, trimmed or exited positions are sells, and the
// amount is the absolute dollar change. CUSIPs without a known ticker
// are skipped.
func DiffHoldings(
	institution string,
	filingDate time.Time,
	current []InfoTableEntry,
	previous []InfoTableEntry,
	tickerByCusip map[string]string,
) ([]domain.Signal, error) {
	currentByCusip := sumByCusip(current)
	previousByCusip := sumByCusip(previous)

	cusips := map[string]bool{}
	for c := range currentByCusip {
		cusips[c] = true
	}
	for c := range previousByCusip {
		cusips[c] = true
	}

	out := []domain.Signal{}
	for cusip := range cusips {
		ticker, ok := tickerByCusip[strings.ToUpper(cusip)]
		if !ok {
			continue
		}

		delta := currentByCusip[cusip] - previousByCusip[cusip]
		if delta == 0 {
			continue
		}

		action := domain.ActionBuy
		if delta < 0 {
			action = domain.ActionSell
			delta = -delta
		}

		amount := decimal.NewFromInt(delta)
		signal, err := domain.NewSignal(
			domain.SourceQuarterlyFiling,
			institution,
			ticker,
			action,
			filingDate,
			&amount,
			nil,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, *signal)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Ticker < out[j].Ticker
	})

	return out, nil
}

func sumByCusip(entries []InfoTableEntry) map[string]int64 {
	out := map[string]int64{}
	for _, e := range entries {
		out[e.Cusip] += e.Value
	}
	return out
}
