package finra

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"smartmoney/internal/domain"
)

// Client pulls FINRA's daily Reg SHO short sale volume files. These
// cover off-exchange (dark pool) activity and are the raw input for
// dark pool anomaly detection.
type Client struct {
	HttpClient *http.Client
}

type ShortVolumeRecord struct {
	Date        time.Time
	Symbol      string
	ShortVolume int64
	TotalVolume int64
}

// ShortRatio is the fraction of consolidated volume sold short,
// rounded to 4 decimal places.
func (r ShortVolumeRecord) ShortRatio() float64 {
	if r.TotalVolume == 0 {
		return 0
	}
	return domain.Round4(float64(r.ShortVolume) / float64(r.TotalVolume))
}

// GetDailyShortVolume downloads the consolidated NMS short volume file
// for a given day. Weekends and market holidays 404.
func (c Client) GetDailyShortVolume(date time.Time) ([]ShortVolumeRecord, error) {
	url := fmt.Sprintf("https://cdn.finra.org/equity/regsho/daily/CNMSshvol%s.txt", date.Format("20060102"))
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("finra short volume request failed with status code %d", response.StatusCode)
	}

	return ParseShortVolumeFile(string(responseBytes))
}

// ParseShortVolumeFile parses FINRA's pipe-delimited short volume
// format:
//
//	Date|Symbol|ShortVolume|ShortExemptVolume|TotalVolume|Market
func ParseShortVolumeFile(contents string) ([]ShortVolumeRecord, error) {
	lines := strings.Split(strings.TrimSpace(contents), "\n")

	out := []ShortVolumeRecord{}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i == 0 && strings.HasPrefix(line, "Date|") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 5 {
			return nil, fmt.Errorf("malformed short volume line %d: %q", i+1, line)
		}

		date, err := time.Parse("20060102", fields[0])
		if err != nil {
			return nil, fmt.Errorf("failed to parse date on line %d: %w", i+1, err)
		}
		shortVolume, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse short volume on line %d: %w", i+1, err)
		}
		totalVolume, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse total volume on line %d: %w", i+1, err)
		}

		out = append(out, ShortVolumeRecord{
			Date:        date,
			Symbol:      fields[1],
			ShortVolume: shortVolume,
			TotalVolume: totalVolume,
		})
	}

	return out, nil
}

// ShortRatiosBySymbol collapses a day's records into per-symbol short
// ratios. Symbols with negligible volume are dropped since their
// ratios are noise.
func ShortRatiosBySymbol(records []ShortVolumeRecord, minTotalVolume int64) map[string]float64 {
	out := map[string]float64{}
	for _, r := range records {
		if r.TotalVolume < minTotalVolume {
			continue
		}
		out[r.Symbol] = r.ShortRatio()
	}
	return out
}
