// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2/google"
)

const (
	// SheetsReadonlyScope is the OAuth scope for reading spreadsheet values
	SheetsReadonlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

	DefaultSheetsBaseURL = "https://sheets.googleapis.com"

	// Cap on a values response; the configured ranges are a few KB
	maxSheetsResponse = 16 << 20
)

// SheetsSource reads ranges from a Google spreadsheet over the Sheets v4 REST API
type SheetsSource struct {
	client        *http.Client
	baseURL       string
	spreadsheetID string
}

// NewSheetsSource authenticates with a service account key file
func NewSheetsSource(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetsSource, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data, SheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	return NewSheetsSourceWithClient(conf.Client(ctx), DefaultSheetsBaseURL, spreadsheetID), nil
}

// NewSheetsSourceWithClient uses an already authorized client
func NewSheetsSourceWithClient(client *http.Client, baseURL, spreadsheetID string) *SheetsSource {
	return &SheetsSource{
		client:        client,
		baseURL:       strings.TrimRight(baseURL, "/"),
		spreadsheetID: spreadsheetID,
	}
}

func (s *SheetsSource) Values(ctx context.Context, rng string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		s.baseURL, url.PathEscape(s.spreadsheetID), url.PathEscape(rng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSheetsResponse))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheets response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("sheets API returned %d: %s", resp.StatusCode, msg)
	}

	return parseValues(body)
}

// parseValues extracts the "values" matrix of a ValueRange. An empty range has
// no "values" member at all.
func parseValues(body []byte) ([][]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("sheets response is not valid JSON")
	}

	values := gjson.GetBytes(body, "values")
	if !values.Exists() {
		return [][]string{}, nil
	}
	if !values.IsArray() {
		return nil, fmt.Errorf("sheets response: values is not an array")
	}

	rows := [][]string{}
	values.ForEach(func(_, row gjson.Result) bool {
		cells := []string{}
		row.ForEach(func(_, cell gjson.Result) bool {
			cells = append(cells, cell.String())
			return true
		})
		rows = append(rows, cells)
		return true
	})
	return rows, nil
}
