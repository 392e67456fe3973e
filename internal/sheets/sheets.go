// Package sheets reads and appends the spreadsheet-backed FAQ source of truth.
package sheets

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"faqbot/internal/models"
)

// Row appends use the same column layout as bulk reads:
// question, answer, category, date.
const appendRange = "A:D"

// Client talks to the Google Sheets FAQ spreadsheet.
type Client struct {
	svc       *sheets.Service
	sheetID   string
	readRange string
	timeout   time.Duration
}

// NewClient creates a sheets client from a service account key file.
func NewClient(ctx context.Context, sheetID, readRange, credentialsFile string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{
		svc:       svc,
		sheetID:   sheetID,
		readRange: readRange,
		timeout:   30 * time.Second,
	}, nil
}

// Fetch bulk-reads all FAQ rows. Rows missing a question or answer are
// skipped rather than failing the whole reload.
func (c *Client) Fetch(ctx context.Context) ([]models.FaqEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	entries := make([]models.FaqEntry, 0, len(resp.Values))
	for _, row := range resp.Values {
		entry := parseRow(row)
		if entry.Question == "" || entry.Answer == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Append adds a single FAQ row with today's date in the last column.
func (c *Client) Append(ctx context.Context, entry models.FaqEntry) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	values := &sheets.ValueRange{
		Values: [][]any{{
			entry.Question,
			entry.Answer,
			entry.Category,
			time.Now().Format("2006-01-02"),
		}},
	}
	_, err := c.svc.Spreadsheets.Values.Append(c.sheetID, appendRange, values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append sheet row: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts the starter FAQ rows when the sheet has no data rows
// yet, so a fresh deployment answers something on day one.
func (c *Client) SeedIfEmpty(ctx context.Context) error {
	entries, err := c.Fetch(ctx)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return nil
	}

	seed := []models.FaqEntry{
		{Question: "How do I print my call-up letter?", Answer: "Login to the portal → 'Print Call-up Letter'", Category: "pre-mobilization"},
		{Question: "What's prohibited in camp?", Answer: "Weapons, drugs, alcohol, power banks over 20,000mAh", Category: "camp-rules"},
		{Question: "When is allowance paid?", Answer: "Between 25th-30th each month", Category: "allowances"},
		{Question: "How do I redeploy?", Answer: "Submit application to LGI with valid reasons", Category: "posting"},
	}
	for _, e := range seed {
		if err := c.Append(ctx, e); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d starter FAQ rows", len(seed))
	return nil
}

func parseRow(row []any) models.FaqEntry {
	var entry models.FaqEntry
	if len(row) > 0 {
		entry.Question, _ = row[0].(string)
	}
	if len(row) > 1 {
		entry.Answer, _ = row[1].(string)
	}
	if len(row) > 2 {
		entry.Category, _ = row[2].(string)
	}
	return entry
}
