package corebank

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Admin endpoints. Authorization is the API's concern; the client just
// relays the calls for admin views.

// GetStats fetches the admin dashboard aggregates.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, "admin_stats", http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// PendingCustomers lists registrations awaiting approval.
func (c *Client) PendingCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := c.do(ctx, "admin_pending", http.MethodGet, "/admin/pending-customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// ApproveCustomer approves a pending registration.
func (c *Client) ApproveCustomer(ctx context.Context, customerID int64) error {
	path := fmt.Sprintf("/admin/customers/%d/approve", customerID)
	return c.do(ctx, "admin_approve", http.MethodPost, path, nil, nil)
}

// DeclineCustomer declines a pending registration.
func (c *Client) DeclineCustomer(ctx context.Context, customerID int64) error {
	path := fmt.Sprintf("/admin/customers/%d/decline", customerID)
	return c.do(ctx, "admin_decline", http.MethodPost, path, nil, nil)
}

// ListCustomers lists all registered customers.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := c.do(ctx, "admin_customers", http.MethodGet, "/admin/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// DeleteCustomer removes a customer and their accounts.
func (c *Client) DeleteCustomer(ctx context.Context, customerID int64) error {
	path := fmt.Sprintf("/admin/customers/%d", customerID)
	return c.do(ctx, "admin_delete", http.MethodDelete, path, nil, nil)
}

// AccountInterest returns one year of interest due on an account, as
// computed by the API from its current balance and rate.
func (c *Client) AccountInterest(ctx context.Context, accountID int64) (float64, error) {
	var interest float64
	path := fmt.Sprintf("/admin/%d/interest", accountID)
	if err := c.do(ctx, "admin_interest", http.MethodGet, path, nil, &interest); err != nil {
		return 0, err
	}
	return interest, nil
}

// FilterTransactions fetches the admin transaction report for the given
// filter criteria.
func (c *Client) FilterTransactions(ctx context.Context, filter TransactionFilter) ([]TransactionRecord, error) {
	params := url.Values{}
	if filter.AccountID != 0 {
		params.Set("accountId", strconv.FormatInt(filter.AccountID, 10))
	}
	if filter.Type != "" {
		params.Set("type", filter.Type)
	}
	if filter.StartDate != "" {
		params.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		params.Set("endDate", filter.EndDate)
	}

	path := "/admin/transactions/filter"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var records []TransactionRecord
	if err := c.do(ctx, "admin_tx_filter", http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
