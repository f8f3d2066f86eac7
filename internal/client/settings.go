package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// SettingsClient implements ucmdb.SettingsClient.
type SettingsClient struct {
	httpClient *http.Client
}

// NewSettingsClient creates a new settings client.
func NewSettingsClient(httpClient *http.Client) *SettingsClient {
	return &SettingsClient{
		httpClient: httpClient,
	}
}

// GetSetting implements ucmdb.SettingsClient.GetSetting. An empty locale
// defaults to English.
func (c *SettingsClient) GetSetting(ctx context.Context, name, locale string) (*ucmdb.Setting, error) {
	if locale == "" {
		locale = "en"
	}

	resp, err := c.httpClient.Get(ctx, "/settings/"+url.PathEscape(name), url.Values{
		"locale": []string{locale},
	})
	if err != nil {
		return nil, fmt.Errorf("getting setting: %w", err)
	}

	var setting ucmdb.Setting

	err = json.Unmarshal(resp.Body, &setting)
	if err != nil {
		return nil, fmt.Errorf("parsing setting response: %w", err)
	}

	return &setting, nil
}

// SetSetting implements ucmdb.SettingsClient.SetSetting.
func (c *SettingsClient) SetSetting(ctx context.Context, name, locale string, update *ucmdb.SettingUpdate) error {
	if locale == "" {
		locale = "en"
	}

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PUT",
		Path:   "/settings/" + url.PathEscape(name),
		Query:  url.Values{"locale": []string{locale}},
		Body:   update,
	})
	if err != nil {
		return fmt.Errorf("setting %q: %w", name, err)
	}

	return nil
}

// ListRecipients implements ucmdb.SettingsClient.ListRecipients.
func (c *SettingsClient) ListRecipients(ctx context.Context) ([]ucmdb.Recipient, error) {
	resp, err := c.httpClient.Get(ctx, "/administration/recipients", nil)
	if err != nil {
		return nil, fmt.Errorf("listing recipients: %w", err)
	}

	var recipients []ucmdb.Recipient

	err = json.Unmarshal(resp.Body, &recipients)
	if err != nil {
		return nil, fmt.Errorf("parsing recipients response: %w", err)
	}

	return recipients, nil
}

// AddRecipient implements ucmdb.SettingsClient.AddRecipient.
func (c *SettingsClient) AddRecipient(ctx context.Context, recipient *ucmdb.Recipient) error {
	_, err := c.httpClient.Post(ctx, "/administration/recipients", recipient)
	if err != nil {
		return fmt.Errorf("adding recipient: %w", err)
	}

	return nil
}

// UpdateRecipient implements ucmdb.SettingsClient.UpdateRecipient.
func (c *SettingsClient) UpdateRecipient(ctx context.Context, id string, recipient *ucmdb.Recipient) error {
	_, err := c.httpClient.Put(ctx, "/administration/recipients/"+url.PathEscape(id), recipient)
	if err != nil {
		return fmt.Errorf("updating recipient: %w", err)
	}

	return nil
}

// DeleteRecipients implements ucmdb.SettingsClient.DeleteRecipients.
// Several recipients can be removed in one call.
func (c *SettingsClient) DeleteRecipients(ctx context.Context, ids []string) error {
	_, err := c.httpClient.DeleteWithQuery(ctx, "/administration/recipients", url.Values{
		"ids": []string{strings.Join(ids, ",")},
	})
	if err != nil {
		return fmt.Errorf("deleting recipients: %w", err)
	}

	return nil
}

// GetLDAPSettings implements ucmdb.SettingsClient.GetLDAPSettings. One entry
// is returned per configured directory server.
func (c *SettingsClient) GetLDAPSettings(ctx context.Context) ([]ucmdb.LDAPConfiguration, error) {
	resp, err := c.httpClient.Get(ctx, "/ldap/settings", nil)
	if err != nil {
		return nil, fmt.Errorf("getting LDAP settings: %w", err)
	}

	var configurations []ucmdb.LDAPConfiguration

	err = json.Unmarshal(resp.Body, &configurations)
	if err != nil {
		return nil, fmt.Errorf("parsing LDAP settings response: %w", err)
	}

	return configurations, nil
}
