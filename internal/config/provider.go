package config

import "github.com/footprint-tools/stockline/internal/domain"

// Provider exposes the config file through domain.ConfigProvider.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

var _ domain.ConfigProvider = (*Provider)(nil)
