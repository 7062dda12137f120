package config

import (
	"fmt"

	"github.com/footprint-tools/fanout/internal/domain"
)

// Provider implements domain.ConfigProvider on top of the config file.
// Writes are serialized through WithLock.
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

func (p *Provider) Set(key, value string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

func (p *Provider) Unset(key string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		lines, _ = Unset(lines, key)
		return WriteLines(lines)
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
