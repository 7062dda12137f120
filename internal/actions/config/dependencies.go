package config

import (
	"github.com/footprint-tools/fanout/internal/domain"
)

type Deps struct {
	Get    func(key string) (string, bool)
	GetAll func() (map[string]string, error)
	Set    func(key, value string) error
	Unset  func(key string) error
}

func DefaultDeps(p domain.ConfigProvider) Deps {
	return Deps{
		Get:    p.Get,
		GetAll: p.GetAll,
		Set:    p.Set,
		Unset:  p.Unset,
	}
}
