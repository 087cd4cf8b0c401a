package orchestration

import (
	"github.com/agbru/sumbench/internal/config"
	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/summation"
)

// StrategiesToRun resolves the configured strategy keys against registry.
// The result keeps registration order, which is the report column order.
func StrategiesToRun(cfg config.AppConfig, registry *summation.Registry) ([]summation.Strategy, error) {
	strategies, err := registry.Select(cfg.Strategies)
	if err != nil {
		return nil, apperrors.NewConfigError("%v (available: %v)", err, registry.List())
	}
	return strategies, nil
}
