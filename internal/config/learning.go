package config

import (
	"fmt"

	"github.com/acala-trade/acala/internal/pkg/apperrors"
)

// LearningConfig carries the hyperparameters consumed by the learning agent.
type LearningConfig struct {
	LearningRate    float64 `mapstructure:"learning_rate"`
	DiscountFactor  float64 `mapstructure:"discount_factor"`
	ExplorationRate float64 `mapstructure:"exploration_rate"`
	BatchSize       int     `mapstructure:"batch_size"`
	MemoryCapacity  int     `mapstructure:"memory_capacity"`
	UpdateFrequency int     `mapstructure:"update_frequency"`
}

// Validate checks the fractional hyperparameters against their ranges.
// Fields are checked in a fixed order and the first violation wins.
func (c LearningConfig) Validate() error {
	if c.LearningRate <= 0 || c.LearningRate >= 1 {
		return apperrors.NewValidation("learning.learning_rate",
			fmt.Sprintf("learning rate must be in (0, 1), got %g", c.LearningRate))
	}
	if c.DiscountFactor < 0 || c.DiscountFactor > 1 {
		return apperrors.NewValidation("learning.discount_factor",
			fmt.Sprintf("discount factor must be in [0, 1], got %g", c.DiscountFactor))
	}
	if c.ExplorationRate < 0 || c.ExplorationRate > 1 {
		return apperrors.NewValidation("learning.exploration_rate",
			fmt.Sprintf("exploration rate must be in [0, 1], got %g", c.ExplorationRate))
	}
	return nil
}
