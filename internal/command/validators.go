// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"

	"github.com/tfctl/inidrift/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, ok := value.(string)
	if !ok || !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// ArgCountValidator returns a validator requiring exactly n positional
// arguments, named in the error message.
func ArgCountValidator(names ...string) FlagValidatorType {
	return func(value any) error {
		args, _ := value.([]string)
		if len(args) != len(names) {
			return fmt.Errorf("expected %d arguments %v, got %d", len(names), names, len(args))
		}
		return nil
	}
}
