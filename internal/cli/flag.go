package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// EnumFlag registers a string flag on fs that only accepts values from safelist.
func EnumFlag(fs *pflag.FlagSet, target *string, name string, safelist []string, usage string) {
	usageWithValues := fmt.Sprintf("%s, must be one of %v", usage, safelist)
	fs.Var(&enumValue{target: target, safelist: safelist}, name, usageWithValues)
}

type enumValue struct {
	target   *string
	safelist []string
}

func (e *enumValue) String() string {
	if e.target == nil {
		return ""
	}
	return *e.target
}

func (e *enumValue) Set(flagValue string) error {
	for _, allowedValue := range e.safelist {
		if flagValue == allowedValue {
			*e.target = flagValue
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", e.safelist)
}

func (e *enumValue) Type() string {
	return strings.Join(e.safelist, "|")
}
