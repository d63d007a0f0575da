package handler

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd       *cobra.Command
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, formatter *cli.OutputFormatter) *FlagParser {
	return &FlagParser{
		cmd:       cmd,
		formatter: formatter,
	}
}

// ParseString returns a string flag and whether it was set on the command line
func (p *FlagParser) ParseString(flagName string) (string, bool, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return value, p.cmd.Flags().Changed(flagName), nil
}

// ParsePosition reads a 1-based position flag and returns it as a 0-based index.
// set is false when the flag was not given.
func (p *FlagParser) ParsePosition(flagName string) (index int, set bool, err error) {
	position, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if !p.cmd.Flags().Changed(flagName) {
		return 0, false, nil
	}
	index, err = cli.ValidatePosition(p.formatter, position)
	if err != nil {
		return 0, false, err
	}
	return index, true, nil
}

// ParseBool retrieves a bool flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}
