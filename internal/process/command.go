package process

import (
	"fmt"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/kballard/go-shellquote"
)

// Command is an argv with the executable first
type Command []string

// ParseCommand splits a shell-style command line into a Command
func ParseCommand(line string) (Command, error) {
	words, err := shlex.Split(line, true)
	if err != nil {
		return nil, fmt.Errorf("preparing %q for execution: %v", line, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("preparing %q for execution: empty command", line)
	}
	return Command(words), nil
}

// MustParseCommand is ParseCommand for static tables; it panics on error
func MustParseCommand(line string) Command {
	cmd, err := ParseCommand(line)
	if err != nil {
		panic(err)
	}
	return cmd
}

// Name returns the executable
func (c Command) Name() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns the arguments after the executable
func (c Command) Args() []string {
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

// String returns the command quoted for a POSIX shell
func (c Command) String() string {
	return shellquote.Join(c...)
}
