// Package bridge routes front-end invocations to registered native commands.
//
// The table is built once at startup and is read-only afterwards, so a
// Registry may be shared between the UI callbacks and any other caller
// without locking.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"yargizeka/internal/logger"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrDuplicate       = errors.New("duplicate command")
	ErrInvalidName     = errors.New("invalid command name")
	ErrMalformed       = errors.New("malformed request")
)

// Args carries the named string arguments of one invocation.
type Args map[string]string

// Command is a native capability callable by name from the front-end.
type Command interface {
	Name() string
	Invoke(args Args) (string, error)
}

type funcCommand struct {
	name   string
	params []string
	fn     func(Args) string
}

// Func adapts fn into a Command that requires every entry of params to be
// present in the invocation arguments.
func Func(name string, params []string, fn func(Args) string) Command {
	return &funcCommand{name: name, params: params, fn: fn}
}

func (c *funcCommand) Name() string {
	return c.name
}

func (c *funcCommand) Invoke(args Args) (string, error) {
	for _, p := range c.params {
		if _, ok := args[p]; !ok {
			return "", fmt.Errorf("%s: %w %q", c.name, ErrMissingArgument, p)
		}
	}
	return c.fn(args), nil
}

// Registry is the dispatch table from command name to Command.
type Registry struct {
	commands map[string]Command
	logger   logger.Logger
}

func NewRegistry(log logger.Logger, cmds ...Command) (*Registry, error) {
	if log == nil {
		log = logger.Nop{}
	}

	r := &Registry{
		commands: make(map[string]Command, len(cmds)),
		logger:   log,
	}

	for _, cmd := range cmds {
		name := cmd.Name()
		if name == "" {
			return nil, ErrInvalidName
		}
		if _, exists := r.commands[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, name)
		}
		r.commands[name] = cmd
	}

	log.Debug("Bridge", "dispatch table built", map[string]interface{}{
		"commands": r.Names(),
	})

	return r, nil
}

// Invoke runs the command registered under name.
func (r *Registry) Invoke(name string, args Args) (string, error) {
	cmd, ok := r.commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	result, err := cmd.Invoke(args)
	if err != nil {
		r.logger.Warning("Bridge", "invocation rejected", map[string]interface{}{
			"command": name,
			"error":   err.Error(),
		})
		return "", err
	}

	r.logger.Debug("Bridge", "command invoked", map[string]interface{}{
		"command": name,
	})
	return result, nil
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Request is the serialized form of a front-end invocation.
type Request struct {
	Cmd  string `json:"cmd"`
	Args Args   `json:"args,omitempty"`
}

// Response carries either the command result or the dispatch error.
type Response struct {
	Result *string `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Dispatch decodes a JSON Request, invokes it and encodes the Response.
// Failures are reported inside the Response; Dispatch never panics on bad input.
func (r *Registry) Dispatch(request []byte) []byte {
	var req Request
	if err := json.Unmarshal(request, &req); err != nil {
		return encodeResponse(Response{Error: fmt.Errorf("%w: %v", ErrMalformed, err).Error()})
	}
	if req.Cmd == "" {
		return encodeResponse(Response{Error: fmt.Errorf("%w: cmd is required", ErrMalformed).Error()})
	}

	result, err := r.Invoke(req.Cmd, req.Args)
	if err != nil {
		return encodeResponse(Response{Error: err.Error()})
	}
	return encodeResponse(Response{Result: &result})
}

func encodeResponse(resp Response) []byte {
	// Response holds only strings; Marshal cannot fail.
	data, _ := json.Marshal(resp)
	return data
}
