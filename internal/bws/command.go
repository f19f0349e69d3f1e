package bws

import (
	"bwsAPI/internal/models"
	"errors"
	"net/http"
)

// Kind is the resource the bws CLI operates on
type Kind string

const (
	KindSecret  Kind = "secret"
	KindProject Kind = "project"
)

// Operation is the CLI sub-command run against a Kind
type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
)

// DefaultBinary is the executable name used when none is configured
const DefaultBinary = "bws"

// ErrMissingAuthorization is returned by Build when no access token was supplied
var ErrMissingAuthorization = errors.New("missing authorization header")

// Command is one bws invocation: the binary followed by its arguments.
// Methods never modify the receiver.
type Command []string

// Program returns the executable name
func (c Command) Program() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns everything after the executable name
func (c Command) Args() []string {
	if len(c) < 2 {
		return nil
	}
	return append([]string(nil), c[1:]...)
}

// With returns a copy of the command with args appended
func (c Command) With(args ...string) Command {
	out := make(Command, 0, len(c)+len(args))
	out = append(out, c...)
	return append(out, args...)
}

// HasBody reports whether requests with this method contribute body fields to the command
func HasBody(method string) bool {
	return method != http.MethodGet && method != http.MethodHead
}

// Input carries everything the builder reads from an inbound request
type Input struct {
	Token     string // Authorization header, forwarded verbatim
	ServerURL string // BWS-Server header
	Method    string
	Body      *models.CreateRequest // ignored for GET
}

// Build translates a request into a bws argument vector.
// GET and HEAD requests stop after the credential flags; path ids are appended by the caller.
func Build(binary string, kind Kind, op Operation, in Input) (Command, error) {
	if binary == "" {
		binary = DefaultBinary
	}

	cmd := Command{binary, string(kind), string(op)}

	if in.Token == "" {
		return nil, ErrMissingAuthorization
	}
	cmd = cmd.With("-t", in.Token)

	if in.ServerURL != "" {
		cmd = cmd.With("--server-url", in.ServerURL)
	}

	if !HasBody(in.Method) || in.Body == nil {
		return cmd, nil
	}

	body := in.Body
	if body.Name != "" {
		cmd = cmd.With(body.Name)
	}
	if body.Value != "" {
		cmd = cmd.With(body.Value)
	}
	if kind == KindSecret {
		if body.ProjectID != "" {
			cmd = cmd.With(body.ProjectID)
		}
		if body.Note != "" {
			cmd = cmd.With("--note", body.Note)
		}
	}

	return cmd, nil
}
