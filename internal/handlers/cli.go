package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bwsAPI/internal/auth"
	"bwsAPI/internal/bws"
	"bwsAPI/internal/metrics"
	"bwsAPI/internal/models"

	"go.uber.org/zap"
)

const (
	msgMissingAuthorization = "Missing Authorization header"
	msgInvalidPayload       = "invalid request payload"
	msgResourceIDMissing    = "resource id missing"
	msgExecFailed           = "failed to execute bws"
)

// cli holds what every handler needs to run bws
type cli struct {
	Runner bws.Runner
	Binary string
	Logger *zap.Logger
}

func newCLI(runner bws.Runner, binary string, logger *zap.Logger) cli {
	if logger == nil {
		logger = zap.NewNop()
	}
	if binary == "" {
		binary = bws.DefaultBinary
	}
	return cli{Runner: runner, Binary: binary, Logger: logger}
}

// list runs `<kind> list` and answers with the decoded records
func (c *cli) list(w http.ResponseWriter, r *http.Request, kind bws.Kind, decode func([]byte) (any, error)) {
	cmd, ok := c.command(w, r, kind, bws.OpList)
	if !ok {
		return
	}

	res, ok := c.run(w, r, kind, bws.OpList, cmd)
	if !ok {
		return
	}

	records, err := decode([]byte(res.Stdout))
	if err != nil {
		c.badOutput(w, r, kind, bws.OpList, res, err)
		return
	}

	c.succeed(w, r, kind, bws.OpList, res, http.StatusCreated, records)
}

// get runs `<kind> get <id>` with the id taken from the path
func (c *cli) get(w http.ResponseWriter, r *http.Request, kind bws.Kind, status int) {
	cmd, ok := c.command(w, r, kind, bws.OpGet)
	if !ok {
		return
	}

	id, ok := auth.GetResourceID(r.Context())
	if !ok || id == "" {
		writeJSON(w, c.Logger, http.StatusBadRequest, models.NewError(msgResourceIDMissing))
		return
	}

	c.document(w, r, kind, bws.OpGet, cmd.With(id), status)
}

// create runs `<kind> create` with the positional values from the body
func (c *cli) create(w http.ResponseWriter, r *http.Request, kind bws.Kind) {
	cmd, ok := c.command(w, r, kind, bws.OpCreate)
	if !ok {
		return
	}

	c.document(w, r, kind, bws.OpCreate, cmd, http.StatusCreated)
}

// document runs cmd and relays its single JSON object with key order intact
func (c *cli) document(w http.ResponseWriter, r *http.Request, kind bws.Kind, op bws.Operation, cmd bws.Command, status int) {
	res, ok := c.run(w, r, kind, op, cmd)
	if !ok {
		return
	}

	doc, err := models.ParseDocument([]byte(res.Stdout))
	if err != nil {
		c.badOutput(w, r, kind, op, res, err)
		return
	}

	c.succeed(w, r, kind, op, res, status, doc)
}

// command builds the argument vector. On failure the response has been written.
func (c *cli) command(w http.ResponseWriter, r *http.Request, kind bws.Kind, op bws.Operation) (bws.Command, bool) {
	creds := auth.CredentialsFromRequest(r)
	in := bws.Input{
		Token:     creds.Token,
		ServerURL: creds.ServerURL,
		Method:    r.Method,
	}

	// the credential check comes first, the body is only read when it matters
	if bws.HasBody(r.Method) && in.Token != "" {
		var body models.CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			metrics.RejectedRequests.WithLabelValues(string(kind), "bad_payload").Inc()
			c.logger(r).Info("rejected request body", zap.Error(err))
			writeJSON(w, c.Logger, http.StatusBadRequest, models.NewError(msgInvalidPayload))
			return nil, false
		}
		in.Body = &body
	}

	cmd, err := bws.Build(c.Binary, kind, op, in)
	if err != nil {
		if errors.Is(err, bws.ErrMissingAuthorization) {
			metrics.RejectedRequests.WithLabelValues(string(kind), "missing_auth").Inc()
			writeJSON(w, c.Logger, http.StatusBadRequest, models.NewError(msgMissingAuthorization))
			return nil, false
		}
		c.logger(r).Error("failed to build command", zap.Error(err))
		writeJSON(w, c.Logger, http.StatusInternalServerError, models.NewError(err.Error()))
		return nil, false
	}

	return cmd, true
}

// run executes cmd. A non-zero exit is answered with 400 and stderr as the message.
func (c *cli) run(w http.ResponseWriter, r *http.Request, kind bws.Kind, op bws.Operation, cmd bws.Command) (*bws.Result, bool) {
	log := c.logger(r).With(zap.Strings("cmd", bws.Masked(cmd)))
	log.Debug("running bws")

	res, err := c.Runner.Run(r.Context(), cmd)
	if err != nil {
		metrics.ObserveCommand(string(kind), string(op), "exec_error", durationOf(res))
		log.Error("bws execution failed", zap.Error(err))
		writeJSON(w, c.Logger, http.StatusInternalServerError, models.NewError(msgExecFailed))
		return nil, false
	}

	if !res.Success() {
		metrics.ObserveCommand(string(kind), string(op), "cli_error", res.Duration)
		log.Warn("bws returned an error", zap.Int("exit_code", res.ExitCode), zap.Duration("duration", res.Duration))
		writeJSON(w, c.Logger, http.StatusBadRequest, models.NewError(res.Stderr))
		return nil, false
	}

	return res, true
}

func (c *cli) succeed(w http.ResponseWriter, _ *http.Request, kind bws.Kind, op bws.Operation, res *bws.Result, status int, data any) {
	metrics.ObserveCommand(string(kind), string(op), "ok", res.Duration)
	writeJSON(w, c.Logger, status, models.NewSuccess(data))
}

func (c *cli) badOutput(w http.ResponseWriter, r *http.Request, kind bws.Kind, op bws.Operation, res *bws.Result, err error) {
	metrics.ObserveCommand(string(kind), string(op), "bad_output", res.Duration)
	c.logger(r).Error("unexpected bws output", zap.String("resource", string(kind)), zap.String("operation", string(op)), zap.Error(err))
	writeJSON(w, c.Logger, http.StatusInternalServerError, models.NewError(err.Error()))
}

func (c *cli) logger(r *http.Request) *zap.Logger {
	if id, ok := auth.GetRequestID(r.Context()); ok {
		return c.Logger.With(zap.String("request_id", id))
	}
	return c.Logger
}

func durationOf(res *bws.Result) time.Duration {
	if res == nil {
		return 0
	}
	return res.Duration
}

// writeJSON writes v as the response body with the given status
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}
