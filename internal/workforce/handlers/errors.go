package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gartstein/workforce/internal/workforce/auth"
	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/gartstein/workforce/internal/workforce/metrics"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/protoadapt"
)

// ErrorDomain is the ErrorInfo domain of validation failures.
const ErrorDomain = "workforce"

var marshaler = &runtime.JSONBuiltin{}

// mapServiceError maps domain or repository errors to a gRPC status.
func mapServiceError(err error) *status.Status {
	if st, ok := status.FromError(err); ok {
		return st
	}

	var verr *e.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationStatus(verr)
	case errors.Is(err, e.ErrNotFound):
		return status.New(codes.NotFound, err.Error())
	case errors.Is(err, e.ErrConflict):
		return status.New(codes.FailedPrecondition, err.Error())
	case errors.Is(err, e.ErrInvalidInput):
		return status.New(codes.InvalidArgument, err.Error())
	default:
		return status.New(codes.Internal, "internal server error")
	}
}

// validationStatus carries every violation twice: as a BadRequest field
// violation, and as an ErrorInfo holding the rejected value.
func validationStatus(verr *e.ValidationError) *status.Status {
	st := status.New(codes.InvalidArgument, verr.Error())

	badRequest := &errdetails.BadRequest{}
	details := make([]protoadapt.MessageV1, 0, len(verr.Violations)+1)
	details = append(details, badRequest)
	for _, v := range verr.Violations {
		badRequest.FieldViolations = append(badRequest.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: v.Message,
		})
		details = append(details, &errdetails.ErrorInfo{
			Reason: strings.ToUpper(string(v.Kind)),
			Domain: ErrorDomain,
			Metadata: map[string]string{
				"field": v.Field,
				"value": v.Value,
			},
		})
	}

	withDetails, err := st.WithDetails(details...)
	if err != nil {
		return st
	}
	return withDetails
}

// writeError renders err as a gRPC status JSON body.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	st := mapServiceError(err)

	var verr *e.ValidationError
	if errors.As(err, &verr) {
		metrics.ObserveViolations(verr.Violations)
	}
	if st.Code() == codes.Internal {
		a.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("user", subject(r)),
			zap.Error(err),
		)
	}

	body, merr := protojson.Marshal(st.Proto())
	if merr != nil {
		a.logger.Error("failed to marshal status", zap.Error(merr))
		http.Error(w, st.Message(), runtime.HTTPStatusFromCode(st.Code()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(runtime.HTTPStatusFromCode(st.Code()))
	_, _ = w.Write(body)
}

func (a *API) writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := marshaler.Marshal(v)
	if err != nil {
		a.logger.Error("failed to marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", marshaler.ContentType(v))
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func (a *API) decode(r *http.Request, v any) error {
	if err := marshaler.NewDecoder(r.Body).Decode(v); err != nil {
		return status.Errorf(codes.InvalidArgument, "malformed request body: %v", err)
	}
	return nil
}

func pathID(params map[string]string, name string) (uint, error) {
	id, err := strconv.ParseUint(params[name], 10, 64)
	if err != nil || id == 0 {
		return 0, status.Errorf(codes.InvalidArgument, "invalid %s %q", name, params[name])
	}
	return uint(id), nil
}

// subject is the token subject of an authenticated request, or "".
func subject(r *http.Request) string {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return ""
	}
	sub, _ := claims.GetSubject()
	return sub
}
