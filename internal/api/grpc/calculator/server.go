package calculator

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"precisecalc/internal/domain"
	"precisecalc/internal/ports"
)

var _ CalculatorServiceServer = (*Server)(nil)

// Server реализует gRPC CalculatorService, вызывает use case калькулятора.
type Server struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// Calculate: {number1, number2, operation, session_id?} -> {result, description}.
func (s *Server) Calculate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	n1, err := domain.ParseDecimal(stringField(req, "number1"))
	if err != nil {
		return nil, s.statusErr(err)
	}
	n2, err := domain.ParseDecimal(stringField(req, "number2"))
	if err != nil {
		return nil, s.statusErr(err)
	}
	op, err := domain.ParseOperator(stringField(req, "operation"))
	if err != nil {
		return nil, s.statusErr(err)
	}

	res, err := s.uc.Calculate(ctx, stringField(req, "session_id"), n1, n2, op)
	if err != nil {
		return nil, s.statusErr(err)
	}
	return structpb.NewStruct(map[string]any{
		"result":      res.Result.String(),
		"description": res.Description,
	})
}

// CreateSession: {} -> {session_id}.
func (s *Server) CreateSession(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	id, err := s.uc.CreateSession(ctx)
	if err != nil {
		return nil, s.statusErr(err)
	}
	return structpb.NewStruct(map[string]any{"session_id": id})
}

// LastShared: {} -> {description, result}.
func (s *Server) LastShared(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	e, err := s.uc.LastShared(ctx)
	if err != nil {
		return nil, s.statusErr(err)
	}
	return entryStruct(e)
}

// ResetShared: {} -> {}.
func (s *Server) ResetShared(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := s.uc.ResetShared(ctx); err != nil {
		return nil, s.statusErr(err)
	}
	return &structpb.Struct{}, nil
}

// LastInstance: {session_id?} -> {description, result}.
func (s *Server) LastInstance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	e, err := s.uc.LastInstance(ctx, stringField(req, "session_id"))
	if err != nil {
		return nil, s.statusErr(err)
	}
	return entryStruct(e)
}

// ResetInstance: {session_id?} -> {}.
func (s *Server) ResetInstance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := s.uc.ResetInstance(ctx, stringField(req, "session_id")); err != nil {
		return nil, s.statusErr(err)
	}
	return &structpb.Struct{}, nil
}

// statusErr переводит ошибку в gRPC-статус. Internal логируется.
func (s *Server) statusErr(err error) error {
	code := statusCode(err)
	if code == codes.Internal {
		s.log.Error("grpc call failed", "error", err)
	}
	return status.Error(code, err.Error())
}

func statusCode(err error) codes.Code {
	switch {
	case errors.Is(err, domain.ErrDivisionByZero),
		errors.Is(err, domain.ErrUnknownOperation),
		errors.Is(err, domain.ErrInvalidOperand):
		return codes.InvalidArgument
	case errors.Is(err, domain.ErrEmptyHistory),
		errors.Is(err, domain.ErrSessionNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrDisabled):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// stringField читает строковое поле; отсутствующее или нестроковое поле - пустая строка.
func stringField(req *structpb.Struct, name string) string {
	v, ok := req.GetFields()[name]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}

func entryStruct(e domain.Entry) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"description": e.Description,
		"result":      e.Result.String(),
	})
}
