package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/SscSPs/monthly_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkplaceAuthorizer portssvc.WorkplaceAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeOwner validates the owner context and, for workplace-owned data,
// checks that the acting user holds at least requiredRole. User-owned data
// needs no membership check.
func (s *BaseService) AuthorizeOwner(ctx context.Context, owner domain.OwnerContext, requiredRole domain.WorkplaceRole) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if !owner.IsWorkplace() {
		return nil
	}
	if s.WorkplaceAuthorizer == nil {
		s.LogDebug(ctx, "No workplace authorizer provided, access granted by default",
			slog.String("user_id", owner.UserID),
			slog.String("workplace_id", owner.WorkplaceID),
			slog.String("required_role", string(requiredRole)))
		return nil
	}
	return s.WorkplaceAuthorizer.AuthorizeUserAction(ctx, owner.UserID, owner.WorkplaceID, requiredRole)
}
