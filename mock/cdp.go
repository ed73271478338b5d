package mock

import (
	"context"

	"github.com/cdpdoc/cdpdoc"
)

var _ cdpdoc.CDPService = (*CDPService)(nil)

// CDPService is a mock implementation of cdpdoc.CDPService.
type CDPService struct {
	CreateCDPFn   func(ctx context.Context, cdp *cdpdoc.CDP) error
	FindCDPByIDFn func(ctx context.Context, id string) (*cdpdoc.CDP, error)
	FindCDPsFn    func(ctx context.Context) ([]*cdpdoc.CDP, error)
	DeleteCDPFn   func(ctx context.Context, id string) error
}

func (s *CDPService) CreateCDP(ctx context.Context, cdp *cdpdoc.CDP) error {
	return s.CreateCDPFn(ctx, cdp)
}

func (s *CDPService) FindCDPByID(ctx context.Context, id string) (*cdpdoc.CDP, error) {
	return s.FindCDPByIDFn(ctx, id)
}

func (s *CDPService) FindCDPs(ctx context.Context) ([]*cdpdoc.CDP, error) {
	return s.FindCDPsFn(ctx)
}

func (s *CDPService) DeleteCDP(ctx context.Context, id string) error {
	return s.DeleteCDPFn(ctx, id)
}
