package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/rpc"
)

const pingTimeout = 3 * time.Second

// defaultBackoff waits 1s, 2s and 4s between the four attempts of a call.
func defaultBackoff() retry.Backoff {
	b := retry.NewExponential(common.RetryBaseDelay)
	b = retry.WithCappedDuration(common.RetryMaxDelay, b)
	return retry.WithMaxRetries(common.RetryMaxRetries, b)
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.MnemosClient
	backoff     func() retry.Backoff
}

func NewMnemosClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, backoff: defaultBackoff}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
		grpc.WithUnaryInterceptor(s.retryInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewMnemosClient(conn)
	return nil
}

// retryInterceptor retries calls that fail with codes.Unavailable. Any other
// outcome is returned at once. Ping is never retried: it is the check that
// decides whether the client is online.
func (s *GRPCClient) retryInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if method == rpc.MethodPing {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	return retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if status.Code(err) == codes.Unavailable {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &rpc.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) GetAllItems(ctx context.Context) ([]models.Item, error) {
	resp, err := s.client.GetAllItems(ctx, &rpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Items, nil
}

func (s *GRPCClient) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	resp, err := s.client.CreateItem(ctx, &rpc.CreateItemRequest{Item: item})
	if err != nil {
		return models.Item{}, s.mapError(err)
	}
	return resp.Item, nil
}

func (s *GRPCClient) UpdateItem(ctx context.Context, id string, item models.Item) (models.Item, error) {
	resp, err := s.client.UpdateItem(ctx, &rpc.UpdateItemRequest{ID: id, Item: item})
	if err != nil {
		return models.Item{}, s.mapError(err)
	}
	return resp.Item, nil
}

func (s *GRPCClient) DeleteItem(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &rpc.DeleteItemRequest{ID: id})
	return s.mapError(err)
}

func (s *GRPCClient) GetSettings(ctx context.Context) (models.Settings, error) {
	resp, err := s.client.GetSettings(ctx, &rpc.Empty{})
	if err != nil {
		return models.Settings{}, s.mapError(err)
	}
	return resp.Settings, nil
}

func (s *GRPCClient) UpdateSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	resp, err := s.client.UpdateSettings(ctx, &rpc.SettingsRequest{Settings: settings})
	if err != nil {
		return models.Settings{}, s.mapError(err)
	}
	return resp.Settings, nil
}

func (s *GRPCClient) GetCategories(ctx context.Context) ([]string, error) {
	resp, err := s.client.GetAllCategories(ctx, &rpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Categories, nil
}

func (s *GRPCClient) AddCategory(ctx context.Context, name string) ([]string, error) {
	resp, err := s.client.AddCategory(ctx, &rpc.CategoryRequest{Name: name})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Categories, nil
}

func (s *GRPCClient) RenameCategory(ctx context.Context, oldName, newName string) ([]string, error) {
	resp, err := s.client.RenameCategory(ctx, &rpc.RenameCategoryRequest{OldName: oldName, NewName: newName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Categories, nil
}

func (s *GRPCClient) DeleteCategory(ctx context.Context, name string) ([]string, error) {
	resp, err := s.client.DeleteCategory(ctx, &rpc.CategoryRequest{Name: name})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Categories, nil
}

// preconditionErrors are recognized by their text in FailedPrecondition
// statuses.
var preconditionErrors = []error{common.ErrCategoryInUse, common.ErrArchived, common.ErrHistoryRewrite}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, strings.TrimPrefix(st.Message(), common.ErrValidation.Error()+": "))
	case codes.AlreadyExists:
		return common.ErrAlreadyExists
	case codes.FailedPrecondition:
		for _, e := range preconditionErrors {
			if strings.Contains(st.Message(), e.Error()) {
				return e
			}
		}
		return fmt.Errorf("rpc error: %w", err)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
