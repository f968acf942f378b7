package commands_test

import (
	"context"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/core/domain/model/incident"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/model/party"
	"lastmile/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllDispatchable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ClaimIdle(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetUnassignedPreparing(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOldestDispatchable(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByDriver(ctx context.Context, driverID int64) (*order.Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockIncidentRepository struct{ mock.Mock }

func (m *MockIncidentRepository) Add(ctx context.Context, record *incident.Incident) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIncidentRepository) Update(ctx context.Context, record *incident.Incident) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockIncidentRepository) Get(ctx context.Context, id int64) (*incident.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*incident.Incident), args.Error(1)
}

type MockEscalationRepository struct{ mock.Mock }

func (m *MockEscalationRepository) Add(ctx context.Context, record *incident.HumanEscalation) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

type MockConversationRepository struct{ mock.Mock }

func (m *MockConversationRepository) Add(ctx context.Context, record *incident.Conversation) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, record *party.User) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*party.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.User), args.Error(1)
}

type MockMerchantRepository struct{ mock.Mock }

func (m *MockMerchantRepository) Get(ctx context.Context, id int64) (*party.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) GetAllOpen(ctx context.Context) ([]*party.Merchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*party.Merchant), args.Error(1)
}

type MockFeedbackRepository struct{ mock.Mock }

func (m *MockFeedbackRepository) Add(ctx context.Context, record *party.PackagingFeedback) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) IncidentRepository() ports.IncidentRepository {
	return m.Called().Get(0).(ports.IncidentRepository)
}

func (m *MockUoW) EscalationRepository() ports.EscalationRepository {
	return m.Called().Get(0).(ports.EscalationRepository)
}

func (m *MockUoW) ConversationRepository() ports.ConversationRepository {
	return m.Called().Get(0).(ports.ConversationRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) MerchantRepository() ports.MerchantRepository {
	return m.Called().Get(0).(ports.MerchantRepository)
}

func (m *MockUoW) FeedbackRepository() ports.FeedbackRepository {
	return m.Called().Get(0).(ports.FeedbackRepository)
}

// Factory adapters binding a MockUoW to each handler's factory dependency.
type (
	dispatchUoWFactory      struct{ uow *MockUoW }
	nearbyUoWFactory        struct{ uow *MockUoW }
	driverUoWFactory        struct{ uow *MockUoW }
	orderUoWFactory         struct{ uow *MockUoW }
	orderCreationUoWFactory struct{ uow *MockUoW }
	incidentUoWFactory      struct{ uow *MockUoW }
	escalationUoWFactory    struct{ uow *MockUoW }
	userUoWFactory          struct{ uow *MockUoW }
	feedbackUoWFactory      struct{ uow *MockUoW }
	reassignUoWFactory      struct{ uow *MockUoW }
	resolutionUoWFactory    struct{ uow *MockUoW }
	merchantUoWFactory      struct{ uow *MockUoW }
	conversationUoWFactory  struct{ uow *MockUoW }
)

func (f dispatchUoWFactory) Create() commands.DispatchUoW           { return f.uow }
func (f nearbyUoWFactory) Create() commands.NearbyUoW               { return f.uow }
func (f driverUoWFactory) Create() commands.DriverUoW               { return f.uow }
func (f orderUoWFactory) Create() commands.OrderUoW                 { return f.uow }
func (f orderCreationUoWFactory) Create() commands.OrderCreationUoW { return f.uow }
func (f incidentUoWFactory) Create() commands.IncidentUoW           { return f.uow }
func (f escalationUoWFactory) Create() commands.EscalationUoW       { return f.uow }
func (f userUoWFactory) Create() commands.UserUoW                   { return f.uow }
func (f feedbackUoWFactory) Create() commands.FeedbackUoW           { return f.uow }
func (f reassignUoWFactory) Create() commands.ReassignUoW           { return f.uow }
func (f resolutionUoWFactory) Create() commands.ResolutionUoW       { return f.uow }
func (f merchantUoWFactory) Create() commands.MerchantUoW           { return f.uow }
func (f conversationUoWFactory) Create() commands.ConversationUoW   { return f.uow }

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}

type MockTravelEstimator struct{ mock.Mock }

func (m *MockTravelEstimator) Estimate(ctx context.Context, origin, destination kernel.GeoPoint) (ports.Travel, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(ports.Travel), args.Error(1)
}

type MockEmailSender struct{ mock.Mock }

func (m *MockEmailSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type MockSMSSender struct{ mock.Mock }

func (m *MockSMSSender) Send(ctx context.Context, to, body string) error {
	args := m.Called(ctx, to, body)
	return args.Error(0)
}

type MockTextCompleter struct{ mock.Mock }

func (m *MockTextCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
