package cmd

import (
	"log/slog"

	"lastmile/internal/adapters/in/tools"
	"lastmile/internal/adapters/out/ai"
	"lastmile/internal/adapters/out/geo"
	"lastmile/internal/adapters/out/notify"
	"lastmile/internal/adapters/out/postgres"
	"lastmile/internal/adapters/out/postgres/auditrepo"
	"lastmile/internal/adapters/out/postgres/orderrepo"
	"lastmile/internal/core/application/envelope"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/ports"
	"lastmile/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, handlers, and the tool envelope together.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory

	geocoder  ports.Geocoder
	estimator ports.TravelEstimator
	email     ports.EmailSender
	sms       ports.SMSSender
	completer ports.TextCompleter

	registry *prometheus.Registry
	env      *envelope.Envelope
}

// NewCompositionRoot builds the full object graph and registers every tool
// on the envelope.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),

		geocoder:  geo.NewGoogleGeocoder(config.GeoAPIKey, config.GeoBaseURL),
		estimator: geo.NewGoogleTravelEstimator(config.GeoAPIKey, config.TravelBaseURL),
		email:     notify.NewSMTPEmailSender(config.SMTPHost, config.SMTPPort, config.SMTPFrom, config.SMTPUser, config.SMTPPassword),
		sms:       notify.NewTwilioSMSSender(config.TwilioAccountSID, config.TwilioAuthToken, config.TwilioFrom, config.TwilioBaseURL),
		completer: ai.NewHTTPTextCompleter(config.AIAPIKey, config.AIModel, config.AIBaseURL),

		registry: prometheus.NewRegistry(),
	}

	policy := envelope.WriteSync
	if config.AuditWritePolicy == "async" {
		policy = envelope.WriteAsync
	}

	root.env = envelope.NewEnvelope(
		auditrepo.NewGormToolCallRepository(gormDB),
		logger,
		envelope.NewMetrics(root.registry),
		policy,
	)

	if err := root.toolRegistry().RegisterAll(root.env); err != nil {
		return nil, err
	}
	return root, nil
}

// Envelope returns the fully registered tool envelope.
func (c *CompositionRoot) Envelope() *envelope.Envelope {
	return c.env
}

// MetricsRegistry returns the prometheus registry backing /metrics.
func (c *CompositionRoot) MetricsRegistry() *prometheus.Registry {
	return c.registry
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.CreateAssignDriverCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) toolRegistry() tools.Registry {
	return tools.Registry{
		AssignDriver:      c.CreateAssignDriverCommandHandler(),
		AssignNearbyOrder: c.CreateAssignNearbyOrderCommandHandler(),

		UpdateDriverState:    c.CreateUpdateDriverStateCommandHandler(),
		UpdateDriverLocation: c.CreateUpdateDriverLocationCommandHandler(),
		GetDriverStatus:      queries.NewGetDriverStatusQueryHandler(c.gormDB),
		CheckDriverOrder:     queries.NewCheckDriverOrderQueryHandler(c.gormDB),

		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		UnassignOrder:     c.CreateUnassignOrderCommandHandler(),
		GetOrderDetails:   queries.NewGetOrderDetailsQueryHandler(c.gormDB),

		CollectEvidence:      c.CreateCollectEvidenceCommandHandler(),
		EscalateToHuman:      c.CreateEscalateToHumanCommandHandler(),
		ExonerateDriver:      c.CreateExonerateDriverCommandHandler(),
		AlertAuthority:       c.CreateAlertAuthorityCommandHandler(),
		LogIncident:          c.CreateLogIncidentCommandHandler(),
		IssueRefund:          commands.NewIssueRefundCommandHandler(),
		LogPackagingFeedback: c.CreateLogPackagingFeedbackCommandHandler(),

		GetMerchantStatus:       queries.NewGetMerchantStatusQueryHandler(c.gormDB),
		FindNearbyMerchants:     queries.NewFindNearbyMerchantsQueryHandler(c.gormDB, c.geocoder),
		ReassignOrderToMerchant: c.CreateReassignOrderToMerchantCommandHandler(),

		CreateUser:     c.CreateCreateUserCommandHandler(),
		GetUserDetails: queries.NewGetUserDetailsQueryHandler(c.gormDB),

		NotifyCustomer:   c.CreateNotifyCustomerCommandHandler(),
		NotifyMerchant:   c.CreateNotifyMerchantCommandHandler(),
		NotifyDriver:     c.CreateNotifyDriverCommandHandler(),
		NotifyResolution: c.CreateNotifyResolutionCommandHandler(),

		RecordConversation: c.CreateRecordConversationCommandHandler(),
		ContactRecipient:   c.CreateContactRecipientCommandHandler(),
	}
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.geocoder)
}

func (c *CompositionRoot) CreateAssignNearbyOrderCommandHandler() commands.AssignNearbyOrderCommandHandler {
	var f commands.NearbyUoWFactory = FuncNearbyUoWFactory(func() commands.NearbyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignNearbyOrderCommandHandler(f, c.estimator, c.config.PrepMarginMinutes)
}

func (c *CompositionRoot) CreateUpdateDriverStateCommandHandler() commands.UpdateDriverStateCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverStateCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverLocationCommandHandler(f, c.geocoder)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCreationUoWFactory = FuncOrderCreationUoWFactory(func() commands.OrderCreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUnassignOrderCommandHandler() commands.UnassignOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCollectEvidenceCommandHandler() commands.CollectEvidenceCommandHandler {
	var f commands.IncidentUoWFactory = FuncIncidentUoWFactory(func() commands.IncidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCollectEvidenceCommandHandler(f, c.completer, c.logger)
}

func (c *CompositionRoot) CreateEscalateToHumanCommandHandler() commands.EscalateToHumanCommandHandler {
	var f commands.EscalationUoWFactory = FuncEscalationUoWFactory(func() commands.EscalationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEscalateToHumanCommandHandler(f, c.email)
}

func (c *CompositionRoot) CreateExonerateDriverCommandHandler() commands.ExonerateDriverCommandHandler {
	var f commands.IncidentUoWFactory = FuncIncidentUoWFactory(func() commands.IncidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExonerateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAlertAuthorityCommandHandler() commands.AlertAuthorityCommandHandler {
	var f commands.IncidentUoWFactory = FuncIncidentUoWFactory(func() commands.IncidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAlertAuthorityCommandHandler(f, c.email, c.config.AuthorityContact)
}

func (c *CompositionRoot) CreateLogIncidentCommandHandler() commands.LogIncidentCommandHandler {
	var f commands.IncidentUoWFactory = FuncIncidentUoWFactory(func() commands.IncidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogIncidentCommandHandler(f)
}

func (c *CompositionRoot) CreateLogPackagingFeedbackCommandHandler() commands.LogPackagingFeedbackCommandHandler {
	var f commands.FeedbackUoWFactory = FuncFeedbackUoWFactory(func() commands.FeedbackUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogPackagingFeedbackCommandHandler(f)
}

func (c *CompositionRoot) CreateReassignOrderToMerchantCommandHandler() commands.ReassignOrderToMerchantCommandHandler {
	var f commands.ReassignUoWFactory = FuncReassignUoWFactory(func() commands.ReassignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignOrderToMerchantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateNotifyCustomerCommandHandler() commands.NotifyCustomerCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyCustomerCommandHandler(f, c.email)
}

func (c *CompositionRoot) CreateNotifyMerchantCommandHandler() commands.NotifyMerchantCommandHandler {
	var f commands.MerchantUoWFactory = FuncMerchantUoWFactory(func() commands.MerchantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyMerchantCommandHandler(f, c.email)
}

func (c *CompositionRoot) CreateNotifyDriverCommandHandler() commands.NotifyDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyDriverCommandHandler(f, c.sms)
}

func (c *CompositionRoot) CreateRecordConversationCommandHandler() commands.RecordConversationCommandHandler {
	var f commands.ConversationUoWFactory = FuncConversationUoWFactory(func() commands.ConversationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordConversationCommandHandler(f)
}

func (c *CompositionRoot) CreateContactRecipientCommandHandler() commands.ContactRecipientCommandHandler {
	var f commands.ConversationUoWFactory = FuncConversationUoWFactory(func() commands.ConversationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewContactRecipientCommandHandler(f)
}

func (c *CompositionRoot) CreateNotifyResolutionCommandHandler() commands.NotifyResolutionCommandHandler {
	var f commands.ResolutionUoWFactory = FuncResolutionUoWFactory(func() commands.ResolutionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyResolutionCommandHandler(f, c.sms)
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncNearbyUoWFactory func() commands.NearbyUoW

func (f FuncNearbyUoWFactory) Create() commands.NearbyUoW {
	return f()
}

type FuncOrderCreationUoWFactory func() commands.OrderCreationUoW

func (f FuncOrderCreationUoWFactory) Create() commands.OrderCreationUoW {
	return f()
}

type FuncIncidentUoWFactory func() commands.IncidentUoW

func (f FuncIncidentUoWFactory) Create() commands.IncidentUoW {
	return f()
}

type FuncEscalationUoWFactory func() commands.EscalationUoW

func (f FuncEscalationUoWFactory) Create() commands.EscalationUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncFeedbackUoWFactory func() commands.FeedbackUoW

func (f FuncFeedbackUoWFactory) Create() commands.FeedbackUoW {
	return f()
}

type FuncReassignUoWFactory func() commands.ReassignUoW

func (f FuncReassignUoWFactory) Create() commands.ReassignUoW {
	return f()
}

type FuncResolutionUoWFactory func() commands.ResolutionUoW

func (f FuncResolutionUoWFactory) Create() commands.ResolutionUoW {
	return f()
}

type FuncMerchantUoWFactory func() commands.MerchantUoW

func (f FuncMerchantUoWFactory) Create() commands.MerchantUoW {
	return f()
}

type FuncConversationUoWFactory func() commands.ConversationUoW

func (f FuncConversationUoWFactory) Create() commands.ConversationUoW {
	return f()
}
