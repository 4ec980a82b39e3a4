package cmd

import (
	"log/slog"

	httpadapter "completion/internal/adapters/in/http"
	"completion/internal/adapters/out/mail"
	"completion/internal/adapters/out/postgres/customerrepo"
	"completion/internal/adapters/out/postgres/orderrepo"
	"completion/internal/adapters/out/postgres/receiptrepo"
	"completion/internal/core/application/usecases/commands"
	"completion/internal/core/application/usecases/queries"
	"completion/internal/core/ports"
	"completion/internal/jobs"
	"completion/internal/metrics"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and jobs from configuration.
// All dependencies are created once and shared; handlers are cheap value
// types created on demand.
type CompositionRoot struct {
	config   Config
	gormDB   *gorm.DB
	registry *metrics.Registry
	sender   ports.NotificationSender
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:   config,
		gormDB:   gormDB,
		registry: metrics.NewRegistry(),
		sender:   createNotificationSender(config, logger),
		logger:   logger,
	}
}

// createNotificationSender selects the sender mode. Simulation is the default;
// real SMTP requires an explicit opt-out plus a configured host.
func createNotificationSender(config Config, logger *slog.Logger) ports.NotificationSender {
	if config.EmailSimulation || config.SMTPHost == "" {
		return mail.NewSimulatedSender(logger)
	}

	sender, err := mail.NewSender(
		config.SMTPHost,
		config.SMTPPort,
		config.SMTPUser,
		config.SMTPPassword,
		config.EmailFrom,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to create smtp sender: %v", err)
	}
	return sender
}

func (c *CompositionRoot) NotificationSender() ports.NotificationSender {
	return c.sender
}

func (c *CompositionRoot) MetricsRegistry() *metrics.Registry {
	return c.registry
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(
		c.sender,
		customerrepo.NewGormCustomerRepository(c.gormDB),
		receiptrepo.NewGormReceiptRepository(c.gormDB),
		c.registry,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCloseStaleOrdersCommandHandler() commands.CloseStaleOrdersCommandHandler {
	return commands.NewCloseStaleOrdersCommandHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.registry,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetReceiptQueryHandler() queries.GetReceiptQueryHandler {
	return queries.NewGetReceiptQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHealthQueryHandler() queries.GetHealthQueryHandler {
	return queries.NewGetHealthQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetReceiptQueryHandler(),
		c.CreateGetHealthQueryHandler(),
		c.sender,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCloseStaleOrdersCommandHandler(),
		c.config.AutoCloseHours,
		c.config.AutoCloseBatchSize,
		c.logger,
	)
}
