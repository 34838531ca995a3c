package cmd

import (
	"log/slog"

	httpserver "orderservice/internal/adapters/in/http"
	inkafka "orderservice/internal/adapters/in/kafka"
	outkafka "orderservice/internal/adapters/out/kafka"
	"orderservice/internal/adapters/out/postgres"
	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/ports"
	"orderservice/internal/jobs"
	"orderservice/internal/pkg/retry"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	kafkaClient *outkafka.Client
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		kafkaClient: outkafka.NewClient(config.KafkaHost),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePartnerCommandHandler() commands.UpdatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByPeriodQueryHandler() queries.GetOrdersByPeriodQueryHandler {
	return queries.NewGetOrdersByPeriodQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerByIDQueryHandler() queries.GetPartnerByIDQueryHandler {
	return queries.NewGetPartnerByIDQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the REST API.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateCreatePartnerCommandHandler(),
		c.CreateUpdatePartnerCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetOrdersByPeriodQueryHandler(),
		c.CreateGetPartnerByIDQueryHandler(),
		c.logger,
	)
}

// CreateJobManager wires the outbox dispatcher to the Kafka publisher. The
// outbox repository here reads committed rows, so it runs outside any unit
// of work.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	publisher := outkafka.NewKafkaEventPublisher(
		c.kafkaClient.NewWriter(c.config.KafkaOrderStatusTopic),
	)

	var outboxRepo ports.OutboxRepository = c.uowFactory.Create().OutboxRepository()
	return jobs.NewJobManager(outboxRepo, publisher, c.logger)
}

// CreateStatusEventConsumer wires the status topic reader, the dead-letter
// writer and the default logging handler under the delivery policy.
func (c *CompositionRoot) CreateStatusEventConsumer() *inkafka.Consumer {
	reader := c.kafkaClient.NewReader(c.config.KafkaOrderStatusTopic, c.config.KafkaConsumerGroup)
	dlq := c.kafkaClient.NewWriter(c.config.KafkaOrderStatusDLQ)
	handler := inkafka.NewLoggingEventHandler(c.logger)

	return inkafka.NewConsumer(reader, dlq, handler, retry.DefaultPolicy(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}
