package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpin "dispatch/internal/adapters/in/http"
	kafkain "dispatch/internal/adapters/in/kafka"
	"dispatch/internal/adapters/out/geo"
	kafkaout "dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/outboxrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
)

// CompositionRoot wires adapters, use cases and jobs together.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	geoClient  ports.GeoClient
	producer   ports.MessageBusProducer
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph for the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		geoClient:  geo.NewClient(),
		producer: kafkaout.NewProducer(
			[]string{config.KafkaHost},
			config.KafkaOrderChangedTopic,
			logger,
		),
		logger: logger,
	}
}

// Close releases external connections held by the root.
func (c *CompositionRoot) Close() error {
	if err := c.producer.Close(); err != nil {
		return err
	}
	return c.geoClient.Close()
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.geoClient)
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateMoveCouriersCommandHandler() commands.MoveCouriersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMoveCouriersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST API facade.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateCourierCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateGetAllCouriersQueryHandler(),
		c.CreateGetUncompletedOrdersQueryHandler(),
	)
}

// CreateBasketConfirmedConsumer builds the Kafka consumer feeding order intake.
func (c *CompositionRoot) CreateBasketConfirmedConsumer() *kafkain.BasketConfirmedConsumer {
	return kafkain.NewBasketConfirmedConsumer(
		[]string{c.config.KafkaHost},
		c.config.KafkaBasketConfirmedTopic,
		c.config.KafkaConsumerGroup,
		c.CreateCreateOrderCommandHandler(),
		c.logger,
	)
}

// CreateJobManager builds the scheduler owning all background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAssignOrdersCommandHandler(),
		c.CreateMoveCouriersCommandHandler(),
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		c.producer,
		c.logger,
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
