package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/airport-ops/internal/domain"
)

// Lookups return (nil, nil) when the record does not exist. Create and Update
// report invalid input and uniqueness collisions as *domain.ValidationError.

type FlightRepository interface {
	List(ctx context.Context, filter domain.FlightFilter, page domain.Page, sort domain.Sort) ([]domain.Flight, error)
	Count(ctx context.Context, filter domain.FlightFilter) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, patch domain.FlightPatch) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type GateRepository interface {
	List(ctx context.Context, filter domain.GateFilter, page domain.Page) ([]domain.Gate, error)
	Count(ctx context.Context, filter domain.GateFilter) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Gate, error)
	GetByNumber(ctx context.Context, number string) (*domain.Gate, error)
	Create(ctx context.Context, input domain.GateInput) (*domain.Gate, error)
	Update(ctx context.Context, id int64, patch domain.GatePatch) (*domain.Gate, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type EmployeeRepository interface {
	List(ctx context.Context, filter domain.EmployeeFilter, page domain.Page) ([]domain.Employee, error)
	Count(ctx context.Context, filter domain.EmployeeFilter) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id int64, patch domain.EmployeePatch) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PassengerRepository interface {
	List(ctx context.Context, filter domain.PassengerFilter, page domain.Page) ([]domain.Passenger, error)
	Count(ctx context.Context, filter domain.PassengerFilter) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Create(ctx context.Context, input domain.PassengerInput) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, patch domain.PassengerPatch) (*domain.Passenger, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create stores a user whose password is already hashed.
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
}

type StatsRepository interface {
	FlightsDepartingToday(ctx context.Context) (int, error)
	FlightStatusDistribution(ctx context.Context) ([]domain.StatusCount, error)
	GateStatusDistribution(ctx context.Context) ([]domain.StatusCount, error)
	EmployeeRoleDistribution(ctx context.Context) ([]domain.RoleCount, error)
	PassengersPerFlight(ctx context.Context) ([]domain.FlightPassengerCount, error)
	DailyFlightTraffic(ctx context.Context, days int) ([]domain.DailyTraffic, error)
}

// Storage bundles one implementation of every repository.
type Storage struct {
	Users      UserRepository
	Flights    FlightRepository
	Gates      GateRepository
	Employees  EmployeeRepository
	Passengers PassengerRepository
	Stats      StatsRepository
}

// Clock reports the current time; statistics derive "today" from it.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

type Option func(*options)

type options struct {
	clock Clock
}

func WithClock(clock Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{clock: SystemClock}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
