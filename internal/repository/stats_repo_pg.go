package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStatsRepository struct {
	db    *pgxpool.Pool
	clock Clock
}

func NewStatsRepository(db *pgxpool.Pool, opts ...Option) StatsRepository {
	o := applyOptions(opts)
	return &PGStatsRepository{db: db, clock: o.clock}
}

func (r *PGStatsRepository) today() time.Time {
	t, _ := time.Parse(domain.DateLayout, domain.CalendarDate(r.clock()))
	return t
}

func (r *PGStatsRepository) FlightsDepartingToday(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights WHERE departure_date = $1`, r.today()).Scan(&n)
	return n, err
}

func (r *PGStatsRepository) FlightStatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	counts, err := r.groupCount(ctx, `SELECT status, COUNT(*) FROM flights GROUP BY status`)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[domain.FlightStatus]int, len(counts))
	for k, v := range counts {
		byStatus[domain.FlightStatus(k)] = v
	}
	return domain.CountStatuses(domain.FlightStatuses, byStatus), nil
}

func (r *PGStatsRepository) GateStatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	counts, err := r.groupCount(ctx, `SELECT status, COUNT(*) FROM gates GROUP BY status`)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[domain.GateStatus]int, len(counts))
	for k, v := range counts {
		byStatus[domain.GateStatus(k)] = v
	}
	return domain.CountStatuses(domain.GateStatuses, byStatus), nil
}

func (r *PGStatsRepository) EmployeeRoleDistribution(ctx context.Context) ([]domain.RoleCount, error) {
	counts, err := r.groupCount(ctx, `SELECT role, COUNT(*) FROM employees GROUP BY role`)
	if err != nil {
		return nil, err
	}
	byRole := make(map[domain.EmployeeRole]int, len(counts))
	for k, v := range counts {
		byRole[domain.EmployeeRole(k)] = v
	}
	return domain.CountRoles(byRole), nil
}

func (r *PGStatsRepository) groupCount(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

func (r *PGStatsRepository) PassengersPerFlight(ctx context.Context) ([]domain.FlightPassengerCount, error) {
	rows, err := r.db.Query(ctx, `SELECT p.flight_id, COALESCE(f.flight_number, $1), COUNT(*)
		FROM passengers p
		LEFT JOIN flights f ON f.id = p.flight_id
		WHERE p.flight_id IS NOT NULL
		GROUP BY p.flight_id, f.flight_number
		ORDER BY p.flight_id`, domain.UnknownFlightNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.FlightPassengerCount, 0)
	for rows.Next() {
		var c domain.FlightPassengerCount
		if err := rows.Scan(&c.FlightID, &c.FlightNumber, &c.PassengerCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGStatsRepository) DailyFlightTraffic(ctx context.Context, days int) ([]domain.DailyTraffic, error) {
	dates, err := domain.TrafficDates(r.clock(), days)
	if err != nil {
		return nil, err
	}
	from, _ := time.Parse(domain.DateLayout, dates[0])
	to, _ := time.Parse(domain.DateLayout, dates[len(dates)-1])

	rows, err := r.db.Query(ctx, `SELECT departure_date, status, COUNT(*)
		FROM flights
		WHERE departure_date BETWEEN $1 AND $2 AND status IN ($3, $4)
		GROUP BY departure_date, status`,
		from, to, string(domain.FlightArrived), string(domain.FlightDeparted))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]map[domain.FlightStatus]int)
	for rows.Next() {
		var (
			date   time.Time
			status string
			n      int
		)
		if err := rows.Scan(&date, &status, &n); err != nil {
			return nil, err
		}
		key := date.Format(domain.DateLayout)
		if counts[key] == nil {
			counts[key] = make(map[domain.FlightStatus]int)
		}
		counts[key][domain.FlightStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return domain.BuildDailyTraffic(dates, counts), nil
}

var _ StatsRepository = (*PGStatsRepository)(nil)
